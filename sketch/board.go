package sketch

import (
	"github.com/milk9111/subplot2grid/grid"
)

const defaultMaxUndo = 100

// Board is the drawing session: the rectangles drawn so far and the grid
// they are measured against. It is owned by the UI loop.
type Board struct {
	cfg       grid.Config
	rects     []grid.Rect
	undoStack [][]grid.Rect
	maxUndo   int
}

func NewBoard(cfg grid.Config) *Board {
	return &Board{cfg: cfg, maxUndo: defaultMaxUndo}
}

func (b *Board) Config() grid.Config { return b.cfg }

func (b *Board) Len() int { return len(b.rects) }

// Rects returns a copy of the rectangles in drawing order.
func (b *Board) Rects() []grid.Rect {
	return cloneRects(b.rects)
}

// Add appends a rectangle, clamping its corners to the canvas.
func (b *Board) Add(r grid.Rect) {
	b.pushUndo()
	b.rects = append(b.rects, grid.Rect{
		X0: clamp(r.X0, 0, b.cfg.Width),
		Y0: clamp(r.Y0, 0, b.cfg.Height),
		X1: clamp(r.X1, 0, b.cfg.Width),
		Y1: clamp(r.Y1, 0, b.cfg.Height),
	})
}

// RemoveAt deletes the most recently drawn rectangle containing (x, y).
func (b *Board) RemoveAt(x, y int) bool {
	idx := b.IndexAt(x, y)
	if idx < 0 {
		return false
	}
	b.pushUndo()
	b.rects = append(b.rects[:idx], b.rects[idx+1:]...)
	return true
}

// IndexAt returns the index of the topmost rectangle containing (x, y), or -1.
func (b *Board) IndexAt(x, y int) int {
	for i := len(b.rects) - 1; i >= 0; i-- {
		if b.rects[i].Contains(x, y) {
			return i
		}
	}
	return -1
}

// Reset removes every rectangle.
func (b *Board) Reset() {
	if len(b.rects) == 0 {
		return
	}
	b.pushUndo()
	b.rects = nil
}

// Configure switches to a new grid. Placements computed against the old
// grid are meaningless, so the board is cleared along with its history.
// An invalid config leaves the board untouched.
func (b *Board) Configure(cfg grid.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b.cfg = cfg
	b.rects = nil
	b.undoStack = nil
	return nil
}

// Undo restores the rectangles as they were before the last edit.
func (b *Board) Undo() bool {
	n := len(b.undoStack)
	if n == 0 {
		return false
	}
	b.rects = b.undoStack[n-1]
	b.undoStack = b.undoStack[:n-1]
	return true
}

func (b *Board) CanUndo() bool { return len(b.undoStack) > 0 }

func (b *Board) Placements() []grid.Placement {
	return grid.Compute(b.rects, b.cfg)
}

func (b *Board) Generate() (grid.Code, error) {
	return grid.Generate(b.rects, b.cfg)
}

func (b *Board) pushUndo() {
	if b.maxUndo <= 0 {
		b.maxUndo = defaultMaxUndo
	}
	if len(b.undoStack) >= b.maxUndo {
		// drop oldest
		b.undoStack = b.undoStack[1:]
	}
	b.undoStack = append(b.undoStack, cloneRects(b.rects))
}

func cloneRects(src []grid.Rect) []grid.Rect {
	if src == nil {
		return nil
	}
	res := make([]grid.Rect, len(src))
	copy(res, src)
	return res
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

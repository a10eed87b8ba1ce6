package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/subplot2grid/config"
	"github.com/milk9111/subplot2grid/grid"
	"github.com/milk9111/subplot2grid/sketch"
)

const (
	canvasMargin    = 16
	minScreenHeight = 520
)

// Canvas draws the sketch board and turns mouse input into board edits.
type Canvas struct {
	board *sketch.Board

	gridColor color.RGBA
	rectFill  color.NRGBA
	rectLine  color.RGBA

	dragging       bool
	startX, startY int
	curX, curY     int
}

func NewCanvas(board *sketch.Board, colors config.Colors) *Canvas {
	c := &Canvas{board: board}
	c.SetColors(colors)
	return c
}

// SetColors applies CSS colors; invalid values keep the previous ones.
func (c *Canvas) SetColors(colors config.Colors) {
	if col, err := config.ParseColor(colors.Grid); err == nil {
		c.gridColor = col
	}
	if col, err := config.ParseColor(colors.Rect); err == nil {
		c.rectLine = col
		c.rectFill = color.NRGBA{R: col.R, G: col.G, B: col.B, A: 0x50}
	}
}

func (c *Canvas) origin() (int, int) {
	return panelWidth + canvasMargin, canvasMargin
}

func (c *Canvas) inside(mx, my int) bool {
	ox, oy := c.origin()
	cfg := c.board.Config()
	return mx >= ox && my >= oy && mx <= ox+cfg.Width && my <= oy+cfg.Height
}

// CancelDrag drops an in-progress drag without adding a rectangle.
func (c *Canvas) CancelDrag() {
	c.dragging = false
}

// Update handles drawing and deleting. It reports whether the board changed.
func (c *Canvas) Update() bool {
	mx, my := ebiten.CursorPosition()
	changed := false

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && c.inside(mx, my) {
		c.dragging = true
		c.startX, c.startY = mx, my
		c.curX, c.curY = mx, my
	}
	if c.dragging {
		c.curX, c.curY = mx, my
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			ox, oy := c.origin()
			c.board.Add(canvasRect(ox, oy, c.startX, c.startY, c.curX, c.curY))
			c.dragging = false
			changed = true
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && c.inside(mx, my) {
		ox, oy := c.origin()
		if c.board.RemoveAt(mx-ox, my-oy) {
			changed = true
		}
	}
	return changed
}

func (c *Canvas) Draw(screen *ebiten.Image) {
	ox, oy := c.origin()
	fx, fy := float32(ox), float32(oy)
	cfg := c.board.Config()
	w, h := float32(cfg.Width), float32(cfg.Height)

	vector.FillRect(screen, fx, fy, w, h, color.White, false)
	if cfg.CellSize > 0 {
		for x := 0; x <= cfg.Width; x += cfg.CellSize {
			vector.StrokeLine(screen, fx+float32(x), fy, fx+float32(x), fy+h, 1, c.gridColor, false)
		}
		for y := 0; y <= cfg.Height; y += cfg.CellSize {
			vector.StrokeLine(screen, fx, fy+float32(y), fx+w, fy+float32(y), 1, c.gridColor, false)
		}
	}

	for _, r := range c.board.Rects() {
		c.drawRect(screen, r.Canon(), fx, fy)
	}
	if c.dragging {
		r := canvasRect(ox, oy, c.startX, c.startY, c.curX, c.curY).Canon()
		vector.StrokeRect(screen, fx+float32(r.X0), fy+float32(r.Y0), float32(r.X1-r.X0), float32(r.Y1-r.Y0), 1, c.rectLine, false)
	}
}

func (c *Canvas) drawRect(screen *ebiten.Image, r grid.Rect, fx, fy float32) {
	x, y := fx+float32(r.X0), fy+float32(r.Y0)
	w, h := float32(r.X1-r.X0), float32(r.Y1-r.Y0)
	vector.FillRect(screen, x, y, w, h, c.rectFill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, c.rectLine, false)
}

package grid

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PixelsPerInch converts canvas pixels into figure inches.
const PixelsPerInch = 100

var (
	ErrInvalidConfig     = errors.New("values must be positive integers")
	ErrNothingToGenerate = errors.New("no rectangles drawn to generate code")
)

// Config describes the canvas in pixels and the size of one grid cell.
type Config struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// Rows is the number of whole cells that fit vertically.
func (c Config) Rows() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Height / c.CellSize
}

// Cols is the number of whole cells that fit horizontally.
func (c Config) Cols() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Width / c.CellSize
}

func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("grid: width %d: %w", c.Width, ErrInvalidConfig)
	}
	if c.Height <= 0 {
		return fmt.Errorf("grid: height %d: %w", c.Height, ErrInvalidConfig)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("grid: cell size %d: %w", c.CellSize, ErrInvalidConfig)
	}
	return nil
}

// ParseConfig reads the three text fields of the settings panel.
func ParseConfig(width, height, cell string) (Config, error) {
	var (
		cfg Config
		err error
	)
	if cfg.Width, err = parseField("width", width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = parseField("height", height); err != nil {
		return Config{}, err
	}
	if cfg.CellSize, err = parseField("cell size", cell); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseField(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("grid: %s %q: %w", name, raw, ErrInvalidConfig)
	}
	return v, nil
}

// Rect is a rectangle drawn on the canvas, in pixels. The corners are kept
// in the order they were drawn; any corner may come first.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// Canon returns the rectangle with X0<=X1 and Y0<=Y1.
func (r Rect) Canon() Rect {
	if r.X1 < r.X0 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Contains reports whether the point lies inside the rectangle, edges included.
func (r Rect) Contains(x, y int) bool {
	c := r.Canon()
	return x >= c.X0 && x <= c.X1 && y >= c.Y0 && y <= c.Y1
}

// Placement is the grid position and span of one rectangle.
type Placement struct {
	Index    int // 1-based, assigned after ordering
	RowStart int
	ColStart int
	RowSpan  int
	ColSpan  int
}

// Name is the identifier used for the placement in generated code.
func (p Placement) Name() string {
	return "ax" + strconv.Itoa(p.Index)
}

// Degenerate reports a rectangle smaller than one cell in either dimension.
// Such placements are still emitted with a zero span.
func (p Placement) Degenerate() bool {
	return p.RowSpan == 0 || p.ColSpan == 0
}

// Place maps one rectangle onto the grid. Index is left unset. A
// non-positive cell size maps everything to the zero Placement.
func Place(r Rect, cfg Config) Placement {
	if cfg.CellSize <= 0 {
		return Placement{}
	}
	c := r.Canon()
	return Placement{
		RowStart: floorDiv(c.Y0, cfg.CellSize),
		ColStart: floorDiv(c.X0, cfg.CellSize),
		RowSpan:  floorDiv(c.Y1-c.Y0, cfg.CellSize),
		ColSpan:  floorDiv(c.X1-c.X0, cfg.CellSize),
	}
}

// Compute maps every rectangle onto the grid and orders the result by
// row then column. Rectangles sharing a start cell keep their drawing order.
func Compute(rects []Rect, cfg Config) []Placement {
	if len(rects) == 0 || cfg.CellSize <= 0 {
		return nil
	}
	out := make([]Placement, len(rects))
	for i, r := range rects {
		out[i] = Place(r, cfg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RowStart != out[j].RowStart {
			return out[i].RowStart < out[j].RowStart
		}
		return out[i].ColStart < out[j].ColStart
	})
	for i := range out {
		out[i].Index = i + 1
	}
	return out
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

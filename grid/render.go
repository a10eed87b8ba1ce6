package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is the generated figure statement followed by one statement per
// placement.
type Code struct {
	Figure   string
	Subplots []string
}

// Empty reports whether there is nothing beyond the figure statement.
func (c Code) Empty() bool {
	return len(c.Subplots) == 0
}

// Lines returns every statement in output order.
func (c Code) Lines() []string {
	lines := make([]string, 0, len(c.Subplots)+1)
	if c.Figure != "" {
		lines = append(lines, c.Figure)
	}
	return append(lines, c.Subplots...)
}

func (c Code) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Render turns ordered placements into statements.
func Render(cfg Config, placements []Placement) Code {
	code := Code{
		Figure: fmt.Sprintf("fig = plt.figure(figsize=(%s, %s))",
			pyFloat(float64(cfg.Width)/PixelsPerInch),
			pyFloat(float64(cfg.Height)/PixelsPerInch)),
	}
	rows, cols := cfg.Rows(), cfg.Cols()
	for _, p := range placements {
		code.Subplots = append(code.Subplots, fmt.Sprintf(
			"%s = plt.subplot2grid((%d, %d), (%d, %d), rowspan=%d, colspan=%d)",
			p.Name(), rows, cols, p.RowStart, p.ColStart, p.RowSpan, p.ColSpan))
	}
	return code
}

// Generate computes and renders the placements for rects. With no
// rectangles the figure-only code is returned together with
// ErrNothingToGenerate.
func Generate(rects []Rect, cfg Config) (Code, error) {
	if err := cfg.Validate(); err != nil {
		return Code{}, err
	}
	code := Render(cfg, Compute(rects, cfg))
	if code.Empty() {
		return code, ErrNothingToGenerate
	}
	return code, nil
}

// pyFloat formats f the way Python prints a float: integral values keep a
// trailing ".0".
func pyFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

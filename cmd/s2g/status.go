package main

import (
	"fmt"
	"strings"

	"github.com/milk9111/subplot2grid/grid"
)

type messageLevel int

const (
	messageInfo messageLevel = iota
	messageWarning
	messageError
)

const noRectanglesMessage = "No rectangles drawn to generate code."

// generatedMessage summarises a successful generation. Axes narrower or
// shorter than one cell are listed so the user can redraw them.
func generatedMessage(placements []grid.Placement) (messageLevel, string) {
	var degenerate []string
	for _, p := range placements {
		if p.Degenerate() {
			degenerate = append(degenerate, p.Name())
		}
	}
	if len(degenerate) > 0 {
		return messageWarning, fmt.Sprintf("Zero span: %s", strings.Join(degenerate, ", "))
	}
	if len(placements) == 1 {
		return messageInfo, "Generated 1 subplot."
	}
	return messageInfo, fmt.Sprintf("Generated %d subplots.", len(placements))
}

// canvasRect converts a drag between two screen points into sketch
// coordinates relative to the canvas origin.
func canvasRect(originX, originY, x0, y0, x1, y1 int) grid.Rect {
	return grid.Rect{
		X0: x0 - originX,
		Y0: y0 - originY,
		X1: x1 - originX,
		Y1: y1 - originY,
	}
}

// screenSize is the logical window size for a canvas configuration.
func screenSize(cfg grid.Config) (int, int) {
	w := panelWidth + canvasMargin*2 + cfg.Width
	h := max(minScreenHeight, cfg.Height+canvasMargin*2)
	return w, h
}

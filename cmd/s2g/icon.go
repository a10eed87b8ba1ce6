package main

import (
	"image"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

var iconSizes = []int{16, 32, 48}

// windowIcons draws the window icon at each size: a white sheet with a 4x4
// grid and one filled cell block in the middle.
func windowIcons(gridColor, rectColor color.RGBA) []image.Image {
	icons := make([]image.Image, 0, len(iconSizes))
	for _, size := range iconSizes {
		icons = append(icons, drawIcon(float64(size), gridColor, rectColor))
	}
	return icons
}

func drawIcon(size float64, gridColor, rectColor color.RGBA) image.Image {
	c := canvas.New(size, size)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0, 0, canvas.Rectangle(size, size))

	step := size / 4
	ctx.SetFillColor(gridColor)
	for i := 0.0; i <= 4; i++ {
		pos := min(i*step, size-1)
		ctx.DrawPath(pos, 0, canvas.Rectangle(1, size))
		ctx.DrawPath(0, pos, canvas.Rectangle(size, 1))
	}

	ctx.SetFillColor(rectColor)
	ctx.DrawPath(step, step, canvas.Rectangle(2*step, 2*step))
	return rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
}

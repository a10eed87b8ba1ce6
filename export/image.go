package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"strings"
	"sync"

	"github.com/milk9111/subplot2grid/grid"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"golang.org/x/image/font/gofont/goregular"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// The drawing is laid out with one canvas unit per pixel; rasterising at one
// dot per unit keeps the image the same size as the sketch.
var resolution = canvas.DPMM(1.0)

const labelSize = 24.0 // pt, roughly 8px tall at one dot per mm

var (
	axesStroke      = color.RGBA{0x33, 0x33, 0x33, 0xff}
	axesFill        = color.RGBA{0xf2, 0xf5, 0xfa, 0xff}
	degenerateColor = color.RGBA{0xd0, 0x30, 0x30, 0xff}
)

var (
	fontOnce   sync.Once
	fontFamily *canvas.FontFamily
	fontErr    error
)

func labelFont() (*canvas.FontFamily, error) {
	fontOnce.Do(func() {
		family := canvas.NewFontFamily("goregular")
		if err := family.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
			fontErr = fmt.Errorf("export: load font: %w", err)
			return
		}
		fontFamily = family
	})
	return fontFamily, fontErr
}

// Draw builds the grid map: a white figure the size of the sketch with one
// labelled axes box per placement.
func Draw(cfg grid.Config, placements []grid.Placement) (*canvas.Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	family, err := labelFont()
	if err != nil {
		return nil, err
	}
	face := family.Face(labelSize, canvas.Black, canvas.FontRegular, canvas.FontNormal)

	w, h := float64(cfg.Width), float64(cfg.Height)
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0, 0, canvas.Rectangle(w, h))

	cell := float64(cfg.CellSize)
	for _, p := range placements {
		bw := float64(p.ColSpan) * cell
		bh := float64(p.RowSpan) * cell
		x := float64(p.ColStart) * cell
		// canvas y grows upwards; sketch rows grow downwards
		y := h - float64(p.RowStart)*cell - bh

		stroke := axesStroke
		if p.Degenerate() {
			stroke = degenerateColor
			bw = max(bw, 1)
			bh = max(bh, 1)
		}
		ctx.SetFillColor(axesFill)
		ctx.SetStrokeColor(stroke)
		ctx.SetStrokeWidth(1.0)
		ctx.DrawPath(x, y, canvas.Rectangle(bw, bh))

		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawText(x+2, y+2, canvas.NewTextLine(face, p.Name(), canvas.Left))
	}
	return c, nil
}

// Rasterize renders the grid map into an RGBA image the size of the sketch.
func Rasterize(cfg grid.Config, placements []grid.Placement) (*image.RGBA, error) {
	c, err := Draw(cfg, placements)
	if err != nil {
		return nil, err
	}
	return rasterizer.Draw(c, resolution, canvas.DefaultColorSpace), nil
}

// EncodeImage renders the grid map in the given format ("png", "jpg" or
// "jpeg").
func EncodeImage(format string, cfg grid.Config, placements []grid.Placement) ([]byte, error) {
	writer, err := imageWriter(format)
	if err != nil {
		return nil, err
	}
	c, err := Draw(cfg, placements)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writer(&buf, c); err != nil {
		return nil, fmt.Errorf("export: encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// WriteImage saves the grid map. The format follows the extension; a path
// without one is saved as PNG. The final path is returned.
func WriteImage(path string, cfg grid.Config, placements []grid.Placement) (string, error) {
	path, err := normalizePath(path, ".png")
	if err != nil {
		return "", fmt.Errorf("export: write image: %w", err)
	}
	data, err := EncodeImage(strings.TrimPrefix(filepath.Ext(path), "."), cfg, placements)
	if err != nil {
		return "", err
	}
	if err := writeFile(path, data); err != nil {
		return "", fmt.Errorf("export: write image %s: %w", path, err)
	}
	return path, nil
}

func imageWriter(format string) (canvas.Writer, error) {
	switch strings.ToLower(format) {
	case "png":
		return renderers.PNG(resolution), nil
	case "jpg", "jpeg":
		return renderers.JPEG(resolution, &jpeg.Options{Quality: 90}), nil
	default:
		return nil, fmt.Errorf("export: %q: %w", format, ErrUnsupportedFormat)
	}
}

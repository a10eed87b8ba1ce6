package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowIcons(t *testing.T) {
	gridColor := color.RGBA{0xff, 0xaa, 0xaa, 0xff}
	rectColor := color.RGBA{0x00, 0x00, 0xff, 0xff}

	icons := windowIcons(gridColor, rectColor)
	require.Len(t, icons, len(iconSizes))
	for i, icon := range icons {
		size := iconSizes[i]
		b := icon.Bounds()
		assert.Equal(t, size, b.Dx())
		assert.Equal(t, size, b.Dy())

		r, g, bl, _ := icon.At(b.Min.X+size/2, b.Min.Y+size/2).RGBA()
		assert.Greater(t, bl, r, "size %d", size)
		assert.Greater(t, bl, g, "size %d", size)
	}
}

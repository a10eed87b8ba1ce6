package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
}

func TestTextContrast(t *testing.T) {
	cases := []struct {
		name   string
		text   color.Color
		ground color.Color
	}{
		{"panel", panelTextColor, panelBackground},
		{"dialog", dialogTextColor, dialogBackground},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			diff := luminance(c.text) - luminance(c.ground)
			if diff < 0 {
				diff = -diff
			}
			assert.Greater(t, diff, 0.5)
		})
	}
}

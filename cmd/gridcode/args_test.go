package main

import (
	"testing"

	"github.com/milk9111/subplot2grid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{in: "400x300", w: 400, h: 300},
		{in: " 640X480 ", w: 640, h: 480},
		{in: "400", wantErr: true},
		{in: "axb", wantErr: true},
		{in: "400x", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			w, h, err := parseSize(c.in)
			if c.wantErr {
				require.ErrorIs(t, err, errBadArg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.w, w)
			assert.Equal(t, c.h, h)
		})
	}
}

func TestParseRect(t *testing.T) {
	r, err := parseRect("10, 20,-5,40")
	require.NoError(t, err)
	assert.Equal(t, grid.Rect{X0: 10, Y0: 20, X1: -5, Y1: 40}, r)

	for _, bad := range []string{"", "1,2,3", "1,2,3,4,5", "1,2,x,4"} {
		_, err := parseRect(bad)
		assert.ErrorIs(t, err, errBadArg, bad)
	}
}

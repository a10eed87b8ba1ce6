package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	cfg := Config{Width: 400, Height: 400, CellSize: 5}
	rects := []Rect{
		{X0: 0, Y0: 25, X1: 20, Y1: 45},
		{X0: 50, Y0: 25, X1: 0, Y1: 0},
	}
	code := Render(cfg, Compute(rects, cfg))

	want := "fig = plt.figure(figsize=(4.0, 4.0))\n" +
		"ax1 = plt.subplot2grid((80, 80), (0, 0), rowspan=5, colspan=10)\n" +
		"ax2 = plt.subplot2grid((80, 80), (5, 0), rowspan=4, colspan=4)"
	assert.Equal(t, want, code.String())
	assert.False(t, code.Empty())
	assert.Len(t, code.Lines(), 3)
}

func TestRenderFigureSize(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"integral", Config{Width: 400, Height: 300, CellSize: 5}, "fig = plt.figure(figsize=(4.0, 3.0))"},
		{"half", Config{Width: 450, Height: 250, CellSize: 5}, "fig = plt.figure(figsize=(4.5, 2.5))"},
		{"hundredths", Config{Width: 333, Height: 1, CellSize: 1}, "fig = plt.figure(figsize=(3.33, 0.01))"},
		{"large", Config{Width: 1200, Height: 800, CellSize: 20}, "fig = plt.figure(figsize=(12.0, 8.0))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Render(c.cfg, nil).Figure)
		})
	}
}

func TestGenerateEmpty(t *testing.T) {
	cfg := Config{Width: 400, Height: 400, CellSize: 5}
	code, err := Generate(nil, cfg)
	require.ErrorIs(t, err, ErrNothingToGenerate)
	assert.True(t, code.Empty())
	assert.Equal(t, "fig = plt.figure(figsize=(4.0, 4.0))", code.String())
}

func TestGenerateInvalidConfig(t *testing.T) {
	_, err := Generate([]Rect{{X1: 10, Y1: 10}}, Config{Width: 400, Height: 400})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGenerate(t *testing.T) {
	cfg := Config{Width: 200, Height: 100, CellSize: 10}
	code, err := Generate([]Rect{{X0: 100, Y0: 0, X1: 200, Y1: 100}, {X0: 0, Y0: 0, X1: 100, Y1: 100}}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ax1 = plt.subplot2grid((10, 20), (0, 0), rowspan=10, colspan=10)",
		"ax2 = plt.subplot2grid((10, 20), (0, 10), rowspan=10, colspan=10)",
	}, code.Subplots)
}

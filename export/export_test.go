package export

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/subplot2grid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = grid.Config{Width: 200, Height: 100, CellSize: 10}

func testPlacements() []grid.Placement {
	return grid.Compute([]grid.Rect{
		{X0: 0, Y0: 0, X1: 100, Y1: 100},
		{X0: 100, Y0: 0, X1: 200, Y1: 50},
		{X0: 100, Y0: 50, X1: 104, Y1: 100},
	}, testCfg)
}

func TestWriteCode(t *testing.T) {
	code, err := grid.Generate([]grid.Rect{{X1: 100, Y1: 100}}, testCfg)
	require.NoError(t, err)

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"adds_txt", "layout", "layout.txt"},
		{"keeps_extension", "layout.py", "layout.py"},
		{"creates_dirs", filepath.Join("nested", "dir", "layout.txt"), filepath.Join("nested", "dir", "layout.txt")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			got, err := WriteCode(filepath.Join(dir, c.in), code)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, c.want), got)

			data, err := os.ReadFile(got)
			require.NoError(t, err)
			assert.Equal(t, code.String(), string(data))
		})
	}
}

func TestWriteCodeErrors(t *testing.T) {
	_, err := WriteCode("  ", grid.Code{})
	require.ErrorIs(t, err, ErrEmptyPath)

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	_, err = WriteCode(filepath.Join(blocker, "layout.txt"), grid.Code{Figure: "fig"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export: write code")
}

func TestEncodeImage(t *testing.T) {
	for _, format := range []string{"png", "jpg", "JPEG"} {
		t.Run(format, func(t *testing.T) {
			data, err := EncodeImage(format, testCfg, testPlacements())
			require.NoError(t, err)
			img, _, err := image.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.InDelta(t, testCfg.Width, img.Bounds().Dx(), 1)
			assert.InDelta(t, testCfg.Height, img.Bounds().Dy(), 1)
		})
	}
}

func TestEncodeImageUnsupported(t *testing.T) {
	_, err := EncodeImage("gif", testCfg, testPlacements())
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodeImageInvalidConfig(t *testing.T) {
	_, err := EncodeImage("png", grid.Config{Width: 10}, nil)
	require.ErrorIs(t, err, grid.ErrInvalidConfig)
}

func TestWriteImage(t *testing.T) {
	dir := t.TempDir()

	got, err := WriteImage(filepath.Join(dir, "map"), testCfg, testPlacements())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "map.png"), got)
	_, err = os.Stat(got)
	require.NoError(t, err)

	_, err = WriteImage(filepath.Join(dir, "map.bmp"), testCfg, testPlacements())
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = os.Stat(filepath.Join(dir, "map.bmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestRasterizeBackgroundIsWhite(t *testing.T) {
	img, err := Rasterize(testCfg, nil)
	require.NoError(t, err)
	r, g, b, a := img.At(img.Bounds().Dx()/2, img.Bounds().Dy()/2).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

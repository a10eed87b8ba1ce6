package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/subplot2grid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s2g.yaml")
	data := "canvas:\n  width: 600\n  cell_size: 10\noutput_dir: out\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, grid.Config{Width: 600, Height: 400, CellSize: 10}, cfg.Canvas)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "#ffaaaa", cfg.Colors.Grid)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"bad_yaml", "canvas: [", "config: unmarshal"},
		{"zero_cell", "canvas:\n  cell_size: 0\n", "must be positive"},
		{"bad_color", "colors:\n  grid: notacolor\n", "colors.grid"},
		{"empty_color", "colors:\n  rect: \"\"\n", "colors.rect"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "s2g.yaml")
			require.NoError(t, os.WriteFile(path, []byte(c.data), 0o644))
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#ffaa00", color.RGBA{0xff, 0xaa, 0x00, 0xff}},
		{"#FFAAAA", color.RGBA{0xff, 0xaa, 0xaa, 0xff}},
		{"blue", color.RGBA{0x00, 0x00, 0xff, 0xff}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	for _, bad := range []string{"#ffaa0", "#gg0000", "#ff 0a0", "notacolor"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
	_, err := ParseColor("  ")
	assert.ErrorIs(t, err, ErrEmptyColor)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s2g.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: a\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("output_dir: b\n"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	select {
	case got := <-w.Events:
		assert.Equal(t, abs, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for settings file")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "s2g.yaml"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatcherReportsLastWriteOfBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s2g.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: a\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	next := func() {
		t.Helper()
		select {
		case <-w.Events:
		case <-time.After(2 * time.Second):
			t.Fatal("no event for settings file")
		}
	}
	write := func(dirName string) time.Time {
		t.Helper()
		require.NoError(t, os.WriteFile(path, []byte("output_dir: "+dirName+"\n"), 0o644))
		return time.Now()
	}

	write("b")
	time.Sleep(20 * time.Millisecond)
	last := write("c")
	next()
	assert.GreaterOrEqual(t, time.Since(last), debounce)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "c", cfg.OutputDir)

	// A write shortly after a reload is still reported.
	time.Sleep(20 * time.Millisecond)
	write("d")
	next()
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "d", cfg.OutputDir)
}

package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/milk9111/subplot2grid/grid"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the editor looks for settings when no -config flag is
// given.
const DefaultPath = "subplot2grid.yaml"

var ErrEmptyColor = errors.New("empty color")

type Config struct {
	Canvas    grid.Config `yaml:"canvas"`
	OutputDir string      `yaml:"output_dir"`
	Colors    Colors      `yaml:"colors"`
}

// Colors are CSS color strings such as "#ffaaaa" or "blue".
type Colors struct {
	Grid string `yaml:"grid"`
	Rect string `yaml:"rect"`
}

func Default() *Config {
	return &Config{
		Canvas: grid.Config{Width: 400, Height: 400, CellSize: 5},
		Colors: Colors{Grid: "#ffaaaa", Rect: "#0000ff"},
	}
}

// Load reads a settings file on top of the defaults. A missing file is not
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Canvas.Validate(); err != nil {
		return err
	}
	if _, err := ParseColor(c.Colors.Grid); err != nil {
		return fmt.Errorf("colors.grid: %w", err)
	}
	if _, err := ParseColor(c.Colors.Rect); err != nil {
		return fmt.Errorf("colors.rect: %w", err)
	}
	return nil
}

// ParseColor parses a CSS color into an opaque RGBA; any alpha is dropped.
func ParseColor(s string) (color.RGBA, error) {
	if strings.TrimSpace(s) == "" {
		return color.RGBA{}, ErrEmptyColor
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b, _ := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

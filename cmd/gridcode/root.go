package main

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/milk9111/subplot2grid/config"
	"github.com/milk9111/subplot2grid/grid"
	"github.com/spf13/cobra"
)

// sketchFlags are shared by every subcommand that builds a layout.
type sketchFlags struct {
	configPath string
	size       string
	cell       int
	rects      []string
	out        string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gridcode",
		Short:        "Generate matplotlib subplot2grid layouts from rectangles",
		Long:         longRoot,
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(), newImageCmd())
	return root
}

func (f *sketchFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", config.DefaultPath, "settings file supplying canvas defaults")
	flags.StringVar(&f.size, "size", "", "canvas size in pixels as WIDTHxHEIGHT")
	flags.IntVar(&f.cell, "cell", 0, "grid cell size in pixels")
	flags.StringArrayVar(&f.rects, "rect", nil, "rectangle corners as x0,y0,x1,y1 (repeatable)")
	flags.StringVarP(&f.out, "out", "o", "", "output file")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
}

func (f *sketchFlags) logger(cmd *cobra.Command) *log.Logger {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "gridcode"})
	if f.verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// resolve merges the settings file with the flags and parses the rectangles.
func (f *sketchFlags) resolve() (*config.Config, []grid.Rect, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	if f.size != "" {
		w, h, err := parseSize(f.size)
		if err != nil {
			return nil, nil, err
		}
		cfg.Canvas.Width, cfg.Canvas.Height = w, h
	}
	if f.cell != 0 {
		cfg.Canvas.CellSize = f.cell
	}
	if err := cfg.Canvas.Validate(); err != nil {
		return nil, nil, err
	}
	rects := make([]grid.Rect, 0, len(f.rects))
	for _, raw := range f.rects {
		r, err := parseRect(raw)
		if err != nil {
			return nil, nil, err
		}
		rects = append(rects, r)
	}
	return cfg, rects, nil
}

func outputPath(cfg *config.Config, out string) string {
	if cfg.OutputDir == "" || out == "" || filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(cfg.OutputDir, out)
}

var longRoot = `
gridcode maps rectangles drawn on a pixel canvas onto a grid of cells and
prints the matching matplotlib subplot2grid statements.

Examples:
  # Two side-by-side axes on the default 400x400 canvas with 5px cells.
  gridcode generate --rect 0,0,200,400 --rect 200,0,400,400
`

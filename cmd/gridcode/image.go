package main

import (
	"github.com/milk9111/subplot2grid/export"
	"github.com/milk9111/subplot2grid/grid"
	"github.com/spf13/cobra"
)

func newImageCmd() *cobra.Command {
	var f sketchFlags
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Render the grid map of the given rectangles",
		Long:  longImage,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := f.logger(cmd)
			cfg, rects, err := f.resolve()
			if err != nil {
				return err
			}
			out := f.out
			if out == "" {
				out = "grid_map.png"
			}
			path, err := export.WriteImage(outputPath(cfg, out), cfg.Canvas, grid.Compute(rects, cfg.Canvas))
			if err != nil {
				return err
			}
			logger.Info("wrote image", "path", path)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

var longImage = `
Render one labelled box per subplot on a canvas-sized figure. The format
follows the --out extension (png, jpg); PNG when there is none.

Examples:
  gridcode image --rect 0,0,200,400 --rect 200,0,400,400 --out map.png
`

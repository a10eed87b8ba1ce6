package main

import (
	"fmt"

	"github.com/milk9111/subplot2grid/export"
	"github.com/milk9111/subplot2grid/grid"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var f sketchFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print subplot2grid code for the given rectangles",
		Long:  longGenerate,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := f.logger(cmd)
			cfg, rects, err := f.resolve()
			if err != nil {
				return err
			}
			code, err := grid.Generate(rects, cfg.Canvas)
			if err != nil {
				return err
			}
			for _, p := range grid.Compute(rects, cfg.Canvas) {
				if p.Degenerate() {
					logger.Warn("zero span", "axes", p.Name(), "rowspan", p.RowSpan, "colspan", p.ColSpan)
				}
			}
			if f.out == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), code.String())
				return err
			}
			path, err := export.WriteCode(outputPath(cfg, f.out), code)
			if err != nil {
				return err
			}
			logger.Info("wrote code", "path", path, "subplots", len(code.Subplots))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

var longGenerate = `
Print the figure statement and one subplot2grid call per rectangle, ordered by
row then column.

Examples:
  gridcode generate --size 400x400 --cell 5 --rect 0,0,50,25
  gridcode generate --rect 0,0,200,400 --out layout.py
`

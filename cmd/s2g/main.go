// Command s2g is a desktop sketcher for matplotlib subplot2grid layouts: draw
// rectangles on a gridded canvas and get the Python statements that
// reproduce them.
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/subplot2grid/config"
	"golang.design/x/clipboard"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Settings file (YAML); reloaded when it changes")
	width := flag.Int("width", 0, "Canvas width in pixels (overrides the settings file)")
	height := flag.Int("height", 0, "Canvas height in pixels (overrides the settings file)")
	cell := flag.Int("cell", 0, "Grid cell size in pixels (overrides the settings file)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "s2g",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load settings", "err", err)
	}
	if *width > 0 {
		cfg.Canvas.Width = *width
	}
	if *height > 0 {
		cfg.Canvas.Height = *height
	}
	if *cell > 0 {
		cfg.Canvas.CellSize = *cell
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid settings", "err", err)
	}

	fontFace, err := loadFontFace(14)
	if err != nil {
		logger.Fatal("load font", "err", err)
	}

	game := NewGame(logger, cfg, *configPath, fontFace)
	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable", "err", err)
	} else {
		game.clipboardOK = true
	}

	watcher, err := config.NewWatcher(*configPath)
	if err != nil {
		logger.Warn("settings hot reload disabled", "err", err)
	} else {
		defer watcher.Close()
		game.reload = watcher.Events
		go func() {
			for err := range watcher.Errors {
				logger.Warn("settings watcher", "err", err)
			}
		}()
	}

	ebiten.SetWindowTitle("Subplot2Grid")
	gridColor, _ := config.ParseColor(cfg.Colors.Grid)
	rectColor, _ := config.ParseColor(cfg.Colors.Rect)
	ebiten.SetWindowIcon(windowIcons(gridColor, rectColor))
	ebiten.SetWindowSize(screenSize(cfg.Canvas))
	logger.Info("starting", "width", cfg.Canvas.Width, "height", cfg.Canvas.Height, "cell", cfg.Canvas.CellSize)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", "err", err)
	}
}

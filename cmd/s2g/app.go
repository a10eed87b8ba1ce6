package main

import (
	"errors"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/subplot2grid/config"
	"github.com/milk9111/subplot2grid/export"
	"github.com/milk9111/subplot2grid/grid"
	"github.com/milk9111/subplot2grid/sketch"
	"golang.design/x/clipboard"
)

var screenBackground = panelBackground

// Game is the sketcher window: side panel, canvas, dialogs and the path
// prompt.
type Game struct {
	logger *log.Logger
	cfg    *config.Config
	board  *sketch.Board
	canvas *Canvas
	ui     *sketchUI
	prompt *Prompt

	configPath  string
	reload      <-chan string
	clipboardOK bool

	code grid.Code
}

func NewGame(logger *log.Logger, cfg *config.Config, configPath string, fontFace text.Face) *Game {
	board := sketch.NewBoard(cfg.Canvas)
	g := &Game{
		logger:     logger,
		cfg:        cfg,
		board:      board,
		canvas:     NewCanvas(board, cfg.Colors),
		prompt:     NewPrompt(),
		configPath: configPath,
	}
	g.ui = buildUI(fontFace, cfg.Canvas, uiActions{
		ApplyCanvas: g.applyCanvas,
		Generate:    g.generate,
		Reset:       g.reset,
		Preview:     g.showPreview,
		Copy:        g.copyCode,
		SaveCode:    g.promptSaveCode,
		SaveImage:   g.promptSaveImage,
		CloseCode:   g.hideDialogs,
		ClosePrev:   g.hideDialogs,
	})
	g.ui.SetMessage(messageInfo, "Drag to draw. Right-click deletes. Ctrl+Z undoes.")
	return g
}

func (g *Game) Update() error {
	g.pollReload()

	if g.prompt.Update() {
		return nil
	}
	g.ui.UI.Update()

	if g.ui.DialogOpen() {
		g.canvas.CancelDrag()
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.ui.HideDialogs()
		}
		return nil
	}

	// Typing into the size fields must not trigger shortcuts.
	if !g.ui.TextFocused() {
		ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
		if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) {
			if g.board.Undo() {
				g.ui.SetMessage(messageInfo, "Undone.")
			}
		}
		if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyG) {
			g.generate()
		}
	}

	if g.canvas.Update() {
		g.logger.Debug("board changed", "rects", g.board.Len())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(screenBackground)
	g.canvas.Draw(screen)
	g.ui.UI.Draw(screen)
	g.prompt.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize(g.board.Config())
}

func (g *Game) hideDialogs() {
	g.ui.HideDialogs()
}

func (g *Game) applyCanvas(width, height, cell string) {
	cfg, err := grid.ParseConfig(width, height, cell)
	if err != nil {
		g.logger.Warn("rejected canvas settings", "err", err)
		g.ui.SetMessage(messageError, "Invalid canvas settings: values must be positive integers.")
		return
	}
	if err := g.board.Configure(cfg); err != nil {
		g.ui.SetMessage(messageError, err.Error())
		return
	}
	g.canvas.CancelDrag()
	ebiten.SetWindowSize(screenSize(cfg))
	g.logger.Info("canvas updated", "width", cfg.Width, "height", cfg.Height, "cell", cfg.CellSize)
	g.ui.SetMessage(messageInfo, "Canvas updated.")
}

func (g *Game) generate() {
	code, err := g.board.Generate()
	if errors.Is(err, grid.ErrNothingToGenerate) {
		g.ui.SetMessage(messageWarning, noRectanglesMessage)
		return
	}
	if err != nil {
		g.logger.Error("generate failed", "err", err)
		g.ui.SetMessage(messageError, err.Error())
		return
	}
	g.code = code
	level, msg := generatedMessage(g.board.Placements())
	g.ui.SetMessage(level, msg)
	g.ui.ShowCode(code.String())
	g.logger.Debug("generated code", "subplots", len(code.Subplots))
}

func (g *Game) reset() {
	g.board.Reset()
	g.canvas.CancelDrag()
	g.ui.SetMessage(messageInfo, "Canvas cleared.")
}

func (g *Game) showPreview() {
	img, err := export.Rasterize(g.board.Config(), g.board.Placements())
	if err != nil {
		g.logger.Error("render grid map", "err", err)
		g.ui.SetMessage(messageError, err.Error())
		return
	}
	g.ui.ShowPreview(ebiten.NewImageFromImage(img))
}

func (g *Game) copyCode() {
	if !g.clipboardOK {
		g.ui.SetMessage(messageError, "Clipboard is not available.")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.code.String()))
	g.ui.SetMessage(messageInfo, "Code copied to clipboard.")
}

func (g *Game) promptSaveCode() {
	g.prompt.Open("Save code to:", g.outputPath("subplots.txt"), func(path string) {
		saved, err := export.WriteCode(path, g.code)
		if err != nil {
			g.logger.Error("save code", "err", err)
			g.ui.SetMessage(messageError, err.Error())
			return
		}
		g.logger.Info("saved code", "path", saved)
		g.ui.SetMessage(messageInfo, "Saved "+saved)
	})
}

func (g *Game) promptSaveImage() {
	g.prompt.Open("Save image to:", g.outputPath("grid_map.png"), func(path string) {
		saved, err := export.WriteImage(path, g.board.Config(), g.board.Placements())
		if err != nil {
			g.logger.Error("save image", "err", err)
			g.ui.SetMessage(messageError, err.Error())
			return
		}
		g.logger.Info("saved image", "path", saved)
		g.ui.SetMessage(messageInfo, "Saved "+saved)
	})
}

func (g *Game) outputPath(name string) string {
	if g.cfg.OutputDir == "" {
		return name
	}
	return filepath.Join(g.cfg.OutputDir, name)
}

// pollReload applies settings written while the editor runs. Colors and the
// output directory apply at once; a new canvas size only fills the panel
// fields so drawn rectangles are not discarded behind the user's back.
func (g *Game) pollReload() {
	if g.reload == nil {
		return
	}
	select {
	case <-g.reload:
	default:
		return
	}
	cfg, err := config.Load(g.configPath)
	if err != nil {
		g.logger.Warn("config reload failed", "err", err)
		g.ui.SetMessage(messageError, err.Error())
		return
	}
	g.cfg.OutputDir = cfg.OutputDir
	g.cfg.Colors = cfg.Colors
	g.canvas.SetColors(cfg.Colors)
	if cfg.Canvas != g.board.Config() {
		g.cfg.Canvas = cfg.Canvas
		g.ui.SetCanvasFields(cfg.Canvas)
		g.ui.SetMessage(messageInfo, "Settings reloaded. Press Update Canvas to apply the new size.")
	} else {
		g.ui.SetMessage(messageInfo, "Settings reloaded.")
	}
	g.logger.Info("config reloaded", "path", g.configPath)
}

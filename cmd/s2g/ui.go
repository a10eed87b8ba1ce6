package main

import (
	"bytes"
	"image/color"
	"strconv"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/subplot2grid/grid"
	"golang.org/x/image/font/gofont/goregular"
)

const panelWidth = 220

var messageColors = map[messageLevel]color.Color{
	messageInfo:    panelTextColor,
	messageWarning: color.RGBA{255, 200, 80, 255},
	messageError:   color.RGBA{255, 110, 110, 255},
}

// uiActions are the handlers the panel and dialogs call back into.
type uiActions struct {
	ApplyCanvas func(width, height, cell string)
	Generate    func()
	Reset       func()
	Preview     func()
	Copy        func()
	SaveCode    func()
	SaveImage   func()
	CloseCode   func()
	ClosePrev   func()
}

// sketchUI holds the widgets the game updates after construction.
type sketchUI struct {
	UI *ebitenui.UI

	widthInput  *widget.TextInput
	heightInput *widget.TextInput
	cellInput   *widget.TextInput
	message     *widget.Text

	codeOverlay *widget.Container
	codeText    *widget.Text

	previewOverlay *widget.Container
	preview        *widget.Graphic
}

func loadFontFace(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: s, Size: size}, nil
}

func buildUI(fontFace text.Face, cfg grid.Config, actions uiActions) *sketchUI {
	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newSketchTheme(&fontFace)
	theme := ui.PrimaryTheme
	s := &sketchUI{UI: ui}

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 400),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchVertical:    true,
			}),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBackground)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	label := func(txt string) *widget.Label {
		return newLabel(&fontFace, txt, panelTextColor)
	}

	s.widthInput = newTextInput(&fontFace, strconv.Itoa(cfg.Width))
	s.heightInput = newTextInput(&fontFace, strconv.Itoa(cfg.Height))
	s.cellInput = newTextInput(&fontFace, strconv.Itoa(cfg.CellSize))

	panel.AddChild(label("Canvas Width"))
	panel.AddChild(s.widthInput)
	panel.AddChild(label("Canvas Height"))
	panel.AddChild(s.heightInput)
	panel.AddChild(label("Cell Size"))
	panel.AddChild(s.cellInput)
	panel.AddChild(newButton(theme, &fontFace, "Update Canvas", func() {
		actions.ApplyCanvas(s.widthInput.GetText(), s.heightInput.GetText(), s.cellInput.GetText())
	}))
	panel.AddChild(newButton(theme, &fontFace, "Generate Code", actions.Generate))
	panel.AddChild(newButton(theme, &fontFace, "Grid Map Image", actions.Preview))
	panel.AddChild(newButton(theme, &fontFace, "Reset", actions.Reset))

	s.message = widget.NewText(
		widget.TextOpts.Text("", &fontFace, panelTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(panelWidth, 60)),
	)
	panel.AddChild(s.message)

	s.codeOverlay = newModalOverlay()
	codeDialog := newDialog()
	s.codeText = widget.NewText(widget.TextOpts.Text("", &fontFace, dialogTextColor))
	codeDialog.AddChild(newLabel(&fontFace, "Generated Code", dialogTextColor))
	codeDialog.AddChild(s.codeText)
	codeDialog.AddChild(buttonRow(
		newButton(theme, &fontFace, "Copy to Clipboard", actions.Copy),
		newButton(theme, &fontFace, "Save .txt", actions.SaveCode),
		newButton(theme, &fontFace, "Close", actions.CloseCode),
	))
	s.codeOverlay.AddChild(codeDialog)

	s.previewOverlay = newModalOverlay()
	previewDialog := newDialog()
	s.preview = widget.NewGraphic()
	previewDialog.AddChild(s.preview)
	previewDialog.AddChild(buttonRow(
		newButton(theme, &fontFace, "Save Image", actions.SaveImage),
		newButton(theme, &fontFace, "Close", actions.ClosePrev),
	))
	s.previewOverlay.AddChild(previewDialog)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	root.AddChild(s.codeOverlay)
	root.AddChild(s.previewOverlay)
	ui.Container = root
	return s
}

func (s *sketchUI) SetMessage(level messageLevel, msg string) {
	s.message.Label = msg
	s.message.Color = messageColors[level]
}

func (s *sketchUI) SetCanvasFields(cfg grid.Config) {
	s.widthInput.SetText(strconv.Itoa(cfg.Width))
	s.heightInput.SetText(strconv.Itoa(cfg.Height))
	s.cellInput.SetText(strconv.Itoa(cfg.CellSize))
}

func (s *sketchUI) ShowCode(code string) {
	s.codeText.Label = code
	s.codeOverlay.GetWidget().Visibility = widget.Visibility_Show
	s.codeOverlay.RequestRelayout()
}

func (s *sketchUI) ShowPreview(img *ebiten.Image) {
	s.preview.Image = img
	s.previewOverlay.GetWidget().Visibility = widget.Visibility_Show
	s.previewOverlay.RequestRelayout()
}

func (s *sketchUI) HideDialogs() {
	s.codeOverlay.GetWidget().Visibility = widget.Visibility_Hide
	s.previewOverlay.GetWidget().Visibility = widget.Visibility_Hide
}

// DialogOpen reports whether a modal covers the canvas.
func (s *sketchUI) DialogOpen() bool {
	return s.codeOverlay.GetWidget().Visibility == widget.Visibility_Show ||
		s.previewOverlay.GetWidget().Visibility == widget.Visibility_Show
}

// TextFocused reports whether a text input has keyboard focus.
func (s *sketchUI) TextFocused() bool {
	if fw := s.UI.GetFocusedWidget(); fw != nil {
		if _, ok := fw.(*widget.TextInput); ok {
			return true
		}
	}
	return false
}

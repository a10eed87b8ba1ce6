package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Prompt is a one-line modal path input. Enter submits, Escape cancels.
type Prompt struct {
	open     bool
	label    string
	input    string
	onSubmit func(string)
	backdrop *ebiten.Image
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

func (p *Prompt) Open(label, initial string, onSubmit func(string)) {
	p.label = label
	p.input = initial
	p.onSubmit = onSubmit
	p.open = true
}

func (p *Prompt) Close() {
	p.open = false
	p.label = ""
	p.input = ""
	p.onSubmit = nil
}

// Update consumes keyboard input while open and reports whether it did.
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r == '\n' || r == '\r' {
			continue
		}
		p.input += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(p.input) > 0 {
		runes := []rune(p.input)
		p.input = string(runes[:len(runes)-1])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		cur, cb := p.input, p.onSubmit
		p.Close()
		if cb != nil {
			cb(cur)
		}
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Close()
	}
	return true
}

func (p *Prompt) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	if p.backdrop == nil || p.backdrop.Bounds().Dx() != sw {
		p.backdrop = ebiten.NewImage(sw, 48)
		p.backdrop.Fill(color.RGBA{A: 0xcc})
	}
	o := &ebiten.DrawImageOptions{}
	o.GeoM.Translate(0, float64(sh/2-24))
	screen.DrawImage(p.backdrop, o)
	ebitenutil.DebugPrintAt(screen, p.label+" "+p.input+"_", 16, sh/2-8)
}

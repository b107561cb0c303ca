//go:build ebiten

package ui

import (
	"image/color"

	"headerlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Overlay draws a statistics panel on top of the backdrop.
type Overlay struct {
	src     parameterProvider
	visible bool
	panel   *ebiten.Image
	lines   []string
}

// NewOverlay constructs a hidden overlay reading from src.
func NewOverlay(src parameterProvider) *Overlay {
	return &Overlay{src: src}
}

// Toggle flips visibility.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Update handles the visibility key and refreshes the text while visible.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.Toggle()
	}
	if !o.visible {
		return
	}
	o.lines = FormatSnapshot(o.src.Parameters(), "simulation", "layout")
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || len(o.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range o.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	width += 2 * panelPadding
	height := len(o.lines)*lineHeight + 2*panelPadding
	if o.panel == nil || o.panel.Bounds().Dx() != width || o.panel.Bounds().Dy() != height {
		if o.panel != nil {
			o.panel.Dispose()
		}
		o.panel = ebiten.NewImage(width, height)
	}
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, line := range o.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(o.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(o.panel, &ebiten.DrawImageOptions{})
}

const (
	panelPadding = 6
	lineHeight   = 14
)

package render

import (
	"image/color"

	"headerlife/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Terminal treats every character cell of a tcell screen as one pixel.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal wraps an initialised screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Size returns the screen dimensions in character cells.
func (t *Terminal) Size() core.Size {
	w, h := t.screen.Size()
	return core.Size{W: w, H: h}
}

// FillRect sets the background of every character cell in r.
func (t *Terminal) FillRect(r core.Rect, c color.Color) {
	style := tcell.StyleDefault.Background(TerminalColor(c))
	sw, sh := t.screen.Size()
	for y := max(r.Y, 0); y < min(r.Y+r.H, sh); y++ {
		for x := max(r.X, 0); x < min(r.X+r.W, sw); x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Show flushes pending changes to the terminal.
func (t *Terminal) Show() { t.screen.Show() }

// TerminalColor converts c to a 24-bit tcell colour.
func TerminalColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

//go:build ebiten

package render

import (
	"image/color"

	"headerlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is a persistent offscreen ebiten image the backdrop draws into
// incrementally. The host blits it to the screen every frame.
type Canvas struct {
	w, h int
	img  *ebiten.Image
}

// NewCanvas allocates a canvas of w*h pixels.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.SetSize(w, h)
	return c
}

// SetSize reallocates the canvas when the dimensions change. Like an HTML
// canvas, the contents are lost and must be redrawn.
func (c *Canvas) SetSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if c.img != nil && c.w == w && c.h == h {
		return
	}
	if c.img != nil {
		c.img.Dispose()
	}
	c.w, c.h = w, h
	c.img = ebiten.NewImage(w, h)
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() core.Size { return core.Size{W: c.w, H: c.h} }

// FillRect paints an axis-aligned rectangle.
func (c *Canvas) FillRect(r core.Rect, col color.Color) {
	vector.DrawFilledRect(c.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

// Blit draws the canvas at the origin of dst.
func (c *Canvas) Blit(dst *ebiten.Image) {
	dst.DrawImage(c.img, &ebiten.DrawImageOptions{})
}

package render

import (
	"image"
	"image/color"

	"headerlife/internal/core"
)

// ImageSurface is an in-memory RGBA surface, used headless and in tests.
type ImageSurface struct {
	img   *image.RGBA
	fills int
}

// NewImageSurface allocates a w*h surface.
func NewImageSurface(w, h int) *ImageSurface {
	s := &ImageSurface{}
	s.Resize(w, h)
	return s
}

// Resize replaces the backing image, discarding its contents like a canvas
// whose dimensions are reassigned.
func (s *ImageSurface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Size returns the surface dimensions in pixels.
func (s *ImageSurface) Size() core.Size {
	b := s.img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// FillRect paints r with c, clipped to the surface.
func (s *ImageSurface) FillRect(r core.Rect, c color.Color) {
	s.fills++
	fillRectRGBA(s.img, image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H), c)
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Fills returns how many FillRect calls the surface has received.
func (s *ImageSurface) Fills() int { return s.fills }

// CellImage renders row-major 0/1 cells one pixel per cell, for thumbnails.
func CellImage(w, h int, cells []uint8, on, off color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(cells) != w*h {
		return img
	}
	fillBinaryRGBA(img.Pix, cells, on, off)
	return img
}

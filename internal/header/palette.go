package header

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// CellKind classifies a cell for colouring.
type CellKind uint8

const (
	KindDead CellKind = iota
	KindAlive
	KindSpecial
	KindSpecialHover
)

// PaletteConfig describes the colours of a backdrop. Hues are in degrees,
// saturation and lightness in [0,1].
type PaletteConfig struct {
	Background string

	Hue            float64
	Saturation     float64
	BaseLightness  float64
	AccentHue      float64
	AccentSat      float64
	AccentLight    float64
	AccentHoverLit float64
}

// DefaultPaletteConfig returns black cells on white with a blue accent.
func DefaultPaletteConfig() PaletteConfig {
	return PaletteConfig{
		Background:     "#ffffff",
		AccentHue:      200,
		AccentSat:      0.8,
		AccentLight:    0.5,
		AccentHoverLit: 0.35,
	}
}

func (p PaletteConfig) validate() error {
	if _, err := colorful.Hex(p.Background); err != nil {
		return fmt.Errorf("%w: background %q: %v", ErrInvalidConfig, p.Background, err)
	}
	for name, v := range map[string]float64{
		"saturation":             p.Saturation,
		"base lightness":         p.BaseLightness,
		"accent saturation":      p.AccentSat,
		"accent lightness":       p.AccentLight,
		"accent hover lightness": p.AccentHoverLit,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s %g outside [0,1]", ErrInvalidConfig, name, v)
		}
	}
	return nil
}

// Palette maps cell kinds and vertical position to colours.
type Palette struct {
	cfg        PaletteConfig
	fade       bool
	background color.RGBA
	flat       color.RGBA
	accent     color.RGBA
	hover      color.RGBA
}

// NewPalette precomputes the fixed colours of cfg. An unparseable background
// falls back to white.
func NewPalette(cfg PaletteConfig, fade bool) *Palette {
	bg, err := colorful.Hex(cfg.Background)
	if err != nil {
		bg = colorful.Color{R: 1, G: 1, B: 1}
	}
	return &Palette{
		cfg:        cfg,
		fade:       fade,
		background: toRGBA(bg),
		flat:       hsl(cfg.Hue, cfg.Saturation, cfg.BaseLightness),
		accent:     hsl(cfg.AccentHue, cfg.AccentSat, cfg.AccentLight),
		hover:      hsl(cfg.AccentHue, cfg.AccentSat, cfg.AccentHoverLit),
	}
}

// Color returns the fill for a cell of the given kind whose top edge sits at
// pixelY on a surface surfaceH pixels tall. The fade is a function of the
// pixel row only, so every live cell on a row shares a colour.
func (p *Palette) Color(kind CellKind, pixelY, surfaceH int) color.RGBA {
	switch kind {
	case KindAlive:
		if !p.fade {
			return p.flat
		}
		return hsl(p.cfg.Hue, p.cfg.Saturation, p.FadeLightness(pixelY, surfaceH))
	case KindSpecial:
		return p.accent
	case KindSpecialHover:
		return p.hover
	default:
		return p.background
	}
}

// FadeLightness interpolates linearly from the base lightness at y=0 to full
// lightness at the bottom edge.
func (p *Palette) FadeLightness(pixelY, surfaceH int) float64 {
	base := p.cfg.BaseLightness
	if surfaceH <= 0 {
		return base
	}
	t := clamp01(float64(pixelY) / float64(surfaceH))
	return base + (1-base)*t
}

// Background returns the dead-cell colour.
func (p *Palette) Background() color.RGBA { return p.background }

func hsl(h, s, l float64) color.RGBA {
	return toRGBA(colorful.Hsl(h, s, clamp01(l)))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

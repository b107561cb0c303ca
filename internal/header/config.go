package header

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid header config")

// Config controls one backdrop instance.
type Config struct {
	// CellSize and CellBorder are in pixels; a cell occupies CellSize pixels
	// followed by CellBorder pixels of gap.
	CellSize   int
	CellBorder int

	SeedProbability float64
	Seed            int64

	Fade        bool
	Special     bool
	Message     bool
	Interactive bool

	TickInterval time.Duration
	Target       string

	Palette PaletteConfig
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellSize:        5,
		CellBorder:      1,
		SeedProbability: 0.15,
		Seed:            1,
		Fade:            true,
		Interactive:     true,
		TickInterval:    100 * time.Millisecond,
		Palette:         DefaultPaletteConfig(),
	}
}

// Pitch is the distance in pixels between the origins of adjacent cells.
func (c Config) Pitch() int { return c.CellSize + c.CellBorder }

// Validate reports the first setting that cannot produce a working backdrop.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	case c.CellBorder < 0:
		return fmt.Errorf("%w: cell border %d must not be negative", ErrInvalidConfig, c.CellBorder)
	case c.SeedProbability < 0 || c.SeedProbability > 1:
		return fmt.Errorf("%w: seed probability %g outside [0,1]", ErrInvalidConfig, c.SeedProbability)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalidConfig, c.TickInterval)
	case c.Special && c.Target == "":
		return fmt.Errorf("%w: special cell enabled without a target", ErrInvalidConfig)
	}
	return c.Palette.validate()
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.CellBorder, "cell-border", c.CellBorder, "gap between cells in pixels")
	fs.Float64Var(&c.SeedProbability, "density", c.SeedProbability, "probability a seeded cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.BoolVar(&c.Fade, "fade", c.Fade, "fade live cells towards white at the bottom")
	fs.BoolVar(&c.Special, "special", c.Special, "show the clickable special cell")
	fs.BoolVar(&c.Message, "message", c.Message, "seed the grid with the banner message")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "paint live cells under the pointer")
	fs.DurationVar(&c.TickInterval, "interval", c.TickInterval, "time between generations")
	fs.StringVar(&c.Target, "target", c.Target, "page opened when the special cell is clicked")

	p := &c.Palette
	fs.StringVar(&p.Background, "background", p.Background, "background colour as #rrggbb")
	fs.Float64Var(&p.Hue, "hue", p.Hue, "live cell hue in degrees")
	fs.Float64Var(&p.Saturation, "saturation", p.Saturation, "live cell saturation")
	fs.Float64Var(&p.BaseLightness, "fade-base", p.BaseLightness, "live cell lightness at the top edge")
	fs.Float64Var(&p.AccentHue, "accent-hue", p.AccentHue, "special cell hue in degrees")
	fs.Float64Var(&p.AccentSat, "accent-sat", p.AccentSat, "special cell saturation")
	fs.Float64Var(&p.AccentLight, "accent-light", p.AccentLight, "special cell lightness")
	fs.Float64Var(&p.AccentHoverLit, "accent-hover", p.AccentHoverLit, "special cell lightness under the pointer")
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["cell_border"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.CellBorder = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SeedProbability = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	boolKeys := map[string]*bool{
		"fade":        &c.Fade,
		"special":     &c.Special,
		"message":     &c.Message,
		"interactive": &c.Interactive,
	}
	for key, dst := range boolKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseBool(v); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.TickInterval = parsed
		} else if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.TickInterval = time.Duration(ms) * time.Millisecond
		}
	}
	if v, ok := cfg["target"]; ok {
		c.Target = v
	}

	if v, ok := cfg["background"]; ok {
		c.Palette.Background = v
	}
	floatKeys := map[string]*float64{
		"hue":          &c.Palette.Hue,
		"saturation":   &c.Palette.Saturation,
		"fade_base":    &c.Palette.BaseLightness,
		"accent_hue":   &c.Palette.AccentHue,
		"accent_sat":   &c.Palette.AccentSat,
		"accent_light": &c.Palette.AccentLight,
		"accent_hover": &c.Palette.AccentHoverLit,
	}
	for key, dst := range floatKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	return c
}

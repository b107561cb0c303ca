package header

import (
	"errors"
	"flag"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero cell size":      func(c *Config) { c.CellSize = 0 },
		"negative border":     func(c *Config) { c.CellBorder = -1 },
		"probability above 1": func(c *Config) { c.SeedProbability = 1.5 },
		"negative interval":   func(c *Config) { c.TickInterval = -time.Second },
		"special no target":   func(c *Config) { c.Special = true },
		"bad background":      func(c *Config) { c.Palette.Background = "white" },
		"accent lightness":    func(c *Config) { c.Palette.AccentLight = 2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"cell_size":   "8",
		"cell_border": "0",
		"density":     "0.4",
		"fade":        "false",
		"special":     "true",
		"target":      "https://example.com",
		"interval":    "250",
		"seed":        "not-a-number",
	})
	if cfg.CellSize != 8 || cfg.CellBorder != 0 || cfg.Pitch() != 8 {
		t.Fatalf("unexpected layout %+v", cfg)
	}
	if cfg.SeedProbability != 0.4 {
		t.Fatalf("density=%g, expected 0.4", cfg.SeedProbability)
	}
	if cfg.Fade || !cfg.Special || cfg.Target != "https://example.com" {
		t.Fatalf("unexpected feature flags %+v", cfg)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Fatalf("interval=%v, expected 250ms", cfg.TickInterval)
	}
	if cfg.Seed != DefaultConfig().Seed {
		t.Fatalf("unparseable seed should keep default, got %d", cfg.Seed)
	}

	if got := FromMap(map[string]string{"interval": "2s"}); got.TickInterval != 2*time.Second {
		t.Fatalf("interval=%v, expected 2s", got.TickInterval)
	}
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestBind(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-cell-size", "3", "-special", "-target", "/about", "-interval", "50ms"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.CellSize != 3 || !cfg.Special || cfg.Target != "/about" || cfg.TickInterval != 50*time.Millisecond {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestPaletteSettings(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{
		"-background", "#102030", "-hue", "120", "-saturation", "0.5", "-fade-base", "0.2",
		"-accent-hue", "10", "-accent-sat", "0.9", "-accent-light", "0.6", "-accent-hover", "0.3",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := PaletteConfig{
		Background: "#102030", Hue: 120, Saturation: 0.5, BaseLightness: 0.2,
		AccentHue: 10, AccentSat: 0.9, AccentLight: 0.6, AccentHoverLit: 0.3,
	}
	if cfg.Palette != want {
		t.Fatalf("palette flags=%+v, expected %+v", cfg.Palette, want)
	}

	fromMap := FromMap(map[string]string{
		"background": "#102030", "hue": "120", "saturation": "0.5", "fade_base": "0.2",
		"accent_hue": "10", "accent_sat": "0.9", "accent_light": "0.6", "accent_hover": "0.3",
	})
	if fromMap.Palette != want {
		t.Fatalf("palette keys=%+v, expected %+v", fromMap.Palette, want)
	}
	if err := fromMap.Validate(); err != nil {
		t.Fatalf("palette from map invalid: %v", err)
	}

	bad := FromMap(map[string]string{"fade_base": "1.5", "accent_hue": "x"})
	if bad.Palette.AccentHue != DefaultPaletteConfig().AccentHue {
		t.Fatal("unparseable accent hue should keep default")
	}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("fade base out of range should fail validation, got %v", err)
	}
}

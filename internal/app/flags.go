package app

import (
	"flag"

	"headerlife/internal/header"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Header  header.Config
	Width   int
	Height  int
	TPS     int
	Overlay bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Header: header.DefaultConfig(), Width: 960, Height: 180, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Header.Bind(fs)
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames polled per second")
	fs.BoolVar(&c.Overlay, "overlay", c.Overlay, "show the statistics overlay at start")
}

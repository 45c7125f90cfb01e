package app

import "github.com/spf13/pflag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Width     int
	Height    int
	TPS       int
	Delta     float64
	LineWidth float64
	FlipY     bool
	MaxSteps  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 640, Height: 640, TPS: 10, Delta: 0.05, LineWidth: 1, FlipY: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "window-width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "window-height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Float64Var(&c.Delta, "delta", c.Delta, "time units per step")
	fs.Float64Var(&c.LineWidth, "line-width", c.LineWidth, "edge stroke width in pixels")
	fs.BoolVar(&c.FlipY, "flip-y", c.FlipY, "draw leaf space with y pointing up")
	fs.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "pause after this many steps (0 runs forever)")
}

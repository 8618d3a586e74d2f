package app

import (
	"flag"
	"time"

	"lifeviewer/internal/control"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows    int
	Cols    int
	TPS     int
	Speed   int
	Seed    int64
	Density float64
	Verbose bool
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{Rows: 80, Cols: 100, TPS: 60, Speed: 0, Seed: 42, Density: 0.25}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.TPS, "tps", c.TPS, "update ticks per second; bounds the fastest generation rate")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial speed slider value (0 slowest, 100 fastest)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the editor's random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for the random fill")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log mode changes and ignored commands")
}

// Control converts the flags into a controller configuration.
func (c *Config) Control() control.Config {
	return control.Config{
		Rows:    c.Rows,
		Cols:    c.Cols,
		Speed:   c.Speed,
		Seed:    c.Seed,
		Density: c.Density,
		Now:     time.Now,
	}
}

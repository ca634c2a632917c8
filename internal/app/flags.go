package app

import (
	"flag"
	"time"

	"github.com/pkg/errors"

	"gridlife/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Cols     int
	Rows     int
	CellSize int
	TPS      int
	Tick     time.Duration
	Seed     int64
	Density  float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Cols:     100,
		Rows:     100,
		CellSize: 8,
		TPS:      60,
		Tick:     core.DefaultTickInterval,
		Seed:     42,
		Density:  0.15,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "game loop ticks per second")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "interval between applied generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random board fills")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell density for random fills")
}

// Validate reports configuration values the game cannot run with.
func (c *Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return errors.Errorf("grid must have positive dimensions, got %dx%d", c.Cols, c.Rows)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density must be in [0,1], got %g", c.Density)
	}
	return nil
}

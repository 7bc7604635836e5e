package app

import (
	"flag"
	"time"
)

// Config holds the command-line parameters for the application.
type Config struct {
	CellSize     int
	TickInterval time.Duration
	FillChance   float64
	Seed         int64
	WindowW      int
	WindowH      int
}

// NewConfig returns a Config populated with the standard defaults.
func NewConfig() *Config {
	return &Config{
		CellSize:     20,
		TickInterval: 100 * time.Millisecond,
		FillChance:   0.25,
		WindowW:      960,
		WindowH:      640,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "interval between generations while running")
	fs.Float64Var(&c.FillChance, "fill", c.FillChance, "live probability when seeding an empty board")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 derives one from the clock)")
	fs.IntVar(&c.WindowW, "width", c.WindowW, "initial window width")
	fs.IntVar(&c.WindowH, "height", c.WindowH, "initial window height")
}

// gridDims converts a viewport size to board dimensions, one cell per
// cellSize pixels, rounded up so the board always covers the viewport.
func gridDims(width, height, cellSize int) (rows, cols int) {
	if cellSize <= 0 {
		cellSize = 20
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	rows = (height + cellSize - 1) / cellSize
	cols = (width + cellSize - 1) / cellSize
	return rows, cols
}

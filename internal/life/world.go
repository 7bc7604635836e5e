package life

import (
	"math/rand/v2"

	"lifepad/internal/core"
)

// DefaultFillChance is the live probability used when Start seeds an
// entirely dead board.
const DefaultFillChance = 0.25

// World owns the current generation and the run state behind the
// interactive controls. All methods must be called from a single
// goroutine; the app drives them from the game loop.
type World struct {
	grid    *core.Grid
	running bool
	fill    float64
	rng     *rand.Rand
}

// NewWorld allocates an empty, paused world with the given dimensions.
func NewWorld(rows, cols int, seed int64) *World {
	return &World{
		grid: core.NewGrid(rows, cols),
		fill: DefaultFillChance,
		rng:  core.NewRNG(seed),
	}
}

// SetFillChance overrides the live probability used for auto-seeding,
// clamped to [0, 1].
func (w *World) SetFillChance(chance float64) {
	if chance < 0 {
		chance = 0
	}
	if chance > 1 {
		chance = 1
	}
	w.fill = chance
}

// Grid returns the current generation.
func (w *World) Grid() *core.Grid { return w.grid }

// Running reports whether the stepping loop is active.
func (w *World) Running() bool { return w.running }

// Start begins the stepping loop. An entirely dead board is seeded
// randomly first, so starting always produces visible activity; a board
// with live cells is kept as painted.
func (w *World) Start() {
	if w.grid.IsEmpty() {
		core.FillSparse(w.rng, w.grid.Cells(), w.fill)
	}
	w.running = true
}

// Pause halts the stepping loop, keeping the board as-is.
func (w *World) Pause() { w.running = false }

// ToggleRun flips between running and paused.
func (w *World) ToggleRun() {
	if w.running {
		w.Pause()
		return
	}
	w.Start()
}

// Tick advances one generation while running. Called once per interval
// boundary by the stepping loop.
func (w *World) Tick() {
	if !w.running {
		return
	}
	w.grid = Next(w.grid)
}

// StepOnce advances a single generation while paused. It is rejected
// while running so manual steps cannot interleave with the loop.
func (w *World) StepOnce() {
	if w.running {
		return
	}
	w.grid = Next(w.grid)
}

// Clear stops the loop and replaces the board with an empty one of the
// same dimensions.
func (w *World) Clear() {
	w.running = false
	w.grid = core.NewGrid(w.grid.Rows, w.grid.Cols)
}

// Resize stops the loop and replaces the board with an empty one of the
// new dimensions. The prior pattern is discarded, even when the
// dimensions are unchanged; callers decide when a viewport change is
// real enough to warrant the reset.
func (w *World) Resize(rows, cols int) {
	w.running = false
	w.grid = core.NewGrid(rows, cols)
}

// Paint sets the cell at (row, col) alive. Already-alive cells and
// out-of-range coordinates are no-ops, and painting is allowed while
// running; the next tick simply picks the change up.
func (w *World) Paint(row, col int) {
	if !w.grid.In(row, col) {
		return
	}
	w.grid.Set(row, col, true)
}

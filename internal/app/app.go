//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"lifepad/internal/core"
	"lifepad/internal/life"
	"lifepad/internal/render"
	"lifepad/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// paintState tracks the drag-painting gesture.
type paintState int

const (
	paintIdle paintState = iota
	paintActive
)

// Game adapts the life session to the ebiten.Game interface.
type Game struct {
	world   *life.World
	clock   *core.StepClock
	painter *render.GridPainter
	bar     *ui.ControlBar

	cfg *Config

	aliveColor color.RGBA
	deadColor  color.RGBA

	screenW int
	screenH int

	painting   paintState
	wasRunning bool
	showStats  bool
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) *Game {
	rows, cols := gridDims(cfg.WindowW, cfg.WindowH, cfg.CellSize)
	world := life.NewWorld(rows, cols, cfg.Seed)
	world.SetFillChance(cfg.FillChance)
	g := &Game{
		world:      world,
		clock:      core.NewStepClock(cfg.TickInterval),
		painter:    render.NewGridPainter(rows, cols),
		cfg:        cfg,
		aliveColor: color.RGBA{R: 235, G: 235, B: 245, A: 255},
		deadColor:  color.RGBA{R: 24, G: 26, B: 32, A: 255},
		screenW:    cfg.WindowW,
		screenH:    cfg.WindowH,
	}
	g.bar = ui.NewControlBar(world)
	return g
}

// Update handles input and advances the simulation on tick boundaries.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.ToggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.world.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showStats = !g.showStats
	}

	consumed := g.bar.Update(g.screenW, g.screenH)
	g.updatePainting(consumed)

	if running := g.world.Running(); running != g.wasRunning {
		g.clock.Reset()
		g.wasRunning = running
	}
	if g.world.Running() && g.clock.ShouldStep() {
		g.world.Tick()
	}
	return nil
}

// updatePainting runs the drag-paint state machine. Pressing the left
// button over a cell paints it and begins a stroke; every cell the
// cursor covers while the stroke lasts is painted too. Releasing the
// button or leaving the paint surface ends the stroke.
func (g *Game) updatePainting(clickConsumed bool) {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.painting = paintIdle
	}
	mx, my := ebiten.CursorPosition()
	if !g.onPaintSurface(mx, my) {
		g.painting = paintIdle
		return
	}
	if !clickConsumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.painting = paintActive
	}
	if g.painting != paintActive {
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.painting = paintIdle
		return
	}
	g.world.Paint(my/g.cfg.CellSize, mx/g.cfg.CellSize)
}

// onPaintSurface reports whether the cursor is over the board and not
// over the control bar.
func (g *Game) onPaintSurface(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.screenW && y < g.screenH-ui.BarHeight
}

// Draw renders the board and the control bar.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.deadColor)
	g.painter.Blit(screen, g.world.Grid().Cells(), g.aliveColor, g.deadColor, g.cfg.CellSize)
	g.bar.Draw(screen)
	if g.showStats {
		grid := g.world.Grid()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%dx%d cells  running=%v  fps=%.0f",
			grid.Rows, grid.Cols, g.world.Running(), ebiten.ActualFPS()))
	}
}

// Layout tracks the window size one-to-one. A size change reallocates
// the board, which discards the pattern and stops the simulation.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		rows, cols := gridDims(outsideWidth, outsideHeight, g.cfg.CellSize)
		g.world.Resize(rows, cols)
		if pr, pc := g.painter.Size(); pr != rows || pc != cols {
			g.painter = render.NewGridPainter(rows, cols)
		}
	}
	// ebiten insists on a positive logical screen even when the board
	// degenerates to zero cells.
	w, h := outsideWidth, outsideHeight
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

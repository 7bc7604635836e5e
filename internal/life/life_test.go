package life

import (
	"testing"

	"lifepad/internal/core"
)

func TestNextPreservesDimensions(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 3}, {4, 7}, {0, 0}, {0, 5}} {
		g := core.NewGrid(dims[0], dims[1])
		out := Next(g)
		if out.Rows != g.Rows || out.Cols != g.Cols {
			t.Errorf("Next changed dims from %dx%d to %dx%d", g.Rows, g.Cols, out.Rows, out.Cols)
		}
	}
}

func TestRuleTable(t *testing.T) {
	// Center of a 5x5 board with its ring of 8 neighbors; the board is
	// large enough that wrapping cannot count a neighbor twice.
	ring := [8][2]int{
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 3},
		{3, 1}, {3, 2}, {3, 3},
	}
	for _, alive := range []bool{false, true} {
		for n := 0; n <= 8; n++ {
			g := core.NewGrid(5, 5)
			g.Set(2, 2, alive)
			for i := 0; i < n; i++ {
				g.Set(ring[i][0], ring[i][1], true)
			}
			if got := NeighborCount(g, 2, 2); got != n {
				t.Fatalf("NeighborCount = %d, want %d", got, n)
			}
			want := n == 3 || (alive && n == 2)
			if got := Next(g).Alive(2, 2); got != want {
				t.Errorf("alive=%v neighbors=%d: next alive = %v, want %v", alive, n, got, want)
			}
		}
	}
}

func TestNeighborCountWrapsAroundEdges(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(0, 0, true)

	// The live corner is a diagonal neighbor of the opposite corner and a
	// wrapped neighbor of every edge-adjacent cell.
	for _, probe := range [][2]int{{2, 2}, {0, 2}, {2, 0}, {1, 1}, {0, 1}, {1, 0}} {
		if got := NeighborCount(g, probe[0], probe[1]); got != 1 {
			t.Errorf("NeighborCount(%d, %d) = %d, want 1", probe[0], probe[1], got)
		}
	}
	if got := NeighborCount(g, 0, 0); got != 0 {
		t.Errorf("NeighborCount at the live cell itself = %d, want 0", got)
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(1, 1, true)
	if !Next(g).IsEmpty() {
		t.Fatal("a cell with no live neighbors must die leaving an empty board")
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g := core.NewGrid(3, 3)
	for _, c := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		g.Set(c[0], c[1], true)
	}
	out := Next(g)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if out.Alive(row, col) != g.Alive(row, col) {
				t.Errorf("cell (%d, %d) changed: alive=%v, want %v",
					row, col, out.Alive(row, col), g.Alive(row, col))
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	g.Set(3, 2, true)

	expect := func(out *core.Grid, live map[[2]int]bool, phase string) {
		t.Helper()
		for row := 0; row < 5; row++ {
			for col := 0; col < 5; col++ {
				alive := out.Alive(row, col)
				if alive != live[[2]int{row, col}] {
					t.Fatalf("%s: cell (%d, %d) alive=%v, expected %v",
						phase, row, col, alive, !alive)
				}
			}
		}
	}

	out := Next(g)
	expect(out, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "first step")

	out = Next(out)
	expect(out, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "second step")
}

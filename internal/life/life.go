// Package life implements Conway's Game of Life on a toroidal board plus
// the interactive session state driving it.
package life

import "lifepad/internal/core"

// NeighborCount returns how many of the 8 toroidal neighbors of
// (row, col) are alive.
func NeighborCount(g *core.Grid, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := g.Wrap(row+dr, col+dc)
			if g.Alive(nr, nc) {
				count++
			}
		}
	}
	return count
}

// Next computes the successor generation under the B3/S23 rule. The input
// grid is only read; the result is a freshly allocated grid with the same
// dimensions.
func Next(g *core.Grid) *core.Grid {
	out := core.NewGrid(g.Rows, g.Cols)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			n := NeighborCount(g, row, col)
			if g.Alive(row, col) {
				out.Set(row, col, n == 2 || n == 3)
			} else {
				out.Set(row, col, n == 3)
			}
		}
	}
	return out
}

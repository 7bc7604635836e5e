package core

// Grid stores one generation of the board as row-major cell bytes. A cell
// is alive when its value is nonzero. Either dimension may be zero, in
// which case the grid holds no cells at all.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Wrap applies toroidal wrapping to the provided coordinates. Both
// dimensions must be nonzero.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// In reports whether (row, col) lies inside the grid without wrapping.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) bool { return g.data[g.Index(row, col)] != 0 }

// Set assigns the liveness of the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) {
	if alive {
		g.data[g.Index(row, col)] = 1
		return
	}
	g.data[g.Index(row, col)] = 0
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// IsEmpty reports whether every cell is dead.
func (g *Grid) IsEmpty() bool {
	for _, c := range g.data {
		if c != 0 {
			return false
		}
	}
	return true
}

//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter caches an offscreen image holding one pixel per cell and
// blits it scaled up to the configured cell size.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols board. A board
// with no cells yields a painter that draws nothing.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols}
	if rows > 0 && cols > 0 {
		gp.buf = make([]byte, 4*rows*cols)
		gp.img = ebiten.NewImage(cols, rows)
	}
	return gp
}

// Size returns the board dimensions the painter was allocated for.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }

// Blit uploads the cells into the cached image and draws it onto dst so
// that each cell covers cellSize pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, alive, dead color.RGBA, cellSize int) {
	if gp.img == nil || len(cells) != gp.rows*gp.cols {
		return
	}
	fillBinaryRGBA(gp.buf, cells, alive, dead)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}

package render

import "image/color"

// fillBinaryRGBA expands cell data (0 dead, nonzero alive) into RGBA
// pixels in buf, which must hold 4 bytes per cell.
func fillBinaryRGBA(buf []byte, cells []uint8, alive, dead color.RGBA) {
	for i, c := range cells {
		px := dead
		if c != 0 {
			px = alive
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

package render

import "image/color"

// fillGridRGBA converts row-major cell states into RGBA pixels in buf. alive
// holds the per-cell color used when a cell is live.
func fillGridRGBA(buf []byte, cells []bool, alive []color.RGBA, dead color.RGBA) {
	for i, c := range cells {
		base := i * 4
		col := dead
		if c {
			col = alive[i]
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

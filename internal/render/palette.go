package render

import (
	"fmt"
	"image/color"
)

// Palette colors live cells by position: one gradient runs down the rows,
// another across the columns, and the two are combined with a per-channel
// lighten blend. Dead cells use Dead.
type Palette struct {
	RowFrom, RowTo color.RGBA
	ColFrom, ColTo color.RGBA
	Dead           color.RGBA
}

// DefaultPalette returns the teal-to-pink scheme used by the board.
func DefaultPalette() Palette {
	return Palette{
		RowFrom: hexRGBA(0x1cddd4),
		RowTo:   hexRGBA(0xd563a1),
		ColFrom: hexRGBA(0x1cddd4),
		ColTo:   hexRGBA(0x45abc3),
		Dead:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// CellColor returns the color of a live cell at (i, k) on a rows×cols board.
func (p Palette) CellColor(i, k, rows, cols int) color.RGBA {
	var ti, tk float64
	if rows > 0 {
		ti = float64(i) / float64(rows)
	}
	if cols > 0 {
		tk = float64(k) / float64(cols)
	}
	return lighten(lerp(p.RowFrom, p.RowTo, ti), lerp(p.ColFrom, p.ColTo, tk))
}

// AliveColors precomputes CellColor for every cell in row-major order.
func (p Palette) AliveColors(rows, cols int) []color.RGBA {
	out := make([]color.RGBA, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			out = append(out, p.CellColor(i, k, rows, cols))
		}
	}
	return out
}

func hexRGBA(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func hexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func lighten(a, b color.RGBA) color.RGBA {
	return color.RGBA{R: max(a.R, b.R), G: max(a.G, b.G), B: max(a.B, b.B), A: max(a.A, b.A)}
}

//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a one-pixel-per-cell image of the board and draws it
// scaled onto the screen.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
	alive      []color.RGBA
	dead       color.RGBA
}

// NewGridPainter allocates a painter for a rows×cols board.
func NewGridPainter(rows, cols int, p Palette) *GridPainter {
	return &GridPainter{
		rows:  rows,
		cols:  cols,
		img:   ebiten.NewImage(cols, rows),
		buf:   make([]byte, 4*rows*cols),
		alive: p.AliveColors(rows, cols),
		dead:  p.Dead,
	}
}

// Blit uploads g into the painter image and draws it at (x, y) with each
// cell cell pixels wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, x, y, cell int) {
	if g.Rows() != gp.rows || g.Cols() != gp.cols {
		return
	}
	fillGridRGBA(gp.buf, g.Cells(), gp.alive, gp.dead)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cell), float64(cell))
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gp.img, op)
}

// Size returns the board dimensions the painter was built for.
func (gp *GridPainter) Size() (int, int) { return gp.rows, gp.cols }

package render

import (
	"io"

	"lifegrid/pkg/life"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
)

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG draws g as an SVG document with square cells of cellSize pixels.
func WriteSVG(w io.Writer, g *life.Grid, p Palette, cellSize int) error {
	if cellSize <= 0 {
		cellSize = 1
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	width, height := g.Cols()*cellSize, g.Rows()*cellSize
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+hexString(p.Dead))
	for i := 0; i < g.Rows(); i++ {
		for k := 0; k < g.Cols(); k++ {
			if !g.Alive(i, k) {
				continue
			}
			canvas.Rect(k*cellSize, i*cellSize, cellSize, cellSize, "fill:"+hexString(p.CellColor(i, k, g.Rows(), g.Cols())))
		}
	}
	canvas.End()
	if ew.err != nil {
		return errors.Wrap(ew.err, "[WriteSVG] failed to write board")
	}
	return nil
}

package app

import (
	"os"

	"lifegrid/internal/render"
	"lifegrid/internal/stats"
	"lifegrid/pkg/life"

	"github.com/pkg/errors"
)

// SaveChart writes the population chart for samples to a PNG file.
func SaveChart(filename string, samples []stats.Sample) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[SaveChart] failed to create file: %+v", filename)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[SaveChart] failed to close file: %+v", filename)
		}
	}()
	return stats.RenderChart(f, samples)
}

// SaveSVG writes g as an SVG file with cellSize pixel cells.
func SaveSVG(filename string, g *life.Grid, cellSize int) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[SaveSVG] failed to create file: %+v", filename)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[SaveSVG] failed to close file: %+v", filename)
		}
	}()
	return render.WriteSVG(f, g, render.DefaultPalette(), cellSize)
}

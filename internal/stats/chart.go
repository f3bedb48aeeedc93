package stats

import (
	"io"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewSamples is returned when a chart would have no extent.
var ErrTooFewSamples = errors.New("at least two generations are needed to draw a chart")

var populationStroke = drawing.Color{R: 0x1c, G: 0xdd, B: 0xd4, A: 255}

// RenderChart writes a PNG line chart of population over generations.
func RenderChart(w io.Writer, samples []Sample) error {
	if len(samples) < 2 || samples[0].Generation == samples[len(samples)-1].Generation {
		return ErrTooFewSamples
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	peak := 1.0
	for i, s := range samples {
		xs[i] = float64(s.Generation)
		ys[i] = float64(s.Population)
		if ys[i] > peak {
			peak = ys[i]
		}
	}

	graph := chart.Chart{
		Title:  "Population",
		Width:  960,
		Height: 480,
		XAxis: chart.XAxis{
			Name:  "Generation",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: xs[0], Max: xs[len(xs)-1]},
		},
		YAxis: chart.YAxis{
			Name:  "Live cells",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: peak * 1.1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "population",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: populationStroke, StrokeWidth: 2.0},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "[RenderChart] failed to render population chart")
	}
	return nil
}

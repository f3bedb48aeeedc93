package session

import (
	"strconv"
	"time"

	"lifegrid/internal/core"
)

const (
	paramDensity  = "density"
	paramInterval = "interval_ms"

	minIntervalMS = 10
	maxIntervalMS = 2000
)

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	state := "stopped"
	if s.running {
		state = "running"
	}
	period := "-"
	if s.period > 0 {
		period = strconv.Itoa(s.period)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", s.size.Rows),
				core.IntParam("cols", "Cols", s.size.Cols),
				core.StringParam("pattern", "Pattern", s.cfg.Pattern),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.StringParam("state", "State", state),
				core.IntParam("generation", "Generation", s.generation),
				core.IntParam("population", "Population", s.Population()),
				core.StringParam("period", "Period", period),
			},
		},
		{
			Name: "Tuning",
			Params: []core.Parameter{
				core.FloatParam(paramDensity, "Density", s.cfg.Density),
				core.IntParam(paramInterval, "Interval ms", int(s.Interval()/time.Millisecond)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramDensity, Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: paramInterval, Label: "Interval ms", Type: core.ParamTypeInt, Step: 50, Min: minIntervalMS, Max: maxIntervalMS, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter by key.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != paramInterval || value < minIntervalMS || value > maxIntervalMS {
		return false
	}
	s.timer.SetInterval(time.Duration(value) * time.Millisecond)
	s.cfg.Interval = s.timer.Interval()
	return true
}

// SetFloatParameter updates a floating point parameter by key. Density takes
// effect on the next Randomize.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != paramDensity || value < 0 || value > 1 {
		return false
	}
	s.cfg.Density = value
	return true
}

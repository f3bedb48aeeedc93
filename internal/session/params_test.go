package session

import (
	"testing"
	"time"
)

func TestParameterSetters(t *testing.T) {
	s := newTestSession(t, "clear")

	if !s.SetIntParameter("interval_ms", 500) {
		t.Fatal("interval update rejected")
	}
	if s.Interval() != 500*time.Millisecond {
		t.Fatalf("interval %v", s.Interval())
	}
	if s.SetIntParameter("interval_ms", 0) || s.SetIntParameter("rows", 10) {
		t.Fatal("invalid int updates must be rejected")
	}

	if !s.SetFloatParameter("density", 0.25) || s.Density() != 0.25 {
		t.Fatal("density update failed")
	}
	if s.SetFloatParameter("density", 1.5) {
		t.Fatal("density above 1 accepted")
	}
}

func TestParametersSnapshot(t *testing.T) {
	s := newTestSession(t, "blinker")
	s.Start()
	snap := s.Parameters()

	for key, want := range map[string]string{
		"rows":        "5",
		"pattern":     "blinker",
		"state":       "running",
		"generation":  "0",
		"population":  "3",
		"interval_ms": "3600000",
		"period":      "-",
	} {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("%s = %q, expected %q", key, p.Value, want)
		}
	}

	controls := s.ParameterControls()
	if len(controls) != 2 {
		t.Fatalf("controls %+v", controls)
	}
	for _, c := range controls {
		if _, ok := snap.Lookup(c.Key); !ok {
			t.Fatalf("control %q has no parameter", c.Key)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"rows":        "12",
		"cols":        "-3",
		"density":     "0.3",
		"interval_ms": "150",
		"seed":        "7",
		"pattern":     "glider",
	})
	if c.Rows != 12 || c.Cols != 80 || c.Density != 0.3 || c.Interval != 150*time.Millisecond || c.Seed != 7 || c.Pattern != "glider" {
		t.Fatalf("unexpected config %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should return defaults")
	}
}

package session

import (
	"testing"
	"time"

	"lifegrid/internal/core"
	"lifegrid/pkg/life"
)

func newTestSession(t *testing.T, pattern string) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Rows = 5
	cfg.Cols = 5
	cfg.Interval = time.Hour
	cfg.Pattern = pattern
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Rows != 80 || cfg.Cols != 80 || cfg.Density != 0.1 || cfg.Interval != 200*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	s, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Size() != (core.Size{Rows: 80, Cols: 80}) {
		t.Fatalf("zero config size %+v", s.Size())
	}
	if s.Running() {
		t.Fatal("session must start stopped")
	}
}

func TestUnknownPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "spaceship-9000"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}

func TestTickOnlyWhileRunning(t *testing.T) {
	s := newTestSession(t, "blinker")
	start := s.Grid()

	if s.Tick() {
		t.Fatal("Tick stepped while stopped")
	}
	s.Start()
	if !s.Tick() {
		t.Fatal("first Tick after Start should step")
	}
	if s.Tick() {
		t.Fatal("Tick stepped before the interval elapsed")
	}
	if s.Generation() != 1 {
		t.Fatalf("generation %d, expected 1", s.Generation())
	}
	if s.Grid().Equal(start) {
		t.Fatal("blinker should have flipped")
	}

	s.ToggleRunning()
	if s.Running() {
		t.Fatal("ToggleRunning should stop a running session")
	}
}

func TestStepOnceWhileStopped(t *testing.T) {
	s := newTestSession(t, "blinker")
	s.StepOnce()
	s.StepOnce()
	if s.Generation() != 2 {
		t.Fatalf("generation %d", s.Generation())
	}
	if s.Period() != 2 {
		t.Fatalf("period %d, expected 2", s.Period())
	}
	if len(s.History()) != 3 {
		t.Fatalf("history %d samples, expected 3", len(s.History()))
	}
}

func TestToggleCellCopiesOnWrite(t *testing.T) {
	s := newTestSession(t, "clear")
	before := s.Grid()
	snapshot := before.Clone()

	if !s.ToggleCell(1, 3) {
		t.Fatal("ToggleCell rejected an on-board cell")
	}
	if !before.Equal(snapshot) {
		t.Fatal("ToggleCell mutated a previously returned grid")
	}
	if !s.Grid().Alive(1, 3) {
		t.Fatal("cell not toggled")
	}
	if s.ToggleCell(5, 0) || s.ToggleCell(-1, 2) {
		t.Fatal("off-board toggles must be rejected")
	}
}

func TestPaintCell(t *testing.T) {
	s := newTestSession(t, "clear")
	if !s.PaintCell(2, 2, true) {
		t.Fatal("expected change")
	}
	g := s.Grid()
	if s.PaintCell(2, 2, true) {
		t.Fatal("painting an alive cell alive must be a no-op")
	}
	if s.Grid() != g {
		t.Fatal("no-op paint replaced the grid")
	}
}

func TestRandomizeAndClear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 40, 40
	cfg.Density = 0.5
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.StepOnce()
	s.Randomize()
	if s.Generation() != 0 {
		t.Fatal("Randomize should restart the generation count")
	}
	if p := s.Population(); p < 600 || p > 1000 {
		t.Fatalf("population %d not near half of 1600", p)
	}
	s.Clear()
	if s.Population() != 0 || s.Pattern() != "clear" {
		t.Fatalf("Clear left %d cells (pattern %q)", s.Population(), s.Pattern())
	}
}

func TestResetDeterministic(t *testing.T) {
	s := newTestSession(t, "random")
	s.Reset(99)
	a := s.Grid()
	s.Randomize()
	s.Reset(99)
	if !s.Grid().Equal(a) {
		t.Fatal("Reset with equal seeds produced different boards")
	}
}

func TestSessionMatchesStep(t *testing.T) {
	s := newTestSession(t, "glider")
	want := life.Step(s.Grid())
	s.StepOnce()
	if !s.Grid().Equal(want) {
		t.Fatal("session step diverged from life.Step")
	}
}

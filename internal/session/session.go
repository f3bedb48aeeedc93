// Package session owns the current board of an interactive Game of Life run:
// the running flag, the generation counter, and every edit made between steps.
//
// A Session is single-writer. The frame loop that owns it is the only caller,
// so it carries no locks. Every change replaces the current grid with a new
// one; a grid returned by Grid is never modified afterwards.
package session

import (
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/seeds"
	"lifegrid/internal/stats"
	prng "lifegrid/pkg/core"
	"lifegrid/pkg/life"

	"github.com/pkg/errors"
)

// Session drives a board through generations.
type Session struct {
	cfg  Config
	size core.Size

	grid       *life.Grid
	running    bool
	generation int
	period     int

	rng      *prng.RNG
	timer    *core.Interval
	history  *stats.History
	detector *stats.Detector
}

// New builds a Session and seeds its first board from cfg.Pattern.
func New(cfg Config) (*Session, error) {
	cfg = cfg.normalized()
	s := &Session{
		cfg:      cfg,
		size:     core.Size{Rows: cfg.Rows, Cols: cfg.Cols},
		rng:      prng.NewRNG(cfg.Seed),
		timer:    core.NewInterval(cfg.Interval),
		history:  stats.NewHistory(stats.DefaultHistoryLimit),
		detector: stats.NewDetector(stats.DefaultDetectorWindow),
	}
	if err := s.Seed(cfg.Pattern); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Session) Name() string { return "life" }

// Size returns the board dimensions.
func (s *Session) Size() core.Size { return s.size }

// Grid returns the current board. Callers must treat it as read-only.
func (s *Session) Grid() *life.Grid { return s.grid }

// Running reports whether Tick advances the board.
func (s *Session) Running() bool { return s.running }

// Start resumes stepping. The first Tick after Start steps immediately.
func (s *Session) Start() {
	if s.running {
		return
	}
	s.running = true
	s.timer.Reset()
}

// Stop pauses stepping.
func (s *Session) Stop() { s.running = false }

// ToggleRunning flips between running and stopped.
func (s *Session) ToggleRunning() {
	if s.running {
		s.Stop()
		return
	}
	s.Start()
}

// Generation returns the number of steps since the board was last seeded.
func (s *Session) Generation() int { return s.generation }

// Population counts the live cells on the current board.
func (s *Session) Population() int { return s.grid.Population() }

// Period returns the detected oscillation period of the current board, or 0
// when it has not repeated recently.
func (s *Session) Period() int { return s.period }

// History returns the population samples since the board was last seeded.
func (s *Session) History() []stats.Sample { return s.history.Samples() }

// Density returns the probability used by Randomize.
func (s *Session) Density() float64 { return s.cfg.Density }

// Interval returns the delay between generations while running.
func (s *Session) Interval() time.Duration { return s.timer.Interval() }

// Pattern returns the name of the seeder that produced the current board.
func (s *Session) Pattern() string { return s.cfg.Pattern }

// Randomize replaces the board with cells alive at the configured density.
func (s *Session) Randomize() {
	s.mustSeed(seeds.Random)
}

// Clear replaces the board with an all-dead one.
func (s *Session) Clear() {
	s.mustSeed(seeds.Clear)
}

// Reset reseeds the random source and rebuilds the board from the configured
// pattern.
func (s *Session) Reset(seed int64) {
	s.cfg.Seed = seed
	s.rng = prng.NewRNG(seed)
	s.mustSeed(s.cfg.Pattern)
}

// Seed replaces the board using the named seeder.
func (s *Session) Seed(pattern string) error {
	seeder, ok := core.Seeders()[pattern]
	if !ok {
		return errors.Errorf("unknown pattern %q", pattern)
	}
	s.cfg.Pattern = pattern
	s.replace(seeder(s.size, s.rng.Chance(s.cfg.Density)))
	return nil
}

func (s *Session) mustSeed(pattern string) {
	if err := s.Seed(pattern); err != nil {
		panic(err)
	}
}

// ToggleCell flips cell (i, k). It reports false when the coordinates are off
// the board.
func (s *Session) ToggleCell(i, k int) bool {
	if !s.grid.Contains(i, k) {
		return false
	}
	next := s.grid.Clone()
	next.Toggle(i, k)
	s.edit(next)
	return true
}

// PaintCell sets cell (i, k) to alive. It reports whether the board changed.
func (s *Session) PaintCell(i, k int, alive bool) bool {
	if !s.grid.Contains(i, k) || s.grid.Alive(i, k) == alive {
		return false
	}
	next := s.grid.Clone()
	next.Set(i, k, alive)
	s.edit(next)
	return true
}

// StepOnce advances the board by one generation regardless of the running
// flag.
func (s *Session) StepOnce() {
	s.grid = life.Step(s.grid)
	s.generation++
	s.record()
}

// Tick advances the board when running and the interval has elapsed. It
// reports whether a step happened.
func (s *Session) Tick() bool {
	if !s.running || !s.timer.ShouldStep() {
		return false
	}
	s.StepOnce()
	return true
}

func (s *Session) replace(g *life.Grid) {
	s.grid = g
	s.generation = 0
	s.history.Reset()
	s.detector.Reset()
	s.record()
}

func (s *Session) edit(g *life.Grid) {
	s.grid = g
	s.detector.Reset()
	s.period = 0
}

func (s *Session) record() {
	s.history.Record(s.generation, s.grid.Population())
	s.period = s.detector.Observe(s.grid)
}

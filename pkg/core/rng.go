package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns a cell initializer that reports alive with probability p.
// Every call draws a fresh value.
func (r *RNG) Chance(p float64) func() bool {
	switch {
	case p <= 0:
		return func() bool { return false }
	case p >= 1:
		return func() bool { return true }
	}
	return func() bool { return r.r.Float64() < p }
}

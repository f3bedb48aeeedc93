package core

import (
	"math"
	"testing"
)

func TestChanceExtremes(t *testing.T) {
	rng := NewRNG(1)
	never := rng.Chance(0)
	always := rng.Chance(1)
	for range 100 {
		if never() {
			t.Fatal("Chance(0) reported alive")
		}
		if !always() {
			t.Fatal("Chance(1) reported dead")
		}
	}
}

func TestChanceDensity(t *testing.T) {
	rng := NewRNG(7)
	init := rng.Chance(0.1)
	const samples = 20000
	alive := 0
	for range samples {
		if init() {
			alive++
		}
	}
	got := float64(alive) / samples
	if math.Abs(got-0.1) > 0.02 {
		t.Fatalf("observed density %.3f, expected about 0.1", got)
	}
}

func TestSeedDeterministic(t *testing.T) {
	a := NewRNG(42).Chance(0.5)
	b := NewRNG(42).Chance(0.5)
	for i := range 64 {
		if a() != b() {
			t.Fatalf("sample %d differs for equal seeds", i)
		}
	}
}

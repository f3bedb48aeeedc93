package life

import (
	"slices"
	"testing"
)

func expectAlive(t *testing.T, g *Grid, alive map[[2]int]bool, label string) {
	t.Helper()
	for i := 0; i < g.Rows(); i++ {
		for k := 0; k < g.Cols(); k++ {
			want := alive[[2]int{i, k}]
			if got := g.Alive(i, k); got != want {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, i, k, got, want)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := New(5, 5)
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	g.Set(3, 2, true)

	g = Step(g)
	expectAlive(t, g, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "first step")

	g = Step(g)
	expectAlive(t, g, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "second step")
}

func TestLoneCellDies(t *testing.T) {
	g := New(5, 5)
	g.Set(2, 2, true)
	next := Step(g)
	if next.Population() != 0 {
		t.Fatalf("expected empty board, got:\n%s", next)
	}
}

func TestPairDies(t *testing.T) {
	g := MustParse(`
		.....
		.OO..
		.....
		.....
	`)
	if got := Step(g).Population(); got != 0 {
		t.Fatalf("cells with one neighbor must die, population %d", got)
	}
}

func TestOverpopulation(t *testing.T) {
	g := Create(3, 3, func() bool { return true })
	if n := LiveNeighbors(g, 1, 1); n != 8 {
		t.Fatalf("center neighbors = %d, expected 8", n)
	}
	next := Step(g)
	if next.Alive(1, 1) {
		t.Fatal("center cell with 8 neighbors must die")
	}
	if next.Population() != 0 {
		t.Fatalf("fully alive 3x3 torus should die out, got:\n%s", next)
	}
}

func TestBlockStillLife(t *testing.T) {
	g := MustParse(`
		......
		......
		..OO..
		..OO..
		......
		......
	`)
	for _, c := range [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}} {
		if n := LiveNeighbors(g, c[0], c[1]); n != 3 {
			t.Fatalf("block cell %v has %d neighbors, expected 3", c, n)
		}
	}
	for i := 0; i < g.Rows(); i++ {
		for k := 0; k < g.Cols(); k++ {
			if g.Alive(i, k) {
				continue
			}
			if n := LiveNeighbors(g, i, k); n > 2 {
				t.Fatalf("surrounding cell (%d,%d) has %d neighbors, expected at most 2", i, k, n)
			}
		}
	}
	next := Step(g)
	if !next.Equal(g) {
		t.Fatalf("block changed after step:\n%s", next)
	}
}

func TestCornerWrapsToOppositeCorner(t *testing.T) {
	g := New(6, 7)
	g.Set(0, 0, true)

	wrapped := [][2]int{
		{5, 6}, {5, 0}, {5, 1},
		{0, 6}, {0, 1},
		{1, 6}, {1, 0}, {1, 1},
	}
	for _, c := range wrapped {
		if n := LiveNeighbors(g, c[0], c[1]); n != 1 {
			t.Fatalf("cell %v should see the corner cell, got %d neighbors", c, n)
		}
	}
	if n := LiveNeighbors(g, 3, 3); n != 0 {
		t.Fatalf("interior cell should see nothing, got %d", n)
	}
}

func TestBlinkerAcrossEdge(t *testing.T) {
	g := New(5, 5)
	g.Set(4, 2, true)
	g.Set(0, 2, true)
	g.Set(1, 2, true)

	next := Step(g)
	expectAlive(t, next, map[[2]int]bool{
		{0, 1}: true,
		{0, 2}: true,
		{0, 3}: true,
	}, "vertical wrap")

	g = New(5, 5)
	g.Set(2, 4, true)
	g.Set(2, 0, true)
	g.Set(2, 1, true)
	next = Step(g)
	expectAlive(t, next, map[[2]int]bool{
		{1, 0}: true,
		{2, 0}: true,
		{3, 0}: true,
	}, "horizontal wrap")
}

func TestStepIsPureAndDeterministic(t *testing.T) {
	g := MustParse(`
		.O......
		..O.....
		OOO.....
		........
		....OO..
		....OO..
	`)
	before := g.Clone()

	a := Step(g)
	b := Step(g)

	if !g.Equal(before) {
		t.Fatal("Step mutated its input")
	}
	if !a.Equal(b) {
		t.Fatal("Step not deterministic")
	}
	if a.Rows() != g.Rows() || a.Cols() != g.Cols() {
		t.Fatalf("Step changed dimensions to %dx%d", a.Rows(), a.Cols())
	}
	a.Set(0, 0, !a.Alive(0, 0))
	if !b.Equal(Step(g)) || g.Alive(0, 0) != before.Alive(0, 0) {
		t.Fatal("Step results share storage")
	}
}

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := NextState(true, n); got != wantAlive {
			t.Fatalf("live cell with %d neighbors -> %v, expected %v", n, got, wantAlive)
		}
		wantBirth := n == 3
		if got := NextState(false, n); got != wantBirth {
			t.Fatalf("dead cell with %d neighbors -> %v, expected %v", n, got, wantBirth)
		}
	}
}

func TestGliderTravelsAroundTorus(t *testing.T) {
	g := MustParse(`
		.O......
		..O.....
		OOO.....
		........
		........
		........
		........
		........
	`)
	start := g.Clone()
	// A glider moves one cell diagonally every four generations, so on an
	// 8x8 torus it returns home after 32.
	for range 32 {
		g = Step(g)
		if g.Population() != 5 {
			t.Fatalf("glider lost cells:\n%s", g)
		}
	}
	if !g.Equal(start) {
		t.Fatalf("glider did not return to its start:\n%s", g)
	}
	if !slices.Equal(start.Cells(), g.Cells()) {
		t.Fatal("cells differ")
	}
}

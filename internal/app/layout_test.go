package app

import (
	"testing"

	"lifegrid/internal/core"
)

func TestFitCellSize(t *testing.T) {
	cases := []struct {
		w, h, rows, cols int
		want             int
	}{
		{800, 800, 80, 80, 10},
		{1200, 800, 80, 80, 10},
		{800, 1200, 80, 80, 10},
		{799, 800, 80, 80, 9},
		{50, 50, 80, 80, 1},
		{400, 800, 80, 40, 10},
	}
	for _, c := range cases {
		if got := FitCellSize(c.w, c.h, c.rows, c.cols); got != c.want {
			t.Fatalf("FitCellSize(%d,%d,%d,%d) = %d, expected %d", c.w, c.h, c.rows, c.cols, got, c.want)
		}
	}
}

func TestComputeLayoutCentersBoard(t *testing.T) {
	size := core.Size{Rows: 10, Cols: 10}
	l := ComputeLayout(420, 334, size, 34, 100)

	if l.HUDX != 320 {
		t.Fatalf("HUD starts at %d, expected 320", l.HUDX)
	}
	b := l.Board
	if b.Cell != 30 {
		t.Fatalf("cell %d, expected 30", b.Cell)
	}
	if b.X != 10 || b.Y != 34 {
		t.Fatalf("board origin (%d,%d), expected (10,34)", b.X, b.Y)
	}
	if b.X+b.Width() > l.HUDX {
		t.Fatal("board overlaps the HUD")
	}
}

func TestLayoutRoundTripsWindowSize(t *testing.T) {
	size := core.Size{Rows: 80, Cols: 80}
	w, h := WindowSize(size, 10, 34, 220)
	l := ComputeLayout(w, h, size, 34, 220)
	if l.Board.Cell != 10 || l.Board.X != 0 || l.Board.Y != 34 {
		t.Fatalf("unexpected board %+v", l.Board)
	}
	if i, k, ok := l.Board.CellAt(795, 34+795); !ok || i != 79 || k != 79 {
		t.Fatalf("bottom-right pixel maps to (%d,%d,%v)", i, k, ok)
	}
}

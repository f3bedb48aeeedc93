// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid.
package life

// offsets lists the eight neighbor positions as (row, col) deltas.
var offsets = [8][2]int{
	{0, 1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{-1, -1},
	{-1, 0},
	{-1, 1},
}

// LiveNeighbors counts live cells adjacent to (i, k), wrapping around edges.
func LiveNeighbors(g *Grid, i, k int) int {
	rows, cols := g.rows, g.cols
	n := 0
	for _, off := range offsets {
		ni := (i + off[0] + rows) % rows
		nk := (k + off[1] + cols) % cols
		if g.cells[ni*cols+nk] {
			n++
		}
	}
	return n
}

// NextState applies the B3/S23 rule to a single cell.
func NextState(alive bool, neighbors int) bool {
	switch {
	case neighbors < 2 || neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}

// Step computes the next generation of g. The input is left untouched and the
// result owns fresh storage of identical dimensions.
func Step(g *Grid) *Grid {
	next := New(g.rows, g.cols)
	for i := 0; i < g.rows; i++ {
		for k := 0; k < g.cols; k++ {
			idx := i*g.cols + k
			next.cells[idx] = NextState(g.cells[idx], LiveNeighbors(g, i, k))
		}
	}
	return next
}

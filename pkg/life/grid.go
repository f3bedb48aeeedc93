package life

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size board of alive/dead cells stored in row-major order.
// Dimensions never change after creation.
type Grid struct {
	rows, cols int
	cells      []bool
}

// Create builds a rows×cols grid by calling init once for every cell in
// row-major order. The initializer is never memoized, so a random initializer
// yields an independent outcome per cell.
func Create(rows, cols int, init func() bool) *Grid {
	g := New(rows, cols)
	for i := range g.cells {
		g.cells[i] = init()
	}
	return g
}

// New returns an all-dead grid with the given dimensions.
func New(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

// Parse builds a grid from a text picture. Each non-empty line is a row;
// 'O', '#', '*' and '1' mark live cells and '.', '_' and '0' dead ones.
func Parse(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return New(0, 0), nil
	}
	cols := len(lines[0])
	g := New(len(lines), cols)
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(line), cols)
		}
		for k, ch := range line {
			switch ch {
			case 'O', '#', '*', '1':
				g.cells[i*cols+k] = true
			case '.', '_', '0':
			default:
				return nil, fmt.Errorf("row %d: unexpected cell %q", i, ch)
			}
		}
	}
	return g, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether (i, k) lies on the board.
func (g *Grid) Contains(i, k int) bool {
	return i >= 0 && i < g.rows && k >= 0 && k < g.cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(i, k int) (int, int) {
	i = (i%g.rows + g.rows) % g.rows
	k = (k%g.cols + g.cols) % g.cols
	return i, k
}

// Alive reports the state of cell (i, k).
func (g *Grid) Alive(i, k int) bool { return g.cells[i*g.cols+k] }

// Set writes the state of cell (i, k).
func (g *Grid) Set(i, k int, alive bool) { g.cells[i*g.cols+k] = alive }

// Toggle flips cell (i, k) in place.
func (g *Grid) Toggle(i, k int) { g.cells[i*g.cols+k] = !g.cells[i*g.cols+k] }

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: append([]bool(nil), g.cells...)}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Cells exposes the row-major backing slice for read-only consumers such as
// renderers and fingerprinting.
func (g *Grid) Cells() []bool { return g.cells }

// String renders the grid using 'O' for live and '.' for dead cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for i := 0; i < g.rows; i++ {
		for k := 0; k < g.cols; k++ {
			if g.Alive(i, k) {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

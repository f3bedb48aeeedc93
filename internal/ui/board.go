package ui

// Board places a rows×cols grid on screen with square cells of Cell pixels
// whose top-left corner is at (X, Y).
type Board struct {
	X, Y       int
	Cell       int
	Rows, Cols int
}

// Width returns the on-screen width of the board.
func (b Board) Width() int { return b.Cols * b.Cell }

// Height returns the on-screen height of the board.
func (b Board) Height() int { return b.Rows * b.Cell }

// CellAt maps screen coordinates to a cell. ok is false outside the board.
func (b Board) CellAt(x, y int) (i, k int, ok bool) {
	if b.Cell <= 0 || x < b.X || y < b.Y {
		return 0, 0, false
	}
	k = (x - b.X) / b.Cell
	i = (y - b.Y) / b.Cell
	if i >= b.Rows || k >= b.Cols {
		return 0, 0, false
	}
	return i, k, true
}

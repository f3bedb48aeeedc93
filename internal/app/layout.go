package app

import (
	"lifegrid/internal/core"
	"lifegrid/internal/ui"
)

// Layout splits the window into the toolbar strip, the board and the HUD.
type Layout struct {
	Width, Height int
	Board         ui.Board
	HUDX          int
}

// FitCellSize returns the largest square cell size that fits a rows×cols
// board into a w×h area, never less than one pixel.
func FitCellSize(w, h, rows, cols int) int {
	if rows <= 0 || cols <= 0 {
		return 1
	}
	cell := min(w/cols, h/rows)
	if cell < 1 {
		cell = 1
	}
	return cell
}

// ComputeLayout measures a w×h window and centers the board in the space
// left between the toolbar and the HUD.
func ComputeLayout(w, h int, size core.Size, toolbarHeight, hudWidth int) Layout {
	availW := max(w-hudWidth, 1)
	availH := max(h-toolbarHeight, 1)
	cell := FitCellSize(availW, availH, size.Rows, size.Cols)
	board := ui.Board{Cell: cell, Rows: size.Rows, Cols: size.Cols}
	board.X = max((availW-board.Width())/2, 0)
	board.Y = toolbarHeight + max((availH-board.Height())/2, 0)
	return Layout{Width: w, Height: h, Board: board, HUDX: availW}
}

// WindowSize returns the initial window size for a board drawn with the given
// cell size.
func WindowSize(size core.Size, cell, toolbarHeight, hudWidth int) (int, int) {
	return size.Cols*cell + hudWidth, size.Rows*cell + toolbarHeight
}

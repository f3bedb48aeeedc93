//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	gridLineColor = color.RGBA{R: 0, G: 0, B: 0, A: 40}
	hoverColor    = color.RGBA{R: 213, G: 99, B: 161, A: 160}
)

// Overlay draws optional grid lines and outlines the cell under the cursor.
type Overlay struct {
	showGrid bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles grid lines with the G key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay on top of the board.
func (o *Overlay) Draw(screen *ebiten.Image, b Board) {
	if b.Cell <= 0 {
		return
	}
	if o.showGrid && b.Cell >= 4 {
		x0, y0 := float32(b.X), float32(b.Y)
		w, h := float32(b.Width()), float32(b.Height())
		for k := 0; k <= b.Cols; k++ {
			x := x0 + float32(k*b.Cell)
			vector.StrokeLine(screen, x, y0, x, y0+h, 1, gridLineColor, false)
		}
		for i := 0; i <= b.Rows; i++ {
			y := y0 + float32(i*b.Cell)
			vector.StrokeLine(screen, x0, y, x0+w, y, 1, gridLineColor, false)
		}
	}

	if i, k, ok := b.CellAt(ebiten.CursorPosition()); ok {
		x := float32(b.X + k*b.Cell)
		y := float32(b.Y + i*b.Cell)
		vector.StrokeRect(screen, x, y, float32(b.Cell), float32(b.Cell), 1, hoverColor, false)
	}
}

//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	toolbarBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	buttonFill        = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFillHover   = color.RGBA{R: 72, G: 76, B: 88, A: 255}
	buttonText        = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

// Draw paints the toolbar across the top of screen.
func (t *Toolbar) Draw(screen *ebiten.Image, running bool) {
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(ToolbarHeight), toolbarBackground, false)

	mx, my := ebiten.CursorPosition()
	face := basicfont.Face7x13
	for _, b := range t.buttons {
		fill := buttonFill
		if pointInRect(mx, my, b.Rect) {
			fill = buttonFillHover
		}
		vector.DrawFilledRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y), float32(b.Rect.Dx()), float32(b.Rect.Dy()), fill, false)

		label := b.Action.Label(running)
		bounds := text.BoundString(face, label)
		x := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
		y := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 + bounds.Dy()
		text.Draw(screen, label, face, x, y, buttonText)
	}
}

//go:build !ebiten

package ui

// Draw is a no-op in the headless build.
func (t *Toolbar) Draw(any, bool) {}

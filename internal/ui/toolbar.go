package ui

import "image"

// Action identifies a toolbar button.
type Action int

const (
	// ActionNone means no button was hit.
	ActionNone Action = iota
	// ActionToggleRun starts or stops the session.
	ActionToggleRun
	// ActionStep advances a single generation.
	ActionStep
	// ActionRandom reseeds the board at the configured density.
	ActionRandom
	// ActionClear kills every cell.
	ActionClear
)

// Label returns the caption of the button for a.
func (a Action) Label(running bool) string {
	switch a {
	case ActionToggleRun:
		if running {
			return "stop"
		}
		return "start"
	case ActionStep:
		return "step"
	case ActionRandom:
		return "random"
	case ActionClear:
		return "clear"
	default:
		return ""
	}
}

// Button is a clickable toolbar region.
type Button struct {
	Action Action
	Rect   image.Rectangle
}

// Toolbar is the strip of controls above the board.
type Toolbar struct {
	buttons []Button
}

// NewToolbar lays out the start/stop, step, random and clear buttons left to
// right.
func NewToolbar() *Toolbar {
	actions := []Action{ActionToggleRun, ActionStep, ActionRandom, ActionClear}
	t := &Toolbar{buttons: make([]Button, len(actions))}
	x := toolbarPadding
	for i, a := range actions {
		t.buttons[i] = Button{
			Action: a,
			Rect:   image.Rect(x, toolbarPadding, x+toolbarButtonWidth, toolbarPadding+toolbarButtonHeight),
		}
		x += toolbarButtonWidth + toolbarPadding
	}
	return t
}

// Height returns the vertical space the toolbar occupies.
func (t *Toolbar) Height() int { return ToolbarHeight }

// Buttons returns the laid out buttons.
func (t *Toolbar) Buttons() []Button { return t.buttons }

// Hit returns the action under (x, y).
func (t *Toolbar) Hit(x, y int) Action {
	for _, b := range t.buttons {
		if pointInRect(x, y, b.Rect) {
			return b.Action
		}
	}
	return ActionNone
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	// ToolbarHeight is the height of the control strip in pixels.
	ToolbarHeight = toolbarButtonHeight + 2*toolbarPadding

	toolbarPadding      = 6
	toolbarButtonWidth  = 64
	toolbarButtonHeight = 22
)

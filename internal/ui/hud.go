//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// ParameterSource supplies the values listed on the HUD.
type ParameterSource interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	src      ParameterSource
	width    int
	snapshot core.ParameterSnapshot
	title    string

	controls     map[string]*hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	rows         []hudRow
}

type hudRow struct {
	header bool
	label  string
	value  string
	key    string
	top    int
}

type hudControlState struct {
	control core.ParameterControl

	intValue   int
	floatValue float64
	hasValue   bool

	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided source and panel width.
func NewHUD(src ParameterSource, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width, controls: map[string]*hudControlState{}}
	h.title = strings.ToUpper(src.Name()[:1]) + src.Name()[1:]
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls[ctrl.Key] = &hudControlState{control: ctrl}
		}
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.layout()
	h.handleInput()
}

// Draw paints the panel at offsetX, spanning height pixels.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	x := float32(offsetX)
	vector.DrawFilledRect(screen, x, 0, float32(h.width), float32(height), color.RGBA{R: 16, G: 16, B: 20, A: 255}, false)

	face := basicfont.Face7x13
	text.Draw(screen, h.title, face, offsetX+panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, row := range h.rows {
		y := row.top + labelBaseline
		if row.header {
			text.Draw(screen, row.label, face, offsetX+panelPadding, y, color.RGBA{R: 120, G: 200, B: 200, A: 255})
			continue
		}
		text.Draw(screen, row.label, face, offsetX+panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		valueRight := offsetX + h.width - panelPadding
		state, adjustable := h.controls[row.key]
		if adjustable {
			valueRight = offsetX + state.minusRect.Min.X - buttonGap
		}
		bounds := text.BoundString(face, row.value)
		text.Draw(screen, row.value, face, valueRight-bounds.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		if adjustable {
			h.drawButton(screen, state.minusRect.Add(image.Pt(offsetX, 0)), "-", state.hasValue && h.canAdjust(state, -1))
			h.drawButton(screen, state.plusRect.Add(image.Pt(offsetX, 0)), "+", state.hasValue && h.canAdjust(state, 1))
		}
	}
}

func (h *HUD) layout() {
	h.rows = h.rows[:0]
	top := controlsTop
	for _, group := range h.snapshot.Groups {
		h.rows = append(h.rows, hudRow{header: true, label: group.Name, top: top})
		top += lineHeight
		for _, param := range group.Params {
			row := hudRow{label: param.Label, key: param.Key, value: param.Value, top: top}
			if state, ok := h.controls[param.Key]; ok {
				h.refreshControl(state, param, &row)
				buttonY := top + (lineHeight-buttonSize)/2
				state.plusRect = image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
				state.minusRect = image.Rect(state.plusRect.Min.X-buttonGap-buttonSize, buttonY, state.plusRect.Min.X-buttonGap, buttonY+buttonSize)
			}
			h.rows = append(h.rows, row)
			top += lineHeight
		}
	}
}

func (h *HUD) refreshControl(state *hudControlState, param core.Parameter, row *hudRow) {
	state.hasValue = false
	switch state.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			row.value = "--"
			return
		}
		state.intValue = parsed
		state.floatValue = float64(parsed)
		state.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			row.value = "--"
			return
		}
		state.floatValue = parsed
		state.hasValue = true
		row.value = formatFloat(state.control, parsed)
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for _, state := range h.controls {
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if !h.canAdjust(state, direction) {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		target := clampInt(state.intValue+direction*intStep(state.control), state.control)
		if h.intSetter.SetIntParameter(state.control.Key, target) {
			state.intValue = target
			state.floatValue = float64(target)
		}
	case core.ParamTypeFloat:
		target := state.floatValue + float64(direction)*floatStep(state.control)
		if state.control.HasMin && target < state.control.Min {
			target = state.control.Min
		}
		if state.control.HasMax && target > state.control.Max {
			target = state.control.Max
		}
		// Round away accumulated binary drift such as 0.15000000000000002.
		target = math.Round(target*1e6) / 1e6
		if h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
		}
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return false
		}
		target := state.intValue + direction*intStep(state.control)
		return clampInt(target, state.control) != state.intValue
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return false
		}
		if direction < 0 && state.control.HasMin {
			return state.floatValue-state.control.Min > 1e-9
		}
		if direction > 0 && state.control.HasMax {
			return state.control.Max-state.floatValue > 1e-9
		}
		return true
	default:
		return false
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, fg)
}

func intStep(ctrl core.ParameterControl) int {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	return step
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func clampInt(v int, ctrl core.ParameterControl) int {
	if ctrl.HasMin {
		if min := int(math.Round(ctrl.Min)); v < min {
			v = min
		}
	}
	if ctrl.HasMax {
		if max := int(math.Round(ctrl.Max)); v > max {
			v = max
		}
	}
	return v
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := floatStep(ctrl); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

const (
	panelPadding   = 12
	lineHeight     = 22
	buttonSize     = 18
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 15
	controlsTop    = panelPadding + headerBaseline + 8
)

//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"smokegate/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Target is what the HUD reads and adjusts.
type Target interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.FloatParameterSetter
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	target Target
	width  int
	panel  *ebiten.Image

	controls     []hudControlState
	panelOffsetX int
	status       []string
}

type hudControlState struct {
	control  core.ParameterControl
	row      controlRow
	value    float64
	hasValue bool
}

// NewHUD constructs a HUD for target with the given panel width.
func NewHUD(target Target, width int) *HUD {
	h := &HUD{target: target, width: max(width, 0)}
	controls := target.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl}
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

// Contains reports whether screen point (x, y) falls on the panel.
func (h *HUD) Contains(x, y int) bool {
	return h != nil && h.width > 0 && x >= h.panelOffsetX && x < h.panelOffsetX+h.width && y >= 0
}

// Update refreshes values from the target, lays out the controls below the
// status lines and handles clicks on the -/+ buttons.
func (h *HUD) Update(panelOffsetX int, status Status) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.status = status.Lines()
	top := panelPadding + headerBaseline + len(h.status)*statusSpacing + 8
	rows := layoutControls(len(h.controls), h.width, top)

	snapshot := h.target.Parameters()
	for i := range h.controls {
		state := &h.controls[i]
		state.row = rows[i]
		state.hasValue = false
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		if v, err := strconv.ParseFloat(param.Value, 64); err == nil {
			state.value = v
			state.hasValue = true
		}
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if !h.Contains(mx, my) {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		direction := 0
		switch {
		case pointInRect(px, my, state.row.minus):
			direction = -1
		case pointInRect(px, my, state.row.plus):
			direction = 1
		default:
			continue
		}
		target, ok := adjust(state.control, state.value, direction)
		if !ok || math.Abs(target-state.value) < 1e-9 {
			return
		}
		if h.target.SetFloatParameter(state.control.Key, target) {
			state.value = target
		}
		return
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Deallocate()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Smoke Controls", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, line := range h.status {
		y += statusSpacing
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.row.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value := "--"
		valueColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}
		if state.hasValue {
			value = formatFloat(state.control.Step, state.value)
			valueColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
		}
		valueX := state.row.minus.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		_, minusOK := adjust(state.control, state.value, -1)
		_, plusOK := adjust(state.control, state.value, 1)
		h.drawButton(state.row.minus, "-", state.hasValue && minusOK)
		h.drawButton(state.row.plus, "+", state.hasValue && plusOK)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

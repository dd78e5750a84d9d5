// Package ui draws the control panel and pointer cursor over the field.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"smokegate/internal/core"
	"smokegate/internal/render"
	"smokegate/internal/sims/smoke"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 16
)

// Status is the read-only state summarised at the top of the panel.
type Status struct {
	Brush     smoke.BrushMode
	Render    render.Mode
	GridLines bool
	Arrows    bool
	Paused    bool
	Loading   bool
	Source    string
	Steps     uint64
	// Catalog is the number of entries the "next image" key cycles through.
	Catalog   int
}

// Lines formats the status for display, one fact per line.
func (s Status) Lines() []string {
	state := "running"
	switch {
	case s.Loading:
		state = "loading"
	case s.Paused:
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("brush  %s [B]", s.Brush),
		fmt.Sprintf("view   %s [V]", s.Render),
		fmt.Sprintf("grid %s  arrows %s", onOff(s.GridLines), onOff(s.Arrows)),
		fmt.Sprintf("%s  step %d", state, s.Steps),
	}
	if s.Catalog > 0 {
		lines = append(lines, fmt.Sprintf("next image [N] of %d", s.Catalog))
	} else {
		lines = append(lines, "catalog empty")
	}
	if s.Source != "" {
		lines = append(lines, s.Source)
	}
	return lines
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// controlRow is the layout of one adjustable parameter.
type controlRow struct {
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// layoutControls places n rows of -/+ buttons right-aligned in a panel of
// the given width, starting at top.
func layoutControls(n, width, top int) []controlRow {
	rows := make([]controlRow, n)
	for i := range rows {
		y := top + i*lineHeight
		buttonY := y + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		rows[i] = controlRow{top: y, minus: minus, plus: plus}
	}
	return rows
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

// adjust steps value by one control step in direction, reporting false when
// the result would leave the control's range.
func adjust(ctrl core.ParameterControl, value float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := value + float64(direction)*step
	if ctrl.Max > ctrl.Min {
		if direction < 0 && target < ctrl.Min-1e-9 {
			return value, false
		}
		if direction > 0 && target > ctrl.Max+1e-9 {
			return value, false
		}
	}
	return ctrl.Clamp(target), true
}

func formatFloat(step, value float64) string {
	precision := 1
	switch {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// brushColor tints the cursor ring by brush mode.
func brushColor(m smoke.BrushMode) color.RGBA {
	switch m {
	case smoke.BrushVelocity:
		return color.RGBA{R: 90, G: 200, B: 255, A: 255}
	case smoke.BrushSmoke:
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	case smoke.BrushHavoc:
		return color.RGBA{R: 255, G: 90, B: 60, A: 255}
	default:
		panic(fmt.Sprintf("ui: unhandled brush mode %v", m))
	}
}

// ringWidth keeps the cursor ring visible but thin at any cell size.
func ringWidth(radius float64) float32 {
	return float32(math.Max(1, math.Min(2, radius/8)))
}

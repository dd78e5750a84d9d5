package smoke

import (
	"strconv"

	"smokegate/internal/core"
)

// Parameters reports the current tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("cols", "Columns", w.grid.cols),
				intParam("rows", "Rows", w.grid.rows),
				intParam("cell", "Cell size", w.grid.cellSize),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				{Key: "brush", Label: "Brush mode", Type: core.ParamTypeChoice, Value: w.cfg.BrushMode.String()},
				floatParam("brush_radius", "Brush radius", p.BrushRadius),
				floatParam("brush_force", "Brush force", p.BrushForce),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				floatParam("decay", "Velocity decay", p.VelocityDecay),
				floatParam("diffusion", "Smoke diffusion", p.SmokeDiffusion),
				floatParam("havoc", "Havoc noise", p.HavocNoise),
				floatParam("temp_factor", "Temperature buoyancy", p.TemperatureFactor),
				floatParam("smoke_factor", "Smoke weight", p.SmokeFactor),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var parameterControls = []core.ParameterControl{
	{Key: "decay", Label: "Decay", Step: 0.05, Min: 0, Max: 1},
	{Key: "diffusion", Label: "Diffusion", Step: 0.05, Min: 0, Max: 1},
	{Key: "brush_radius", Label: "Radius", Step: 0.5, Min: 0.5, Max: 16},
	{Key: "brush_force", Label: "Force", Step: 1, Min: 0, Max: 64},
	{Key: "havoc", Label: "Havoc", Step: 5, Min: 0, Max: 200},
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return parameterControls
}

// SetFloatParameter updates a HUD-adjustable parameter, clamped to its
// control range.
func (w *World) SetFloatParameter(key string, value float64) bool {
	var ctrl core.ParameterControl
	found := false
	for _, c := range parameterControls {
		if c.Key == key {
			ctrl, found = c, true
			break
		}
	}
	if !found {
		return false
	}
	value = ctrl.Clamp(value)
	p := &w.cfg.Params
	switch key {
	case "decay":
		p.VelocityDecay = value
	case "diffusion":
		p.SmokeDiffusion = value
	case "brush_radius":
		p.BrushRadius = value
	case "brush_force":
		p.BrushForce = value
	case "havoc":
		p.HavocNoise = value
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

package smoke

import (
	"errors"
	"testing"

	"smokegate/internal/core"
)

func TestFromMapOverridesAndRejects(t *testing.T) {
	cfg := FromMap(map[string]string{
		"cols":      "64",
		"rows":      "2",
		"cell":      "4",
		"seed":      "99",
		"brush":     "havoc",
		"decay":     "1.5",
		"diffusion": "0.25",
		"havoc":     "-3",
		"gravity":   "nope",
	})
	def := DefaultConfig()
	if cfg.Cols != 64 || cfg.CellSize != 4 || cfg.Seed != 99 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Rows != def.Rows {
		t.Fatalf("rows below minimum accepted: %d", cfg.Rows)
	}
	if cfg.BrushMode != BrushHavoc {
		t.Fatalf("brush = %v", cfg.BrushMode)
	}
	if cfg.Params.VelocityDecay != def.Params.VelocityDecay {
		t.Fatalf("out-of-range decay accepted: %g", cfg.Params.VelocityDecay)
	}
	if cfg.Params.SmokeDiffusion != 0.25 {
		t.Fatalf("diffusion = %g", cfg.Params.SmokeDiffusion)
	}
	if cfg.Params.HavocNoise != def.Params.HavocNoise || cfg.Params.Gravity != def.Params.Gravity {
		t.Fatalf("invalid values accepted: %+v", cfg.Params)
	}
	if FromMap(nil) != def {
		t.Fatalf("nil map should yield defaults")
	}
}

func TestBrushModeParsingAndCycling(t *testing.T) {
	for _, m := range BrushModes {
		got, err := ParseBrushMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseBrushMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, _ := ParseBrushMode(" Velocity "); got != BrushVelocity {
		t.Fatalf("long velocity name not accepted")
	}
	if _, err := ParseBrushMode("paint"); !errors.Is(err, ErrUnknownBrushMode) {
		t.Fatalf("unknown mode error = %v", err)
	}
	m := BrushVelocity
	for range BrushModes {
		m = m.Next()
	}
	if m != BrushVelocity {
		t.Fatalf("cycling through all modes ended at %v", m)
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	w := New(10, 10)
	if !w.SetFloatParameter("brush_radius", 100) {
		t.Fatalf("brush_radius not adjustable")
	}
	if got := w.Params().BrushRadius; got != 16 {
		t.Fatalf("brush_radius = %g, want clamp to 16", got)
	}
	if !w.SetFloatParameter("decay", -1) || w.Params().VelocityDecay != 0 {
		t.Fatalf("decay not clamped to 0")
	}
	if w.SetFloatParameter("gravity", 1) {
		t.Fatalf("gravity should not be HUD adjustable")
	}

	var _ core.FloatParameterSetter = w
	var _ core.ParameterControlsProvider = w
	snap := w.Parameters()
	if p, ok := snap.Lookup("decay"); !ok || p.Value != "0" {
		t.Fatalf("snapshot decay = %+v, %v", p, ok)
	}
}

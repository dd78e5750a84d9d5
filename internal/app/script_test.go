package app

import (
	"errors"
	"testing"

	"smokegate/internal/sims/smoke"
)

func TestOverrides(t *testing.T) {
	var o Overrides
	if err := o.Set("decay=0.3"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := o.Set(" brush = smoke "); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := o.Set("decay=0.4"); err != nil {
		t.Fatalf("set: %v", err)
	}
	for _, bad := range []string{"decay", "=1"} {
		if err := o.Set(bad); !errors.Is(err, ErrBadOverride) {
			t.Fatalf("Set(%q) err = %v", bad, err)
		}
	}
	m := o.Map()
	if m["decay"] != "0.4" || m["brush"] != "smoke" || len(m) != 2 {
		t.Fatalf("map = %v", m)
	}
	if o.String() != "decay=0.3, brush = smoke ,decay=0.4" {
		t.Fatalf("string = %q", o.String())
	}
}

func TestTuneKeepsGridLayout(t *testing.T) {
	s := newTestSession(t, testConfig(t))
	s.Tune(map[string]string{"decay": "0.7", "brush": "havoc", "cols": "50", "diffusion": "3"})

	if got := s.World().Params().VelocityDecay; got != 0.7 {
		t.Fatalf("decay = %g", got)
	}
	if got := s.World().Params().SmokeDiffusion; got != 0.1 {
		t.Fatalf("out of range diffusion applied: %g", got)
	}
	if s.World().BrushMode() != smoke.BrushHavoc {
		t.Fatalf("brush = %v", s.World().BrushMode())
	}
	if s.World().Grid().Cols() != 15 {
		t.Fatalf("grid resized by tune: %d cols", s.World().Grid().Cols())
	}
}

func TestParseStroke(t *testing.T) {
	st, err := ParseStroke(" 1, 2,3.5,4 ", 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if st != (Stroke{X0: 1, Y0: 2, X1: 3.5, Y1: 4, Frames: 1}) {
		t.Fatalf("stroke = %+v", st)
	}
	if st, err := ParseStroke("", 5); err != nil || st.Active() {
		t.Fatalf("empty stroke = %+v, %v", st, err)
	}
	for _, bad := range []string{"1,2,3", "a,b,c,d"} {
		if _, err := ParseStroke(bad, 3); err == nil {
			t.Fatalf("ParseStroke(%q) accepted", bad)
		}
	}
}

func TestStrokeDrivesBrush(t *testing.T) {
	s := newTestSession(t, testConfig(t))
	st, err := ParseStroke("10,20,50,20", 4)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for frame := 0; frame <= 6; frame++ {
		st.Apply(s, frame)
	}
	if s.dragging {
		t.Fatalf("stroke should release after its last frame")
	}
	vx := s.World().Grid().VelocityX()
	moved := false
	for _, v := range vx.Cells() {
		if v > 0 {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatalf("stroke injected no rightward velocity")
	}
}

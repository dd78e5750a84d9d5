package smoke

import (
	"math"
	"testing"
)

func TestSmokeBrushPaintsHotWhite(t *testing.T) {
	cfg := quietConfig(20, 20, 10)
	cfg.BrushMode = BrushSmoke
	cfg.Params.BrushRadius = 2
	w := NewWithConfig(cfg)

	w.Brush(55, 55, 75, 55)
	g := w.Grid()
	white := Smoke{R: 255, G: 255, B: 255, T: cfg.Params.HotTemperature}
	for _, c := range [][2]int{{5, 5}, {6, 5}, {7, 5}, {6, 7}} {
		if got := g.Smoke(c[0], c[1]); got != white {
			t.Fatalf("cell %v = %+v, want hot white", c, got)
		}
	}
	if got := g.Smoke(6, 9); got != (Smoke{}) {
		t.Fatalf("cell outside radius painted: %+v", got)
	}
	if e := g.KineticEnergy(); e != 0 {
		t.Fatalf("smoke brush moved the fluid, energy %g", e)
	}
}

func TestBrushNeverTouchesBorder(t *testing.T) {
	cfg := quietConfig(12, 12, 10)
	cfg.BrushMode = BrushSmoke
	cfg.Params.BrushRadius = 4
	w := NewWithConfig(cfg)
	w.Brush(0, 0, 5, 5)

	g := w.Grid()
	for i := 0; i < g.Cols(); i++ {
		if g.Smoke(i, 0) != (Smoke{}) || g.Smoke(0, i) != (Smoke{}) {
			t.Fatalf("border cell %d painted", i)
		}
	}
	if g.Smoke(1, 1).R != 255 {
		t.Fatalf("corner fluid cell not painted")
	}

	w.SetBrushMode(BrushVelocity)
	w.Brush(0, 0, 30, 30)
	assertBoundary(t, g)
}

func TestBrushDegenerateStrokesAreNoOps(t *testing.T) {
	for _, mode := range BrushModes {
		cfg := quietConfig(12, 12, 10)
		cfg.BrushMode = mode
		w := NewWithConfig(cfg)
		before := snapshotSmoke(w.Grid())

		w.Brush(60, 60, 60, 60)
		w.Brush(math.NaN(), 10, 60, 60)
		w.Brush(10, 10, math.Inf(1), 60)

		if e := w.Grid().KineticEnergy(); e != 0 {
			t.Fatalf("%v: degenerate stroke moved fluid", mode)
		}
		for k, s := range snapshotSmoke(w.Grid()) {
			if s != before[k] {
				t.Fatalf("%v: degenerate stroke painted cell %d", mode, k)
			}
		}
	}
}

func TestHavocBrushDragsLikeVelocity(t *testing.T) {
	a := NewWithConfig(quietConfig(16, 16, 10))
	cfgB := quietConfig(16, 16, 10)
	cfgB.BrushMode = BrushHavoc
	b := NewWithConfig(cfgB)

	a.Brush(40, 80, 40, 100)
	b.Brush(40, 80, 40, 100)
	if a.Grid().VY(3, 7) == 0 {
		t.Fatalf("downward stroke did not push vy")
	}
	for k, v := range a.Grid().VelocityY().Cells() {
		if b.Grid().VelocityY().Cells()[k] != v {
			t.Fatalf("havoc drag differs from velocity drag at face %d", k)
		}
	}
}

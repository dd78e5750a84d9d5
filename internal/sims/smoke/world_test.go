package smoke

import (
	"math"
	"slices"
	"testing"
)

func swirlWorld(t *testing.T) *World {
	t.Helper()
	cfg := quietConfig(24, 20, 4)
	cfg.Params.VelocityDecay = 0
	w := NewWithConfig(cfg)
	g := w.Grid()
	for j := 0; j < g.Rows(); j++ {
		for i := 0; i < g.Cols()-1; i++ {
			g.SetVX(i, j, 3*math.Sin(0.7*float64(i)+0.3*float64(j))+math.Cos(1.3*float64(j)))
		}
	}
	for j := 0; j < g.Rows()-1; j++ {
		for i := 0; i < g.Cols(); i++ {
			g.SetVY(i, j, 2*math.Cos(0.5*float64(i)-0.9*float64(j)))
		}
	}
	return w
}

func TestStepDoesNotCreateEnergy(t *testing.T) {
	w := swirlWorld(t)
	prev := w.Grid().KineticEnergy()
	for step := range 30 {
		w.Step(1.0 / 60)
		got := w.Grid().KineticEnergy()
		if got > prev+1e-9 {
			t.Fatalf("step %d: kinetic energy rose from %g to %g", step, prev, got)
		}
		prev = got
		assertBoundary(t, w.Grid())
	}
	if w.Steps() != 30 {
		t.Fatalf("Steps() = %d, want 30", w.Steps())
	}
}

func TestStepSkipsInvalidDT(t *testing.T) {
	w := swirlWorld(t)
	before := slices.Clone(w.Grid().VelocityX().Cells())
	for _, dt := range []float64{0, -1, math.NaN()} {
		w.Step(dt)
	}
	if w.Steps() != 0 {
		t.Fatalf("Steps() = %d after invalid dt, want 0", w.Steps())
	}
	if !slices.Equal(before, w.Grid().VelocityX().Cells()) {
		t.Fatalf("invalid dt changed the velocity field")
	}
}

func TestStepClampsLongFrames(t *testing.T) {
	a := swirlWorld(t)
	b := swirlWorld(t)
	a.Step(5)
	b.Step(MaxStep)
	if !slices.Equal(a.Grid().VelocityX().Cells(), b.Grid().VelocityX().Cells()) ||
		!slices.Equal(a.Grid().VelocityY().Cells(), b.Grid().VelocityY().Cells()) {
		t.Fatalf("a 5s step should integrate exactly MaxStep")
	}
}

func TestStillSmokeIsUnchangedWithoutForces(t *testing.T) {
	cfg := quietConfig(10, 10, 4)
	cfg.Params.SmokeDiffusion = 0
	w := NewWithConfig(cfg)
	g := w.Grid()
	g.SetSmoke(4, 4, Smoke{R: 200, G: 10, B: 30, T: 5})
	g.SetSmoke(6, 3, Smoke{R: 1, G: 2, B: 3, T: 4})
	g.SetSolid(2, 7, true)
	g.SetSmoke(2, 7, Smoke{R: 255, G: 255, B: 255, T: 100})
	before := snapshotSmoke(g)

	for range 5 {
		w.Step(1.0 / 30)
	}
	if !slices.Equal(before, snapshotSmoke(w.Grid())) {
		t.Fatalf("smoke changed with zero velocity and no diffusion")
	}
}

func TestBrushStrokeStaysNearlyDivergenceFree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cols, cfg.Rows, cfg.CellSize = 20, 20, 10
	cfg.Params.BrushRadius = 3
	cfg.Params.BrushForce = 0.02
	w := NewWithConfig(cfg)
	g := w.Grid()

	w.Brush(95, 100, 105, 100)
	if g.VX(9, 9) <= 0 || g.VX(9, 10) <= 0 {
		t.Fatalf("stroke did not push faces under it: %g %g", g.VX(9, 9), g.VX(9, 10))
	}
	for _, v := range g.VelocityY().Cells() {
		if v != 0 {
			t.Fatalf("horizontal stroke wrote vertical velocity %g", v)
		}
	}
	vx := g.VelocityX()
	for j := 0; j < vx.H; j++ {
		for i := 0; i < vx.W; i++ {
			if (i < 5 || i > 13 || j < 6 || j > 13) && vx.At(i, j) != 0 {
				t.Fatalf("face (%d,%d) outside brush reach = %g", i, j, vx.At(i, j))
			}
		}
	}

	w.Step(1.0 / 60)
	if g := w.Grid(); g.VX(9, 9) == 0 || g.VX(9, 10) == 0 {
		t.Fatalf("stroke velocity vanished after one step")
	}
	if got := maxAbsDivergence(w.Grid()); got >= 1e-2 {
		t.Fatalf("residual divergence = %g", got)
	}
	if got := w.Grid().Stats().MaxDivergence; got >= 1e-2 {
		t.Fatalf("stored divergence = %g", got)
	}
	assertBoundary(t, w.Grid())
}

func TestResetAndLoad(t *testing.T) {
	w := New(16, 12)
	w.Grid().SetVX(3, 3, 4)
	w.Step(0.01)
	w.Reset(0)
	if w.Steps() != 0 || w.Grid().VX(3, 3) != 0 {
		t.Fatalf("Reset kept state")
	}

	w.Load(nil)
	if w.Size().W != 16 || w.Size().H != 12 {
		t.Fatalf("nil load replaced the grid")
	}

	g := NewGrid(30, 20, 5, 0)
	g.solid.Set(4, 4, true)
	g.vx.Cur.Set(3, 4, 9)
	w.Load(g)
	if w.Grid() != g {
		t.Fatalf("Load did not install the grid")
	}
	if c := w.Config(); c.Cols != 30 || c.Rows != 20 || c.CellSize != 5 {
		t.Fatalf("Load left config at %dx%d@%d", c.Cols, c.Rows, c.CellSize)
	}
	assertBoundary(t, g)
}

func TestGridDimensionsAreRaisedToMinimum(t *testing.T) {
	g := NewGrid(1, 0, 0, 0)
	if g.Cols() != MinGridSize || g.Rows() != MinGridSize || g.CellSize() != 1 {
		t.Fatalf("grid = %dx%d@%d", g.Cols(), g.Rows(), g.CellSize())
	}
	if g.Solid(1, 1) {
		t.Fatalf("single interior cell should be fluid")
	}
	w := New(1, 1)
	w.Step(0.05)
	assertBoundary(t, w.Grid())
}

package smoke

import (
	"math"
	"testing"
)

func TestSampleAtNodesReturnsNodeValue(t *testing.T) {
	g := NewGrid(8, 6, 4, 0)
	g.SetVX(2, 3, 5)
	g.SetVY(4, 2, -3)
	g.SetSmoke(3, 2, Smoke{R: 10, G: 20, B: 30, T: 40})

	if got := g.Sample(FieldVX, 2.5, 3); got != 5 {
		t.Fatalf("vx at its face = %g, want 5", got)
	}
	if got := g.Sample(FieldVY, 4, 2.5); got != -3 {
		t.Fatalf("vy at its face = %g, want -3", got)
	}
	if got := g.SampleSmoke(3.5, 2.5); got != (Smoke{R: 10, G: 20, B: 30, T: 40}) {
		t.Fatalf("smoke at cell centre = %+v", got)
	}
	if got := g.Sample(FieldT, 3.5, 2.5); got != 40 {
		t.Fatalf("temperature at cell centre = %g, want 40", got)
	}
}

func TestSampleInterpolatesBetweenNodes(t *testing.T) {
	g := NewGrid(8, 6, 4, 0)
	g.SetVX(2, 2, 2)
	g.SetVX(3, 2, 4)
	if got := g.Sample(FieldVX, 3, 2); math.Abs(got-3) > 1e-12 {
		t.Fatalf("vx halfway between faces = %g, want 3", got)
	}
	// Halfway between rows 2 and 3 where row 3 is still zero.
	if got := g.Sample(FieldVX, 2.5, 2.5); math.Abs(got-1) > 1e-12 {
		t.Fatalf("vx halfway between rows = %g, want 1", got)
	}
}

func TestSampleClampsOutOfRange(t *testing.T) {
	g := NewGrid(6, 5, 4, 0)
	g.SetSmoke(1, 1, Smoke{R: 9, T: 1})
	g.SetSmoke(0, 0, Smoke{R: 7, T: 2})

	if got := g.SampleSmoke(-50, -50); got.R != 7 || got.T != 2 {
		t.Fatalf("far top-left sample = %+v, want corner cell", got)
	}
	corner := g.Smoke(g.Cols()-1, g.Rows()-1)
	if got := g.SampleSmoke(1e300, 1e300); got != corner {
		t.Fatalf("far bottom-right sample = %+v, want %+v", got, corner)
	}
	if got := g.Sample(FieldVY, -3, 1e9); got != 0 {
		t.Fatalf("vy outside grid = %g, want 0", got)
	}
}

func TestSampleNonFiniteReturnsDefault(t *testing.T) {
	g := NewGrid(5, 5, 2, 21)
	g.SetVX(1, 1, 3)
	if got := g.Sample(FieldVX, math.NaN(), 1); got != 0 {
		t.Fatalf("vx at NaN = %g, want 0", got)
	}
	if got := g.SampleSmoke(math.Inf(1), 0); got != (Smoke{T: 21}) {
		t.Fatalf("smoke at +Inf = %+v, want ambient", got)
	}
	if got := g.Smoke(-1, 2); got != (Smoke{T: 21}) {
		t.Fatalf("smoke outside grid = %+v, want ambient", got)
	}
}

func TestCellVelocityAveragesFaces(t *testing.T) {
	g := NewGrid(6, 6, 4, 0)
	g.SetVX(1, 2, 2)
	g.SetVX(2, 2, 4)
	g.SetVY(2, 1, -1)
	g.SetVY(2, 2, -3)
	u, v := g.CellVelocity(2, 2)
	if math.Abs(u-3) > 1e-12 || math.Abs(v+2) > 1e-12 {
		t.Fatalf("CellVelocity = (%g,%g), want (3,-2)", u, v)
	}
}

func TestLayoutForHonoursMinimumResolution(t *testing.T) {
	cell, cols, rows := LayoutFor(1280, 720, 120)
	if cell != 6 || cols != 213 || rows != 120 {
		t.Fatalf("LayoutFor(1280,720,120) = %d,%d,%d", cell, cols, rows)
	}
	cell, cols, rows = LayoutFor(50, 40, 200)
	if cell != 1 || cols != 50 || rows != 40 {
		t.Fatalf("small viewport layout = %d,%d,%d", cell, cols, rows)
	}
	if _, cols, rows = LayoutFor(0, 10, 10); cols != MinGridSize || rows != MinGridSize {
		t.Fatalf("empty viewport layout = %d,%d", cols, rows)
	}
}

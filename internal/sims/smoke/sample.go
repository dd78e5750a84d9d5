package smoke

import (
	"fmt"
	"math"

	"smokegate/internal/core"
)

// Field names one sampled quantity of the grid.
type Field uint8

const (
	FieldVX Field = iota
	FieldVY
	FieldR
	FieldG
	FieldB
	FieldT
)

// offset returns the staggering shift subtracted from sample coordinates.
// Velocity coordinates put cell (i,j)'s centre at (i,j); smoke coordinates
// put it at (i+0.5, j+0.5), which is pixel position divided by cell size.
func (f Field) offset() (float64, float64) {
	switch f {
	case FieldVX:
		return 0.5, 0
	case FieldVY:
		return 0, 0.5
	case FieldR, FieldG, FieldB, FieldT:
		return 0.5, 0.5
	default:
		panic(fmt.Sprintf("smoke: unknown field %d", f))
	}
}

// stencil holds the four clamped neighbour indices and fractional weights of
// a bilinear lookup.
type stencil struct {
	i0, i1 int
	j0, j1 int
	tx, ty float64
}

func newStencil(x, y float64, w, h int) (stencil, bool) {
	if w <= 0 || h <= 0 || math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return stencil{}, false
	}
	// Past one cell outside the field every lookup hits the same clamped
	// edge, so pinning here only keeps the int conversion in range.
	x = core.Clamp(x, -1, float64(w))
	y = core.Clamp(y, -1, float64(h))
	fx := math.Floor(x)
	fy := math.Floor(y)
	i0 := int(fx)
	j0 := int(fy)
	return stencil{
		i0: core.ClampInt(i0, 0, w-1),
		i1: core.ClampInt(i0+1, 0, w-1),
		j0: core.ClampInt(j0, 0, h-1),
		j1: core.ClampInt(j0+1, 0, h-1),
		tx: x - fx,
		ty: y - fy,
	}, true
}

func (s stencil) mix(v00, v10, v01, v11 float64) float64 {
	return (1-s.tx)*(1-s.ty)*v00 + s.tx*(1-s.ty)*v10 + (1-s.tx)*s.ty*v01 + s.tx*s.ty*v11
}

func sampleField(src *core.Grid[float64], f Field, x, y, def float64) float64 {
	ox, oy := f.offset()
	st, ok := newStencil(x-ox, y-oy, src.W, src.H)
	if !ok {
		return def
	}
	return st.mix(src.At(st.i0, st.j0), src.At(st.i1, st.j0), src.At(st.i0, st.j1), src.At(st.i1, st.j1))
}

func sampleSmoke(src *core.Grid[Smoke], x, y float64, def Smoke) Smoke {
	ox, oy := FieldT.offset()
	st, ok := newStencil(x-ox, y-oy, src.W, src.H)
	if !ok {
		return def
	}
	a := src.At(st.i0, st.j0)
	b := src.At(st.i1, st.j0)
	c := src.At(st.i0, st.j1)
	d := src.At(st.i1, st.j1)
	return Smoke{
		R: st.mix(a.R, b.R, c.R, d.R),
		G: st.mix(a.G, b.G, c.G, d.G),
		B: st.mix(a.B, b.B, c.B, d.B),
		T: st.mix(a.T, b.T, c.T, d.T),
	}
}

// Sample bilinearly interpolates one field at continuous coordinates. Out of
// range coordinates clamp to the nearest edge value; non-finite coordinates
// return the field's default (0 for velocity, ambient for smoke).
func (g *Grid) Sample(f Field, x, y float64) float64 {
	switch f {
	case FieldVX:
		return sampleField(g.vx.Cur, f, x, y, 0)
	case FieldVY:
		return sampleField(g.vy.Cur, f, x, y, 0)
	case FieldR:
		return g.SampleSmoke(x, y).R
	case FieldG:
		return g.SampleSmoke(x, y).G
	case FieldB:
		return g.SampleSmoke(x, y).B
	case FieldT:
		return g.SampleSmoke(x, y).T
	default:
		panic(fmt.Sprintf("smoke: unknown field %d", f))
	}
}

// SampleSmoke interpolates all smoke channels at once.
func (g *Grid) SampleSmoke(x, y float64) Smoke {
	return sampleSmoke(g.smoke.Cur, x, y, Smoke{T: g.ambient})
}

// SampleVelocity interpolates both velocity components at (x, y).
func (g *Grid) SampleVelocity(x, y float64) (float64, float64) {
	return sampleField(g.vx.Cur, FieldVX, x, y, 0), sampleField(g.vy.Cur, FieldVY, x, y, 0)
}

// CellVelocity returns the velocity at the centre of cell (i,j).
func (g *Grid) CellVelocity(i, j int) (float64, float64) {
	return g.SampleVelocity(float64(i), float64(j))
}

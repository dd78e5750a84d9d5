package smoke

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats summarises the grid for diagnostics and telemetry.
type Stats struct {
	FluidCells     int
	MaxDivergence  float64
	MeanDivergence float64
	KineticEnergy  float64
	SmokeMass      float64
}

// Stats computes residual divergence norms, kinetic energy and total smoke
// intensity over fluid cells.
func (g *Grid) Stats() Stats {
	var s Stats
	div := g.div.Cells()
	s.MaxDivergence = floats.Norm(div, math.Inf(1))

	for j := 0; j < g.rows; j++ {
		for i := 0; i < g.cols; i++ {
			if g.solid.At(i, j) {
				continue
			}
			s.FluidCells++
			s.SmokeMass += g.smoke.Cur.At(i, j).Density()
		}
	}
	if s.FluidCells > 0 {
		s.MeanDivergence = floats.Norm(div, 1) / float64(s.FluidCells)
	}
	s.KineticEnergy = g.KineticEnergy()
	return s
}

// KineticEnergy returns half the summed squared face velocities.
func (g *Grid) KineticEnergy() float64 {
	vx := g.vx.Cur.Cells()
	vy := g.vy.Cur.Cells()
	return 0.5 * (floats.Dot(vx, vx) + floats.Dot(vy, vy))
}

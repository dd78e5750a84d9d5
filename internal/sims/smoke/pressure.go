package smoke

const (
	// PressureIterations is the fixed number of relaxation sweeps per step.
	// There is no convergence test; the residual shows up in the
	// divergence render mode.
	PressureIterations = 10
	// Overrelaxation is the SOR factor applied to every correction.
	Overrelaxation = 1.7
)

// project runs the fixed SOR sweeps that push the velocity field toward zero
// divergence.
func (g *Grid) project() {
	for range PressureIterations {
		g.relax()
	}
}

// relax performs one in-place Gauss-Seidel sweep with over-relaxation and
// records each cell's pre-correction divergence.
func (g *Grid) relax() {
	vx, vy := g.vx.Cur, g.vy.Cur
	for j := 1; j < g.rows-1; j++ {
		for i := 1; i < g.cols-1; i++ {
			if g.solid.At(i, j) {
				continue
			}
			sx0 := g.fluidWeight(i-1, j)
			sx1 := g.fluidWeight(i+1, j)
			sy0 := g.fluidWeight(i, j-1)
			sy1 := g.fluidWeight(i, j+1)
			s := sx0 + sx1 + sy0 + sy1
			if s == 0 {
				continue
			}

			div := vx.At(i, j) - vx.At(i-1, j) + vy.At(i, j) - vy.At(i, j-1)
			g.div.Set(i, j, div)

			p := -div / s * Overrelaxation
			vx.Set(i-1, j, vx.At(i-1, j)-sx0*p)
			vx.Set(i, j, vx.At(i, j)+sx1*p)
			vy.Set(i, j-1, vy.At(i, j-1)-sy0*p)
			vy.Set(i, j, vy.At(i, j)+sy1*p)
		}
	}
}

func (g *Grid) fluidWeight(i, j int) float64 {
	if g.solid.At(i, j) {
		return 0
	}
	return 1
}

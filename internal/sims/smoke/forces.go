package smoke

import "smokegate/internal/core"

// applyForces adds buoyancy to vertical faces, havoc noise when enabled, and
// then frame-rate independent velocity decay.
func (w *World) applyForces(dt float64) {
	g := w.grid
	p := w.cfg.Params
	smoke := g.smoke.Cur
	vx, vy := g.vx.Cur, g.vy.Cur

	if p.TemperatureFactor != 0 || p.SmokeFactor != 0 {
		for j := 0; j < vy.H; j++ {
			for i := 0; i < vy.W; i++ {
				if g.solid.At(i, j) || g.solid.At(i, j+1) {
					continue
				}
				a := smoke.At(i, j)
				b := smoke.At(i, j+1)
				t := (a.T + b.T) / 2
				d := (a.Density() + b.Density()) / 2
				buoyancy := (-p.TemperatureFactor*(t-g.ambient) + p.SmokeFactor*d) * p.Gravity
				vy.Set(i, j, vy.At(i, j)+buoyancy*dt)
			}
		}
	}

	if w.cfg.BrushMode == BrushHavoc && p.HavocNoise != 0 {
		amp := p.HavocNoise * dt
		for j := 0; j < vx.H; j++ {
			for i := 0; i < vx.W; i++ {
				if g.solid.At(i, j) || g.solid.At(i+1, j) {
					continue
				}
				vx.Set(i, j, vx.At(i, j)+w.rng.Signed()*amp)
			}
		}
		for j := 0; j < vy.H; j++ {
			for i := 0; i < vy.W; i++ {
				if g.solid.At(i, j) || g.solid.At(i, j+1) {
					continue
				}
				vy.Set(i, j, vy.At(i, j)+w.rng.Signed()*amp)
			}
		}
	}

	decay := core.Clamp(1-dt*p.VelocityDecay, 0, 1)
	if decay == 1 {
		return
	}
	for _, cells := range [][]float64{vx.Cells(), vy.Cells()} {
		for k := range cells {
			cells[k] *= decay
		}
	}
}

package smoke

// advectSmoke transports the smoke field along the current velocity with a
// first-order semi-Lagrangian backtrace. Walls keep their payload, so solid
// glyphs keep feeding smoke into neighbouring fluid.
func (g *Grid) advectSmoke(dt float64) {
	src, dst := g.smoke.Cur, g.smoke.Next
	def := Smoke{T: g.ambient}
	for j := 0; j < g.rows; j++ {
		for i := 0; i < g.cols; i++ {
			if g.solid.At(i, j) {
				dst.Set(i, j, src.At(i, j))
				continue
			}
			u, v := g.CellVelocity(i, j)
			x := float64(i) + 0.5 - u*dt
			y := float64(j) + 0.5 - v*dt
			dst.Set(i, j, sampleSmoke(src, x, y, def))
		}
	}
	g.smoke.Swap()
}

// advectVelocity self-advects both face buffers. Both are traced against the
// pre-step velocity before either buffer is swapped.
func (g *Grid) advectVelocity(dt float64) {
	vx, nvx := g.vx.Cur, g.vx.Next
	for j := 0; j < vx.H; j++ {
		for i := 0; i < vx.W; i++ {
			if g.solid.At(i, j) || g.solid.At(i+1, j) {
				nvx.Set(i, j, 0)
				continue
			}
			x := float64(i) + 0.5
			y := float64(j)
			u, v := g.SampleVelocity(x, y)
			nvx.Set(i, j, sampleField(vx, FieldVX, x-u*dt, y-v*dt, 0))
		}
	}

	vy, nvy := g.vy.Cur, g.vy.Next
	for j := 0; j < vy.H; j++ {
		for i := 0; i < vy.W; i++ {
			if g.solid.At(i, j) || g.solid.At(i, j+1) {
				nvy.Set(i, j, 0)
				continue
			}
			x := float64(i)
			y := float64(j) + 0.5
			u, v := g.SampleVelocity(x, y)
			nvy.Set(i, j, sampleField(vy, FieldVY, x-u*dt, y-v*dt, 0))
		}
	}

	g.vx.Swap()
	g.vy.Swap()
}

package smoke

var neighbours4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// diffuseSmoke blends every fluid cell toward the mean of its fluid
// neighbours by rate, which must already be clamped to [0, 1].
func (g *Grid) diffuseSmoke(rate float64) {
	if rate <= 0 {
		return
	}
	src, dst := g.smoke.Cur, g.smoke.Next
	for j := 0; j < g.rows; j++ {
		for i := 0; i < g.cols; i++ {
			s := src.At(i, j)
			if g.solid.At(i, j) {
				dst.Set(i, j, s)
				continue
			}
			var sum Smoke
			tot := 0
			for _, d := range neighbours4 {
				ni, nj := i+d[0], j+d[1]
				if g.Solid(ni, nj) {
					continue
				}
				n := src.At(ni, nj)
				sum.R += n.R
				sum.G += n.G
				sum.B += n.B
				sum.T += n.T
				tot++
			}
			if tot == 0 {
				dst.Set(i, j, s)
				continue
			}
			inv := 1 / float64(tot)
			dst.Set(i, j, Smoke{
				R: s.R + (sum.R*inv-s.R)*rate,
				G: s.G + (sum.G*inv-s.G)*rate,
				B: s.B + (sum.B*inv-s.B)*rate,
				T: s.T + (sum.T*inv-s.T)*rate,
			})
		}
	}
	g.smoke.Swap()
}

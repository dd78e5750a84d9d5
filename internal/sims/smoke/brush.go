package smoke

import (
	"fmt"
	"math"
)

// segment is a drag from (x0,y0) to (x1,y1) in pixel space.
type segment struct {
	x0, y0, x1, y1 float64
}

func (s segment) degenerate() bool {
	for _, v := range [...]float64{s.x0, s.y0, s.x1, s.y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return s.x0 == s.x1 && s.y0 == s.y1
}

// closest returns the point on the segment nearest to (px, py).
func (s segment) closest(px, py float64) (float64, float64) {
	dx := s.x1 - s.x0
	dy := s.y1 - s.y0
	t := ((px-s.x0)*dx + (py-s.y0)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	return s.x0 + t*dx, s.y0 + t*dy
}

// forEachBrushCell visits every fluid cell whose centre lies within radius
// cells of the segment, with the falloff weight exp(-d²/(radius*cellSize)²).
func (g *Grid) forEachBrushCell(seg segment, radius float64, fn func(i, j int, weight float64)) {
	if seg.degenerate() || !(radius > 0) {
		return
	}
	cs := float64(g.cellSize)
	reach := radius * cs
	reach2 := reach * reach

	i0 := int(math.Floor(math.Min(seg.x0, seg.x1)/cs - radius))
	i1 := int(math.Ceil(math.Max(seg.x0, seg.x1)/cs + radius))
	j0 := int(math.Floor(math.Min(seg.y0, seg.y1)/cs - radius))
	j1 := int(math.Ceil(math.Max(seg.y0, seg.y1)/cs + radius))
	i0, i1 = max(i0, 1), min(i1, g.cols-2)
	j0, j1 = max(j0, 1), min(j1, g.rows-2)

	for j := j0; j <= j1; j++ {
		for i := i0; i <= i1; i++ {
			if g.solid.At(i, j) {
				continue
			}
			cx := (float64(i) + 0.5) * cs
			cy := (float64(j) + 0.5) * cs
			px, py := seg.closest(cx, cy)
			d2 := (cx-px)*(cx-px) + (cy-py)*(cy-py)
			if d2 > reach2 {
				continue
			}
			fn(i, j, math.Exp(-d2/reach2))
		}
	}
}

// injectVelocity adds the drag vector (in cells) scaled by force and falloff
// to the four faces of every touched cell.
func (g *Grid) injectVelocity(seg segment, radius, force float64) {
	cs := float64(g.cellSize)
	dx := (seg.x1 - seg.x0) / cs
	dy := (seg.y1 - seg.y0) / cs
	vx, vy := g.vx.Cur, g.vy.Cur
	g.forEachBrushCell(seg, radius, func(i, j int, weight float64) {
		w := weight * force
		if !g.solid.At(i-1, j) {
			vx.Set(i-1, j, vx.At(i-1, j)+dx*w)
		}
		if !g.solid.At(i+1, j) {
			vx.Set(i, j, vx.At(i, j)+dx*w)
		}
		if !g.solid.At(i, j-1) {
			vy.Set(i, j-1, vy.At(i, j-1)+dy*w)
		}
		if !g.solid.At(i, j+1) {
			vy.Set(i, j, vy.At(i, j)+dy*w)
		}
	})
}

// injectSmoke paints full-intensity white smoke at temperature hot.
func (g *Grid) injectSmoke(seg segment, radius, hot float64) {
	white := Smoke{R: 255, G: 255, B: 255, T: hot}
	g.forEachBrushCell(seg, radius, func(i, j int, _ float64) {
		g.smoke.Cur.Set(i, j, white)
	})
}

// Brush applies a pointer drag from (lastX,lastY) to (x,y), both in pixels
// of the rendered surface, according to the current brush mode. A zero
// length drag does nothing.
func (w *World) Brush(lastX, lastY, x, y float64) {
	seg := segment{x0: lastX, y0: lastY, x1: x, y1: y}
	p := w.cfg.Params
	switch w.cfg.BrushMode {
	case BrushVelocity, BrushHavoc:
		w.grid.injectVelocity(seg, p.BrushRadius, p.BrushForce)
	case BrushSmoke:
		w.grid.injectSmoke(seg, p.BrushRadius, p.HotTemperature)
	default:
		panic(fmt.Sprintf("smoke: unhandled brush mode %v", w.cfg.BrushMode))
	}
}

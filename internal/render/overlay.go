package render

import (
	"image"
	"image/color"
	"math"

	"smokegate/internal/sims/smoke"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// drawGridLines composites one-pixel lines along every interior cell
// boundary.
func drawGridLines(img *image.RGBA, cellSize int, c color.RGBA) {
	if cellSize < 2 {
		return
	}
	src := image.NewUniform(c)
	b := img.Bounds()
	for x := cellSize; x < b.Dx(); x += cellSize {
		draw.Draw(img, image.Rect(x, 0, x+1, b.Dy()), src, image.Point{}, draw.Over)
	}
	for y := cellSize; y < b.Dy(); y += cellSize {
		draw.Draw(img, image.Rect(0, y, b.Dx(), y+1), src, image.Point{}, draw.Over)
	}
}

const (
	arrowHalfWidth = 0.6
	arrowHeadWidth = 2.5
	minArrowLength = 0.75
)

// drawArrows rasterises one arrow per stride cells from the cell-centre
// velocity, all accumulated into a single path.
func (r *FieldRenderer) drawArrows(g *smoke.Grid) {
	stride := max(r.opts.ArrowStride, 1)
	cs := float64(g.CellSize())
	maxLen := float64(stride) * cs

	w, h := r.img.Rect.Dx(), r.img.Rect.Dy()
	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	} else {
		r.z.Reset(w, h)
	}

	drawn := 0
	for j := stride / 2; j < g.Rows(); j += stride {
		for i := stride / 2; i < g.Cols(); i += stride {
			if g.Solid(i, j) {
				continue
			}
			u, v := g.CellVelocity(i, j)
			dx := u * r.opts.ArrowScale * cs
			dy := v * r.opts.ArrowScale * cs
			length := math.Hypot(dx, dy)
			if !(length >= minArrowLength) {
				continue
			}
			if length > maxLen {
				dx, dy = dx/length*maxLen, dy/length*maxLen
				length = maxLen
			}
			cx := (float64(i) + 0.5) * cs
			cy := (float64(j) + 0.5) * cs
			addArrow(r.z, cx, cy, dx, dy, length, cs)
			drawn++
		}
	}
	if drawn > 0 {
		r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(r.opts.ArrowColor), image.Point{})
	}
}

func addArrow(z *vector.Rasterizer, x, y, dx, dy, length, cs float64) {
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux
	head := math.Min(length*0.4, math.Max(2, cs*0.5))
	bx, by := x+dx-ux*head, y+dy-uy*head

	quad := [4][2]float64{
		{x + nx*arrowHalfWidth, y + ny*arrowHalfWidth},
		{bx + nx*arrowHalfWidth, by + ny*arrowHalfWidth},
		{bx - nx*arrowHalfWidth, by - ny*arrowHalfWidth},
		{x - nx*arrowHalfWidth, y - ny*arrowHalfWidth},
	}
	z.MoveTo(float32(quad[0][0]), float32(quad[0][1]))
	for _, p := range quad[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()

	z.MoveTo(float32(bx+nx*arrowHeadWidth), float32(by+ny*arrowHeadWidth))
	z.LineTo(float32(x+dx), float32(y+dy))
	z.LineTo(float32(bx-nx*arrowHeadWidth), float32(by-ny*arrowHeadWidth))
	z.ClosePath()
}

// Package render turns a smoke grid into pixels.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"smokegate/internal/sims/smoke"

	"golang.org/x/image/vector"
)

// Options controls colouring and overlays.
type Options struct {
	Mode       Mode
	Background color.RGBA

	GridLines bool
	GridColor color.RGBA

	Arrows      bool
	ArrowStride int
	// ArrowScale converts cells/second into arrow length in cells.
	ArrowScale float64
	ArrowColor color.RGBA

	MaxSpeed      float64
	MaxDivergence float64
}

// DefaultOptions returns the standard renderer settings.
func DefaultOptions() Options {
	return Options{
		Mode:          ModeSmoke,
		Background:    color.RGBA{R: 12, G: 12, B: 16, A: 255},
		GridColor:     color.RGBA{R: 60, G: 60, B: 70, A: 255},
		ArrowStride:   4,
		ArrowScale:    0.25,
		ArrowColor:    color.RGBA{R: 255, G: 200, B: 40, A: 255},
		MaxSpeed:      20,
		MaxDivergence: 1,
	}
}

// FieldRenderer fills an RGBA buffer of cols*cellSize by rows*cellSize
// pixels from a grid. It reuses its buffer between frames, so the returned
// image is only valid until the next Render call.
type FieldRenderer struct {
	opts Options
	img  *image.RGBA
	z    *vector.Rasterizer
}

// NewFieldRenderer returns a renderer using opts.
func NewFieldRenderer(opts Options) *FieldRenderer {
	return &FieldRenderer{opts: opts}
}

// Options returns the active settings.
func (r *FieldRenderer) Options() Options { return r.opts }

// SetOptions replaces the active settings.
func (r *FieldRenderer) SetOptions(opts Options) { r.opts = opts }

// Render paints g and returns the shared buffer.
func (r *FieldRenderer) Render(g *smoke.Grid) *image.RGBA {
	w, h := g.PixelSize()
	if r.img == nil || r.img.Rect.Dx() != w || r.img.Rect.Dy() != h {
		r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	r.fillCells(g)
	if r.opts.GridLines {
		drawGridLines(r.img, g.CellSize(), r.opts.GridColor)
	}
	if r.opts.Arrows {
		r.drawArrows(g)
	}
	return r.img
}

func (r *FieldRenderer) fillCells(g *smoke.Grid) {
	cs := g.CellSize()
	stride := r.img.Stride
	pix := r.img.Pix
	for j := 0; j < g.Rows(); j++ {
		for i := 0; i < g.Cols(); i++ {
			c := r.cellColor(g, i, j)
			for y := j * cs; y < (j+1)*cs; y++ {
				row := y*stride + i*cs*4
				for x := 0; x < cs; x++ {
					base := row + x*4
					pix[base+0] = c.R
					pix[base+1] = c.G
					pix[base+2] = c.B
					pix[base+3] = c.A
				}
			}
		}
	}
}

func (r *FieldRenderer) cellColor(g *smoke.Grid, i, j int) color.RGBA {
	if g.Solid(i, j) {
		return r.opts.Background
	}
	switch r.opts.Mode {
	case ModeSmoke:
		s := g.Smoke(i, j)
		return color.RGBA{R: channel(s.R), G: channel(s.G), B: channel(s.B), A: 255}
	case ModeVelocity:
		u, v := g.CellVelocity(i, j)
		return speedColor(math.Hypot(u, v), r.opts.MaxSpeed)
	case ModeDivergence:
		return divergenceColor(g.Divergence(i, j), r.opts.MaxDivergence)
	default:
		panic(fmt.Sprintf("render: unhandled mode %v", r.opts.Mode))
	}
}

func channel(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func unit(v, scale float64) float64 {
	if !(scale > 0) || math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v/scale))
}

// speedColor ramps black to cyan over the first half of the range and cyan
// to white over the second.
func speedColor(speed, maxSpeed float64) color.RGBA {
	t := unit(speed, maxSpeed)
	if t <= 0.5 {
		c := channel(510 * t)
		return color.RGBA{R: 0, G: c, B: c, A: 255}
	}
	return color.RGBA{R: channel(510 * (t - 0.5)), G: 255, B: 255, A: 255}
}

// divergenceColor is white at zero, red for outflow and blue for inflow.
func divergenceColor(div, maxDiv float64) color.RGBA {
	t := unit(div, maxDiv)
	fade := channel(255 * (1 - math.Abs(t)))
	if t >= 0 {
		return color.RGBA{R: 255, G: fade, B: fade, A: 255}
	}
	return color.RGBA{R: fade, G: fade, B: 255, A: 255}
}

package raster

import (
	"image"
	"image/color"
	"math"
	"strings"

	"smokegate/internal/sims/smoke"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FromText renders caption centred across the container and turns every
// bright interior pixel into a solid cell carrying hot white smoke. The
// glyphs then act as emitters outlining the text.
func FromText(caption string, opts Options) (*smoke.Grid, error) {
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return nil, ErrEmptyCaption
	}
	l, err := opts.LayoutFor()
	if err != nil {
		return nil, err
	}

	glyphs := renderLine(caption)
	canvas := image.NewRGBA(image.Rect(0, 0, l.Cols, l.Rows))
	draw.NearestNeighbor.Scale(canvas, textRect(glyphs.Bounds(), canvas.Bounds(), opts.TextWidth), glyphs, glyphs.Bounds(), draw.Src, nil)

	g := l.NewGrid(opts.Ambient)
	hot := smoke.Smoke{R: 255, G: 255, B: 255, T: opts.Hot}
	for j := 1; j < l.Rows-1; j++ {
		for i := 1; i < l.Cols-1; i++ {
			c := canvas.RGBAAt(i, j)
			if brightness(c) <= opts.Threshold {
				continue
			}
			g.SetSolid(i, j, true)
			g.SetSmoke(i, j, hot)
		}
	}
	return g, nil
}

// renderLine draws caption in white on black at the font's native size.
func renderLine(caption string) *image.RGBA {
	face := basicfont.Face7x13
	m := face.Metrics()
	d := &font.Drawer{Src: image.NewUniform(color.White), Face: face}
	w := max(d.MeasureString(caption).Ceil(), 1)
	h := (m.Ascent + m.Descent).Ceil()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	d.Dst = img
	d.Dot = fixed.Point26_6{Y: m.Ascent}
	d.DrawString(caption)
	return img
}

// textRect scales src to span frac of dst's width, shrinking further if the
// result would be taller than frac of dst's height.
func textRect(src, dst image.Rectangle, frac float64) image.Rectangle {
	if !(frac > 0) || frac > 1 {
		frac = 0.8
	}
	scale := frac * float64(dst.Dx()) / float64(src.Dx())
	scale = math.Min(scale, frac*float64(dst.Dy())/float64(src.Dy()))
	w := max(int(math.Round(float64(src.Dx())*scale)), 1)
	h := max(int(math.Round(float64(src.Dy())*scale)), 1)
	x := dst.Min.X + (dst.Dx()-w)/2
	y := dst.Min.Y + (dst.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func brightness(c color.RGBA) float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3
}

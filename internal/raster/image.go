package raster

import (
	"image"
	"image/color"
	"strings"

	"smokegate/internal/sims/smoke"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// captionBaseline is the distance from the bottom edge to the caption
// baseline, in cells.
const captionBaseline = 4

// FromImage sizes a grid to img's aspect ratio within the container layout,
// scales the image onto it one pixel per cell, optionally stamps caption
// along the bottom edge, and copies each interior pixel's colour into the
// smoke field at ambient temperature. Border cells keep their blank payload.
func FromImage(img image.Image, caption string, opts Options) (*smoke.Grid, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	l, err := opts.LayoutFor()
	if err != nil {
		return nil, err
	}
	fit := fitRect(img.Bounds(), image.Rect(0, 0, l.Cols, l.Rows))
	l.Cols = max(fit.Dx(), smoke.MinGridSize)
	l.Rows = max(fit.Dy(), smoke.MinGridSize)

	canvas := image.NewRGBA(image.Rect(0, 0, l.Cols, l.Rows))
	draw.CatmullRom.Scale(canvas, canvas.Bounds(), img, img.Bounds(), draw.Src, nil)
	if caption = strings.TrimSpace(caption); caption != "" {
		drawCaption(canvas, caption)
	}

	g := l.NewGrid(opts.Ambient)
	for j := 1; j < l.Rows-1; j++ {
		for i := 1; i < l.Cols-1; i++ {
			c := canvas.RGBAAt(i, j)
			g.SetSmoke(i, j, smoke.Smoke{
				R: float64(c.R),
				G: float64(c.G),
				B: float64(c.B),
				T: opts.Ambient,
			})
		}
	}
	return g, nil
}

// fitRect scales src to the largest rectangle of the same aspect ratio that
// fits in dst, centred.
func fitRect(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()
	w, h := dw, sh*dw/sw
	if h > dh {
		w, h = sw*dh/sh, dh
	}
	w, h = max(w, 1), max(h, 1)
	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func drawCaption(dst *image.RGBA, caption string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(caption)
	x := (fixed.I(dst.Bounds().Dx()) - width) / 2
	d.Dot = fixed.Point26_6{X: x, Y: fixed.I(dst.Bounds().Dy() - captionBaseline)}
	d.DrawString(caption)
}

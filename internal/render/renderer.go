//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a rendered field buffer into an ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a w*h pixel buffer.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
}

// Blit uploads src and draws it at (offsetX, offsetY). The painter follows
// the buffer size, so grid reinitialisation needs no extra bookkeeping.
func (gp *GridPainter) Blit(dst *ebiten.Image, src *image.RGBA, offsetX, offsetY float64) {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	if w != gp.w || h != gp.h {
		gp.resize(w, h)
	}
	gp.img.WritePixels(src.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(offsetX, offsetY)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

//go:build ebiten

package ui

import (
	"smokegate/internal/sims/smoke"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawCursor strokes the brush footprint around the hover position, tinted
// by brush mode.
func DrawCursor(screen *ebiten.Image, x, y, radius float64, mode smoke.BrushMode) {
	if radius <= 0 {
		return
	}
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), ringWidth(radius), brushColor(mode), true)
}

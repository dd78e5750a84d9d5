package smoke

import (
	"math"
	"slices"
	"testing"
)

func quietConfig(cols, rows, cellSize int) Config {
	cfg := DefaultConfig()
	cfg.Cols = cols
	cfg.Rows = rows
	cfg.CellSize = cellSize
	cfg.Params.TemperatureFactor = 0
	cfg.Params.SmokeFactor = 0
	cfg.Params.HavocNoise = 0
	return cfg
}

func assertBoundary(t *testing.T, g *Grid) {
	t.Helper()
	for j := 0; j < g.Rows(); j++ {
		for i := 0; i < g.Cols(); i++ {
			if g.isBorder(i, j) && !g.Solid(i, j) {
				t.Fatalf("border cell (%d,%d) is not solid", i, j)
			}
		}
	}
	vx := g.VelocityX()
	for j := 0; j < vx.H; j++ {
		for i := 0; i < vx.W; i++ {
			if (g.Solid(i, j) || g.Solid(i+1, j)) && vx.At(i, j) != 0 {
				t.Fatalf("vx face (%d,%d) next to a wall = %g", i, j, vx.At(i, j))
			}
		}
	}
	vy := g.VelocityY()
	for j := 0; j < vy.H; j++ {
		for i := 0; i < vy.W; i++ {
			if (g.Solid(i, j) || g.Solid(i, j+1)) && vy.At(i, j) != 0 {
				t.Fatalf("vy face (%d,%d) next to a wall = %g", i, j, vy.At(i, j))
			}
		}
	}
}

func snapshotSmoke(g *Grid) []Smoke {
	return slices.Clone(g.smoke.Cur.Cells())
}

func maxAbsDivergence(g *Grid) float64 {
	m := 0.0
	for j := 1; j < g.Rows()-1; j++ {
		for i := 1; i < g.Cols()-1; i++ {
			if g.Solid(i, j) {
				continue
			}
			m = math.Max(m, math.Abs(g.DivergenceAt(i, j)))
		}
	}
	return m
}

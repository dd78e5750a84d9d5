package smoke

import "smokegate/internal/core"

// MinGridSize is the smallest grid edge: one fluid cell inside a solid ring.
const MinGridSize = 3

// Smoke is the scalar payload of a cell: visible colour channels (0-255) and
// temperature.
type Smoke struct {
	R, G, B float64
	T       float64
}

// Density is the summed colour intensity used by buoyancy.
func (s Smoke) Density() float64 { return s.R + s.G + s.B }

// Grid holds the staggered MAC-grid state of the simulation. Dimensions are
// fixed for the lifetime of a Grid; reinitialisation builds a new one.
//
// vx[i][j] is the face between cells (i,j) and (i+1,j); vy[i][j] is the face
// between cells (i,j) and (i,j+1).
type Grid struct {
	cols, rows int
	cellSize   int
	ambient    float64

	smoke core.PingPong[Smoke]
	vx    core.PingPong[float64]
	vy    core.PingPong[float64]
	solid *core.Grid[bool]
	div   *core.Grid[float64]
}

// NewGrid allocates a grid with a solid border, zero velocity and ambient
// smoke. Dimensions below MinGridSize are raised to it.
func NewGrid(cols, rows, cellSize int, ambient float64) *Grid {
	cols = max(cols, MinGridSize)
	rows = max(rows, MinGridSize)
	cellSize = max(cellSize, 1)
	g := &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		ambient:  ambient,
		smoke:    core.NewPingPong[Smoke](cols, rows),
		vx:       core.NewPingPong[float64](cols-1, rows),
		vy:       core.NewPingPong[float64](cols, rows-1),
		solid:    core.NewGrid[bool](cols, rows),
		div:      core.NewGrid[float64](cols, rows),
	}
	blank := Smoke{T: ambient}
	g.smoke.Cur.Fill(blank)
	g.smoke.Next.Fill(blank)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			if g.isBorder(i, j) {
				g.solid.Set(i, j, true)
			}
		}
	}
	return g
}

// LayoutFor derives the cell size and grid dimensions for a viewport so that
// the shorter side spans at least minResolution cells.
func LayoutFor(viewW, viewH, minResolution int) (cellSize, cols, rows int) {
	if viewW <= 0 || viewH <= 0 {
		return 1, MinGridSize, MinGridSize
	}
	minResolution = max(minResolution, MinGridSize)
	cellSize = max(min(viewW, viewH)/minResolution, 1)
	cols = max(viewW/cellSize, MinGridSize)
	rows = max(viewH/cellSize, MinGridSize)
	return cellSize, cols, rows
}

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the pixel edge of one cell.
func (g *Grid) CellSize() int { return g.cellSize }

// Ambient returns the ambient temperature the grid was created with.
func (g *Grid) Ambient() float64 { return g.ambient }

// Size reports the grid dimensions in cells.
func (g *Grid) Size() core.Size { return core.Size{W: g.cols, H: g.rows} }

// PixelSize reports the dimensions of the rendered surface.
func (g *Grid) PixelSize() (int, int) { return g.cols * g.cellSize, g.rows * g.cellSize }

func (g *Grid) isBorder(i, j int) bool {
	return i == 0 || j == 0 || i == g.cols-1 || j == g.rows-1
}

// Solid reports whether cell (i,j) is a wall. Out-of-range cells count as solid.
func (g *Grid) Solid(i, j int) bool {
	if !g.solid.InBounds(i, j) {
		return true
	}
	return g.solid.At(i, j)
}

func (g *Grid) fluid(i, j int) bool { return !g.Solid(i, j) }

// SetSolid marks or clears a wall. Border cells always stay solid and faces
// next to a new wall are zeroed.
func (g *Grid) SetSolid(i, j int, solid bool) {
	if !g.solid.InBounds(i, j) || g.isBorder(i, j) {
		return
	}
	g.solid.Set(i, j, solid)
	if solid {
		g.zeroFacesAround(i, j)
	}
}

// Smoke returns the scalar payload of cell (i,j), or ambient smoke when the
// cell does not exist.
func (g *Grid) Smoke(i, j int) Smoke {
	if !g.smoke.Cur.InBounds(i, j) {
		return Smoke{T: g.ambient}
	}
	return g.smoke.Cur.At(i, j)
}

// SetSmoke overwrites the scalar payload of cell (i,j).
func (g *Grid) SetSmoke(i, j int, s Smoke) {
	if g.smoke.Cur.InBounds(i, j) {
		g.smoke.Cur.Set(i, j, s)
	}
}

// VX returns the horizontal face velocity right of cell (i,j).
func (g *Grid) VX(i, j int) float64 {
	if !g.vx.Cur.InBounds(i, j) {
		return 0
	}
	return g.vx.Cur.At(i, j)
}

// SetVX writes a horizontal face velocity. Faces touching a wall stay zero.
func (g *Grid) SetVX(i, j int, v float64) {
	if !g.vx.Cur.InBounds(i, j) || g.Solid(i, j) || g.Solid(i+1, j) {
		return
	}
	g.vx.Cur.Set(i, j, v)
}

// VY returns the vertical face velocity below cell (i,j).
func (g *Grid) VY(i, j int) float64 {
	if !g.vy.Cur.InBounds(i, j) {
		return 0
	}
	return g.vy.Cur.At(i, j)
}

// SetVY writes a vertical face velocity. Faces touching a wall stay zero.
func (g *Grid) SetVY(i, j int, v float64) {
	if !g.vy.Cur.InBounds(i, j) || g.Solid(i, j) || g.Solid(i, j+1) {
		return
	}
	g.vy.Cur.Set(i, j, v)
}

// Divergence returns the residual divergence stored by the last projection.
func (g *Grid) Divergence(i, j int) float64 {
	if !g.div.InBounds(i, j) {
		return 0
	}
	return g.div.At(i, j)
}

// DivergenceAt computes the current net outflow of cell (i,j) from its faces.
func (g *Grid) DivergenceAt(i, j int) float64 {
	return g.VX(i, j) - g.VX(i-1, j) + g.VY(i, j) - g.VY(i, j-1)
}

// VelocityX exposes the current horizontal face buffer.
func (g *Grid) VelocityX() *core.Grid[float64] { return g.vx.Cur }

// VelocityY exposes the current vertical face buffer.
func (g *Grid) VelocityY() *core.Grid[float64] { return g.vy.Cur }

func (g *Grid) zeroFacesAround(i, j int) {
	if g.vx.Cur.InBounds(i, j) {
		g.vx.Cur.Set(i, j, 0)
	}
	if g.vx.Cur.InBounds(i-1, j) {
		g.vx.Cur.Set(i-1, j, 0)
	}
	if g.vy.Cur.InBounds(i, j) {
		g.vy.Cur.Set(i, j, 0)
	}
	if g.vy.Cur.InBounds(i, j-1) {
		g.vy.Cur.Set(i, j-1, 0)
	}
}

// enforceBoundary zeroes every face with a wall on either side.
func (g *Grid) enforceBoundary() {
	vx := g.vx.Cur
	for j := 0; j < vx.H; j++ {
		for i := 0; i < vx.W; i++ {
			if g.solid.At(i, j) || g.solid.At(i+1, j) {
				vx.Set(i, j, 0)
			}
		}
	}
	vy := g.vy.Cur
	for j := 0; j < vy.H; j++ {
		for i := 0; i < vy.W; i++ {
			if g.solid.At(i, j) || g.solid.At(i, j+1) {
				vy.Set(i, j, 0)
			}
		}
	}
}

package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y). Callers must stay in bounds.
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.W+x] }

// Set stores v at (x, y). Callers must stay in bounds.
func (g *Grid[T]) Set(x, y int, v T) { g.data[y*g.W+x] = v }

// Clamp pins the provided coordinates to the grid edges.
func (g *Grid[T]) Clamp(x, y int) (int, int) {
	return ClampInt(x, 0, g.W-1), ClampInt(y, 0, g.H-1)
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// CopyFrom copies src into g. Both grids must share dimensions.
func (g *Grid[T]) CopyFrom(src *Grid[T]) {
	copy(g.data, src.data)
}

// PingPong pairs a readable grid with a scratch grid of the same shape. Sweeps
// read Cur, write Next, then call Swap.
type PingPong[T any] struct {
	Cur  *Grid[T]
	Next *Grid[T]
}

// NewPingPong allocates both buffers.
func NewPingPong[T any](w, h int) PingPong[T] {
	return PingPong[T]{Cur: NewGrid[T](w, h), Next: NewGrid[T](w, h)}
}

// Swap exchanges the current and next buffers.
func (p *PingPong[T]) Swap() { p.Cur, p.Next = p.Next, p.Cur }

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

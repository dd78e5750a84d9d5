package smoke

import (
	"math"

	"smokegate/internal/core"
)

// MaxStep bounds the interval integrated by one physics step, in seconds.
const MaxStep = 0.1

var _ core.Sim = (*World)(nil)

// World owns the grid and runs the physics step. It is not safe for
// concurrent use: a single goroutine must own it, and pointer input, grid
// reloads, physics and rendering all take turns on that goroutine.
type World struct {
	cfg  Config
	grid *Grid
	rng  *core.RNG

	steps uint64
}

// New returns a smoke world with the provided dimensions using defaults.
func New(cols, rows int) *World {
	cfg := DefaultConfig()
	cfg.Cols = cols
	cfg.Rows = rows
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world with a blank grid sized from cfg.
func NewWithConfig(cfg Config) *World {
	w := &World{cfg: cfg}
	w.Reset(cfg.Seed)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "smoke" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Grid exposes the current grid.
func (w *World) Grid() *Grid { return w.grid }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Steps reports how many physics steps actually integrated.
func (w *World) Steps() uint64 { return w.steps }

// Reset discards the grid and allocates a blank one. A zero seed falls back
// to the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = core.NewRNG(seed)
	w.grid = NewGrid(w.cfg.Cols, w.cfg.Rows, w.cfg.CellSize, w.cfg.Params.AmbientTemperature)
	w.steps = 0
}

// Load replaces the grid wholesale, e.g. after image or text ingestion. A nil
// grid is ignored so a failed ingestion leaves the previous state intact.
func (w *World) Load(g *Grid) {
	if g == nil {
		return
	}
	g.enforceBoundary()
	w.grid = g
	w.cfg.Cols = g.cols
	w.cfg.Rows = g.rows
	w.cfg.CellSize = g.cellSize
}

// BrushMode returns the active brush mode.
func (w *World) BrushMode() BrushMode { return w.cfg.BrushMode }

// SetBrushMode switches what pointer drags inject.
func (w *World) SetBrushMode(m BrushMode) { w.cfg.BrushMode = m }

// Params returns the active physical parameters.
func (w *World) Params() Params { return w.cfg.Params }

// SetParams replaces the physical parameters.
func (w *World) SetParams(p Params) { w.cfg.Params = p }

// Step advances the simulation by dt seconds: advection, forces, diffusion,
// then pressure projection. Non-positive or NaN dt skips the step entirely.
func (w *World) Step(dt float64) {
	if !(dt > 0) {
		return
	}
	dt = math.Min(dt, MaxStep)
	g := w.grid

	g.advectSmoke(dt)
	g.advectVelocity(dt)
	w.applyForces(dt)
	g.diffuseSmoke(core.Clamp(w.cfg.Params.SmokeDiffusion*dt, 0, 1))

	g.enforceBoundary()
	g.project()
	g.enforceBoundary()
	w.steps++
}

// Package app wires the smoke world, ingestion, rendering and input into a
// frame-driven session. The ebiten Game is a thin shell around Session.
package app

import (
	"context"
	"image"
	"log/slog"
	"math"

	"smokegate/internal/config"
	"smokegate/internal/raster"
	"smokegate/internal/render"
	"smokegate/internal/sims/smoke"
	"smokegate/internal/telemetry"
)

// Session owns one smoke world. All methods must be called from the
// goroutine that owns the session; ingestion runs elsewhere but only its
// finished grid crosses back, through Poll.
type Session struct {
	cfg      *config.Config
	log      *slog.Logger
	world    *smoke.World
	renderer *render.FieldRenderer
	catalog  *raster.Catalog
	recorder *telemetry.Recorder

	ctx     context.Context
	cancel  context.CancelFunc
	pending <-chan raster.Result

	viewW, viewH int
	source       raster.Source

	paused   bool
	dragging bool
	lastX    float64
	lastY    float64
	hoverX   float64
	hoverY   float64
	hovering bool

	frame   int
	simTime float64
}

// NewSession builds a blank world for the configured viewport and starts
// ingesting the configured source, if any. The recorder may be nil.
func NewSession(ctx context.Context, cfg *config.Config, recorder *telemetry.Recorder, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		cfg:      cfg,
		log:      log,
		world:    smoke.NewWithConfig(cfg.SmokeConfig()),
		renderer: render.NewFieldRenderer(cfg.RenderOptions()),
		catalog:  raster.NewCatalog(cfg.Catalog, cfg.Seed),
		recorder: recorder,
		ctx:      ctx,
		viewW:    cfg.Viewport.Width,
		viewH:    cfg.Viewport.Height,
	}
	if src := cfg.Source(); !src.Empty() {
		s.Load(src)
	}
	return s
}

// World exposes the simulation.
func (s *Session) World() *smoke.World { return s.world }

// Renderer exposes the field renderer.
func (s *Session) Renderer() *render.FieldRenderer { return s.renderer }

// Source returns the most recently committed ingestion source.
func (s *Session) Source() raster.Source { return s.source }

// Frame returns how many frames have been stepped.
func (s *Session) Frame() int { return s.frame }

// Loading reports whether an ingestion is in flight.
func (s *Session) Loading() bool { return s.pending != nil }

// Load starts ingesting src in the background, superseding any load still
// in flight. The current grid stays live until the result is committed.
func (s *Session) Load(src raster.Source) {
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	s.pending = raster.Start(ctx, src, s.cfg.IngestOptions(s.viewW, s.viewH))
	s.log.Debug("ingest started", "source", src)
}

// Poll commits a finished ingestion without blocking. It reports whether
// the grid was replaced.
func (s *Session) Poll() bool {
	if s.pending == nil {
		return false
	}
	select {
	case res, ok := <-s.pending:
		if !ok {
			s.pending = nil
			return false
		}
		return s.commit(res)
	default:
		return false
	}
}

// Wait blocks until the in-flight ingestion, if any, finishes and commits it.
func (s *Session) Wait() bool {
	if s.pending == nil {
		return false
	}
	res, ok := <-s.pending
	if !ok {
		s.pending = nil
		return false
	}
	return s.commit(res)
}

func (s *Session) commit(res raster.Result) bool {
	s.pending = nil
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if res.Err != nil {
		s.log.Warn("ingest failed, keeping current grid", "source", res.Source, "err", res.Err)
		return false
	}
	s.world.Load(res.Grid)
	s.source = res.Source
	s.dragging = false
	s.log.Info("ingested", "source", res.Source, "cols", res.Grid.Cols(), "rows", res.Grid.Rows(), "cell", res.Grid.CellSize())
	return true
}

// Resize re-derives the grid for a new viewport, re-ingesting the current
// source. Unchanged or degenerate sizes are ignored.
func (s *Session) Resize(w, h int) {
	if w == s.viewW && h == s.viewH {
		return
	}
	if w < smoke.MinGridSize || h < smoke.MinGridSize {
		return
	}
	s.viewW, s.viewH = w, h
	s.Reload()
}

// Reload re-ingests the current source, or clears to a blank grid.
func (s *Session) Reload() {
	if !s.source.Empty() {
		s.Load(s.source)
		return
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.pending = nil
	g, err := raster.Blank(s.cfg.IngestOptions(s.viewW, s.viewH))
	if err != nil {
		s.log.Warn("reset failed", "err", err)
		return
	}
	s.world.Load(g)
}

// NextImage ingests a random catalog entry other than the current one.
func (s *Session) NextImage() bool {
	e, ok := s.catalog.Next()
	if !ok {
		s.log.Info("image catalog is empty")
		return false
	}
	s.Load(e.Source())
	return true
}

// ShowCaption re-ingests the current caption as text-only emitters.
func (s *Session) ShowCaption() bool {
	if s.source.Caption == "" {
		return false
	}
	s.Load(raster.Source{Caption: s.source.Caption, TextOnly: true})
	return true
}

// CatalogLen returns the number of "next image" entries.
func (s *Session) CatalogLen() int { return s.catalog.Len() }

// Drop ingests an encoded image handed over by the window.
func (s *Session) Drop(name string, data []byte) {
	s.Load(raster.Source{Image: name, Data: data})
}

// Press anchors a drag at pixel (x, y).
func (s *Session) Press(x, y float64) {
	s.dragging = true
	s.lastX, s.lastY = x, y
	s.Hover(x, y)
}

// Move continues a drag, brushing the segment since the last position.
func (s *Session) Move(x, y float64) {
	s.Hover(x, y)
	if !s.dragging {
		return
	}
	s.world.Brush(s.lastX, s.lastY, x, y)
	s.lastX, s.lastY = x, y
}

// Release ends the drag.
func (s *Session) Release() { s.dragging = false }

// Hover records the pointer position for the cursor ring.
func (s *Session) Hover(x, y float64) {
	s.hoverX, s.hoverY = x, y
	w, h := s.world.Grid().PixelSize()
	s.hovering = x >= 0 && y >= 0 && x < float64(w) && y < float64(h)
}

// Leave hides the cursor and ends any drag.
func (s *Session) Leave() {
	s.hovering = false
	s.dragging = false
}

// Cursor returns the hover position and brush radius in pixels.
func (s *Session) Cursor() (x, y, radius float64, ok bool) {
	r := s.world.Params().BrushRadius * float64(s.world.Grid().CellSize())
	return s.hoverX, s.hoverY, r, s.hovering
}

// TogglePause flips the paused state.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Paused reports whether physics is suspended.
func (s *Session) Paused() bool { return s.paused }

// CycleBrush advances the brush mode.
func (s *Session) CycleBrush() smoke.BrushMode {
	m := s.world.BrushMode().Next()
	s.world.SetBrushMode(m)
	return m
}

// CycleRender advances the render mode.
func (s *Session) CycleRender() render.Mode {
	opts := s.renderer.Options()
	opts.Mode = opts.Mode.Next()
	s.renderer.SetOptions(opts)
	return opts.Mode
}

// ToggleGridLines flips the grid overlay.
func (s *Session) ToggleGridLines() {
	opts := s.renderer.Options()
	opts.GridLines = !opts.GridLines
	s.renderer.SetOptions(opts)
}

// ToggleArrows flips the velocity arrow overlay.
func (s *Session) ToggleArrows() {
	opts := s.renderer.Options()
	opts.Arrows = !opts.Arrows
	s.renderer.SetOptions(opts)
}

// Step advances physics by dt unless paused, then records telemetry.
func (s *Session) Step(dt float64) {
	if s.paused {
		return
	}
	before := s.world.Steps()
	s.world.Step(dt)
	if s.world.Steps() == before {
		return
	}
	s.simTime += math.Min(dt, smoke.MaxStep)
	if err := s.recorder.Observe(telemetry.Capture(s.frame, s.simTime, dt, s.world)); err != nil {
		s.log.Warn("telemetry write failed", "err", err)
	}
	s.frame++
}

// Render paints the current grid.
func (s *Session) Render() *image.RGBA {
	return s.renderer.Render(s.world.Grid())
}

// Close cancels any in-flight ingestion.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

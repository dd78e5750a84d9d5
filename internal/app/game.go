//go:build ebiten

package app

import (
	"io/fs"
	"log/slog"

	"smokegate/internal/core"
	"smokegate/internal/render"
	"smokegate/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface. ebiten calls Update
// and Draw on one goroutine, which therefore owns the session.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FrameClock
	log     *slog.Logger

	showHUD    bool
	outW, outH int
}

// New constructs a Game around s.
func New(s *Session, showHUD bool, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	w, h := s.World().Grid().PixelSize()
	return &Game{
		session: s,
		painter: render.NewGridPainter(w, h),
		hud:     ui.NewHUD(s.World(), HUDWidth),
		clock:   core.NewFrameClock(),
		log:     log,
		showHUD: showHUD,
	}
}

func (g *Game) panelWidth() int {
	if !g.showHUD {
		return 0
	}
	return g.hud.Width()
}

// Update handles input, commits finished ingestion and advances physics.
func (g *Game) Update() error {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.log.Info("brush mode", "mode", s.CycleBrush())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.log.Info("render mode", "mode", s.CycleRender())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.ToggleGridLines()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		s.ToggleArrows()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.NextImage()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.ShowCaption()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	g.handleDrop()

	if g.outW > 0 && g.outH > 0 {
		s.Resize(g.outW-g.panelWidth(), g.outH)
	}
	s.Poll()

	viewW, _ := s.World().Grid().PixelSize()
	if g.showHUD {
		g.hud.Update(viewW, g.status())
	}
	g.handlePointer()

	s.Step(g.clock.Tick())
	return nil
}

func (g *Game) status() ui.Status {
	s := g.session
	opts := s.Renderer().Options()
	src := s.Source()
	label := src.Caption
	if label == "" {
		label = src.Image
	}
	return ui.Status{
		Brush:     s.World().BrushMode(),
		Render:    opts.Mode,
		GridLines: opts.GridLines,
		Arrows:    opts.Arrows,
		Paused:    s.Paused(),
		Loading:   s.Loading(),
		Source:    label,
		Steps:     s.World().Steps(),
		Catalog:   s.CatalogLen(),
	}
}

func (g *Game) handlePointer() {
	s := g.session
	mx, my := ebiten.CursorPosition()
	if g.showHUD && g.hud.Contains(mx, my) {
		s.Leave()
		return
	}
	x, y := float64(mx), float64(my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.Press(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		s.Move(x, y)
		s.Release()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.Move(x, y)
	default:
		s.Hover(x, y)
	}
}

func (g *Game) handleDrop() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		g.log.Warn("reading dropped files", "err", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(files, e.Name())
		if err != nil {
			g.log.Warn("reading dropped file", "name", e.Name(), "err", err)
			return
		}
		g.session.Drop(e.Name(), data)
		return
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	g.painter.Blit(screen, s.Render(), 0, 0)
	if x, y, r, ok := s.Cursor(); ok {
		ui.DrawCursor(screen, x, y, r, s.World().BrushMode())
	}
	if g.showHUD {
		viewW, _ := s.World().Grid().PixelSize()
		g.hud.Draw(screen, viewW, screen.Bounds().Dy())
	}
}

// Layout tracks the window size; the grid follows it on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

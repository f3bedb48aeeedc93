//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"lifegrid/internal/render"
	"lifegrid/internal/session"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{R: 250, G: 250, B: 252, A: 255}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	cfg     *Config
	painter *render.GridPainter
	toolbar *ui.Toolbar
	hud     *ui.HUD
	overlay *ui.Overlay
	layout  Layout

	// painting tracks a drag that started on the board: every cell the
	// cursor enters is set to paintAlive.
	painting   bool
	paintAlive bool
	lastI      int
	lastK      int
}

// New constructs a Game for the provided session.
func New(s *session.Session, cfg *Config) *Game {
	size := s.Size()
	g := &Game{
		session: s,
		cfg:     cfg,
		painter: render.NewGridPainter(size.Rows, size.Cols, render.DefaultPalette()),
		toolbar: ui.NewToolbar(),
		overlay: ui.NewOverlay(),
	}
	if cfg.HUDWidth > 0 {
		g.hud = ui.NewHUD(s, cfg.HUDWidth)
	}
	w, h := g.WindowSize()
	g.layout = ComputeLayout(w, h, size, g.toolbar.Height(), g.hud.Width())
	return g
}

// WindowSize returns the window size that shows every cell at the configured
// cell size.
func (g *Game) WindowSize() (int, int) {
	return WindowSize(g.session.Size(), g.cfg.CellSize, g.toolbar.Height(), g.hud.Width())
}

// Update handles per-frame input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.apply(ui.ActionToggleRun)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.apply(ui.ActionStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.apply(ui.ActionRandom)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.apply(ui.ActionClear)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.saveChart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.saveSVG()
	}

	g.overlay.Update()
	g.hud.Update(g.layout.HUDX)
	g.handleMouse()

	g.session.Tick()
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if action := g.toolbar.Hit(mx, my); action != ui.ActionNone {
			g.apply(action)
			return
		}
		i, k, ok := g.layout.Board.CellAt(mx, my)
		if !ok {
			return
		}
		g.session.ToggleCell(i, k)
		g.painting = true
		g.paintAlive = g.session.Grid().Alive(i, k)
		g.lastI, g.lastK = i, k
		return
	}
	if !g.painting {
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.painting = false
		return
	}
	i, k, ok := g.layout.Board.CellAt(mx, my)
	if !ok || (i == g.lastI && k == g.lastK) {
		return
	}
	g.session.PaintCell(i, k, g.paintAlive)
	g.lastI, g.lastK = i, k
}

func (g *Game) apply(action ui.Action) {
	switch action {
	case ui.ActionToggleRun:
		g.session.ToggleRunning()
	case ui.ActionStep:
		g.session.StepOnce()
	case ui.ActionRandom:
		g.session.Randomize()
	case ui.ActionClear:
		g.session.Clear()
	}
}

func (g *Game) saveChart() {
	if err := SaveChart(g.cfg.ChartPath, g.session.History()); err != nil {
		log.Printf("chart: %v", err)
		return
	}
	log.Printf("chart: saved generations up to %d to %s", g.session.Generation(), g.cfg.ChartPath)
}

func (g *Game) saveSVG() {
	if err := SaveSVG(g.cfg.SVGPath, g.session.Grid(), g.cfg.CellSize); err != nil {
		log.Printf("svg: %v", err)
		return
	}
	log.Printf("svg: saved generation %d to %s", g.session.Generation(), g.cfg.SVGPath)
}

// Draw renders the toolbar, board, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	b := g.layout.Board
	g.painter.Blit(screen, g.session.Grid(), b.X, b.Y, b.Cell)
	g.overlay.Draw(screen, b)
	g.toolbar.Draw(screen, g.session.Running())
	g.hud.Draw(screen, g.layout.HUDX, g.layout.Height)
}

// Layout measures the window and fits the board into it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layout = ComputeLayout(outsideWidth, outsideHeight, g.session.Size(), g.toolbar.Height(), g.hud.Width())
	return outsideWidth, outsideHeight
}

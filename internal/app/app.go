//go:build ebiten

package app

import (
	"image/color"
	"log/slog"

	"infohud/internal/core"
	"infohud/internal/overlay"
	"infohud/internal/render"
	"infohud/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	tileSize  = 4
	walkSpeed = 0.15
	turnSpeed = 3.0
)

// Game adapts the world and the info overlay to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	log     *slog.Logger
	session *Session
	hud     *Overlay
	keys    *keyboard

	clock   *core.FixedStep
	biomes  *core.ByteGrid
	painter *render.GridPainter
	canvas  *ui.Canvas
	hooks   HookList
}

// New constructs a Game for the provided configuration.
func New(cfg *Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	hud, err := NewOverlay(cfg, logger)
	if err != nil {
		return nil, err
	}
	keys, err := newKeyboard(hud.Bindings.Specs())
	if err != nil {
		return nil, err
	}
	gw, gh := cfg.Width/tileSize+1, cfg.Height/tileSize+1
	g := &Game{
		cfg:     cfg,
		log:     logger,
		session: NewSession(cfg),
		hud:     hud,
		keys:    keys,
		clock:   core.NewFixedStep(cfg.WorldTPS),
		biomes:  core.NewByteGrid(gw, gh),
		painter: render.NewGridPainter(gw, gh, render.BiomePalette()),
		canvas:  ui.NewCanvas(nil),
	}

	frame := func() overlay.Frame {
		return g.session.Frame(ebiten.ActualFPS(), g.cfg.Width, g.cfg.Height)
	}
	if err := g.hooks.Add("infohud", hud.Composer.Hook(frame)); err != nil {
		return nil, err
	}
	if err := g.hooks.Add("debug", g.drawDebug); err != nil {
		return nil, err
	}
	if err := g.hooks.Add("screens", g.drawScreens); err != nil {
		return nil, err
	}
	logger.Info("game ready",
		"seed", cfg.Seed,
		"language", hud.Translator.Active().String(),
		"hooks", g.hooks.Names())
	return g, nil
}

// Update handles per-tick input and advances the world.
func (g *Game) Update() error {
	s := g.session
	switch s.Screen() {
	case ScreenPause:
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.Close()
		}
	case ScreenChat:
		g.updateChat()
	default:
		g.updatePlay()
	}

	if !s.Paused() {
		for n := g.clock.Due(); n > 0; n-- {
			s.World.Tick()
		}
	} else {
		g.clock.Due()
	}
	return nil
}

func (g *Game) updatePlay() {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Open(ScreenPause)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.Open(ScreenChat)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.DebugOverlay = !s.DebugOverlay
	}

	forward, strafe := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward += walkSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward -= walkSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe += walkSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe -= walkSpeed
	}
	if forward != 0 || strafe != 0 {
		s.World.Move(forward, strafe)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.World.Turn(-turnSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.World.Turn(turnSpeed)
	}

	g.hud.Bindings.Update(g.keys)
}

func (g *Game) updateChat() {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Close()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if msg := s.SubmitChat(); msg != "" {
			g.log.Info("chat", "message", msg)
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		s.Backspace()
	}
	s.TypeChat(ebiten.AppendInputChars(nil))
}

// Draw renders the biome map around the player and runs the render hooks.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.World.BiomeView(g.biomes)
	g.painter.BlitPalette(screen, g.biomes, tileSize)

	gw, gh := g.painter.Size()
	cx, cy := float32(gw/2*tileSize), float32(gh/2*tileSize)
	vector.DrawFilledRect(screen, cx, cy, tileSize, tileSize, color.RGBA{R: 200, A: 255}, false)

	g.canvas.Bind(screen)
	g.hooks.Run(g.canvas)
}

func (g *Game) drawDebug(overlay.Target) {
	if g.session.DebugOverlay {
		g.canvas.DrawDebug(g.session.DebugLines(ebiten.ActualFPS()))
	}
}

func (g *Game) drawScreens(overlay.Target) {
	switch g.session.Screen() {
	case ScreenPause:
		g.canvas.DrawPause(g.cfg.Width, g.cfg.Height, "Game Paused", "Esc: back to game   Q: quit")
	case ScreenChat:
		g.canvas.DrawChat(g.cfg.Width, g.cfg.Height, g.session.ChatInput())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Package view is the windowed client: it maps keys to intents, drives the
// simulation clock from Ebitengine's Update and draws each frame.
package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Ray-Sense/internal/config"
	"github.com/Garsondee/Ray-Sense/internal/game"
)

// reportTicks is how much of the event trail the clipboard report carries.
const reportTicks = 600

// Game implements ebiten.Game around a game.World.
type Game struct {
	width  int
	height int

	world  *game.World
	intent game.IntentBuffer
	log    *logrus.Logger

	showMinimap  bool
	showKillFeed bool

	// Simulation speed control.
	simSpeed  float64 // multiplier: 0=paused, 0.5, 1, 2, 4
	tickAccum float64 // fractional tick accumulator for sub-1x speeds

	feed    *KillFeed
	fx      effects
	face    text.Face
	notice  string // transient status line, e.g. "report copied"
	noticeT int
}

// New builds the client from cfg. The world is constructed with the
// client's logger and a camera matching the window.
func New(cfg config.Config, log *logrus.Logger, opts ...game.Option) *Game {
	g := &Game{
		width:        cfg.Window.Width,
		height:       cfg.Window.Height,
		log:          log,
		showMinimap:  cfg.Render.Minimap,
		showKillFeed: cfg.Render.KillFeed,
		simSpeed:     1.0,
		feed:         NewKillFeed(),
		face:         text.NewGoXFace(basicfont.Face7x13),
	}
	wopts := []game.Option{
		game.WithLogger(log),
		game.WithCamera(game.Camera{Columns: cfg.Render.Columns, ScreenHeight: cfg.Window.Height}),
	}
	if cfg.Sim.Seed != 0 {
		wopts = append(wopts, game.WithSeed(cfg.Sim.Seed))
	}
	g.world = game.NewWorld(append(wopts, opts...)...)
	g.fx = newEffects(g.world.Player())
	return g
}

// World exposes the simulation for tools and tests.
func (g *Game) World() *game.World { return g.world }

func (g *Game) Update() error {
	// Handle input every frame regardless of sim speed.
	g.handleInput()
	g.fx.update(1.0 / float32(ebiten.TPS()))
	if g.noticeT > 0 {
		g.noticeT--
	}

	if g.simSpeed <= 0 {
		return nil
	}

	// For speeds > 1 run multiple sim ticks per frame.
	// For speeds < 1 accumulate fractions.
	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.simTick()
	}
	return nil
}

// simTick advances the world once and feeds the presentation layers.
func (g *Game) simTick() {
	in := g.intent.Take()
	g.world.Tick(in)
	g.feed.Sync(g.world.SimLog())
	g.fx.observe(g.world.Player(), in.Fire)
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.world.Frame()

	screen.Fill(color.RGBA{R: 8, G: 8, B: 10, A: 255})
	g.drawBackdrop(screen)
	g.drawColumns(screen, f)
	g.drawMarkers(screen, f)
	g.drawEnemies(screen, f)
	g.drawBullets(screen, f)
	g.drawWeapon(screen, f)
	g.drawCrosshair(screen, f)
	g.fx.draw(screen)
	g.drawHUD(screen, f)

	if g.showMinimap {
		g.drawMinimap(screen)
	}
	if g.showKillFeed {
		g.feed.Draw(screen, g.face, g.width-feedPanelWidth-8, g.height-feedPanelHeight-8)
	}
	if f.State == game.StateGameOver {
		g.drawGameOver(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

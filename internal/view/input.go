package view

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Ray-Sense/internal/game"
)

// keyBindings maps each intent flag to the keys that raise it.
var keyBindings = struct {
	turnLeft, turnRight, forward, backward, fire, reload, zoom, restart []ebiten.Key
}{
	turnLeft:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
	turnRight: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
	forward:   []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
	backward:  []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
	fire:      []ebiten.Key{ebiten.KeySpace},
	reload:    []ebiten.Key{ebiten.KeyR},
	zoom:      []ebiten.Key{ebiten.KeyZ, ebiten.KeyShiftRight},
	restart:   []ebiten.Key{ebiten.KeyEnter},
}

var speedSteps = []float64{0.25, 0.5, 1, 2, 4}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// sampleIntent reads the level state of every bound key.
func sampleIntent() game.Intent {
	return game.Intent{
		TurnLeft:     anyPressed(keyBindings.turnLeft),
		TurnRight:    anyPressed(keyBindings.turnRight),
		MoveForward:  anyPressed(keyBindings.forward),
		MoveBackward: anyPressed(keyBindings.backward),
		Fire:         anyPressed(keyBindings.fire) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Reload:       anyPressed(keyBindings.reload),
		ToggleZoom:   anyPressed(keyBindings.zoom) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Restart:      anyPressed(keyBindings.restart),
	}
}

func (g *Game) handleInput() {
	// M: toggle minimap. K: toggle kill feed.
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.showKillFeed = !g.showKillFeed
	}

	// C: copy the debug report.
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}

	// Sim speed controls: P=pause/resume, ,=slower, .=faster.
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
		g.flash(fmt.Sprintf("speed %.2gx", g.simSpeed))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		g.simSpeed = stepSpeed(g.simSpeed, -1)
		g.flash(fmt.Sprintf("speed %.2gx", g.simSpeed))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.simSpeed = stepSpeed(g.simSpeed, 1)
		g.flash(fmt.Sprintf("speed %.2gx", g.simSpeed))
	}

	g.latch(sampleIntent())
}

// latch feeds a sampled intent to the simulation. Nothing is latched while
// paused, so taps made during a pause never replay on resume.
func (g *Game) latch(in game.Intent) {
	if g.simSpeed <= 0 {
		g.intent.Reset()
		return
	}
	g.intent.Press(in)
}

// stepSpeed moves one notch along speedSteps. Paused resumes at the slowest
// step when sped up and stays paused when slowed down.
func stepSpeed(cur float64, dir int) float64 {
	if cur <= 0 {
		if dir > 0 {
			return speedSteps[0]
		}
		return 0
	}
	idx := 0
	for i, s := range speedSteps {
		if cur >= s {
			idx = i
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(speedSteps) {
		idx = len(speedSteps) - 1
	}
	return speedSteps[idx]
}

func (g *Game) copyReport() {
	report := g.world.DebugReport(reportTicks)
	if err := clipboard.WriteAll(report); err != nil {
		g.log.WithFields(logrus.Fields{
			"match_id": g.world.MatchID(),
			"error":    err,
		}).Warn("copy debug report")
		g.flash("clipboard unavailable")
		return
	}
	g.log.WithField("match_id", g.world.MatchID()).Debug("debug report copied")
	g.flash("debug report copied")
}

// flash shows msg on the HUD for two seconds.
func (g *Game) flash(msg string) {
	g.notice = msg
	g.noticeT = 2 * ebiten.TPS()
}

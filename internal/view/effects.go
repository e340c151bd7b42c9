package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Garsondee/Ray-Sense/internal/game"
)

const (
	hurtPeak     = 0.55 // overlay alpha right after a hit
	hurtDuration = 0.6  // seconds
	glowDuration = 0.12
)

// effects holds the screen-space fades driven by player state changes.
type effects struct {
	hurt, glow *gween.Tween
	hurtLevel  float32
	glowLevel  float32
	lastHealth int
	lastAmmo   int
}

func newEffects(p game.Player) effects {
	return effects{lastHealth: p.Health, lastAmmo: p.Weapon.Ammo}
}

// observe starts fades from the change between the previous and current
// player record.
func (fx *effects) observe(p game.Player, fireHeld bool) {
	switch {
	case p.Health < fx.lastHealth:
		fx.hurt = gween.New(hurtPeak, 0, hurtDuration, ease.OutQuad)
		fx.hurtLevel = hurtPeak
	case p.Health > fx.lastHealth:
		// New match.
		fx.hurt, fx.hurtLevel = nil, 0
	}
	if fireHeld && p.Weapon.Ammo < fx.lastAmmo {
		fx.glow = gween.New(1, 0, glowDuration, ease.Linear)
		fx.glowLevel = 1
	}
	fx.lastHealth = p.Health
	fx.lastAmmo = p.Weapon.Ammo
}

// update advances the running tweens by dt seconds.
func (fx *effects) update(dt float32) {
	if fx.hurt != nil {
		v, done := fx.hurt.Update(dt)
		fx.hurtLevel = v
		if done {
			fx.hurt, fx.hurtLevel = nil, 0
		}
	}
	if fx.glow != nil {
		v, done := fx.glow.Update(dt)
		fx.glowLevel = v
		if done {
			fx.glow, fx.glowLevel = nil, 0
		}
	}
}

func (fx *effects) draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	if fx.glowLevel > 0 {
		a := uint8(120 * fx.glowLevel)
		vector.FillCircle(screen, w/2, h-h/5, h/6, color.RGBA{R: a, G: a * 3 / 4, B: a / 4, A: a}, true)
	}
	if fx.hurtLevel > 0 {
		a := uint8(255 * fx.hurtLevel)
		vector.FillRect(screen, 0, 0, w, h, color.RGBA{R: a, A: a}, false)
	}
}

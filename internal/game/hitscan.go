package game

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

const (
	hitRadiusNormal    = 0.35 // enemy hit radius for the standard march
	hitRadiusZoomed    = 0.2
	precisionTolerance = 0.05 // radians, zoomed guaranteed-hit cone
)

// fire resolves a trigger pull. Invalid pulls are silent no-ops.
func (w *World) fire() {
	p := &w.player
	if !p.Weapon.Fire() {
		return
	}
	w.stats.ShotsFired++
	if p.Weapon.Reloading {
		w.stats.Reloads++
		w.simLog.Add(w.tick, "player", CatWeapon, KeyReload, "auto", 0)
	}

	if p.Zoomed {
		if e := w.precisionTarget(); e != nil {
			w.simLog.Add(w.tick, "player", CatWeapon, KeyShot, "precision "+shortID(e.ID), 0)
			w.hitEnemy(e, 0, 0)
			return
		}
	}
	w.marchShot()
}

// precisionTarget returns the nearest live enemy inside the zoomed cone and
// weapon range with a clear line from the player. Ties keep iteration order.
func (w *World) precisionTarget() *Enemy {
	p := &w.player
	var best *Enemy
	bestDist := math.MaxFloat64
	for _, e := range w.enemies {
		if !e.Alive {
			continue
		}
		dist := Distance(p.X, p.Y, e.X, e.Y)
		if dist > weaponRange {
			continue
		}
		if math.Abs(AngleOffset(p.X, p.Y, p.Angle, e.X, e.Y)) > precisionTolerance {
			continue
		}
		if !HasLineOfSight(w.grid, p.X, p.Y, e.X, e.Y) {
			continue
		}
		if dist < bestDist {
			best, bestDist = e, dist
		}
	}
	return best
}

// marchShot walks the shot ray in rayStep increments. The first wall stops
// it with a marker, the first live enemy inside the hit radius takes the
// hit, and a clean miss leaves a marker at max range.
func (w *World) marchShot() {
	p := &w.player
	dx, dy := unitVector(p.Angle)
	radius := hitRadiusNormal
	if p.Zoomed {
		radius = hitRadiusZoomed
	}

	for i := 1; ; i++ {
		d := float64(i) * rayStep
		if d >= weaponRange {
			d = weaponRange
			x, y := p.X+dx*d, p.Y+dy*d
			w.holes = addHole(w.holes, HoleMarker{X: x, Y: y, Life: holeLifetime})
			w.simLog.Add(w.tick, "player", CatWeapon, KeyShot, fmt.Sprintf("miss at (%.1f,%.1f)", x, y), d)
			return
		}
		x, y := p.X+dx*d, p.Y+dy*d
		if !w.grid.IsOpenAt(x, y) {
			w.holes = addHole(w.holes, HoleMarker{X: x, Y: y, Life: holeLifetime, OnHit: true})
			w.simLog.Add(w.tick, "player", CatWeapon, KeyShot, fmt.Sprintf("wall at (%.1f,%.1f)", x, y), d)
			return
		}
		for _, e := range w.enemies {
			if !e.Alive || Distance(x, y, e.X, e.Y) > radius {
				continue
			}
			// Lateral offset of the impact across the sprite, -0.5..0.5.
			lateral := ((x-e.X)*-dy + (y-e.Y)*dx) / (2 * radius)
			vertical := (w.rng.Float64() - 0.5) * 0.6
			w.simLog.Add(w.tick, "player", CatWeapon, KeyShot, "hit "+shortID(e.ID), d)
			w.hitEnemy(e, lateral, vertical)
			return
		}
	}
}

// hitEnemy applies one point of damage and records the outcome.
func (w *World) hitEnemy(e *Enemy, offX, offY float64) {
	w.stats.Hits++
	killed := e.Hit(offX, offY)
	fields := logrus.Fields{
		"enemy_id": e.ID,
		"kind":     e.Kind.String(),
		"health":   e.Health,
	}
	if !killed {
		w.simLog.Add(w.tick, shortID(e.ID), CatEnemy, KeyHit, e.Kind.String(), float64(e.Health))
		w.logger().WithFields(fields).Debug("enemy hit")
		return
	}
	w.stats.Kills[e.Kind]++
	w.simLog.Add(w.tick, shortID(e.ID), CatEnemy, KeyKill, e.Kind.String(), float64(w.stats.TotalKills()))
	w.logger().WithFields(fields).Info("enemy killed")
}

// updateBullets advances every live bullet one tick.
func (w *World) updateBullets() {
	p := &w.player
	for i := range w.bullets {
		if w.state != StatePlaying {
			return
		}
		b := &w.bullets[i]
		if !b.Live {
			continue
		}
		if b.step(w.grid, p.X, p.Y) == bulletHitPlayer {
			w.stats.BulletHits++
			w.damagePlayer(bulletDamage, "bullet")
		}
	}
}

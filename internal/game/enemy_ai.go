package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// --- AI constants ---

const (
	meleeRange     = 0.5 // player distance for a melee strike
	meleeDamage    = 20
	meleeStunTicks = 30  // recoil after a melee strike
	shootRangeMax  = 6.0 // armed enemies shoot inside (meleeRange, shootRangeMax)
	shootCooldown  = 180 // ticks between enemy shots
	holdRangeMin   = 2.0 // armed enemies hold position inside (holdRangeMin, holdRangeMax)
	holdRangeMax   = 4.0
)

// updateEnemies runs every live enemy's decision loop. Stops as soon as
// the match ends.
func (w *World) updateEnemies() {
	for _, e := range w.enemies {
		if w.state != StatePlaying {
			return
		}
		if !e.Alive {
			continue
		}
		w.updateEnemy(e)
	}
}

// updateEnemy is the per-enemy, per-tick decision loop:
//
//	stunned -> skip; cooldown; shoot; melee; path + move.
func (w *World) updateEnemy(e *Enemy) {
	if e.StunLeft > 0 {
		e.StunLeft--
		return
	}
	if e.ShootCooldown > 0 {
		e.ShootCooldown--
	}

	p := &w.player
	dist := Distance(e.X, e.Y, p.X, p.Y)

	if e.HasGun && e.ShootCooldown == 0 && dist > meleeRange && dist < shootRangeMax {
		w.tryShoot(e)
	}

	if dist < meleeRange {
		e.StunLeft = meleeStunTicks
		w.stats.MeleeHits++
		w.simLog.Add(w.tick, shortID(e.ID), CatEnemy, KeyMelee, e.Kind.String(), meleeDamage)
		w.damagePlayer(meleeDamage, "melee:"+e.Kind.String())
		return
	}

	w.ensurePath(e)
	if e.HasGun && dist > holdRangeMin && dist < holdRangeMax {
		return
	}
	if len(e.Path) == 0 {
		if e.Cell() == p.Cell() {
			e.stepToward(w.grid, p.X, p.Y, meleeRange*0.9)
		}
		return
	}
	e.followPath(w.grid)
}

// tryShoot fires at the player when the sampled line of sight is clear.
func (w *World) tryShoot(e *Enemy) bool {
	p := &w.player
	if !HasLineOfSight(w.grid, e.X, e.Y, p.X, p.Y) {
		return false
	}
	w.bullets = append(w.bullets, NewBullet(e.ID, e.X, e.Y, p.X, p.Y))
	e.ShootCooldown = shootCooldown
	w.stats.BulletsFired++
	w.simLog.Add(w.tick, shortID(e.ID), CatEnemy, KeyShoot,
		fmt.Sprintf("from (%.1f,%.1f)", e.X, e.Y), Distance(e.X, e.Y, p.X, p.Y))
	w.logger().WithFields(logrus.Fields{
		"enemy_id": e.ID,
	}).Debug("enemy fired")
	return true
}

// ensurePath recomputes the BFS route when it is empty or its head is no
// longer adjacent to the enemy's cell.
func (w *World) ensurePath(e *Enemy) {
	if len(e.Path) > 0 && e.Path[0].Manhattan(e.Cell()) <= 1 {
		return
	}
	e.Path = FindPath(w.grid, e.Cell(), w.player.Cell())
}

// followPath steps toward the head waypoint's centre and pops it once
// inside pathEpsilon.
func (e *Enemy) followPath(g *Grid) {
	head := e.Path[0]
	cx, cy := head.Center()
	if !e.stepToward(g, cx, cy, 0) {
		// Blocked: drop the route so it is recomputed next tick.
		e.Path = nil
		return
	}
	if Distance(e.X, e.Y, cx, cy) <= pathEpsilon {
		e.Path = e.Path[1:]
	}
}

// stepToward moves at most Speed toward (tx,ty), stopping stopDist short.
// Returns false if the step would leave open ground.
func (e *Enemy) stepToward(g *Grid, tx, ty, stopDist float64) bool {
	d := Distance(e.X, e.Y, tx, ty)
	if d <= stopDist || d < 1e-9 {
		return true
	}
	step := e.Speed
	if step > d-stopDist {
		step = d - stopDist
	}
	nx := e.X + (tx-e.X)/d*step
	ny := e.Y + (ty-e.Y)/d*step
	if !g.IsOpenAt(nx, ny) {
		return false
	}
	e.X, e.Y = nx, ny
	return true
}

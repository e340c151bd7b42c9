package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// spawnCandidates lists open cells whose centre is further than
// enemySpawnMinDist from the player and not occupied by a live enemy.
func (w *World) spawnCandidates() []Cell {
	occupied := make(map[Cell]bool, len(w.enemies))
	for _, e := range w.enemies {
		if e.Alive {
			occupied[e.Cell()] = true
		}
	}
	var out []Cell
	for _, c := range w.grid.OpenCells() {
		if occupied[c] {
			continue
		}
		cx, cy := c.Center()
		if Distance(cx, cy, w.player.X, w.player.Y) > enemySpawnMinDist {
			out = append(out, c)
		}
	}
	return out
}

// topUpEnemies spawns until the live count reaches the target. Stops early
// when no candidate cell exists; the next tick retries.
func (w *World) topUpEnemies() {
	for w.LiveEnemies() < w.targetEnemies {
		cands := w.spawnCandidates()
		if len(cands) == 0 {
			return
		}
		c := cands[w.rng.Intn(len(cands))]
		kind := EnemyKind(w.rng.Intn(int(enemyKindCount)))
		x, y := c.Center()
		w.AddEnemy(kind, x, y)
	}
}

// AddEnemy places a new enemy of the given kind at (x,y). The position must
// lie in an open cell; otherwise nothing is added and nil is returned.
func (w *World) AddEnemy(kind EnemyKind, x, y float64) *Enemy {
	if !w.grid.IsOpenAt(x, y) {
		return nil
	}
	e := NewEnemy(w.newID(), kind, x, y)
	w.enemies = append(w.enemies, e)
	w.stats.EnemiesSpawned++
	w.simLog.Add(w.tick, shortID(e.ID), CatEnemy, KeySpawn,
		fmt.Sprintf("%s at %s", kind, e.Cell()), 0)
	w.logger().WithFields(logrus.Fields{
		"enemy_id": e.ID,
		"kind":     kind.String(),
		"x":        x,
		"y":        y,
	}).Debug("enemy spawned")
	return e
}

// shortID trims an enemy ID for compact log lines.
func shortID(id string) string {
	if len(id) > 6 {
		return id[len(id)-6:]
	}
	return id
}

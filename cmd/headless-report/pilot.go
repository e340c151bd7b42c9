package main

import (
	"math"
	"sort"

	"github.com/Garsondee/Ray-Sense/internal/game"
)

const (
	sightRange   = 16.0 // tiles; matches the weapon's reach
	zoomBeyond   = 6.0  // scope in for targets further than this
	backOffRange = 1.2
	turnSlack    = 0.04 // heading error tolerated before turning
	walkCone     = 0.3  // heading error tolerated while walking a path
)

// pilot produces one intent per tick for a headless run.
type pilot interface {
	next(ts *game.TestSim) game.Intent
}

var pilots = map[string]func() pilot{
	"hunter": func() pilot { return &hunter{} },
	"idle":   func() pilot { return idle{} },
}

func pilotNames() []string {
	names := make([]string, 0, len(pilots))
	for n := range pilots {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// idle stands still and restarts after each death. Useful as a baseline for
// how fast the arena kills a passive player.
type idle struct{}

func (idle) next(ts *game.TestSim) game.Intent {
	return game.Intent{Restart: ts.World.State() == game.StateGameOver}
}

// hunter turns toward the nearest visible enemy and fires once the bearing
// is tight enough for the current weapon regime. With nothing in sight it
// walks the BFS path toward the nearest live enemy.
type hunter struct {
	zoomHeld bool
}

func (h *hunter) next(ts *game.TestSim) game.Intent {
	w := ts.World
	if w.State() == game.StateGameOver {
		h.zoomHeld = false
		return game.Intent{Restart: true}
	}
	p := w.Player()
	var in game.Intent

	target, dist := nearestVisible(w, p)
	if target == nil {
		h.setZoom(&in, p, false)
		if tx, ty, ok := huntWaypoint(w, p); ok {
			off := bearingOffset(p, tx, ty)
			steer(&in, off, turnSlack)
			in.MoveForward = math.Abs(off) < walkCone
		} else {
			in.TurnRight = true
		}
		// Top up between contacts.
		if !p.Weapon.Reloading && p.Weapon.Ammo < p.Weapon.MaxAmmo/2 {
			in.Reload = true
		}
		return in
	}

	h.setZoom(&in, p, dist > zoomBeyond)
	off := bearingOffset(p, target.X, target.Y)
	steer(&in, off, turnSlack)
	if math.Abs(off) < fireCone(p.Zoomed, dist) {
		in.Fire = true
	}
	if dist < backOffRange {
		in.MoveBackward = true
	}
	return in
}

// setZoom presses the zoom toggle for a single tick whenever the scope state
// differs from want. The world edge-detects the toggle, so the key is
// released on the following tick.
func (h *hunter) setZoom(in *game.Intent, p game.Player, want bool) {
	if p.Zoomed != want && !h.zoomHeld {
		in.ToggleZoom = true
	}
	h.zoomHeld = in.ToggleZoom
}

// fireCone is the heading error at which a shot still connects: the scope
// needs a near-exact bearing, the hip shot only needs the ray to pass within
// the hit radius of the target.
func fireCone(zoomed bool, dist float64) float64 {
	if zoomed {
		return 0.04
	}
	return math.Max(math.Min(math.Atan2(0.3, dist), 0.3), 0.03)
}

func steer(in *game.Intent, off, slack float64) {
	switch {
	case off < -slack:
		in.TurnLeft = true
	case off > slack:
		in.TurnRight = true
	}
}

// bearingOffset returns the signed heading error toward (x,y). Positive
// means the target is clockwise of the player's heading.
func bearingOffset(p game.Player, x, y float64) float64 {
	return game.AngleOffset(p.X, p.Y, p.Angle, x, y)
}

// nearestVisible returns the closest live enemy within sight range and line
// of sight, in any direction.
func nearestVisible(w *game.World, p game.Player) (*game.Enemy, float64) {
	var best *game.Enemy
	bestDist := math.MaxFloat64
	for _, e := range w.Enemies() {
		if !e.Alive {
			continue
		}
		d := game.Distance(p.X, p.Y, e.X, e.Y)
		if d > sightRange || d >= bestDist {
			continue
		}
		if !game.HasLineOfSight(w.Grid(), p.X, p.Y, e.X, e.Y) {
			continue
		}
		best, bestDist = e, d
	}
	return best, bestDist
}

// huntWaypoint returns the centre of the next cell on the shortest path to
// the live enemy with the fewest BFS steps away.
func huntWaypoint(w *game.World, p game.Player) (float64, float64, bool) {
	from := p.Cell()
	var goal game.Cell
	bestSteps := -1
	for _, e := range w.Enemies() {
		if !e.Alive {
			continue
		}
		steps := game.PathDistance(w.Grid(), from, e.Cell())
		if steps <= 0 {
			continue
		}
		if bestSteps < 0 || steps < bestSteps {
			goal, bestSteps = e.Cell(), steps
		}
	}
	if bestSteps < 0 {
		return 0, 0, false
	}
	path := game.FindPath(w.Grid(), from, goal)
	x, y := path[0].Center()
	return x, y, true
}

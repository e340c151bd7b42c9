package game

import "math"

// losStep is the sampling resolution for line-of-sight checks.
const losStep = 0.1

// HasLineOfSight returns true if no sample along the straight line from
// (ax,ay) to (bx,by), taken every losStep units, lands in a wall cell.
// Both endpoints are included.
func HasLineOfSight(g *Grid, ax, ay, bx, by float64) bool {
	dist := Distance(ax, ay, bx, by)
	n := int(math.Ceil(dist / losStep))
	if n == 0 {
		return g.IsOpenAt(ax, ay)
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		if !g.IsOpenAt(ax+(bx-ax)*t, ay+(by-ay)*t) {
			return false
		}
	}
	return true
}

package game

// --- Projectile constants ---

const (
	bulletSpeed     = 0.08 // world units per tick
	bulletLifetime  = 150  // ticks before a bullet expires
	bulletHitRadius = 0.3  // player proximity that counts as a hit
	bulletDamage    = 15

	holeLifetime = 90 // ticks a player-shot marker persists
	maxHoles     = 32 // oldest marker is evicted beyond this
)

// Bullet is an enemy ballistic projectile.
type Bullet struct {
	X, Y   float64
	DX, DY float64 // unit direction
	Life   int
	Live   bool
	Owner  string // enemy ID
}

// NewBullet fires from (x,y) toward (tx,ty).
func NewBullet(owner string, x, y, tx, ty float64) Bullet {
	dx, dy := unitVector(HeadingTo(x, y, tx, ty))
	return Bullet{X: x, Y: y, DX: dx, DY: dy, Life: bulletLifetime, Live: true, Owner: owner}
}

// bulletOutcome is what happened to a bullet on one tick.
type bulletOutcome int

const (
	bulletFlying bulletOutcome = iota
	bulletHitWall
	bulletHitPlayer
	bulletExpired
)

// step advances the bullet one tick against the grid and player position.
func (b *Bullet) step(g *Grid, px, py float64) bulletOutcome {
	b.X += b.DX * bulletSpeed
	b.Y += b.DY * bulletSpeed
	b.Life--
	switch {
	case !g.IsOpenAt(b.X, b.Y):
		b.Live = false
		return bulletHitWall
	case Distance(b.X, b.Y, px, py) < bulletHitRadius:
		b.Live = false
		return bulletHitPlayer
	case b.Life <= 0:
		b.Live = false
		return bulletExpired
	}
	return bulletFlying
}

// HoleMarker is the visual trace of a player shot: a wall impact or the
// point where a miss ran out of range.
type HoleMarker struct {
	X, Y  float64
	Life  int
	OnHit bool // true for wall impacts, false for max-range misses
}

// pruneBullets drops dead bullets after iteration.
func pruneBullets(bs []Bullet) []Bullet {
	kept := bs[:0]
	for _, b := range bs {
		if b.Live {
			kept = append(kept, b)
		}
	}
	return kept
}

// ageHoles decrements marker lifetimes and drops expired ones.
func ageHoles(hs []HoleMarker) []HoleMarker {
	kept := hs[:0]
	for _, h := range hs {
		h.Life--
		if h.Life > 0 {
			kept = append(kept, h)
		}
	}
	return kept
}

// addHole appends a marker, evicting the oldest beyond maxHoles.
func addHole(hs []HoleMarker, h HoleMarker) []HoleMarker {
	hs = append(hs, h)
	if len(hs) > maxHoles {
		hs = append(hs[:0], hs[len(hs)-maxHoles:]...)
	}
	return hs
}

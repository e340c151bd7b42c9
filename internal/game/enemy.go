package game

import "image/color"

const (
	enemyTargetCount   = 3   // live enemies kept on the map
	enemySpawnMinDist  = 4.0 // spawn cells must be further than this from the player
	enemyDecalLifetime = 30  // ticks a hit decal stays on an enemy
	pathEpsilon        = 0.1 // waypoint reached radius
)

// EnemyKind is the closed set of enemy variants.
type EnemyKind int

const (
	KindBasic   EnemyKind = iota // melee chaser
	KindArmed                    // chaser that also shoots
	KindArmored                  // slow melee chaser with two hit points
	enemyKindCount
)

// KindSpec is the behaviour and appearance data attached to a kind.
type KindSpec struct {
	Name      string
	Letter    byte
	MaxHealth int
	Speed     float64 // world units per tick
	Armed     bool
	Outline   color.RGBA
}

// Spec returns the data for the kind.
func (k EnemyKind) Spec() KindSpec {
	switch k {
	case KindBasic:
		return KindSpec{Name: "basic", Letter: 'B', MaxHealth: 1, Speed: 0.03,
			Outline: color.RGBA{R: 220, G: 40, B: 40, A: 255}}
	case KindArmed:
		return KindSpec{Name: "armed", Letter: 'G', MaxHealth: 1, Speed: 0.025, Armed: true,
			Outline: color.RGBA{R: 240, G: 170, B: 30, A: 255}}
	case KindArmored:
		// Armored enemies never carry guns.
		return KindSpec{Name: "armored", Letter: 'A', MaxHealth: 2, Speed: 0.018,
			Outline: color.RGBA{R: 120, G: 140, B: 200, A: 255}}
	default:
		return KindSpec{Name: "unknown", Letter: '?', MaxHealth: 1}
	}
}

func (k EnemyKind) String() string {
	return k.Spec().Name
}

// Decal is a short-lived hit mark drawn on an enemy sprite. Offsets are in
// sprite-relative units: X in [-0.5,0.5] across the width, Y in [-0.5,0.5]
// down the height.
type Decal struct {
	OffsetX, OffsetY float64
	Life             int
}

// Enemy is a record in the world's enemy arena. Dead records stay in the
// arena until their decals expire and are then compacted away.
type Enemy struct {
	ID     string
	X, Y   float64
	Alive  bool
	Kind   EnemyKind
	Health int
	MaxHP  int
	Speed  float64
	HasGun bool

	Path          []Cell
	StunLeft      int
	ShootCooldown int
	Decals        []Decal
}

// NewEnemy builds a live enemy of the given kind at (x,y).
func NewEnemy(id string, kind EnemyKind, x, y float64) *Enemy {
	spec := kind.Spec()
	return &Enemy{
		ID:     id,
		X:      x,
		Y:      y,
		Alive:  true,
		Kind:   kind,
		Health: spec.MaxHealth,
		MaxHP:  spec.MaxHealth,
		Speed:  spec.Speed,
		HasGun: spec.Armed && kind != KindArmored,
	}
}

// Cell returns the enemy's current grid cell.
func (e *Enemy) Cell() Cell {
	return CellOf(e.X, e.Y)
}

// Damaged reports whether the enemy has taken a non-lethal hit.
func (e *Enemy) Damaged() bool {
	return e.Alive && e.Health < e.MaxHP
}

// Dying reports whether a dead enemy still has decals on display.
func (e *Enemy) Dying() bool {
	return !e.Alive && len(e.Decals) > 0
}

// Inert reports whether the record can be dropped from the arena.
func (e *Enemy) Inert() bool {
	return !e.Alive && len(e.Decals) == 0
}

// Hit applies one point of damage and records a decal. Returns true when
// the hit killed the enemy.
func (e *Enemy) Hit(offX, offY float64) bool {
	if !e.Alive {
		return false
	}
	e.Health--
	e.Decals = append(e.Decals, Decal{OffsetX: offX, OffsetY: offY, Life: enemyDecalLifetime})
	if e.Health <= 0 {
		e.Health = 0
		e.Alive = false
		e.Path = nil
		return true
	}
	return false
}

// ageDecals decrements decal lifetimes and drops expired ones.
func (e *Enemy) ageDecals() {
	kept := e.Decals[:0]
	for _, d := range e.Decals {
		d.Life--
		if d.Life > 0 {
			kept = append(kept, d)
		}
	}
	e.Decals = kept
}

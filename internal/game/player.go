package game

const (
	playerMaxHP = 100

	// Spawn pose.
	playerSpawnX     = 3.0
	playerSpawnY     = 3.0
	playerSpawnAngle = 0.0

	// Movement regimes, per tick. Zoom selects the second set.
	moveSpeedNormal = 0.06
	moveSpeedZoomed = 0.03
	turnSpeedNormal = 0.05
	turnSpeedZoomed = 0.02
)

// Player is the viewer. It is never removed; health <= 0 ends the match.
type Player struct {
	X, Y   float64
	Angle  float64 // radians, wrapped to (-pi, pi]
	Health int
	Zoomed bool
	Weapon Weapon
}

// NewPlayer returns a player at the spawn pose with full resources.
func NewPlayer() Player {
	return Player{
		X:      playerSpawnX,
		Y:      playerSpawnY,
		Angle:  playerSpawnAngle,
		Health: playerMaxHP,
		Weapon: NewWeapon(),
	}
}

// FOV returns the active field of view.
func (p *Player) FOV() float64 {
	if p.Zoomed {
		return fovZoomed
	}
	return fovNormal
}

// MoveSpeed returns world units moved per tick in the active regime.
func (p *Player) MoveSpeed() float64 {
	if p.Zoomed {
		return moveSpeedZoomed
	}
	return moveSpeedNormal
}

// TurnSpeed returns radians turned per tick in the active regime.
func (p *Player) TurnSpeed() float64 {
	if p.Zoomed {
		return turnSpeedZoomed
	}
	return turnSpeedNormal
}

// Turn rotates by dir * TurnSpeed (dir is -1 for left, +1 for right).
func (p *Player) Turn(dir float64) {
	p.Angle = normalizeAngle(p.Angle + dir*p.TurnSpeed())
}

// Move steps forward (dir=+1) or backward (dir=-1). The whole step is
// rejected if the destination cell is a wall or outside the grid.
func (p *Player) Move(g *Grid, dir float64) bool {
	dx, dy := unitVector(p.Angle)
	nx := p.X + dx*p.MoveSpeed()*dir
	ny := p.Y + dy*p.MoveSpeed()*dir
	if !g.IsOpenAt(nx, ny) {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}

// Damage applies damage and reports whether the player is now dead. Health
// never drops below zero.
func (p *Player) Damage(amount int) bool {
	if amount > 0 {
		p.Health = max(p.Health-amount, 0)
	}
	return p.Health <= 0
}

// Dead reports whether health has reached zero.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// Cell returns the player's current grid cell.
func (p *Player) Cell() Cell {
	return CellOf(p.X, p.Y)
}

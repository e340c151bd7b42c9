package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"
)

// State is the top-level match state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// World owns the authoritative match state and advances it one tick at a
// time. It is not safe for concurrent use; feed it through an IntentBuffer.
type World struct {
	grid   *Grid
	cam    Camera
	rng    *rand.Rand
	log    *logrus.Logger
	simLog *SimLog
	newID  func() string

	matchID string
	tick    int
	state   State
	stats   Stats

	player  Player
	enemies []*Enemy
	bullets []Bullet
	holes   []HoleMarker
	depth   []Column

	zoomHeld      bool
	targetEnemies int
}

// Option configures a World at construction.
type Option func(*World)

// WithGrid replaces the default map.
func WithGrid(g *Grid) Option {
	return func(w *World) { w.grid = g }
}

// WithCamera sets the projection used for the depth buffer.
func WithCamera(c Camera) Option {
	return func(w *World) { w.cam = c }
}

// WithSeed seeds the spawn RNG for deterministic runs.
func WithSeed(seed int64) Option {
	return func(w *World) {
		w.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}
}

// WithLogger routes world logging to l.
func WithLogger(l *logrus.Logger) Option {
	return func(w *World) { w.log = l }
}

// WithSimLog records events into sl instead of a private log.
func WithSimLog(sl *SimLog) Option {
	return func(w *World) { w.simLog = sl }
}

// WithTargetEnemies sets how many live enemies the spawner maintains.
// Zero disables spawning.
func WithTargetEnemies(n int) Option {
	return func(w *World) { w.targetEnemies = n }
}

// WithIDSource overrides enemy ID generation.
func WithIDSource(f func() string) Option {
	return func(w *World) { w.newID = f }
}

// NewWorld builds a world and starts the first match.
func NewWorld(opts ...Option) *World {
	w := &World{
		grid:          DefaultGrid(),
		cam:           DefaultCamera(),
		targetEnemies: enemyTargetCount,
		newID:         func() string { return ksuid.New().String() },
	}
	for _, o := range opts {
		o(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	if w.log == nil {
		w.log = logrus.New()
		w.log.SetOutput(io.Discard)
	}
	if w.simLog == nil {
		w.simLog = NewSimLog(false)
	}
	w.startMatch()
	w.simLog.Add(w.tick, "--", CatMatch, KeyStart, w.matchID, 0)
	return w
}

// startMatch resets every piece of match state and seeds the roster.
func (w *World) startMatch() {
	w.matchID = uuid.NewString()
	w.state = StatePlaying
	w.stats = Stats{}
	w.player = NewPlayer()
	w.enemies = w.enemies[:0]
	w.bullets = w.bullets[:0]
	w.holes = w.holes[:0]
	w.zoomHeld = false
	w.topUpEnemies()
	w.refreshDepth()
	w.logger().Info("match started")
}

// Restart begins a fresh match: player resources and pose reset, enemies,
// bullets and markers cleared, roster reseeded.
func (w *World) Restart() {
	prev := w.stats
	w.logger().WithFields(logrus.Fields{
		"kills": prev.TotalKills(),
		"ticks": prev.TicksSurvived,
	}).Info("restarting match")
	w.startMatch()
	w.simLog.Add(w.tick, "--", CatMatch, KeyRestart, w.matchID, float64(prev.TotalKills()))
}

// logger returns an entry carrying the match and tick fields.
func (w *World) logger() *logrus.Entry {
	return w.log.WithFields(logrus.Fields{
		"match_id": w.matchID,
		"tick":     w.tick,
	})
}

// Tick advances the simulation by one step using the given intent.
func (w *World) Tick(in Intent) {
	w.tick++

	if w.state == StateGameOver {
		if in.Restart {
			w.Restart()
		}
		return
	}
	w.stats.TicksSurvived++

	// 1. POSE: zoom edge, turning, movement.
	if in.ToggleZoom && !w.zoomHeld {
		w.player.Zoomed = !w.player.Zoomed
		w.simLog.Add(w.tick, "player", CatPlayer, KeyZoom, fmt.Sprintf("%t", w.player.Zoomed), 0)
	}
	w.zoomHeld = in.ToggleZoom
	if in.TurnLeft {
		w.player.Turn(-1)
	}
	if in.TurnRight {
		w.player.Turn(1)
	}
	if in.MoveForward {
		w.player.Move(w.grid, 1)
	}
	if in.MoveBackward {
		w.player.Move(w.grid, -1)
	}

	// 2. WEAPON: timers, then reload and fire requests.
	if w.player.Weapon.Tick() {
		w.simLog.Add(w.tick, "player", CatWeapon, KeyReloaded, "", float64(w.player.Weapon.Ammo))
		w.logger().Debug("reload complete")
	}
	if in.Reload && w.player.Weapon.Reload() {
		w.stats.Reloads++
		w.simLog.Add(w.tick, "player", CatWeapon, KeyReload, "manual", float64(w.player.Weapon.Ammo))
	}
	if in.Fire {
		w.fire()
	}

	// 3. AI: each live enemy decides and acts.
	w.updateEnemies()

	// 4. PROJECTILES
	if w.state == StatePlaying {
		w.updateBullets()
	}

	// 5. DECALS + arena compaction.
	for _, e := range w.enemies {
		e.ageDecals()
	}
	w.holes = ageHoles(w.holes)
	w.bullets = pruneBullets(w.bullets)
	w.compactEnemies()

	// 6. SPAWN
	if w.state == StatePlaying {
		w.topUpEnemies()
	}

	// 7. VIEW
	w.refreshDepth()

	if w.simLog.Verbose() {
		w.recordDetail()
	}
}

// recordDetail writes the per-tick pose of the player and every live enemy
// to the verbose trail.
func (w *World) recordDetail() {
	p := &w.player
	w.simLog.AddVerbose(w.tick, "player", CatPlayer, KeyPose,
		fmt.Sprintf("(%.2f,%.2f) a=%.2f hp=%d ammo=%d", p.X, p.Y, p.Angle, p.Health, p.Weapon.Ammo), p.Angle)
	for _, e := range w.enemies {
		if !e.Alive {
			continue
		}
		w.simLog.AddVerbose(w.tick, shortID(e.ID), CatEnemy, KeyPosition,
			fmt.Sprintf("(%.2f,%.2f) path=%d stun=%d cd=%d", e.X, e.Y, len(e.Path), e.StunLeft, e.ShootCooldown),
			Distance(e.X, e.Y, p.X, p.Y))
	}
}

// compactEnemies drops dead records whose decals have expired.
func (w *World) compactEnemies() {
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.Inert() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.enemies); i++ {
		w.enemies[i] = nil
	}
	w.enemies = kept
}

// refreshDepth recomputes the per-column depth buffer from the player pose.
func (w *World) refreshDepth() {
	p := &w.player
	w.depth = CastView(w.grid, p.X, p.Y, p.Angle, p.FOV(), w.cam)
}

// damagePlayer applies damage and flips to game over when health runs out.
func (w *World) damagePlayer(amount int, cause string) {
	w.player.Damage(amount)
	w.stats.DamageTaken += amount
	w.simLog.Add(w.tick, "player", CatPlayer, KeyHit, cause, float64(w.player.Health))
	w.logger().WithFields(logrus.Fields{
		"cause":  cause,
		"damage": amount,
		"health": w.player.Health,
	}).Debug("player hit")
	if w.player.Dead() && w.state == StatePlaying {
		w.state = StateGameOver
		w.simLog.Add(w.tick, "--", CatMatch, KeyGameOver, cause, float64(w.stats.TotalKills()))
		w.logger().WithFields(logrus.Fields{
			"cause": cause,
			"kills": w.stats.TotalKills(),
		}).Info("game over")
	}
}

// --- Accessors ---

// State returns the top-level match state.
func (w *World) State() State { return w.state }

// CurrentTick returns the number of ticks processed.
func (w *World) CurrentTick() int { return w.tick }

// MatchID returns the current match identifier.
func (w *World) MatchID() string { return w.matchID }

// Player returns a copy of the player record.
func (w *World) Player() Player { return w.player }

// Enemies returns the enemy arena, including dying records.
func (w *World) Enemies() []*Enemy { return w.enemies }

// Bullets returns the live enemy bullets.
func (w *World) Bullets() []Bullet { return w.bullets }

// Holes returns the active player-shot markers.
func (w *World) Holes() []HoleMarker { return w.holes }

// Depth returns the current depth buffer.
func (w *World) Depth() []Column { return w.depth }

// Grid returns the map.
func (w *World) Grid() *Grid { return w.grid }

// Stats returns the match counters.
func (w *World) Stats() Stats { return w.stats }

// SimLog returns the event trail.
func (w *World) SimLog() *SimLog { return w.simLog }

// LiveEnemies counts enemies with Alive set.
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

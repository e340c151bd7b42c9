package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// TestSim is a headless simulation harness used by tests and the headless
// report. It wraps a World with deterministic seeding, sequential enemy IDs
// and structured logging.
type TestSim struct {
	World  *World
	SimLog *SimLog

	rows    []string
	seed    int64
	target  int
	cam     Camera
	logger  *logrus.Logger
	nextID  int
	gridErr error
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // map, seed, logging, spawner; applied first
	simOptActor                      // player pose, enemies; applied after the world exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithMapRows replaces the default map.
func WithMapRows(rows ...string) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rows = rows
	}}
}

// WithSimSeed sets the RNG seed for deterministic runs.
func WithSimSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithVerbose enables verbose event logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithSimLogger routes world logging to l.
func WithSimLogger(l *logrus.Logger) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.logger = l
	}}
}

// WithoutSpawns disables the enemy spawner so tests control the roster.
func WithoutSpawns() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.target = 0
	}}
}

// WithSimCamera sets the projection.
func WithSimCamera(c Camera) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cam = c
	}}
}

// WithPlayerAt places the player. The position must be open.
func WithPlayerAt(x, y, angle float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.World.player.X = x
		ts.World.player.Y = y
		ts.World.player.Angle = normalizeAngle(angle)
	}}
}

// WithEnemyAt adds an enemy of the given kind.
func WithEnemyAt(kind EnemyKind, x, y float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.World.AddEnemy(kind, x, y)
	}}
}

// NewTestSim constructs a TestSim from the given options in order:
//  1. Infrastructure (map, seed, logging, spawner)
//  2. Build World
//  3. Actors (player pose, enemies)
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		SimLog: NewSimLog(false),
		seed:   1,
		target: enemyTargetCount,
		cam:    Camera{Columns: 80, ScreenHeight: 24},
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}

	grid := DefaultGrid()
	if ts.rows != nil {
		g, err := NewGrid(ts.rows...)
		if err != nil {
			ts.gridErr = err
		} else {
			grid = g
		}
	}
	wopts := []Option{
		WithGrid(grid),
		WithSeed(ts.seed),
		WithCamera(ts.cam),
		WithSimLog(ts.SimLog),
		WithTargetEnemies(ts.target),
		WithIDSource(ts.sequentialID),
	}
	if ts.logger != nil {
		wopts = append(wopts, WithLogger(ts.logger))
	}
	ts.World = NewWorld(wopts...)

	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(ts)
		}
	}
	ts.World.refreshDepth()
	return ts
}

func (ts *TestSim) sequentialID() string {
	ts.nextID++
	return fmt.Sprintf("enemy-%03d", ts.nextID)
}

// GridErr returns the error from parsing WithMapRows, if any.
func (ts *TestSim) GridErr() error {
	return ts.gridErr
}

// Enemy returns the i-th record in the enemy arena, or nil.
func (ts *TestSim) Enemy(i int) *Enemy {
	if i < 0 || i >= len(ts.World.enemies) {
		return nil
	}
	return ts.World.enemies[i]
}

// RunTicks advances the simulation n ticks with the same intent each tick.
func (ts *TestSim) RunTicks(n int, in Intent) {
	for i := 0; i < n; i++ {
		ts.World.Tick(in)
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if
// predicate returns true. Returns the tick at which the predicate was
// satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int, pilot func(*TestSim) Intent) int {
	for i := 0; i < maxTicks; i++ {
		var in Intent
		if pilot != nil {
			in = pilot(ts)
		}
		ts.World.Tick(in)
		if predicate(ts) {
			return ts.World.tick
		}
	}
	return -1
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.World.tick
}

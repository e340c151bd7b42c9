package game

import (
	"math"
	"testing"
)

func TestFrame_EnemyAheadIsCentred(t *testing.T) {
	ts := NewTestSim(
		WithoutSpawns(),
		WithPlayerAt(1.5, 3.5, 0),
		WithEnemyAt(KindArmored, 5.5, 3.5),
	)
	f := ts.World.Frame()
	if len(f.Enemies) != 1 {
		t.Fatalf("expected one visible enemy, got %d", len(f.Enemies))
	}
	s := f.Enemies[0]
	if s.Column != 40 {
		t.Fatalf("enemy straight ahead should project to column 40, got %d", s.Column)
	}
	if math.Abs(s.Distance-4) > 1e-9 || s.Height != 6 {
		t.Fatalf("expected distance 4 and height 6, got %.3f and %d", s.Distance, s.Height)
	}
	if s.Kind != KindArmored || s.Damaged || s.Dying {
		t.Fatalf("unexpected sprite flags: %+v", s)
	}
}

func TestFrame_EnemyBehindWallHidden(t *testing.T) {
	ts := NewTestSim(
		WithoutSpawns(),
		WithPlayerAt(3.5, 1.5, math.Pi/2),
		WithEnemyAt(KindBasic, 3.5, 3.5),
	)
	if n := len(ts.World.Frame().Enemies); n != 0 {
		t.Fatalf("enemy behind (3,2) should be occluded, %d visible", n)
	}
}

func TestFrame_EnemyBehindPlayerHidden(t *testing.T) {
	ts := NewTestSim(
		WithoutSpawns(),
		WithPlayerAt(5.5, 3.5, 0),
		WithEnemyAt(KindBasic, 2.5, 3.5),
	)
	if n := len(ts.World.Frame().Enemies); n != 0 {
		t.Fatalf("enemy outside the field of view should be hidden, %d visible", n)
	}
}

func TestFrame_SpritesSortedFarToNear(t *testing.T) {
	ts := NewTestSim(
		WithoutSpawns(),
		WithPlayerAt(1.5, 3.5, 0),
		WithEnemyAt(KindBasic, 4.5, 3.5),
		WithEnemyAt(KindArmed, 7.5, 3.5),
	)
	f := ts.World.Frame()
	if len(f.Enemies) != 2 {
		t.Fatalf("expected two visible enemies, got %d", len(f.Enemies))
	}
	if f.Enemies[0].Distance < f.Enemies[1].Distance {
		t.Fatalf("sprites should be far first: %.2f then %.2f", f.Enemies[0].Distance, f.Enemies[1].Distance)
	}
	if f.Enemies[0].Height > f.Enemies[1].Height {
		t.Fatal("nearer sprites must not be shorter")
	}
}

func TestFrame_DyingEnemyCarriesDecals(t *testing.T) {
	ts := NewTestSim(
		WithoutSpawns(),
		WithPlayerAt(1.5, 3.5, 0),
		WithEnemyAt(KindBasic, 5.5, 3.5),
	)
	ts.World.Tick(Intent{Fire: true})
	f := ts.World.Frame()
	if len(f.Enemies) != 1 {
		t.Fatalf("dying enemy should still be drawn, got %d sprites", len(f.Enemies))
	}
	s := f.Enemies[0]
	if !s.Dying || len(s.Decals) != 1 {
		t.Fatalf("expected a dying sprite with one decal, got %+v", s)
	}
	if s.Decals[0].Life != enemyDecalLifetime-1 {
		t.Fatalf("decal should have aged once, life=%d", s.Decals[0].Life)
	}
}

func TestFrame_HUD(t *testing.T) {
	ts := NewTestSim(
		WithoutSpawns(),
		WithPlayerAt(1.5, 1.5, math.Pi/2),
	)
	ts.World.Tick(Intent{Fire: true})
	h := ts.World.Frame().HUD
	if h.Ammo != maxAmmo-1 || h.MaxAmmo != maxAmmo {
		t.Fatalf("unexpected ammo readout %d/%d", h.Ammo, h.MaxAmmo)
	}
	if !h.MuzzleFlash {
		t.Fatal("muzzle flash should show right after firing")
	}
	if h.Health != playerMaxHP || h.MaxHealth != playerMaxHP {
		t.Fatalf("unexpected health readout %d/%d", h.Health, h.MaxHealth)
	}
	ts.RunTicks(muzzleFlashTicks, Intent{})
	if ts.World.Frame().HUD.MuzzleFlash {
		t.Fatal("muzzle flash should expire")
	}
}

func TestFrame_HUDHealthClampedAtZero(t *testing.T) {
	ts := NewTestSim(WithoutSpawns())
	ts.World.damagePlayer(playerMaxHP+40, "test")
	f := ts.World.Frame()
	if f.HUD.Health != 0 {
		t.Fatalf("HUD health should clamp to 0, got %d", f.HUD.Health)
	}
	if f.State != StateGameOver {
		t.Fatalf("frame should report game over, got %s", f.State)
	}
}

func TestFrame_BulletsAndMarkersProjected(t *testing.T) {
	ts := NewTestSim(
		WithoutSpawns(),
		WithPlayerAt(1.5, 3.5, 0),
	)
	ts.World.bullets = append(ts.World.bullets, NewBullet("x", 6.5, 3.5, 1.5, 3.5))
	ts.World.holes = addHole(ts.World.holes, HoleMarker{X: 9.0, Y: 3.5, Life: holeLifetime, OnHit: true})
	ts.World.refreshDepth()
	f := ts.World.Frame()
	if len(f.Bullets) != 1 {
		t.Fatalf("expected one projected bullet, got %d", len(f.Bullets))
	}
	if len(f.Holes) != 1 {
		t.Fatalf("wall marker at the wall face should be visible, got %d", len(f.Holes))
	}
}

func TestFrame_ColumnsMatchCamera(t *testing.T) {
	ts := NewTestSim(WithoutSpawns(), WithSimCamera(Camera{Columns: 33, ScreenHeight: 17}))
	f := ts.World.Frame()
	if len(f.Columns) != 33 || f.ScreenHeight != 17 {
		t.Fatalf("expected 33 columns at height 17, got %d at %d", len(f.Columns), f.ScreenHeight)
	}
}

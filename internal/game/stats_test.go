package game

import (
	"strings"
	"testing"
)

func TestStats_AccuracyBeforeFirstShot(t *testing.T) {
	var s Stats
	if s.Accuracy() != 0 {
		t.Fatalf("expected 0 accuracy with no shots, got %v", s.Accuracy())
	}
	s.ShotsFired, s.Hits = 4, 3
	if s.Accuracy() != 0.75 {
		t.Fatalf("expected 0.75, got %v", s.Accuracy())
	}
}

func TestStats_TotalKillsAndString(t *testing.T) {
	var s Stats
	s.Kills[KindBasic] = 2
	s.Kills[KindArmored] = 1
	if s.TotalKills() != 3 {
		t.Fatalf("expected 3 kills, got %d", s.TotalKills())
	}
	out := s.String()
	for _, want := range []string{"kills=3", "basic=2", "armed=0", "armored=1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary %q missing %q", out, want)
		}
	}
}

func TestStats_ResetOnRestart(t *testing.T) {
	ts := NewTestSim(
		WithoutSpawns(),
		WithPlayerAt(1.5, 3.5, 0),
		WithEnemyAt(KindBasic, 5.5, 3.5),
	)
	ts.World.Tick(Intent{Fire: true})
	if ts.World.Stats().TotalKills() != 1 {
		t.Fatal("expected the kill to be counted")
	}
	ts.World.damagePlayer(playerMaxHP, "test")
	ts.World.Tick(Intent{Restart: true})
	st := ts.World.Stats()
	if st.TotalKills() != 0 || st.ShotsFired != 0 || st.DamageTaken != 0 {
		t.Fatalf("stats should reset on restart, got %s", st)
	}
}

package game

import (
	"fmt"
	"strings"
)

// Stats accumulates per-match counters. Reset on restart.
type Stats struct {
	ShotsFired     int
	Hits           int
	Kills          [enemyKindCount]int
	DamageTaken    int
	MeleeHits      int // melee strikes received
	BulletHits     int // enemy bullets received
	BulletsFired   int // enemy bullets spawned
	EnemiesSpawned int
	Reloads        int
	TicksSurvived  int
}

// TotalKills sums kills over every kind.
func (s Stats) TotalKills() int {
	n := 0
	for _, k := range s.Kills {
		n += k
	}
	return n
}

// Accuracy returns hits per shot in 0..1, or 0 before the first shot.
func (s Stats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.ShotsFired)
}

// String returns a one-line summary.
func (s Stats) String() string {
	var kinds []string
	for k := EnemyKind(0); k < enemyKindCount; k++ {
		kinds = append(kinds, fmt.Sprintf("%s=%d", k, s.Kills[k]))
	}
	return fmt.Sprintf("ticks=%d shots=%d hits=%d acc=%.0f%% kills=%d [%s] dmg_taken=%d spawned=%d",
		s.TicksSurvived, s.ShotsFired, s.Hits, s.Accuracy()*100, s.TotalKills(),
		strings.Join(kinds, " "), s.DamageTaken, s.EnemiesSpawned)
}

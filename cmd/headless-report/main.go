package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Ray-Sense/internal/asciiview"
	"github.com/Garsondee/Ray-Sense/internal/game"
	"github.com/Garsondee/Ray-Sense/internal/logging"
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int

	firstKillTick  int
	firstHitTick   int
	firstDeathTick int
	longestLife    int

	matches     int
	deaths      int
	kills       map[string]int
	shots       int
	hits        int
	precision   int
	wallShots   int
	misses      int
	meleeHits   int
	bulletHits  int
	damageTaken int
	enemyShots  int
	reloads     int
	spawned     int

	finalFrame string
	trail      string
}

func (rs runStats) totalKills() int {
	n := 0
	for _, k := range rs.kills {
		n += k
	}
	return n
}

func (rs runStats) accuracy() float64 {
	if rs.shots == 0 {
		return 0
	}
	return float64(rs.hits) / float64(rs.shots)
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var pilotName string
	var ascii bool
	var logLevel string
	var trail int

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&pilotName, "pilot", "hunter", "autopilot (hunter, idle)")
	flag.BoolVar(&ascii, "ascii", false, "print the final frame of each run as text")
	flag.StringVar(&logLevel, "log-level", "", "stream world logs to stderr at this level")
	flag.IntVar(&trail, "trail", 0, "record per-tick detail and print the last N trail entries of each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if trail < 0 {
		fmt.Println("error: -trail must be >= 0")
		return
	}
	if _, ok := pilots[pilotName]; !ok {
		fmt.Printf("error: unsupported pilot %q (supported: %s)\n", pilotName, strings.Join(pilotNames(), ", "))
		return
	}

	var logger *logrus.Logger
	if logLevel != "" {
		logger = logging.New(logLevel, "text", os.Stderr)
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("pilot=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", pilotName, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runMatch(i+1, seed, ticks, pilots[pilotName](), logger, ascii, trail)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runMatch plays ticks ticks under the pilot, restarting after each death,
// and summarises the event trail. A positive trail turns on per-tick detail
// and keeps that many trailing entries for the report.
func runMatch(runIndex int, seed int64, ticks int, p pilot, logger *logrus.Logger, ascii bool, trail int) runStats {
	opts := []game.SimOption{game.WithSimSeed(seed), game.WithVerbose(trail > 0)}
	if logger != nil {
		opts = append(opts, game.WithSimLogger(logger))
	}
	ts := game.NewTestSim(opts...)
	ts.RunUntil(func(*game.TestSim) bool { return false }, ticks, p.next)

	rs := summarise(ts.SimLog.Entries(), ticks)
	rs.runIndex = runIndex
	rs.seed = seed
	if ascii {
		rs.finalFrame = asciiview.Render(ts.World.Frame())
	}
	if trail > 0 {
		var sb strings.Builder
		for _, e := range ts.SimLog.Tail(trail) {
			sb.WriteString(e.String())
			sb.WriteByte('\n')
		}
		rs.trail = sb.String()
	}
	return rs
}

// summarise folds the event trail of one run into counters.
func summarise(entries []game.SimLogEntry, ticks int) runStats {
	rs := runStats{
		ticks:          ticks,
		kills:          map[string]int{},
		firstKillTick:  firstTick(entries, game.CatEnemy, game.KeyKill, ""),
		firstHitTick:   firstTick(entries, game.CatPlayer, game.KeyHit, ""),
		firstDeathTick: firstTick(entries, game.CatMatch, game.KeyGameOver, ""),
	}
	lifeStart, alive := 0, false
	for _, e := range entries {
		switch e.Category {
		case game.CatMatch:
			switch e.Key {
			case game.KeyStart, game.KeyRestart:
				rs.matches++
				lifeStart, alive = e.Tick, true
			case game.KeyGameOver:
				rs.deaths++
				alive = false
				rs.longestLife = max(rs.longestLife, e.Tick-lifeStart)
			}
		case game.CatEnemy:
			switch e.Key {
			case game.KeyKill:
				rs.kills[e.Value]++
			case game.KeySpawn:
				rs.spawned++
			case game.KeyShoot:
				rs.enemyShots++
			case game.KeyMelee:
				rs.meleeHits++
			}
		case game.CatPlayer:
			if e.Key == game.KeyHit && e.Value == "bullet" {
				rs.bulletHits++
			}
		case game.CatWeapon:
			switch e.Key {
			case game.KeyShot:
				rs.shots++
				switch {
				case strings.HasPrefix(e.Value, "precision"):
					rs.hits++
					rs.precision++
				case strings.HasPrefix(e.Value, "hit"):
					rs.hits++
				case strings.HasPrefix(e.Value, "wall"):
					rs.wallShots++
				default:
					rs.misses++
				}
			case game.KeyReload:
				rs.reloads++
			}
		}
	}
	if alive {
		rs.longestLife = max(rs.longestLife, ticks-lifeStart)
	}
	rs.damageTaken = damageFromEntries(entries)
	return rs
}

// damageFromEntries sums the health drops recorded on player hits across
// every match in the trail.
func damageFromEntries(entries []game.SimLogEntry) int {
	full := float64(game.NewPlayer().Health)
	total := 0
	hp := full
	for _, e := range entries {
		switch {
		case e.Category == game.CatMatch && (e.Key == game.KeyStart || e.Key == game.KeyRestart):
			hp = full
		case e.Category == game.CatPlayer && e.Key == game.KeyHit:
			total += int(hp - e.NumVal)
			hp = e.NumVal
		}
	}
	return total
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains != "" && !strings.Contains(e.Value, contains) {
			continue
		}
		return e.Tick
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_kill=%d first_hit_taken=%d first_death=%d longest_life=%d\n",
		rs.firstKillTick, rs.firstHitTick, rs.firstDeathTick, rs.longestLife)
	fmt.Printf("match_totals: matches=%d deaths=%d spawned=%d kills=%d [%s]\n",
		rs.matches, rs.deaths, rs.spawned, rs.totalKills(), joinCounts(rs.kills))
	fmt.Printf("weapon: shots=%d hits=%d precision=%d wall=%d miss=%d accuracy=%.0f%% reloads=%d\n",
		rs.shots, rs.hits, rs.precision, rs.wallShots, rs.misses, rs.accuracy()*100, rs.reloads)
	fmt.Printf("damage_taken: total=%d melee_hits=%d bullet_hits=%d enemy_shots=%d\n",
		rs.damageTaken, rs.meleeHits, rs.bulletHits, rs.enemyShots)
	if rs.finalFrame != "" {
		fmt.Print(rs.finalFrame)
	}
	if rs.trail != "" {
		fmt.Printf("trail:\n%s", rs.trail)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	var kills, deaths, shots, hits, damage int
	var firstKills, firstDeaths, lives []int
	byKind := map[string]int{}
	for _, rs := range all {
		kills += rs.totalKills()
		deaths += rs.deaths
		shots += rs.shots
		hits += rs.hits
		damage += rs.damageTaken
		for k, v := range rs.kills {
			byKind[k] += v
		}
		if rs.firstKillTick >= 0 {
			firstKills = append(firstKills, rs.firstKillTick)
		}
		if rs.firstDeathTick >= 0 {
			firstDeaths = append(firstDeaths, rs.firstDeathTick)
		}
		lives = append(lives, rs.longestLife)
	}
	n := len(all)

	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d\n", n)
	fmt.Printf("avg_per_run: kills=%.1f deaths=%.1f shots=%.1f damage_taken=%.1f\n",
		avg(kills, n), avg(deaths, n), avg(shots, n), avg(damage, n))
	acc := 0.0
	if shots > 0 {
		acc = float64(hits) / float64(shots) * 100
	}
	fmt.Printf("accuracy=%.1f%% kills_by_kind=[%s]\n", acc, joinCounts(byKind))
	fmt.Printf("phase_marker_avg_ticks: first_kill=%s first_death=%s longest_life=%s\n",
		avgTickString(firstKills), avgTickString(firstDeaths), avgTickString(lives))
	kpd := float64(kills)
	if deaths > 0 {
		kpd = float64(kills) / float64(deaths)
	}
	fmt.Printf("kills_per_death=%.2f\n", kpd)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.0f", float64(sum)/float64(len(vals)))
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, " ")
}

package game

import (
	"fmt"
	"strings"
)

// Event categories and keys recorded by the world.
const (
	CatMatch  = "match"
	CatEnemy  = "enemy"
	CatPlayer = "player"
	CatWeapon = "weapon"

	KeyStart    = "start"
	KeyGameOver = "game_over"
	KeyRestart  = "restart"
	KeySpawn    = "spawn"
	KeyHit      = "hit"
	KeyKill     = "kill"
	KeyShoot    = "shoot"
	KeyMelee    = "melee"
	KeyShot     = "shot"
	KeyReload   = "reload"
	KeyReloaded = "reloaded"
	KeyZoom     = "zoom"

	// Verbose per-tick detail.
	KeyPose     = "pose"
	KeyPosition = "position"
)

// SimLogEntry is one recorded event.
type SimLogEntry struct {
	Tick     int
	Subject  string  // enemy short ID, "player", or "--" for match events
	Category string  // match, enemy, player, weapon
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] player   weapon  shot        wall at (9.0,3.0)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-8s %-7s %-11s %s",
		e.Tick, e.Subject, e.Category, e.Key, e.Value)
}

// SimLog collects structured events for a match. Unlike the kill feed
// (UI ring buffer), SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick detail entries
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, subject, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Subject:  subject,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, subject, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, subject, category, key, value, numVal)
}

// Verbose reports whether per-tick detail entries are recorded.
func (sl *SimLog) Verbose() bool {
	return sl.verbose
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Reset drops every entry.
func (sl *SimLog) Reset() {
	sl.entries = sl.entries[:0]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Tail returns up to n most recent entries, oldest first.
func (sl *SimLog) Tail(n int) []SimLogEntry {
	if n >= len(sl.entries) {
		return sl.entries
	}
	return sl.entries[len(sl.entries)-n:]
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

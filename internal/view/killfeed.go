package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Ray-Sense/internal/game"
)

const (
	feedMaxEntries  = 8
	feedLineHeight  = 15
	feedPanelWidth  = 300
	feedPanelHeight = feedMaxEntries*feedLineHeight + 8
)

// FeedEntry is a single line in the kill feed.
type FeedEntry struct {
	Tick    int
	Label   string // enemy short ID or "YOU"
	Tone    color.RGBA
	Message string
}

var (
	toneKill   = color.RGBA{R: 120, G: 220, B: 120, A: 255}
	toneHurt   = color.RGBA{R: 230, G: 80, B: 70, A: 255}
	toneMatch  = color.RGBA{R: 230, G: 210, B: 110, A: 255}
	toneWeapon = color.RGBA{R: 160, G: 170, B: 200, A: 255}
)

// KillFeed is a ring buffer of recent match events rendered on-screen.
type KillFeed struct {
	entries []FeedEntry
	head    int
	count   int
	cursor  int // next SimLog entry to read
}

// NewKillFeed creates a feed with a fixed capacity.
func NewKillFeed() *KillFeed {
	return &KillFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest when full.
func (kf *KillFeed) Add(e FeedEntry) {
	kf.entries[kf.head] = e
	kf.head = (kf.head + 1) % feedMaxEntries
	if kf.count < feedMaxEntries {
		kf.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (kf *KillFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, kf.count)
	for i := 0; i < kf.count; i++ {
		idx := (kf.head - kf.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = kf.entries[idx]
	}
	return result
}

// Sync appends the feed-worthy events recorded since the last call.
func (kf *KillFeed) Sync(sl *game.SimLog) {
	all := sl.Entries()
	if kf.cursor > len(all) {
		kf.cursor = 0
	}
	for _, e := range all[kf.cursor:] {
		if fe, ok := feedEntryFor(e); ok {
			kf.Add(fe)
		}
	}
	kf.cursor = len(all)
}

// feedEntryFor picks the events shown to the player.
func feedEntryFor(e game.SimLogEntry) (FeedEntry, bool) {
	switch {
	case e.Category == game.CatEnemy && e.Key == game.KeyKill:
		return FeedEntry{Tick: e.Tick, Label: e.Subject, Tone: toneKill,
			Message: fmt.Sprintf("%s down (%d total)", e.Value, int(e.NumVal))}, true
	case e.Category == game.CatPlayer && e.Key == game.KeyHit:
		return FeedEntry{Tick: e.Tick, Label: "YOU", Tone: toneHurt,
			Message: fmt.Sprintf("hit by %s, %d hp", e.Value, int(e.NumVal))}, true
	case e.Category == game.CatMatch && e.Key == game.KeyGameOver:
		return FeedEntry{Tick: e.Tick, Label: "--", Tone: toneMatch,
			Message: fmt.Sprintf("game over (%s)", e.Value)}, true
	case e.Category == game.CatMatch && e.Key == game.KeyRestart:
		return FeedEntry{Tick: e.Tick, Label: "--", Tone: toneMatch, Message: "new match"}, true
	case e.Category == game.CatWeapon && e.Key == game.KeyReloaded:
		return FeedEntry{Tick: e.Tick, Label: "YOU", Tone: toneWeapon, Message: "reloaded"}, true
	}
	return FeedEntry{}, false
}

// Draw renders the feed panel with its top-left corner at (x, y).
func (kf *KillFeed) Draw(screen *ebiten.Image, face text.Face, x, y int) {
	entries := kf.Recent()
	if len(entries) == 0 {
		return
	}
	// Panel background.
	vector.FillRect(screen, float32(x), float32(y), feedPanelWidth, feedPanelHeight, color.RGBA{R: 10, G: 12, B: 10, A: 170}, false)

	recent := 2 // how many latest entries to highlight
	ly := y + 4
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, float32(x+2), float32(ly), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		// Tone indicator.
		vector.FillRect(screen, float32(x+5), float32(ly+4), 3, 7, e.Tone, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x+12), float64(ly))
		op.ColorScale.ScaleWithColor(e.Tone)
		text.Draw(screen, fmt.Sprintf("%5d [%s] %s", e.Tick, e.Label, e.Message), face, op)
		ly += feedLineHeight
	}
}

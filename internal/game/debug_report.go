package game

import (
	"fmt"
	"strings"
)

// DebugReport renders the match state, counters, roster and the last
// lastTicks ticks of the event trail as plain text.
func (w *World) DebugReport(lastTicks int) string {
	var sb strings.Builder
	p := &w.player

	fmt.Fprintf(&sb, "=== Match %s ===\n", w.matchID)
	fmt.Fprintf(&sb, "tick=%d state=%s\n", w.tick, w.state)
	fmt.Fprintf(&sb, "player pos=(%.2f,%.2f) cell=%s angle=%.2f hp=%d zoom=%t\n",
		p.X, p.Y, p.Cell(), p.Angle, p.Health, p.Zoomed)
	fmt.Fprintf(&sb, "weapon ammo=%d/%d reloading=%t reload_left=%d cooldown=%d\n",
		p.Weapon.Ammo, p.Weapon.MaxAmmo, p.Weapon.Reloading, p.Weapon.ReloadLeft, p.Weapon.Cooldown)
	fmt.Fprintf(&sb, "stats %s\n", w.stats)

	sb.WriteString("\n--- Enemies ---\n")
	if len(w.enemies) == 0 {
		sb.WriteString("none\n")
	}
	for _, e := range w.enemies {
		status := "alive"
		if !e.Alive {
			status = "dying"
		}
		fmt.Fprintf(&sb, "%s %-7s %-5s pos=(%.2f,%.2f) hp=%d/%d path=%d stun=%d cd=%d dist=%.2f\n",
			shortID(e.ID), e.Kind, status, e.X, e.Y, e.Health, e.MaxHP, len(e.Path),
			e.StunLeft, e.ShootCooldown, Distance(e.X, e.Y, p.X, p.Y))
	}
	fmt.Fprintf(&sb, "bullets=%d markers=%d\n", len(w.bullets), len(w.holes))

	sb.WriteString("\n--- Map ---\n")
	sb.WriteString(w.minimapText())

	from := w.tick - lastTicks
	sb.WriteString("\n--- Events ---\n")
	n := 0
	for _, e := range w.simLog.Entries() {
		if e.Tick < from {
			continue
		}
		sb.WriteString(e.String())
		sb.WriteByte('\n')
		n++
	}
	if n == 0 {
		sb.WriteString("none\n")
	}
	return sb.String()
}

// minimapText draws the grid with the player as '@', live enemies as their
// kind letter and bullets as '*'.
func (w *World) minimapText() string {
	rows := w.grid.Rows()
	cells := make([][]byte, len(rows))
	for i, r := range rows {
		cells[i] = []byte(r)
	}
	put := func(c Cell, b byte) {
		if w.grid.InBounds(c.X, c.Y) {
			cells[c.Y][c.X] = b
		}
	}
	for _, b := range w.bullets {
		if b.Live {
			put(CellOf(b.X, b.Y), '*')
		}
	}
	for _, e := range w.enemies {
		if e.Alive {
			put(e.Cell(), e.Kind.Spec().Letter)
		}
	}
	put(w.player.Cell(), '@')

	var sb strings.Builder
	for _, r := range cells {
		sb.Write(r)
		sb.WriteByte('\n')
	}
	return sb.String()
}

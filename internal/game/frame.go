package game

import "sort"

// Sprite is a world object projected onto the view.
type Sprite struct {
	Column   int
	Distance float64
	Height   int // full projected height in pixels
	Top      int
	Bottom   int
}

// DecalView is a hit mark in pixels relative to the sprite centre.
type DecalView struct {
	DX, DY int
	Life   int
}

// EnemySprite is a visible enemy.
type EnemySprite struct {
	Sprite
	ID      string
	Kind    EnemyKind
	Damaged bool
	Dying   bool
	Decals  []DecalView
}

// HUD is the player status shown on screen.
type HUD struct {
	Health         int
	MaxHealth      int
	Ammo           int
	MaxAmmo        int
	Reloading      bool
	ReloadProgress float64
	Zoomed         bool
	MuzzleFlash    bool
	Kills          int
}

// Frame is everything a renderer needs for one tick.
type Frame struct {
	Tick         int
	State        State
	ScreenHeight int
	FOV          float64
	Columns      []Column
	Enemies      []EnemySprite
	Bullets      []Sprite
	Holes        []Sprite
	HUD          HUD
}

// Frame builds the render/query snapshot from the current depth buffer.
// Sprites are ordered far to near.
func (w *World) Frame() Frame {
	p := &w.player
	f := Frame{
		Tick:         w.tick,
		State:        w.state,
		ScreenHeight: w.cam.ScreenHeight,
		FOV:          p.FOV(),
		Columns:      w.depth,
		HUD: HUD{
			Health:         max(p.Health, 0),
			MaxHealth:      playerMaxHP,
			Ammo:           p.Weapon.Ammo,
			MaxAmmo:        p.Weapon.MaxAmmo,
			Reloading:      p.Weapon.Reloading,
			ReloadProgress: p.Weapon.ReloadProgress(),
			Zoomed:         p.Zoomed,
			MuzzleFlash:    p.Weapon.FlashLeft > 0,
			Kills:          w.stats.TotalKills(),
		},
	}

	for _, e := range w.enemies {
		if !e.Alive && !e.Dying() {
			continue
		}
		s, ok := w.project(e.X, e.Y)
		if !ok {
			continue
		}
		es := EnemySprite{
			Sprite:  s,
			ID:      e.ID,
			Kind:    e.Kind,
			Damaged: e.Damaged(),
			Dying:   e.Dying(),
		}
		for _, d := range e.Decals {
			es.Decals = append(es.Decals, DecalView{
				DX:   int(d.OffsetX * float64(s.Height) * 0.5),
				DY:   int(d.OffsetY * float64(s.Height)),
				Life: d.Life,
			})
		}
		f.Enemies = append(f.Enemies, es)
	}
	for _, b := range w.bullets {
		if !b.Live {
			continue
		}
		if s, ok := w.project(b.X, b.Y); ok {
			f.Bullets = append(f.Bullets, s)
		}
	}
	for _, h := range w.holes {
		if s, ok := w.project(h.X, h.Y); ok {
			f.Holes = append(f.Holes, s)
		}
	}

	sort.SliceStable(f.Enemies, func(i, j int) bool { return f.Enemies[i].Distance > f.Enemies[j].Distance })
	sort.SliceStable(f.Bullets, func(i, j int) bool { return f.Bullets[i].Distance > f.Bullets[j].Distance })
	sort.SliceStable(f.Holes, func(i, j int) bool { return f.Holes[i].Distance > f.Holes[j].Distance })
	return f
}

// project maps a world point onto the view. ok is false when the point lies
// outside the field of view or behind the wall in its column.
func (w *World) project(x, y float64) (Sprite, bool) {
	p := &w.player
	if len(w.depth) == 0 {
		return Sprite{}, false
	}
	if !InCone(p.X, p.Y, p.Angle, p.FOV(), maxDepth, x, y) {
		return Sprite{}, false
	}
	dist := Distance(p.X, p.Y, x, y)
	col, ok := columnFor(AngleOffset(p.X, p.Y, p.Angle, x, y), p.FOV(), len(w.depth))
	if !ok {
		return Sprite{}, false
	}
	if w.depth[col].Occludes(dist) {
		return Sprite{}, false
	}
	top, bottom, h := projectSpan(dist, w.cam.ScreenHeight)
	return Sprite{Column: col, Distance: dist, Height: h, Top: top, Bottom: bottom}, true
}

// Package asciiview draws a game.Frame as plain text: one glyph per wall
// column shaded by distance, floor dots, sprites and the weapon.
package asciiview

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Ray-Sense/internal/game"
)

const (
	floorGlyph  = '.'
	bulletGlyph = '*'
	holeGlyph   = 'x'
	dyingGlyph  = '%'
)

const weaponIdle = `
      ___
     | H |
     |___|
    /   \
   |     |
    |||||`

const weaponFiring = `
      ___
     | * |     PEW!
     |___|
    / ___ \
   |_/___\_|
    |||||`

// Glyph maps a wall shade to its character.
func Glyph(s game.Shade) rune {
	switch s {
	case game.ShadeNear:
		return '█'
	case game.ShadeMid:
		return '▓'
	case game.ShadeFar:
		return '▒'
	case game.ShadeFaint:
		return '░'
	default:
		return ' '
	}
}

// Render returns the view, the weapon and a status line.
func Render(f game.Frame) string {
	var sb strings.Builder
	sb.WriteString(View(f))
	sb.WriteString(Weapon(f.HUD.MuzzleFlash))
	sb.WriteByte('\n')
	sb.WriteString(Status(f))
	sb.WriteByte('\n')
	return sb.String()
}

// View draws the ray-cast scene as ScreenHeight lines of len(Columns) runes.
func View(f game.Frame) string {
	h, w := f.ScreenHeight, len(f.Columns)
	if h <= 0 || w == 0 {
		return ""
	}
	canvas := make([][]rune, h)
	for y := range canvas {
		canvas[y] = make([]rune, w)
	}
	for x, c := range f.Columns {
		g := Glyph(c.Shade)
		for y := 0; y < h; y++ {
			switch {
			case y < c.Top:
				canvas[y][x] = ' '
			case y > c.Bottom:
				canvas[y][x] = floorGlyph
			default:
				canvas[y][x] = g
			}
		}
	}

	put := func(x, y int, r rune) {
		if x >= 0 && x < w && y >= 0 && y < h {
			canvas[y][x] = r
		}
	}
	for _, s := range f.Holes {
		put(s.Column, h/2, holeGlyph)
	}
	for _, e := range f.Enemies {
		r := rune(e.Kind.Spec().Letter)
		switch {
		case e.Dying:
			r = dyingGlyph
		case e.Damaged:
			r = toLower(r)
		}
		half := e.Height / 4
		for x := e.Column - half; x <= e.Column+half; x++ {
			for y := e.Top; y <= e.Bottom; y++ {
				put(x, y, r)
			}
		}
	}
	for _, s := range f.Bullets {
		put(s.Column, h/2, bulletGlyph)
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	if f.State == game.StateGameOver {
		banner := "GAME OVER - press R to restart"
		if len(banner) < w {
			pad := (w - len(banner)) / 2
			lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
			mid := []rune(lines[h/2])
			copy(mid[pad:], []rune(banner))
			lines[h/2] = string(mid)
			return strings.Join(lines, "\n") + "\n"
		}
	}
	return sb.String()
}

// Weapon returns the weapon art, in its firing pose while the flash lasts.
func Weapon(firing bool) string {
	if firing {
		return weaponFiring
	}
	return weaponIdle
}

// Status is the one-line HUD.
func Status(f game.Frame) string {
	h := f.HUD
	s := fmt.Sprintf("HP %3d/%d  AMMO %2d/%d  KILLS %d", h.Health, h.MaxHealth, h.Ammo, h.MaxAmmo, h.Kills)
	if h.Reloading {
		s += fmt.Sprintf("  RELOADING %3.0f%%", h.ReloadProgress*100)
	}
	if h.Zoomed {
		s += "  [ZOOM]"
	}
	return s
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

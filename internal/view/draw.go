package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Ray-Sense/internal/game"
)

var (
	colCeiling = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	colFloor   = color.RGBA{R: 34, G: 30, B: 26, A: 255}
	colHUD     = color.RGBA{R: 220, G: 220, B: 210, A: 255}
	colWarn    = color.RGBA{R: 240, G: 90, B: 70, A: 255}
)

// wallShade is the wall brightness per distance bucket.
var wallShade = map[game.Shade]uint8{
	game.ShadeNear:  190,
	game.ShadeMid:   140,
	game.ShadeFar:   95,
	game.ShadeFaint: 55,
	game.ShadeNone:  0,
}

func (g *Game) colWidth(f game.Frame) float32 {
	if len(f.Columns) == 0 {
		return 0
	}
	return float32(g.width) / float32(len(f.Columns))
}

func (g *Game) drawBackdrop(screen *ebiten.Image) {
	w, h := float32(g.width), float32(g.height)
	vector.FillRect(screen, 0, 0, w, h/2, colCeiling, false)
	// Floor bands darken toward the horizon.
	const bands = 8
	for i := 0; i < bands; i++ {
		k := uint8(i * 4)
		c := color.RGBA{R: colFloor.R + k, G: colFloor.G + k, B: colFloor.B + k, A: 255}
		y := h/2 + float32(i)*h/2/bands
		vector.FillRect(screen, 0, y, w, h/2/bands+1, c, false)
	}
}

func (g *Game) drawColumns(screen *ebiten.Image, f game.Frame) {
	cw := g.colWidth(f)
	for _, c := range f.Columns {
		v := wallShade[c.Shade]
		if v == 0 {
			continue
		}
		vector.FillRect(screen, float32(c.Index)*cw, float32(c.Top), cw+0.5, float32(c.Bottom-c.Top+1),
			color.RGBA{R: v, G: v, B: v - v/8, A: 255}, false)
	}
}

// visibleSpan clips a sprite of the given pixel width to the columns whose
// wall lies behind it. Returns false if every column occludes it.
func (g *Game) visibleSpan(f game.Frame, s game.Sprite, width float32) (x0, x1 float32, ok bool) {
	cw := g.colWidth(f)
	cx := (float32(s.Column) + 0.5) * cw
	left, right := cx-width/2, cx+width/2
	x0, x1 = right, left
	for i := int(left / cw); i <= int(right/cw); i++ {
		if i < 0 || i >= len(f.Columns) || f.Columns[i].Occludes(s.Distance) {
			continue
		}
		colL, colR := float32(i)*cw, float32(i+1)*cw
		x0 = min(x0, max(colL, left))
		x1 = max(x1, min(colR, right))
	}
	return x0, x1, x1 > x0
}

func (g *Game) drawMarkers(screen *ebiten.Image, f game.Frame) {
	cw := g.colWidth(f)
	for _, s := range f.Holes {
		r := float32(s.Height) / 40
		if r < 1.5 {
			r = 1.5
		}
		x := (float32(s.Column) + 0.5) * cw
		vector.FillCircle(screen, x, float32(g.height)/2, r, color.RGBA{R: 20, G: 16, B: 12, A: 230}, true)
	}
}

func (g *Game) drawEnemies(screen *ebiten.Image, f game.Frame) {
	for _, e := range f.Enemies {
		width := float32(e.Height) / 2
		x0, x1, ok := g.visibleSpan(f, e.Sprite, width)
		if !ok {
			continue
		}
		spec := e.Kind.Spec()
		body := spec.Outline
		switch {
		case e.Dying:
			body = color.RGBA{R: body.R / 3, G: body.G / 3, B: body.B / 3, A: 140}
		case e.Damaged:
			body = color.RGBA{R: body.R * 2 / 3, G: body.G * 2 / 3, B: body.B * 2 / 3, A: 255}
		}
		top, h := float32(e.Top), float32(e.Bottom-e.Top+1)
		vector.FillRect(screen, x0, top, x1-x0, h, body, false)
		vector.StrokeRect(screen, x0, top, x1-x0, h, 1.5, spec.Outline, false)

		cx := (float32(e.Column) + 0.5) * g.colWidth(f)
		cy := float32(g.height) / 2
		for _, d := range e.Decals {
			a := uint8(255 * d.Life / 30)
			r := float32(e.Height) / 24
			vector.FillCircle(screen, cx+float32(d.DX), cy+float32(d.DY), max(r, 1.5), color.RGBA{R: a * 3 / 4, A: a}, true)
		}
	}
}

func (g *Game) drawBullets(screen *ebiten.Image, f game.Frame) {
	cw := g.colWidth(f)
	for _, s := range f.Bullets {
		r := max(float32(s.Height)/30, 1.5)
		x := (float32(s.Column) + 0.5) * cw
		vector.FillCircle(screen, x, float32(g.height)/2, r, color.RGBA{R: 255, G: 210, B: 90, A: 255}, true)
	}
}

func (g *Game) drawWeapon(screen *ebiten.Image, f game.Frame) {
	w, h := float32(g.width), float32(g.height)
	bx, by := w/2-30, h-110
	recoil := float32(0)
	if f.HUD.MuzzleFlash {
		recoil = 8
		vector.FillCircle(screen, w/2, by-14+recoil, 18, color.RGBA{R: 255, G: 220, B: 120, A: 255}, true)
	}
	if f.HUD.Reloading {
		by += 50 * float32(1-f.HUD.ReloadProgress)
	}
	vector.FillRect(screen, bx+20, by+recoil, 20, 40, color.RGBA{R: 70, G: 70, B: 76, A: 255}, false)
	vector.FillRect(screen, bx, by+40+recoil, 60, 70, color.RGBA{R: 50, G: 50, B: 56, A: 255}, false)
	vector.StrokeRect(screen, bx, by+40+recoil, 60, 70, 2, color.RGBA{R: 90, G: 90, B: 96, A: 255}, false)
}

func (g *Game) drawCrosshair(screen *ebiten.Image, f game.Frame) {
	cx, cy := float32(g.width)/2, float32(g.height)/2
	c := color.RGBA{R: 200, G: 255, B: 200, A: 200}
	if f.HUD.Zoomed {
		// Scope ring and fine reticle.
		r := float32(g.height) * 0.42
		vector.StrokeCircle(screen, cx, cy, r, 3, color.RGBA{A: 255}, true)
		vector.StrokeLine(screen, cx-r, cy, cx+r, cy, 1, c, false)
		vector.StrokeLine(screen, cx, cy-r, cx, cy+r, 1, c, false)
		return
	}
	vector.StrokeLine(screen, cx-8, cy, cx-3, cy, 2, c, false)
	vector.StrokeLine(screen, cx+3, cy, cx+8, cy, 2, c, false)
	vector.StrokeLine(screen, cx, cy-8, cx, cy-3, 2, c, false)
	vector.StrokeLine(screen, cx, cy+3, cx, cy+8, 2, c, false)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) drawHUD(screen *ebiten.Image, f game.Frame) {
	h := f.HUD
	y := float32(g.height) - 28

	// Health bar.
	frac := float32(h.Health) / float32(h.MaxHealth)
	barCol := color.RGBA{R: 80, G: 200, B: 90, A: 255}
	if frac < 0.3 {
		barCol = colWarn
	}
	vector.FillRect(screen, 12, y, 160, 14, color.RGBA{R: 30, G: 30, B: 30, A: 200}, false)
	vector.FillRect(screen, 12, y, 160*frac, 14, barCol, false)
	vector.StrokeRect(screen, 12, y, 160, 14, 1, colHUD, false)
	g.drawText(screen, fmt.Sprintf("HP %d", h.Health), 16, float64(y)+1, color.Black)

	// Ammo pips.
	ax := float32(g.width) - 16
	for i := 0; i < h.MaxAmmo; i++ {
		c := color.RGBA{R: 60, G: 60, B: 60, A: 255}
		if i < h.Ammo {
			c = color.RGBA{R: 230, G: 200, B: 90, A: 255}
		}
		vector.FillRect(screen, ax-float32(i+1)*9, y, 6, 14, c, false)
	}
	status := fmt.Sprintf("AMMO %d/%d", h.Ammo, h.MaxAmmo)
	if h.Reloading {
		status = fmt.Sprintf("RELOADING %3.0f%%", h.ReloadProgress*100)
	}
	g.drawText(screen, status, float64(ax)-float64(h.MaxAmmo)*9-110, float64(y)+1, colHUD)

	g.drawText(screen, fmt.Sprintf("KILLS %d", h.Kills), 12, 10, colHUD)
	if g.simSpeed != 1 {
		g.drawText(screen, fmt.Sprintf("speed %.2gx", g.simSpeed), 12, 26, colHUD)
	}
	if g.noticeT > 0 {
		g.drawText(screen, g.notice, float64(g.width)/2-60, 10, colHUD)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	w, h := float32(g.width), float32(g.height)
	vector.FillRect(screen, 0, 0, w, h, color.RGBA{A: 180}, false)
	st := g.world.Stats()
	cx, cy := float64(w)/2, float64(h)/2
	g.drawText(screen, "GAME OVER", cx-32, cy-40, colWarn)
	g.drawText(screen, fmt.Sprintf("kills %d  accuracy %.0f%%  survived %ds",
		st.TotalKills(), st.Accuracy()*100, st.TicksSurvived/max(ebiten.TPS(), 1)), cx-130, cy-10, colHUD)
	g.drawText(screen, "press ENTER to restart, C to copy the report", cx-154, cy+20, colHUD)
}

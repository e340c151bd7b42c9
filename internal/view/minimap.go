package view

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	minimapCell   = 10 // pixels per grid cell
	minimapMargin = 8
)

// drawMinimap renders the grid top-right with the player, live enemies and
// bullets. The map is small enough to redraw every frame.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	grid := g.world.Grid()
	cs := float32(minimapCell)
	mw, mh := float32(grid.Width())*cs, float32(grid.Height())*cs
	ox := float32(g.width) - mw - minimapMargin
	oy := float32(minimapMargin)

	vector.FillRect(screen, ox-2, oy-2, mw+4, mh+4, color.RGBA{R: 10, G: 10, B: 10, A: 200}, false)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if grid.IsOpen(x, y) {
				continue
			}
			vector.FillRect(screen, ox+float32(x)*cs, oy+float32(y)*cs, cs, cs, color.RGBA{R: 110, G: 110, B: 104, A: 230}, false)
		}
	}

	for _, b := range g.world.Bullets() {
		if !b.Live {
			continue
		}
		vector.FillCircle(screen, ox+float32(b.X)*cs, oy+float32(b.Y)*cs, 1.5, color.RGBA{R: 255, G: 210, B: 90, A: 255}, true)
	}
	for _, e := range g.world.Enemies() {
		if !e.Alive {
			continue
		}
		vector.FillCircle(screen, ox+float32(e.X)*cs, oy+float32(e.Y)*cs, cs/3, e.Kind.Spec().Outline, true)
	}

	p := g.world.Player()
	px, py := ox+float32(p.X)*cs, oy+float32(p.Y)*cs
	dx, dy := headingVec(p.Angle)
	vector.StrokeLine(screen, px, py, px+dx*cs, py+dy*cs, 1.5, color.RGBA{R: 120, G: 255, B: 120, A: 255}, true)
	vector.FillCircle(screen, px, py, cs/3, color.RGBA{R: 120, G: 255, B: 120, A: 255}, true)
}

func headingVec(a float64) (float32, float32) {
	return float32(math.Cos(a)), float32(math.Sin(a))
}

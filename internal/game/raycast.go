package game

import "math"

const (
	rayStep       = 0.05 // world units per march step
	maxDepth      = 16.0 // furthest distance a ray reports
	minProjDist   = 0.05 // projection clamp to avoid divide-by-zero
	occlusionSlop = 0.2  // sprite vs wall distance tolerance
)

// Shade is the discrete wall brightness bucket for a column.
type Shade int

const (
	ShadeNear  Shade = iota // < depth/4, darkest/opaque
	ShadeMid                // < depth/3
	ShadeFar                // < depth/2
	ShadeFaint              // < depth
	ShadeNone               // background / open void
)

func (s Shade) String() string {
	switch s {
	case ShadeNear:
		return "near"
	case ShadeMid:
		return "mid"
	case ShadeFar:
		return "far"
	case ShadeFaint:
		return "faint"
	case ShadeNone:
		return "none"
	default:
		return "unknown"
	}
}

// ShadeFor buckets a ray distance using quarter/third/half/full thresholds.
func ShadeFor(dist, depth float64) Shade {
	switch {
	case dist < depth/4:
		return ShadeNear
	case dist < depth/3:
		return ShadeMid
	case dist < depth/2:
		return ShadeFar
	case dist < depth:
		return ShadeFaint
	default:
		return ShadeNone
	}
}

// Camera describes the projection target: how many columns are sampled and
// the screen height walls are projected onto.
type Camera struct {
	Columns      int
	ScreenHeight int
}

// DefaultCamera matches the window client's default view.
func DefaultCamera() Camera {
	return Camera{Columns: 160, ScreenHeight: 400}
}

// Column is one entry of the per-frame depth buffer.
type Column struct {
	Index    int
	Angle    float64
	Distance float64
	Shade    Shade
	Top      int
	Bottom   int
}

// Occludes reports whether a sprite at dist is hidden behind this column's wall.
func (c Column) Occludes(dist float64) bool {
	return dist > c.Distance+occlusionSlop
}

// CastRay marches from (x,y) along angle in rayStep increments until a wall
// cell is hit or depth is reached. Leaving the grid resolves to depth.
func CastRay(g *Grid, x, y, angle, depth float64) float64 {
	dx, dy := math.Cos(angle), math.Sin(angle)
	for i := 0; ; i++ {
		dist := float64(i) * rayStep
		if dist >= depth {
			return depth
		}
		c := CellOf(x+dx*dist, y+dy*dist)
		if !g.InBounds(c.X, c.Y) {
			return depth
		}
		if !g.IsOpen(c.X, c.Y) {
			return dist
		}
	}
}

// columnAngle returns the ray angle for column i of n across fov.
func columnAngle(facing, fov float64, i, n int) float64 {
	return facing - fov/2 + (float64(i)/float64(n))*fov
}

// projectSpan returns the vertical extent of an object at dist whose full
// height at distance 1 equals the screen height. Clamped to the screen.
func projectSpan(dist float64, screenH int) (top, bottom, height int) {
	if dist < minProjDist {
		dist = minProjDist
	}
	h := float64(screenH) / dist
	top = int(float64(screenH)/2 - h/2)
	bottom = int(float64(screenH)/2 + h/2)
	if top < 0 {
		top = 0
	}
	if bottom > screenH-1 {
		bottom = screenH - 1
	}
	return top, bottom, int(h)
}

// CastView builds the depth buffer for the given pose and field of view.
func CastView(g *Grid, x, y, facing, fov float64, cam Camera) []Column {
	cols := make([]Column, cam.Columns)
	for i := range cols {
		a := columnAngle(facing, fov, i, cam.Columns)
		d := CastRay(g, x, y, a, maxDepth)
		top, bottom, _ := projectSpan(d, cam.ScreenHeight)
		cols[i] = Column{
			Index:    i,
			Angle:    a,
			Distance: d,
			Shade:    ShadeFor(d, maxDepth),
			Top:      top,
			Bottom:   bottom,
		}
	}
	return cols
}

// columnFor maps an angular offset from the facing direction to a column
// index. ok is false when the offset lies outside the field of view.
func columnFor(offset, fov float64, n int) (int, bool) {
	half := fov / 2
	if offset < -half || offset > half {
		return 0, false
	}
	col := int((offset + half) / fov * float64(n))
	if col >= n {
		col = n - 1
	}
	if col < 0 {
		col = 0
	}
	return col, true
}

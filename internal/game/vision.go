package game

import "math"

const (
	// Normal and zoomed field of view, radians.
	fovNormal = math.Pi / 3
	fovZoomed = math.Pi / 6
)

// HeadingTo returns the angle in radians from (ox,oy) toward (tx,ty).
func HeadingTo(ox, oy, tx, ty float64) float64 {
	return math.Atan2(ty-oy, tx-ox)
}

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// normalizeAngle wraps an angle to (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// AngleOffset returns the signed offset of the bearing from (ox,oy) to
// (tx,ty) relative to heading, wrapped to (-pi, pi].
func AngleOffset(ox, oy, heading, tx, ty float64) float64 {
	return normalizeAngle(HeadingTo(ox, oy, tx, ty) - heading)
}

// InCone returns true if (px,py) lies within fov centred on heading as seen
// from (ox,oy), and no further than maxRange.
func InCone(ox, oy, heading, fov, maxRange, px, py float64) bool {
	dist := Distance(ox, oy, px, py)
	if dist > maxRange || dist < 1e-6 {
		return false
	}
	diff := AngleOffset(ox, oy, heading, px, py)
	half := fov / 2
	return diff >= -half && diff <= half
}

// unitVector returns the direction (cos a, sin a).
func unitVector(a float64) (float64, float64) {
	return math.Cos(a), math.Sin(a)
}

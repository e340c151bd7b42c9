package game

import (
	"math"
	"testing"
)

func TestCastRay_KnownWallEast(t *testing.T) {
	g := DefaultGrid()
	// Row 3 is open from x=1 to x=8; the wall column is x=9.
	got := CastRay(g, 3.0, 3.0, 0, maxDepth)

	// Reference march in 0.05 increments.
	want := 0.0
	for i := 0; ; i++ {
		d := float64(i) * rayStep
		if int(3.0+d) >= 9 {
			want = d
			break
		}
	}
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %.4f got %.4f", want, got)
	}
	if math.Abs(got-6.0) > rayStep {
		t.Fatalf("expected distance within one step of 6.0, got %.4f", got)
	}
}

func TestCastRay_KnownWallSouth(t *testing.T) {
	g := DefaultGrid()
	// From (1.5,1.5) straight down: rows 1..5 open at x=1, wall at y=6.
	got := CastRay(g, 1.5, 1.5, math.Pi/2, maxDepth)
	if math.Abs(got-4.5) > rayStep {
		t.Fatalf("expected ~4.5 got %.4f", got)
	}
}

func TestCastRay_NeverOutOfRange(t *testing.T) {
	g := DefaultGrid()
	for _, c := range g.OpenCells() {
		for _, off := range [][2]float64{{0.1, 0.1}, {0.5, 0.5}, {0.9, 0.3}} {
			x, y := float64(c.X)+off[0], float64(c.Y)+off[1]
			for a := -math.Pi; a < math.Pi; a += 0.13 {
				d := CastRay(g, x, y, a, maxDepth)
				if d < 0 || d > maxDepth {
					t.Fatalf("distance %.3f out of [0,%v] at (%.2f,%.2f) angle %.2f", d, maxDepth, x, y, a)
				}
			}
		}
	}
}

func TestCastRay_LeavingGridIsMaxDepth(t *testing.T) {
	g, err := NewGrid("     ")
	if err != nil {
		t.Fatal(err)
	}
	if d := CastRay(g, 0.5, 0.5, 0, maxDepth); d != maxDepth {
		t.Fatalf("ray leaving the grid should resolve to max depth, got %.3f", d)
	}
}

func TestCastRay_RespectsShortDepth(t *testing.T) {
	g := DefaultGrid()
	if d := CastRay(g, 1.5, 1.5, 0, 2.0); d != 2.0 {
		t.Fatalf("expected clamp to depth 2.0, got %.3f", d)
	}
}

func TestShadeFor_Buckets(t *testing.T) {
	cases := []struct {
		dist float64
		want Shade
	}{
		{0.5, ShadeNear},
		{3.99, ShadeNear},
		{4.0, ShadeMid},
		{5.0, ShadeMid},
		{6.0, ShadeFar},
		{7.99, ShadeFar},
		{8.0, ShadeFaint},
		{15.9, ShadeFaint},
		{16, ShadeNone},
	}
	for _, c := range cases {
		if got := ShadeFor(c.dist, maxDepth); got != c.want {
			t.Fatalf("dist %.2f: expected %s got %s", c.dist, c.want, got)
		}
	}
}

func TestProjectSpan_InverseDistance(t *testing.T) {
	top, bottom, h := projectSpan(2, 24)
	if h != 12 || top != 6 || bottom != 18 {
		t.Fatalf("expected h=12 top=6 bottom=18, got h=%d top=%d bottom=%d", h, top, bottom)
	}
	top, bottom, _ = projectSpan(0, 24)
	if top != 0 || bottom != 23 {
		t.Fatalf("zero distance should clamp to screen, got top=%d bottom=%d", top, bottom)
	}
	_, _, near := projectSpan(1, 100)
	_, _, far := projectSpan(4, 100)
	if near <= far {
		t.Fatalf("nearer walls must be taller: near=%d far=%d", near, far)
	}
}

func TestCastView_ColumnsSpanFOV(t *testing.T) {
	g := DefaultGrid()
	cam := Camera{Columns: 40, ScreenHeight: 24}
	cols := CastView(g, 3.5, 3.5, 0, fovNormal, cam)
	if len(cols) != 40 {
		t.Fatalf("expected 40 columns, got %d", len(cols))
	}
	if math.Abs(cols[0].Angle-(-fovNormal/2)) > 1e-9 {
		t.Fatalf("first column should start at -fov/2, got %.4f", cols[0].Angle)
	}
	for i, c := range cols {
		if c.Index != i {
			t.Fatalf("column %d has index %d", i, c.Index)
		}
		if c.Distance < 0 || c.Distance > maxDepth {
			t.Fatalf("column %d distance %.3f out of range", i, c.Distance)
		}
		if c.Top > c.Bottom {
			t.Fatalf("column %d top %d below bottom %d", i, c.Top, c.Bottom)
		}
		if c.Shade != ShadeFor(c.Distance, maxDepth) {
			t.Fatalf("column %d shade mismatch", i)
		}
	}
}

func TestColumnFor_Bounds(t *testing.T) {
	if col, ok := columnFor(0, fovNormal, 80); !ok || col != 40 {
		t.Fatalf("centre offset should map to column 40, got %d ok=%t", col, ok)
	}
	if _, ok := columnFor(fovNormal, fovNormal, 80); ok {
		t.Fatal("offset beyond half fov should be outside the view")
	}
	if col, ok := columnFor(fovNormal/2, fovNormal, 80); !ok || col != 79 {
		t.Fatalf("right edge should clamp to last column, got %d ok=%t", col, ok)
	}
}

func TestColumn_Occludes(t *testing.T) {
	c := Column{Distance: 3}
	if c.Occludes(3.1) {
		t.Fatal("sprite within tolerance should be visible")
	}
	if !c.Occludes(3.5) {
		t.Fatal("sprite behind the wall should be occluded")
	}
}

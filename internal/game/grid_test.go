package game

import (
	"errors"
	"testing"
)

func TestGrid_DefaultDimensions(t *testing.T) {
	g := DefaultGrid()
	if g.Width() != 10 || g.Height() != 7 {
		t.Fatalf("expected 10x7 map, got %dx%d", g.Width(), g.Height())
	}
}

func TestGrid_BorderIsClosed(t *testing.T) {
	g := DefaultGrid()
	for x := 0; x < g.Width(); x++ {
		if g.IsOpen(x, 0) || g.IsOpen(x, g.Height()-1) {
			t.Fatalf("top/bottom border open at x=%d", x)
		}
	}
	for y := 0; y < g.Height(); y++ {
		if g.IsOpen(0, y) || g.IsOpen(g.Width()-1, y) {
			t.Fatalf("left/right border open at y=%d", y)
		}
	}
}

func TestGrid_OOB_IsBlocked(t *testing.T) {
	g := DefaultGrid()
	cases := [][2]int{{-1, 0}, {0, -1}, {g.Width(), 3}, {3, g.Height()}, {-100, -100}}
	for _, c := range cases {
		if g.IsOpen(c[0], c[1]) {
			t.Fatalf("out-of-bounds cell (%d,%d) should be blocked", c[0], c[1])
		}
	}
}

func TestGrid_IsOpenAtFloors(t *testing.T) {
	g := DefaultGrid()
	if !g.IsOpenAt(3.99, 3.01) {
		t.Fatal("(3.99,3.01) lies in open cell (3,3)")
	}
	if g.IsOpenAt(3.2, 2.7) {
		t.Fatal("(3.2,2.7) lies in wall cell (3,2)")
	}
	if g.IsOpenAt(-0.2, 3) {
		t.Fatal("negative coordinates must floor out of bounds")
	}
}

func TestGrid_RejectsRaggedRows(t *testing.T) {
	_, err := NewGrid("###", "##")
	if !errors.Is(err, ErrBadMap) {
		t.Fatalf("expected ErrBadMap, got %v", err)
	}
	if _, err := NewGrid(); !errors.Is(err, ErrBadMap) {
		t.Fatalf("expected ErrBadMap for no rows, got %v", err)
	}
}

func TestGrid_RowsRoundTrip(t *testing.T) {
	g := DefaultGrid()
	rows := g.Rows()
	for i, r := range rows {
		if r != defaultMap[i] {
			t.Fatalf("row %d: got %q want %q", i, r, defaultMap[i])
		}
	}
}

func TestGrid_OpenCellsAreOpen(t *testing.T) {
	g := DefaultGrid()
	cells := g.OpenCells()
	if len(cells) == 0 {
		t.Fatal("expected open cells")
	}
	for _, c := range cells {
		if !g.IsOpen(c.X, c.Y) {
			t.Fatalf("OpenCells returned wall %s", c)
		}
	}
}

func TestCellOf_Center(t *testing.T) {
	c := CellOf(5.7, 1.2)
	if c != (Cell{X: 5, Y: 1}) {
		t.Fatalf("expected (5,1) got %s", c)
	}
	x, y := c.Center()
	if x != 5.5 || y != 1.5 {
		t.Fatalf("expected centre (5.5,1.5) got (%.2f,%.2f)", x, y)
	}
	if d := (Cell{X: 1, Y: 1}).Manhattan(Cell{X: 4, Y: -1}); d != 5 {
		t.Fatalf("expected manhattan 5, got %d", d)
	}
}

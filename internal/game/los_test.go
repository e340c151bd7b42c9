package game

import "testing"

func TestLOS_ClearLine(t *testing.T) {
	g := DefaultGrid()
	if !HasLineOfSight(g, 1.5, 1.5, 8.5, 1.5) {
		t.Fatal("expected clear LOS along the open top corridor")
	}
}

func TestLOS_BlockedByWall(t *testing.T) {
	g := DefaultGrid()
	// Cell (3,2) is a wall between these points.
	if HasLineOfSight(g, 3.5, 1.5, 3.5, 3.5) {
		t.Fatal("expected LOS blocked by the pillar at (3,2)")
	}
}

func TestLOS_DiagonalBlocked(t *testing.T) {
	g, err := NewGrid(
		"#####",
		"#   #",
		"# # #",
		"#   #",
		"#####",
	)
	if err != nil {
		t.Fatal(err)
	}
	if HasLineOfSight(g, 1.5, 1.5, 3.5, 3.5) {
		t.Fatal("diagonal through the centre pillar should be blocked")
	}
	if !HasLineOfSight(g, 1.5, 1.5, 3.5, 1.5) {
		t.Fatal("top row should be clear")
	}
}

func TestLOS_ZeroLength(t *testing.T) {
	g := DefaultGrid()
	if !HasLineOfSight(g, 2.5, 2.5, 2.5, 2.5) {
		t.Fatal("zero-length line inside an open cell should be clear")
	}
	if HasLineOfSight(g, 0.5, 0.5, 0.5, 0.5) {
		t.Fatal("zero-length line inside a wall should be blocked")
	}
}

func TestLOS_OutOfBoundsBlocked(t *testing.T) {
	g := DefaultGrid()
	if HasLineOfSight(g, 1.5, 1.5, -3, 1.5) {
		t.Fatal("line leaving the grid should be blocked")
	}
}

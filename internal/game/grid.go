package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadMap is returned by NewGrid for malformed map rows.
var ErrBadMap = errors.New("bad map")

// defaultMap is the compiled-in level. '#' is wall, anything else is open.
var defaultMap = []string{
	"##########",
	"#        #",
	"#  #     #",
	"#        #",
	"#  ## ## #",
	"#        #",
	"##########",
}

// Cell is an integer tile coordinate.
type Cell struct {
	X, Y int
}

// Center returns the world-space centre of the cell.
func (c Cell) Center() (float64, float64) {
	return float64(c.X) + 0.5, float64(c.Y) + 0.5
}

// Manhattan returns the 4-neighbour step distance between two cells.
func (c Cell) Manhattan(o Cell) int {
	dx, dy := c.X-o.X, c.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CellOf floors a continuous position to its cell.
func CellOf(x, y float64) Cell {
	return Cell{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// Grid is an immutable walkability map where true = wall.
type Grid struct {
	cols  int
	rows  int
	walls []bool
}

// NewGrid parses map rows. All rows must share the same non-zero width.
func NewGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrBadMap)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("empty first row: %w", ErrBadMap)
	}
	g := &Grid{cols: cols, rows: len(rows), walls: make([]bool, cols*len(rows))}
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", y, len(row), cols, ErrBadMap)
		}
		for x := 0; x < cols; x++ {
			g.walls[y*cols+x] = row[x] == '#'
		}
	}
	return g, nil
}

// DefaultGrid returns the built-in 10x7 level.
func DefaultGrid() *Grid {
	g, err := NewGrid(defaultMap...)
	if err != nil {
		// defaultMap is a compile-time constant.
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cols }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.rows }

// IsOpen reports whether the cell is walkable. Out-of-bounds cells are walls.
func (g *Grid) IsOpen(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= g.cols || cy >= g.rows {
		return false
	}
	return !g.walls[cy*g.cols+cx]
}

// IsOpenAt reports whether the continuous position lies in an open cell.
func (g *Grid) IsOpenAt(x, y float64) bool {
	c := CellOf(x, y)
	return g.IsOpen(c.X, c.Y)
}

// InBounds reports whether the cell lies inside the grid extent.
func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < g.cols && cy < g.rows
}

// OpenCells lists every open cell in row-major order.
func (g *Grid) OpenCells() []Cell {
	out := make([]Cell, 0, len(g.walls))
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if !g.walls[y*g.cols+x] {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}
	return out
}

// Rows renders the grid back to its '#'/' ' row form.
func (g *Grid) Rows() []string {
	out := make([]string, g.rows)
	buf := make([]byte, g.cols)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.walls[y*g.cols+x] {
				buf[x] = '#'
			} else {
				buf[x] = ' '
			}
		}
		out[y] = string(buf)
	}
	return out
}

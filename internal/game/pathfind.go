package game

// dirs4 is the BFS neighbour order. No diagonals.
var dirs4 = [4][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// FindPath returns the shortest 4-connected route of open cells from start
// to goal, excluding start and ending at goal. Returns nil if either end is
// blocked, start equals goal, or no route exists.
func FindPath(g *Grid, start, goal Cell) []Cell {
	if !g.IsOpen(start.X, start.Y) || !g.IsOpen(goal.X, goal.Y) {
		return nil
	}
	if start == goal {
		return nil
	}

	key := func(c Cell) int { return c.Y*g.cols + c.X }
	const unvisited = -1
	parent := make([]int, g.cols*g.rows)
	for i := range parent {
		parent[i] = unvisited
	}
	parent[key(start)] = key(start)

	queue := []Cell{start}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == goal {
			return buildPath(g, parent, key(start), key(goal))
		}
		for _, d := range dirs4 {
			n := Cell{X: cur.X + d[0], Y: cur.Y + d[1]}
			if !g.IsOpen(n.X, n.Y) {
				continue
			}
			nk := key(n)
			if parent[nk] != unvisited {
				continue
			}
			parent[nk] = key(cur)
			queue = append(queue, n)
		}
	}
	return nil
}

func buildPath(g *Grid, parent []int, startKey, goalKey int) []Cell {
	var cells []Cell
	for k := goalKey; k != startKey; k = parent[k] {
		cells = append(cells, Cell{X: k % g.cols, Y: k / g.cols})
	}
	// Reverse
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// PathDistance returns the BFS step count between two cells, or -1 when
// unreachable.
func PathDistance(g *Grid, start, goal Cell) int {
	if start == goal && g.IsOpen(start.X, start.Y) {
		return 0
	}
	p := FindPath(g, start, goal)
	if p == nil {
		return -1
	}
	return len(p)
}

// Package nav provides grid navigation for the pursuit agent.
package nav

import "github.com/Vann06/gloamway/maze"

var neighbors = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// NextStep runs a breadth-first search over traversable cells from the
// source position's cell to the target position's cell and returns the
// direction from the exact source position to the center of the first cell
// along the shortest path. ok is false when either cell is out of bounds,
// blocked, or the target is unreachable.
//
// Cost is O(cells) per call; callers throttle it with a recalc timer
// rather than invoking it every frame.
func NextStep(g *maze.Grid, sx, sy, tx, ty float64) (dirX, dirY float64, ok bool) {
	si, sj := maze.CellIndex(sx, sy)
	ti, tj := maze.CellIndex(tx, ty)
	if !g.InBounds(si, sj) || !g.InBounds(ti, tj) {
		return 0, 0, false
	}
	if !g.Traversable(si, sj) || !g.Traversable(ti, tj) {
		return 0, 0, false
	}

	w, h := g.Width(), g.Height()
	start := sj*w + si
	goal := tj*w + ti

	// prev links cells back toward the source; -1 marks unvisited.
	prev := make([]int32, w*h)
	for i := range prev {
		prev[i] = -1
	}
	prev[start] = int32(start)

	queue := make([]int32, 0, 64)
	queue = append(queue, int32(start))
	for head := 0; head < len(queue); head++ {
		cur := int(queue[head])
		if cur == goal {
			break
		}
		ci, cj := cur%w, cur/w
		for _, d := range neighbors {
			ni, nj := ci+d[0], cj+d[1]
			if ni < 0 || nj < 0 || ni >= w || nj >= h {
				continue
			}
			idx := nj*w + ni
			if prev[idx] >= 0 || !g.Traversable(ni, nj) {
				continue
			}
			prev[idx] = int32(cur)
			queue = append(queue, int32(idx))
		}
	}
	if prev[goal] < 0 {
		return 0, 0, false
	}

	// Walk back from the goal to find the cell adjacent to the source.
	cur, first := goal, goal
	for cur != start {
		first = cur
		cur = int(prev[cur])
	}
	cx, cy := maze.CellCenter(first%w, first/w)
	return cx - sx, cy - sy, true
}

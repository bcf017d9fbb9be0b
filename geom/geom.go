// Package geom holds the stateless grid geometry queries shared by the
// renderer, the player, and the hunter: ray marching, line-of-sight
// sampling, and the sliding circle-vs-grid collision resolver.
package geom

import (
	"math"

	"github.com/Vann06/gloamway/maze"
)

// NormalizeAngle wraps an angle into (-pi, pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// rayStep is the march increment, 1/16 of a cell.
const rayStep = maze.CellSize / 16

// CastRay marches from (ox, oy) along angle in fixed steps and returns the
// distance to the first Wall cell. Exit cells are open space for this
// query. Sampling outside the grid counts as a hit, so an origin already
// out of bounds reports a hit at distance zero. hit is false when nothing
// solid lies within maxRange.
func CastRay(g *maze.Grid, ox, oy, angle, maxRange float64) (dist float64, hit bool) {
	dirX := math.Cos(angle)
	dirY := math.Sin(angle)
	for d := 0.0; d <= maxRange; d += rayStep {
		sx := ox + dirX*d
		sy := oy + dirY*d
		i, j := maze.CellIndex(sx, sy)
		if !g.InBounds(i, j) {
			return d, true
		}
		if g.At(i, j) == maze.Wall {
			return d, true
		}
	}
	return maxRange, false
}

// LineOfSight samples the straight segment between two points at a coarse
// step (0.6 of a cell, at least 5 units) and reports whether every sample
// lies in a traversable cell. Any out-of-bounds sample blocks the line.
func LineOfSight(g *maze.Grid, x0, y0, x1, y1 float64) bool {
	dx := x1 - x0
	dy := y1 - y0
	step := math.Max(maze.CellSize*0.6, 5.0)
	dist := math.Hypot(dx, dy)
	steps := int(math.Ceil(dist / step))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if !g.TraversableAt(x0+dx*t, y0+dy*t) {
			return false
		}
	}
	return true
}

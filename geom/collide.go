package geom

import (
	"math"

	"github.com/Vann06/gloamway/maze"
)

const circleSamples = 8

// CircleFits reports whether a circle of the given radius centered at
// (wx, wy) lies entirely in traversable cells. The center plus eight
// perimeter points are sampled against the grid.
func CircleFits(g *maze.Grid, radius, wx, wy float64) bool {
	if !g.TraversableAt(wx, wy) {
		return false
	}
	for k := 0; k < circleSamples; k++ {
		a := float64(k) * (2 * math.Pi / circleSamples)
		if !g.TraversableAt(wx+radius*math.Cos(a), wy+radius*math.Sin(a)) {
			return false
		}
	}
	return true
}

// TryMove resolves the X and Y components of a desired move independently,
// accepting each axis only if the mover's full circle stays in traversable
// cells. Resolving per axis lets a mover slide along a wall it is not
// moving directly into. moved is true if either axis was accepted.
func TryMove(g *maze.Grid, radius, x, y, dx, dy float64) (nx, ny float64, moved bool) {
	nx, ny = x, y
	if CircleFits(g, radius, x+dx, ny) {
		nx = x + dx
		moved = true
	}
	if CircleFits(g, radius, nx, y+dy) {
		ny = y + dy
		moved = true
	}
	return nx, ny, moved
}

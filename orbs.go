package main

import (
	"math/rand"

	"github.com/Vann06/gloamway/maze"
)

// pickupRadius is how close the player must pass to collect an orb.
const pickupRadius = 18.0

type Orb struct {
	X, Y   float64
	Active bool
}

// safeCell reports whether a cell is open (or the exit) and none of its
// four neighbors is a wall, so orbs never sit flush against a wall face.
func safeCell(g *maze.Grid, i, j int) bool {
	if !g.Traversable(i, j) {
		return false
	}
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		ni, nj := i+d[0], j+d[1]
		if !g.InBounds(ni, nj) {
			continue
		}
		if !g.Traversable(ni, nj) {
			return false
		}
	}
	return true
}

// desiredOrbCount sizes the orb field to roughly a fifth of the free
// cells, clamped to keep tiny and huge maps playable, then scaled by the
// level tuning.
func desiredOrbCount(g *maze.Grid, fraction, scale float64) int {
	free := 0
	g.Each(func(i, j int, c maze.Cell) {
		if c != maze.Wall {
			free++
		}
	})
	if fraction <= 0 {
		fraction = 0.2
	}
	n := float64(free) * fraction
	if n < 20 {
		n = 20
	}
	if n > 180 {
		n = 180
	}
	if scale > 0 {
		n *= scale
	}
	if n < 1 {
		n = 1
	}
	return int(n)
}

func spawnOrbs(g *maze.Grid, count int, rng *rand.Rand) []Orb {
	var cells [][2]int
	g.Each(func(i, j int, c maze.Cell) {
		if safeCell(g, i, j) {
			cells = append(cells, [2]int{i, j})
		}
	})
	rng.Shuffle(len(cells), func(a, b int) {
		cells[a], cells[b] = cells[b], cells[a]
	})
	if count > len(cells) {
		count = len(cells)
	}
	orbs := make([]Orb, 0, count)
	for _, c := range cells[:count] {
		x, y := maze.CellCenter(c[0], c[1])
		orbs = append(orbs, Orb{X: x, Y: y, Active: true})
	}
	return orbs
}

func activeOrbs(orbs []Orb) int {
	n := 0
	for i := range orbs {
		if orbs[i].Active {
			n++
		}
	}
	return n
}

// farSpawnCell finds the open cell farthest from (px, py) that is at least
// minCells cells away, for dropping the hunter in out of sight.
func farSpawnCell(g *maze.Grid, px, py float64, minCells float64) (float64, float64, bool) {
	minD2 := minCells * maze.CellSize * minCells * maze.CellSize
	var bx, by float64
	best := -1.0
	g.Each(func(i, j int, c maze.Cell) {
		if c != maze.Open {
			return
		}
		wx, wy := maze.CellCenter(i, j)
		dx := wx - px
		dy := wy - py
		d2 := dx*dx + dy*dy
		if d2 > minD2 && d2 > best {
			best = d2
			bx, by = wx, wy
		}
	})
	return bx, by, best > 0
}

package geom

import (
	"math"
	"strings"
	"testing"

	"github.com/Vann06/gloamway/maze"
)

func mustParse(t *testing.T, layout string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(strings.NewReader(layout))
	if err != nil {
		t.Fatalf("parse layout: %v", err)
	}
	return g
}

// corridor: one open row between walls, exit at the right end.
const corridor = "######\n#   g#\n######"

func TestCastRayDeterminism(t *testing.T) {
	g := mustParse(t, corridor)
	ox, oy := 1.5*maze.CellSize, 1.5*maze.CellSize
	d0, hit0 := CastRay(g, ox, oy, 0.37, 2000)
	for i := 0; i < 10; i++ {
		d, hit := CastRay(g, ox, oy, 0.37, 2000)
		if d != d0 || hit != hit0 {
			t.Fatalf("call %d: got (%v,%v), first call gave (%v,%v)", i, d, hit, d0, hit0)
		}
	}
}

func TestCastRay(t *testing.T) {
	g := mustParse(t, corridor)
	cell := maze.CellSize

	cases := []struct {
		name    string
		ox, oy  float64
		angle   float64
		max     float64
		wantHit bool
		// distance bounds when a hit is expected
		lo, hi float64
	}{
		// from the center of cell (1,1) straight up: wall starts half a cell away
		{"toward_wall_up", 1.5 * cell, 1.5 * cell, -math.Pi / 2, 2000, true, 0.4 * cell, 0.6 * cell},
		// straight left into the border wall
		{"toward_wall_left", 1.5 * cell, 1.5 * cell, math.Pi, 2000, true, 0.4 * cell, 0.6 * cell},
		// exit cells are not walls: the ray passes (4,1) and stops at the border (5,1)
		{"through_exit", 1.5 * cell, 1.5 * cell, 0, 2000, true, 3.4 * cell, 3.6 * cell},
		// max range shorter than the nearest wall
		{"no_hit_in_range", 1.5 * cell, 1.5 * cell, 0, 10, false, 0, 0},
		// origin outside the grid hits immediately
		{"origin_out_of_bounds", -50, -50, 0, 2000, true, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, hit := CastRay(g, c.ox, c.oy, c.angle, c.max)
			if hit != c.wantHit {
				t.Fatalf("hit = %v, want %v (d=%v)", hit, c.wantHit, d)
			}
			if hit && (d < c.lo || d > c.hi) {
				t.Fatalf("distance %v outside [%v, %v]", d, c.lo, c.hi)
			}
		})
	}
}

func TestLineOfSight(t *testing.T) {
	open := strings.Repeat(strings.Repeat(" ", 10)+"\n", 10)
	g := mustParse(t, open)

	ax, ay := 0.5*maze.CellSize, 0.5*maze.CellSize
	bx, by := 5.5*maze.CellSize, 5.5*maze.CellSize
	if !LineOfSight(g, ax, ay, bx, by) {
		t.Fatalf("open grid should have clear line of sight")
	}

	// wall column at x=2 for all rows blocks the diagonal
	rows := make([]string, 10)
	for j := range rows {
		rows[j] = "  #       "
	}
	blocked := mustParse(t, strings.Join(rows, "\n"))
	if LineOfSight(blocked, ax, ay, bx, by) {
		t.Fatalf("wall column should block line of sight")
	}

	// endpoint out of bounds fails closed
	if LineOfSight(g, ax, ay, 100*maze.CellSize, ay) {
		t.Fatalf("out-of-bounds endpoint should block")
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, -math.Pi / 2},
		{math.Pi / 4, math.Pi / 4},
		{2*math.Pi + 0.1, 0.1},
		{-2*math.Pi - 0.1, -0.1},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

package main

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Vann06/gloamway/maze"
)

func parseGrid(t *testing.T, layout string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(strings.NewReader(layout))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return g
}

func openRoom(t *testing.T, w, h int) *maze.Grid {
	t.Helper()
	rows := make([]string, h)
	for j := range rows {
		rows[j] = strings.Repeat(" ", w)
	}
	return parseGrid(t, strings.Join(rows, "\n"))
}

func TestSpawnOrbsAvoidsWallAdjacency(t *testing.T) {
	g := parseGrid(t, strings.Join([]string{
		"#########",
		"#       #",
		"#       #",
		"#       #",
		"#      g#",
		"#########",
	}, "\n"))

	rng := rand.New(rand.NewSource(42))
	orbs := spawnOrbs(g, 50, rng)
	if len(orbs) == 0 {
		t.Fatalf("no orbs spawned")
	}
	for _, o := range orbs {
		i, j := maze.CellIndex(o.X, o.Y)
		if !safeCell(g, i, j) {
			t.Fatalf("orb at cell (%d,%d) touches a wall", i, j)
		}
		if !o.Active {
			t.Fatalf("freshly spawned orb should be active")
		}
	}
}

func TestSpawnOrbsCapsAtAvailableCells(t *testing.T) {
	g := parseGrid(t, strings.Join([]string{
		"#####",
		"#   #",
		"#   #",
		"#  g#",
		"#####",
	}, "\n"))
	rng := rand.New(rand.NewSource(1))
	orbs := spawnOrbs(g, 1000, rng)
	if len(orbs) > 9 {
		t.Fatalf("more orbs than interior cells: %d", len(orbs))
	}
}

func TestDesiredOrbCountClamps(t *testing.T) {
	small := openRoom(t, 6, 6)
	if got := desiredOrbCount(small, 0.2, 1); got != 20 {
		t.Fatalf("small maps clamp up to 20, got %d", got)
	}

	big := openRoom(t, 60, 40)
	if got := desiredOrbCount(big, 0.2, 1); got != 180 {
		t.Fatalf("big maps clamp down to 180, got %d", got)
	}

	if got := desiredOrbCount(big, 0.2, 0.5); got != 90 {
		t.Fatalf("tuning scale should apply after clamping, got %d", got)
	}
}

func TestFarSpawnCell(t *testing.T) {
	g := openRoom(t, 30, 3)
	px, py := maze.CellCenter(1, 1)

	x, y, ok := farSpawnCell(g, px, py, 10)
	if !ok {
		t.Fatalf("expected a far cell in a 30-wide room")
	}
	dx := x - px
	dy := y - py
	min := 10 * maze.CellSize
	if dx*dx+dy*dy <= min*min {
		t.Fatalf("far cell too close: (%v,%v)", x, y)
	}

	// a cramped map has nowhere distant enough
	tiny := openRoom(t, 4, 4)
	if _, _, ok := farSpawnCell(tiny, px, py, 10); ok {
		t.Fatalf("tiny map should not offer a far spawn")
	}
}

func TestActiveOrbs(t *testing.T) {
	orbs := []Orb{{Active: true}, {Active: false}, {Active: true}}
	if got := activeOrbs(orbs); got != 2 {
		t.Fatalf("got %d active orbs, want 2", got)
	}
}

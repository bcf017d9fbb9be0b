// mazegen writes a maze in the levels text format: '#' walls inside a
// '+-|' border, spaces for floor, and a single 'g' exit in the far corner.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
)

func main() {
	width := flag.Int("w", 25, "maze width in cells (made odd)")
	height := flag.Int("h", 19, "maze height in cells (made odd)")
	seed := flag.Int64("seed", 1, "generator seed")
	extra := flag.Int("extra", 0, "extra walls to knock out for loops (0 = width*height/30)")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	w := *width | 1
	h := *height | 1
	if w < 5 || h < 5 {
		log.Fatalf("maze must be at least 5x5, got %dx%d", w, h)
	}

	rng := rand.New(rand.NewSource(*seed))
	grid := carveMaze(w, h, rng)
	knockLoops(grid, *extra, rng)
	decorateBorder(grid)
	placeExit(grid)

	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	if *out == "" {
		fmt.Print(sb.String())
		return
	}
	if err := os.WriteFile(*out, []byte(sb.String()), 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}

// carveMaze runs a recursive backtracker over the odd-coordinate cells.
func carveMaze(w, h int, rng *rand.Rand) [][]byte {
	grid := make([][]byte, h)
	for j := range grid {
		grid[j] = []byte(strings.Repeat("#", w))
	}

	type pos struct{ x, y int }
	stack := []pos{{1, 1}}
	grid[1][1] = ' '

	dirs := [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		order := rng.Perm(4)
		advanced := false
		for _, k := range order {
			nx := cur.x + dirs[k][0]
			ny := cur.y + dirs[k][1]
			if nx < 1 || ny < 1 || nx >= w-1 || ny >= h-1 || grid[ny][nx] != '#' {
				continue
			}
			grid[cur.y+dirs[k][1]/2][cur.x+dirs[k][0]/2] = ' '
			grid[ny][nx] = ' '
			stack = append(stack, pos{nx, ny})
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
	return grid
}

// knockLoops opens a few extra walls between corridors so the maze is not
// a strict tree; loops give the pursuer alternate routes.
func knockLoops(grid [][]byte, extra int, rng *rand.Rand) {
	h := len(grid)
	w := len(grid[0])
	if extra <= 0 {
		extra = w * h / 30
	}
	for holes, attempts := 0, 0; holes < extra && attempts < extra*50; attempts++ {
		x := 1 + rng.Intn(w-2)
		y := 1 + rng.Intn(h-2)
		if grid[y][x] != '#' {
			continue
		}
		open := 0
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			if grid[y+d[1]][x+d[0]] == ' ' {
				open++
			}
		}
		if open >= 2 {
			grid[y][x] = ' '
			holes++
		}
	}
}

// placeExit cuts a 'g' doorway into the border wall next to the open cell
// farthest from the start corner, so the exit reads as a lit opening.
func placeExit(grid [][]byte) {
	h := len(grid)
	w := len(grid[0])
	best := -1
	var ex, ey int
	for y := 1; y < h-1; y++ {
		if grid[y][w-2] == ' ' {
			if d := (w-2)*(w-2) + y*y; d > best {
				best = d
				ex, ey = w-1, y
			}
		}
	}
	for x := 1; x < w-1; x++ {
		if grid[h-2][x] == ' ' {
			if d := x*x + (h-2)*(h-2); d > best {
				best = d
				ex, ey = x, h-1
			}
		}
	}
	grid[ey][ex] = 'g'
}

func decorateBorder(grid [][]byte) {
	h := len(grid)
	w := len(grid[0])
	for x := 0; x < w; x++ {
		grid[0][x] = '-'
		grid[h-1][x] = '-'
	}
	for y := 0; y < h; y++ {
		grid[y][0] = '|'
		grid[y][w-1] = '|'
	}
	grid[0][0], grid[0][w-1] = '+', '+'
	grid[h-1][0], grid[h-1][w-1] = '+', '+'
}

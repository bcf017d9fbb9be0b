package levels

import (
	"testing"

	"github.com/Vann06/gloamway/maze"
	"github.com/Vann06/gloamway/nav"
)

func TestShippedMapsAreSolvable(t *testing.T) {
	for _, name := range []string{"maze1.txt", "maze2.txt", "maze3.txt"} {
		t.Run(name, func(t *testing.T) {
			g, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}

			exits := 0
			var ei, ej int
			g.Each(func(i, j int, c maze.Cell) {
				if c == maze.Exit {
					exits++
					ei, ej = i, j
				}
			})
			if exits != 1 {
				t.Fatalf("want exactly one exit, got %d", exits)
			}

			// the start corner must be open and the exit reachable from it
			if g.At(1, 1) != maze.Open {
				t.Fatalf("start cell (1,1) is not open")
			}
			sx, sy := maze.CellCenter(1, 1)
			tx, ty := maze.CellCenter(ei, ej)
			if _, _, ok := nav.NextStep(g, sx, sy, tx, ty); !ok {
				t.Fatalf("exit (%d,%d) unreachable from start", ei, ej)
			}
		})
	}
}

func TestLoadMissingMap(t *testing.T) {
	if _, err := Load("no_such.txt"); err == nil {
		t.Fatalf("expected error for missing map")
	}
}

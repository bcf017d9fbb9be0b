package maze

import (
	"strings"
	"testing"
)

func TestParseCellTags(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		i, j   int
		want   Cell
	}{
		// The open layouts carry an explicit g so exit synthesis does
		// not retag the cell under test.
		{"space_is_open", "##g\n# #\n###", 1, 1, Open},
		{"g_is_exit", "###\n#g#\n###", 1, 1, Exit},
		{"hash_is_wall", "###\n###\n###", 1, 1, Wall},
		{"tab_is_open", "##g\n#\t#\n###", 1, 1, Open},
		{"plus_is_wall", "+-+\n| |\n+-+", 0, 0, Wall},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := Parse(strings.NewReader(c.layout))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := g.At(c.i, c.j); got != c.want {
				t.Fatalf("At(%d,%d) = %v, want %v", c.i, c.j, got, c.want)
			}
		})
	}
}

func TestParsePadsRaggedRows(t *testing.T) {
	g, err := Parse(strings.NewReader("#####\n# g\n#####"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Width() != 5 || g.Height() != 3 {
		t.Fatalf("got %dx%d, want 5x3", g.Width(), g.Height())
	}
	// padded tail of the short row must read as wall
	if g.At(3, 1) != Wall || g.At(4, 1) != Wall {
		t.Fatalf("padded cells should be Wall, got %v %v", g.At(3, 1), g.At(4, 1))
	}
}

func TestExitSynthesis(t *testing.T) {
	// No 'g' anywhere: the open cell with the largest i*i+j*j gets one.
	layout := "####\n#  #\n#  #\n####"
	g, err := Parse(strings.NewReader(layout))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.At(2, 2) != Exit {
		t.Fatalf("expected synthesized exit at (2,2), got %v", g.At(2, 2))
	}
	// only one cell changed
	exits := 0
	g.Each(func(i, j int, c Cell) {
		if c == Exit {
			exits++
		}
	})
	if exits != 1 {
		t.Fatalf("expected exactly one exit, got %d", exits)
	}
}

func TestOutOfBoundsReadsAsWall(t *testing.T) {
	g, err := Parse(strings.NewReader("# #"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 1}} {
		if g.At(p[0], p[1]) != Wall {
			t.Fatalf("At(%d,%d) out of bounds should be Wall", p[0], p[1])
		}
		if g.Traversable(p[0], p[1]) {
			t.Fatalf("Traversable(%d,%d) out of bounds should be false", p[0], p[1])
		}
	}
}

func TestCellIndexAndCenterRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		wx, wy float64
		wi, wj int
	}{
		{"origin", 0, 0, 0, 0},
		{"inside_first", 63.9, 63.9, 0, 0},
		{"second_cell", 64, 64, 1, 1},
		{"negative", -1, -1, -1, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			i, j := CellIndex(c.wx, c.wy)
			if i != c.wi || j != c.wj {
				t.Fatalf("CellIndex(%v,%v) = (%d,%d), want (%d,%d)", c.wx, c.wy, i, j, c.wi, c.wj)
			}
		})
	}
	cx, cy := CellCenter(2, 3)
	if i, j := CellIndex(cx, cy); i != 2 || j != 3 {
		t.Fatalf("center of (2,3) maps back to (%d,%d)", i, j)
	}
}

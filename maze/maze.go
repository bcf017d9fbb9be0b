package maze

// Cell tags a single grid square.
type Cell uint8

const (
	Open Cell = iota
	Wall
	Exit
)

// CellSize is the side length of one grid cell in world units.
const CellSize = 64.0

// Grid is a rectangular maze built once at level load and read-only
// afterwards. All rows have equal length.
type Grid struct {
	cells  [][]Cell
	width  int
	height int
}

// New builds a grid from pre-tagged rows. Ragged rows are padded with Wall
// and a missing Exit is synthesized, same as the text loader.
func New(rows [][]Cell) *Grid {
	g := &Grid{cells: rows, height: len(rows)}
	for _, r := range rows {
		if len(r) > g.width {
			g.width = len(r)
		}
	}
	for j, r := range g.cells {
		for len(r) < g.width {
			r = append(r, Wall)
		}
		g.cells[j] = r
	}
	g.ensureExit()
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether cell (i, j) lies inside the grid.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < g.width && j < g.height
}

// At returns the cell tag at (i, j). Out-of-bounds cells read as Wall so
// geometry queries fail closed.
func (g *Grid) At(i, j int) Cell {
	if !g.InBounds(i, j) {
		return Wall
	}
	return g.cells[j][i]
}

// Traversable reports whether cell (i, j) can be walked through.
// Exit cells count as open space for both movers.
func (g *Grid) Traversable(i, j int) bool {
	c := g.At(i, j)
	return c == Open || c == Exit
}

// CellIndex converts a world position to cell coordinates by floor division.
func CellIndex(wx, wy float64) (int, int) {
	i := int(floorDiv(wx))
	j := int(floorDiv(wy))
	return i, j
}

func floorDiv(w float64) float64 {
	q := w / CellSize
	f := float64(int(q))
	if q < 0 && q != f {
		f--
	}
	return f
}

// CellCenter returns the world position of the center of cell (i, j).
func CellCenter(i, j int) (float64, float64) {
	return (float64(i) + 0.5) * CellSize, (float64(j) + 0.5) * CellSize
}

// TraversableAt reports whether the world point (wx, wy) lies in a
// traversable cell. Points outside the grid are not traversable.
func (g *Grid) TraversableAt(wx, wy float64) bool {
	i, j := CellIndex(wx, wy)
	if !g.InBounds(i, j) {
		return false
	}
	return g.Traversable(i, j)
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(i, j int, c Cell)) {
	for j, row := range g.cells {
		for i, c := range row {
			fn(i, j, c)
		}
	}
}

// ensureExit synthesizes an Exit at the open cell farthest from the origin
// (by squared index distance) when the layout carries none.
func (g *Grid) ensureExit() {
	for _, row := range g.cells {
		for _, c := range row {
			if c == Exit {
				return
			}
		}
	}
	bestI, bestJ, bestD := -1, -1, -1
	for j, row := range g.cells {
		for i, c := range row {
			if c != Open {
				continue
			}
			if d := i*i + j*j; d > bestD {
				bestI, bestJ, bestD = i, j, d
			}
		}
	}
	if bestD >= 0 {
		g.cells[bestJ][bestI] = Exit
	}
}

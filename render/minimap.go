package render

import (
	"image/color"
	"math"

	"github.com/Vann06/gloamway/maze"
)

var (
	mapWall   = color.NRGBA{R: 120, G: 120, B: 140, A: 255}
	mapExit   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	mapOrb    = color.NRGBA{R: 255, G: 220, B: 40, A: 255}
	mapPlayer = color.NRGBA{R: 60, G: 220, B: 60, A: 255}
	mapHunter = color.NRGBA{R: 230, G: 50, B: 50, A: 255}
	mapBack   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// MinimapView carries the frame state the overhead map shows.
type MinimapView struct {
	PlayerX, PlayerY float64
	PlayerAngle      float64
	HunterX, HunterY float64
	HunterActive     bool
	Orbs             [][2]float64
}

// DrawMinimap paints the overhead map into the framebuffer's top-right
// corner.
func DrawMinimap(fb *Framebuffer, g *maze.Grid, view MinimapView) {
	cellPx := fb.W / 4 / g.Width()
	if cellPx < 2 {
		cellPx = 2
	}
	if cellPx > 6 {
		cellPx = 6
	}
	const margin = 8
	mapW := g.Width() * cellPx
	mapH := g.Height() * cellPx
	ox := fb.W - mapW - margin
	oy := margin

	fb.FillRect(ox-2, oy-2, mapW+4, mapH+4, mapBack)

	g.Each(func(i, j int, c maze.Cell) {
		switch c {
		case maze.Wall:
			fb.FillRect(ox+i*cellPx, oy+j*cellPx, cellPx, cellPx, mapWall)
		case maze.Exit:
			fb.FillRect(ox+i*cellPx, oy+j*cellPx, cellPx, cellPx, mapExit)
		}
	})

	for _, o := range view.Orbs {
		i, j := maze.CellIndex(o[0], o[1])
		fb.FillRect(ox+i*cellPx+cellPx/3, oy+j*cellPx+cellPx/3, cellPx/2, cellPx/2, mapOrb)
	}

	pi, pj := maze.CellIndex(view.PlayerX, view.PlayerY)
	px := ox + pi*cellPx + cellPx/2
	py := oy + pj*cellPx + cellPx/2
	fb.FillRect(px-1, py-1, 3, 3, mapPlayer)
	// heading tick
	hx := px + int(math.Cos(view.PlayerAngle)*float64(cellPx)*0.8)
	hy := py + int(math.Sin(view.PlayerAngle)*float64(cellPx)*0.8)
	fb.SetPixel(hx, hy, mapPlayer)

	if view.HunterActive {
		hi, hj := maze.CellIndex(view.HunterX, view.HunterY)
		fb.FillRect(ox+hi*cellPx+cellPx/2-1, oy+hj*cellPx+cellPx/2-1, 3, 3, mapHunter)
	}
}

package render

import (
	"image/color"
	"math"

	"github.com/Vann06/gloamway/assets"
	"github.com/Vann06/gloamway/common"
	"github.com/Vann06/gloamway/geom"
	"github.com/Vann06/gloamway/maze"
)

// Camera is the viewer pose for one frame.
type Camera struct {
	X, Y  float64
	Angle float64
	FOV   float64
}

const (
	// projK scales perpendicular distance into column height.
	projK = 120.0
	// columnGap shaves the top and bottom of each wall column so ceilings
	// read taller.
	columnGap = 12.0
	// maxViewRange bounds every view ray.
	maxViewRange = 2000.0
)

var (
	ceilTop   = color.NRGBA{R: 10, G: 12, B: 18, A: 255}
	ceilMid   = color.NRGBA{R: 20, G: 24, B: 32, A: 255}
	floorNear = color.NRGBA{R: 56, G: 58, B: 62, A: 255}
	floorFar  = color.NRGBA{R: 26, G: 28, B: 30, A: 255}
)

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = common.Clamp(t, 0, 1)
	return color.NRGBA{
		R: uint8(common.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(common.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(common.Lerp(float64(a.B), float64(b.B), t)),
		A: 255,
	}
}

func paintCeilingAndFloor(fb *Framebuffer) {
	hh := fb.H / 2
	for y := 0; y < hh; y++ {
		c := lerpColor(ceilTop, ceilMid, float64(y)/float64(hh))
		for x := 0; x < fb.W; x++ {
			fb.SetPixel(x, y, c)
		}
	}
	for y := hh; y < fb.H; y++ {
		c := lerpColor(floorFar, floorNear, float64(y-hh)/float64(fb.H-hh))
		for x := 0; x < fb.W; x++ {
			fb.SetPixel(x, y, c)
		}
	}
}

// wallKey picks a stable texture variant for a wall cell; the exit cell
// always uses its own texture.
func wallKey(g *maze.Grid, ci, cj int) byte {
	if g.At(ci, cj) == maze.Exit {
		return assets.KeyExit
	}
	h := (ci * 31) ^ (cj * 17)
	switch ((h % 3) + 3) % 3 {
	case 0:
		return assets.KeyWallA
	case 1:
		return assets.KeyWallB
	}
	return assets.KeyWallC
}

// DrawWorld casts one view ray per framebuffer column, paints textured
// wall slices over the ceiling/floor gradients, and records each column's
// ray distance in zbuf for sprite occlusion. Distant columns blend toward
// the level's fog color.
func DrawWorld(fb *Framebuffer, g *maze.Grid, cam Camera, tex *assets.Manager, zbuf []float64, brightness float64, fog color.NRGBA) {
	paintCeilingAndFloor(fb)

	hh := float64(fb.H) * 0.5
	for i := 0; i < fb.W && i < len(zbuf); i++ {
		t := float64(i) / float64(fb.W)
		rayA := cam.Angle - cam.FOV*0.5 + cam.FOV*t

		d, hit := geom.CastRay(g, cam.X, cam.Y, rayA, maxViewRange)
		if !hit {
			zbuf[i] = math.Inf(1)
			continue
		}
		zbuf[i] = d

		// fisheye correction: the column height uses the perpendicular
		// distance, not the ray distance
		perp := d * math.Abs(math.Cos(rayA-cam.Angle))
		if perp < 1e-4 {
			perp = 1e-4
		}

		hitX := cam.X + math.Cos(rayA)*d
		hitY := cam.Y + math.Sin(rayA)*d
		ci, cj := maze.CellIndex(hitX, hitY)
		back := math.Max(d-maze.CellSize/16, 0)
		bi, bj := maze.CellIndex(cam.X+math.Cos(rayA)*back, cam.Y+math.Sin(rayA)*back)
		if !g.InBounds(ci, cj) {
			// border hit: key the texture off the last cell inside the grid
			ci, cj = bi, bj
		}
		key := wallKey(g, ci, cj)
		if g.At(bi, bj) == maze.Exit {
			// the exit cell is open space, so the wall seen through it
			// carries the doorway texture instead of its own
			key = assets.KeyExit
		}

		colH := hh / perp * projK
		if colH > columnGap*2 {
			colH -= columnGap * 2
		}
		y0 := int(math.Max(hh-colH*0.5, 0))
		y1 := int(math.Min(hh+colH*0.5, float64(fb.H-1)))
		if y1 < y0 {
			continue
		}

		// pick the texture u from whichever cell axis the ray grazed
		tw, th := tex.Size(key)
		fx := fract(hitX / maze.CellSize)
		fy := fract(hitY / maze.CellSize)
		u := fx
		if math.Min(fx, 1-fx) < math.Min(fy, 1-fy) {
			u = fy
		}
		tx := int(common.Clamp(u*float64(tw), 0, float64(tw-1)))

		fade := common.Clamp(brightness*(1-d/maxViewRange*0.7), 0, 1.5)
		fogT := common.Clamp(d/maxViewRange, 0, 1) * 0.55
		span := float64(y1 - y0 + 1)
		for y := y0; y <= y1; y++ {
			v := float64(y-y0) / span
			ty := int(common.Clamp(v*float64(th), 0, float64(th-1)))
			c := tex.Pixel(key, tx, ty)
			fb.SetPixel(i, y, lerpColor(shade(c, fade), fog, fogT))
		}
	}
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(common.Clamp(float64(c.R)*f, 0, 255)),
		G: uint8(common.Clamp(float64(c.G)*f, 0, 255)),
		B: uint8(common.Clamp(float64(c.B)*f, 0, 255)),
		A: c.A,
	}
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}

package render

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/Vann06/gloamway/assets"
	"github.com/Vann06/gloamway/maze"
)

func roomGrid(t *testing.T) *maze.Grid {
	t.Helper()
	layout := strings.Join([]string{
		"########",
		"#      #",
		"#      #",
		"#     g#",
		"########",
	}, "\n")
	g, err := maze.Parse(strings.NewReader(layout))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return g
}

func TestFramebufferOutOfRange(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	fb.Clear()
	fb.SetPixel(-1, 5, mapExit)
	fb.SetPixel(5, 99, mapExit)
	if got := fb.Pixel(-1, 5); got != fb.bg {
		t.Fatalf("out-of-range read should return background, got %v", got)
	}
}

func TestDrawWorldFillsZBuffer(t *testing.T) {
	g := roomGrid(t)
	fb := NewFramebuffer(64, 40)
	fb.Clear()
	tex := assets.NewManager()
	zbuf := make([]float64, fb.W)

	cx, cy := maze.CellCenter(2, 2)
	cam := Camera{X: cx, Y: cy, Angle: 0, FOV: math.Pi / 2}
	DrawWorld(fb, g, cam, tex, zbuf, 1.0, color.NRGBA{R: 8, G: 8, B: 12, A: 255})

	for i, z := range zbuf {
		if math.IsInf(z, 1) {
			t.Fatalf("column %d: sealed room must hit a wall on every ray", i)
		}
		if z <= 0 || z > maxViewRange {
			t.Fatalf("column %d: distance %v out of range", i, z)
		}
	}
}

func TestDrawWorldDeterministic(t *testing.T) {
	g := roomGrid(t)
	tex := assets.NewManager()
	cx, cy := maze.CellCenter(2, 2)
	cam := Camera{X: cx, Y: cy, Angle: 0.4, FOV: math.Pi / 2}

	a := NewFramebuffer(48, 32)
	b := NewFramebuffer(48, 32)
	za := make([]float64, 48)
	zb := make([]float64, 48)
	a.Clear()
	b.Clear()
	fog := color.NRGBA{R: 8, G: 8, B: 12, A: 255}
	DrawWorld(a, g, cam, tex, za, 1.0, fog)
	DrawWorld(b, g, cam, tex, zb, 1.0, fog)

	for y := 0; y < a.H; y++ {
		for x := 0; x < a.W; x++ {
			if a.Pixel(x, y) != b.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) differs between identical frames", x, y)
			}
		}
	}
}

func TestSpriteOcclusion(t *testing.T) {
	tex := assets.NewManager()
	cam := Camera{X: 0, Y: 0, Angle: 0, FOV: math.Pi / 2}
	sprite := Sprite{X: 100, Y: 0, Key: assets.KeyFront, Size: 90, VOff: 0}

	// all walls nearer than the sprite: nothing may be drawn
	fb := NewFramebuffer(64, 40)
	fb.Clear()
	before := fb.Pixel(32, 20)
	zNear := make([]float64, fb.W)
	for i := range zNear {
		zNear[i] = 10
	}
	DrawSprite(fb, cam, tex, zNear, sprite)
	if fb.Pixel(32, 20) != before {
		t.Fatalf("sprite drew through a nearer wall")
	}

	// open zbuffer: the sprite must land on screen
	fb2 := NewFramebuffer(64, 40)
	fb2.Clear()
	zFar := make([]float64, fb2.W)
	for i := range zFar {
		zFar[i] = math.Inf(1)
	}
	DrawSprite(fb2, cam, tex, zFar, sprite)
	changed := false
	for y := 0; y < fb2.H && !changed; y++ {
		for x := 0; x < fb2.W; x++ {
			if fb2.Pixel(x, y) != fb2.bg {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Fatalf("sprite with clear zbuffer drew nothing")
	}
}

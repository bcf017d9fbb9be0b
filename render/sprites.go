package render

import (
	"math"
	"sort"

	"github.com/Vann06/gloamway/assets"
	"github.com/Vann06/gloamway/geom"
)

// Sprite is a world-anchored billboard.
type Sprite struct {
	X, Y float64
	Key  byte
	// Size scales the projected height; VOff shifts the center as a
	// fraction of screen height (positive is downward).
	Size float64
	VOff float64
}

func isFaceKey(key byte) bool {
	switch key {
	case assets.KeyFront, assets.KeyLeft, assets.KeyRight, assets.KeyBack:
		return true
	}
	return false
}

// DrawSprite projects one billboard against the wall zbuffer. Columns
// behind a nearer wall slice are skipped, so sprites clip correctly around
// corners.
func DrawSprite(fb *Framebuffer, cam Camera, tex *assets.Manager, zbuf []float64, s Sprite) {
	sw := float64(fb.W)
	sh := float64(fb.H)

	dx := s.X - cam.X
	dy := s.Y - cam.Y
	diff := geom.NormalizeAngle(math.Atan2(dy, dx) - cam.Angle)
	if math.Abs(diff) > cam.FOV*0.55 {
		return
	}
	dist := math.Hypot(dx, dy)
	if dist < 8 || dist > 2500 {
		return
	}

	screenX := (diff/cam.FOV + 0.5) * sw
	size := sh / dist * s.Size
	maxPx := sh * 0.42
	if isFaceKey(s.Key) {
		maxPx = sh * 0.90
	}
	if size > maxPx {
		size = maxPx
	}
	if size <= 1 {
		return
	}

	centerY := sh * (0.5 + s.VOff)
	if isFaceKey(s.Key) && dist < 140 {
		// subtle bob when the hunter looms close
		centerY += math.Round(3 * math.Sin(dist*0.05))
	}

	startX := int(math.Max(screenX-size*0.5, 0))
	endX := int(math.Min(screenX+size*0.5, sw-1))
	startY := int(math.Max(centerY-size*0.5, 0))
	endY := int(math.Min(float64(startY)+size, sh-1))
	if endX < startX || endY < startY {
		return
	}

	tw, th := tex.Size(s.Key)
	for sx := startX; sx <= endX; sx++ {
		if sx < len(zbuf) && dist >= zbuf[sx] {
			continue
		}
		txc := (sx - startX) * tw / (endX - startX + 1)
		for sy := startY; sy <= endY; sy++ {
			tyc := (sy - startY) * th / (endY - startY + 1)
			c := tex.Pixel(s.Key, txc, tyc)
			if c.A < 8 {
				continue
			}
			fb.SetPixel(sx, sy, c)
		}
	}
}

// DrawSprites sorts far to near and draws each billboard, so nearer
// sprites paint over farther ones.
func DrawSprites(fb *Framebuffer, cam Camera, tex *assets.Manager, zbuf []float64, sprites []Sprite) {
	sort.Slice(sprites, func(a, b int) bool {
		da := (sprites[a].X-cam.X)*(sprites[a].X-cam.X) + (sprites[a].Y-cam.Y)*(sprites[a].Y-cam.Y)
		db := (sprites[b].X-cam.X)*(sprites[b].X-cam.X) + (sprites[b].Y-cam.Y)*(sprites[b].Y-cam.Y)
		return da > db
	})
	for _, s := range sprites {
		DrawSprite(fb, cam, tex, zbuf, s)
	}
}

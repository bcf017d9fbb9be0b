// Package assets holds the procedurally generated textures and sound
// effects. Nothing on disk is required: every pixmap and tone is built at
// startup from a stable key so repeated runs look and sound identical.
package assets

import (
	"image/color"
)

// Texture keys. Wall variants carry the checker look in different hues;
// sprite keys render with an alpha channel so the renderer can skip
// transparent pixels.
const (
	KeyWallA = byte('2')
	KeyWallB = byte('3')
	KeyWallC = byte('4')
	KeyExit  = byte('g')
	KeyOrb   = byte('o')
	KeyFront = byte('N')
	KeyLeft  = byte('W')
	KeyBack  = byte('S')
	KeyRight = byte('E')
)

const texSize = 64

// Pixmap is an immutable CPU-side texture sampled per pixel by the
// raycaster.
type Pixmap struct {
	W, H int
	Px   []color.NRGBA
}

// Sample wraps out-of-range coordinates so walls tile seamlessly.
func (p *Pixmap) Sample(x, y int) color.NRGBA {
	xi := x % p.W
	if xi < 0 {
		xi += p.W
	}
	yi := y % p.H
	if yi < 0 {
		yi += p.H
	}
	return p.Px[yi*p.W+xi]
}

// Manager owns the generated pixmaps and the alert tint toggle.
type Manager struct {
	maps  map[byte]*Pixmap
	alert bool
}

func NewManager() *Manager {
	m := &Manager{maps: make(map[byte]*Pixmap)}
	for _, k := range []byte{KeyWallA, KeyWallB, KeyWallC} {
		m.maps[k] = makeChecker(texSize, texSize, colorFromKey(k))
	}
	// the exit glows near-white so it reads from a distance
	m.maps[KeyExit] = makeChecker(texSize, texSize, color.NRGBA{R: 230, G: 230, B: 240, A: 255})
	m.maps[KeyOrb] = makeOrb(texSize)
	m.maps[KeyFront] = makeFace(texSize, 2)
	m.maps[KeyLeft] = makeFace(texSize, 1)
	m.maps[KeyRight] = makeFace(texSize, 1)
	m.maps[KeyBack] = makeFace(texSize, 0)
	return m
}

// SetAlertMode tints subsequent wall samples red while the hunter has the
// player in sight.
func (m *Manager) SetAlertMode(on bool) { m.alert = on }

// Size reports a texture's dimensions.
func (m *Manager) Size(key byte) (int, int) {
	if pm, ok := m.maps[key]; ok {
		return pm.W, pm.H
	}
	return texSize, texSize
}

// Pixel samples a texture, applying the alert tint to wall keys.
func (m *Manager) Pixel(key byte, x, y int) color.NRGBA {
	pm, ok := m.maps[key]
	if !ok {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	c := pm.Sample(x, y)
	if m.alert && isWallKey(key) {
		c.R = mix(c.R, 255, 70)
		c.G = mix(c.G, 30, 40)
		c.B = mix(c.B, 30, 40)
	}
	return c
}

func isWallKey(key byte) bool {
	switch key {
	case KeyWallA, KeyWallB, KeyWallC, KeyExit:
		return true
	}
	return false
}

// colorFromKey derives a stable base color from the key byte.
func colorFromKey(k byte) color.NRGBA {
	v := uint32(k)
	return color.NRGBA{
		R: uint8(v*97%200 + 40),
		G: uint8(v*57%200 + 40),
		B: uint8(v*31%200 + 40),
		A: 255,
	}
}

// mix blends a toward b by t/255.
func mix(a, b uint8, t uint8) uint8 {
	ta := uint16(t)
	na := 255 - ta
	return uint8((uint16(a)*na + uint16(b)*ta) / 255)
}

// makeChecker fills a pixmap with the base color and overlays a faint
// 8x8 checker so walls have visible texture when close.
func makeChecker(w, h int, base color.NRGBA) *Pixmap {
	px := make([]color.NRGBA, w*h)
	const cell = 8
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := base
			if (x/cell+y/cell)%2 == 0 {
				c = color.NRGBA{
					R: mix(c.R, 255, 24),
					G: mix(c.G, 255, 24),
					B: mix(c.B, 255, 24),
					A: 255,
				}
			}
			px[y*w+x] = c
		}
	}
	return &Pixmap{W: w, H: h, Px: px}
}

// makeOrb draws a soft radial glow disc with transparent corners.
func makeOrb(size int) *Pixmap {
	px := make([]color.NRGBA, size*size)
	c := float64(size-1) / 2
	r := c * 0.9
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - c
			dy := float64(y) - c
			d := dx*dx + dy*dy
			if d > r*r {
				continue
			}
			t := 1 - d/(r*r)
			px[y*size+x] = color.NRGBA{
				R: uint8(200 + 55*t),
				G: uint8(180 + 60*t),
				B: uint8(60 * t),
				A: uint8(120 + 135*t),
			}
		}
	}
	return &Pixmap{W: size, H: size, Px: px}
}

// makeFace draws the hunter billboard: a dark hooded silhouette with the
// given number of glowing eyes (two from the front, one in profile, none
// from behind).
func makeFace(size int, eyes int) *Pixmap {
	px := make([]color.NRGBA, size*size)
	cx := float64(size-1) / 2
	body := color.NRGBA{R: 18, G: 14, B: 22, A: 255}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx := float64(x) - cx
			fy := float64(y)
			// head: circle in the upper third; torso: widening column below
			headR := float64(size) * 0.22
			headY := float64(size) * 0.28
			dh := fx*fx + (fy-headY)*(fy-headY)
			inHead := dh < headR*headR
			halfW := float64(size) * (0.16 + 0.2*(fy/float64(size)))
			inBody := fy > headY && fx > -halfW && fx < halfW && fy < float64(size)*0.96
			if inHead || inBody {
				px[y*size+x] = body
			}
		}
	}

	eyeY := int(float64(size) * 0.27)
	eyeOff := int(float64(size) * 0.09)
	switch eyes {
	case 2:
		drawEye(px, size, int(cx)-eyeOff, eyeY)
		drawEye(px, size, int(cx)+eyeOff, eyeY)
	case 1:
		drawEye(px, size, int(cx), eyeY)
	}
	return &Pixmap{W: size, H: size, Px: px}
}

func drawEye(px []color.NRGBA, size, ex, ey int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := ex+dx, ey+dy
			if x < 0 || y < 0 || x >= size || y >= size {
				continue
			}
			px[y*size+x] = color.NRGBA{R: 255, G: 235, B: 120, A: 255}
		}
	}
}

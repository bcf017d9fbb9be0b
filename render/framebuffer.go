// Package render draws the first-person view into a CPU framebuffer that
// is uploaded to the GPU once per frame.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Framebuffer is a plain RGBA pixel buffer. All drawing happens here and
// Blit pushes the result to an ebiten image in one call.
type Framebuffer struct {
	W, H int
	pix  []byte
	bg   color.NRGBA
}

func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{
		W:   w,
		H:   h,
		pix: make([]byte, w*h*4),
		bg:  color.NRGBA{R: 20, G: 20, B: 30, A: 255},
	}
}

func (f *Framebuffer) SetBackground(c color.NRGBA) { f.bg = c }

func (f *Framebuffer) Clear() {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i] = f.bg.R
		f.pix[i+1] = f.bg.G
		f.pix[i+2] = f.bg.B
		f.pix[i+3] = 255
	}
}

func (f *Framebuffer) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	i := (y*f.W + x) * 4
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = 255
}

func (f *Framebuffer) Pixel(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return f.bg
	}
	i := (y*f.W + x) * 4
	return color.NRGBA{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}

// FillRect clamps to the buffer, used by the minimap and HUD blocks.
func (f *Framebuffer) FillRect(x, y, w, h int, c color.NRGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			f.SetPixel(xx, yy, c)
		}
	}
}

// Blit uploads the buffer to an ebiten image of the same dimensions.
func (f *Framebuffer) Blit(dst *ebiten.Image) {
	dst.WritePixels(f.pix)
}

// CircularBlur averages each pixel inside the centered circle with its four
// neighbors, pulled toward the mean by strength. Used as the panic effect
// when the hunter is close.
func (f *Framebuffer) CircularBlur(strength float64, passes int, radiusRatio float64) {
	if strength <= 0 {
		return
	}
	if strength > 1 {
		strength = 1
	}
	if passes > 2 {
		passes = 2
	}
	if radiusRatio < 0.05 {
		radiusRatio = 0.05
	}
	if radiusRatio > 1 {
		radiusRatio = 1
	}

	cx := float64(f.W) * 0.5
	cy := float64(f.H) * 0.5
	r := math.Min(float64(f.W), float64(f.H)) * 0.5 * radiusRatio
	r2 := r * r
	tmp := make([]byte, len(f.pix))

	for p := 0; p < passes; p++ {
		copy(tmp, f.pix)
		for y := 1; y < f.H-1; y++ {
			for x := 1; x < f.W-1; x++ {
				dx := float64(x) - cx
				dy := float64(y) - cy
				if dx*dx+dy*dy > r2 {
					continue
				}
				i := (y*f.W + x) * 4
				for ch := 0; ch < 3; ch++ {
					c := int(f.pix[i+ch])
					sum := c +
						int(f.pix[i-4+ch]) +
						int(f.pix[i+4+ch]) +
						int(f.pix[i-f.W*4+ch]) +
						int(f.pix[i+f.W*4+ch])
					avg := sum / 5
					tmp[i+ch] = uint8(float64(c)*(1-strength) + float64(avg)*strength)
				}
			}
		}
		f.pix, tmp = tmp, f.pix
	}
}

// Flashlight darkens everything outside a circle at (cx, cy), with a soft
// feathered edge. darkness is the fraction of black applied outside.
func (f *Framebuffer) Flashlight(cx, cy, radius, feather, darkness float64) {
	if darkness <= 0 {
		return
	}
	if darkness > 1 {
		darkness = 1
	}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := math.Sqrt(dx*dx + dy*dy)
			if d <= radius {
				continue
			}
			t := 1.0
			if feather > 0 && d < radius+feather {
				t = (d - radius) / feather
			}
			keep := 1 - darkness*t
			i := (y*f.W + x) * 4
			f.pix[i] = uint8(float64(f.pix[i]) * keep)
			f.pix[i+1] = uint8(float64(f.pix[i+1]) * keep)
			f.pix[i+2] = uint8(float64(f.pix[i+2]) * keep)
		}
	}
}

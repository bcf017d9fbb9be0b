package assets

import (
	"image/color"
	"testing"
)

func TestPixmapSampleWraps(t *testing.T) {
	m := NewManager()
	w, h := m.Size(KeyWallA)
	if w != texSize || h != texSize {
		t.Fatalf("unexpected texture size %dx%d", w, h)
	}
	a := m.Pixel(KeyWallA, 3, 5)
	b := m.Pixel(KeyWallA, 3+w, 5+h)
	c := m.Pixel(KeyWallA, 3-w, 5-h)
	if a != b || a != c {
		t.Fatalf("sampling must wrap: %v %v %v", a, b, c)
	}
}

func TestAlertTintOnlyAffectsWalls(t *testing.T) {
	m := NewManager()
	wall := m.Pixel(KeyWallB, 10, 10)
	orb := m.Pixel(KeyOrb, 32, 32)

	m.SetAlertMode(true)
	tinted := m.Pixel(KeyWallB, 10, 10)
	if tinted == wall {
		t.Fatalf("alert mode should change wall color")
	}
	if got := m.Pixel(KeyOrb, 32, 32); got != orb {
		t.Fatalf("alert mode must not touch sprite keys")
	}
}

func TestExitTextureIsPale(t *testing.T) {
	m := NewManager()
	// (8, 0) lands on an unmixed base-color cell of the checker.
	got := m.Pixel(KeyExit, 8, 0)
	want := color.NRGBA{R: 230, G: 230, B: 240, A: 255}
	if got != want {
		t.Fatalf("exit base color = %v, want %v", got, want)
	}
	if got == colorFromKey(KeyExit) {
		t.Fatalf("exit must not use the key-derived hue")
	}
}

func TestFaceSpritesHaveTransparency(t *testing.T) {
	m := NewManager()
	for _, key := range []byte{KeyFront, KeyLeft, KeyRight, KeyBack, KeyOrb} {
		corner := m.Pixel(key, 0, 0)
		if corner.A != 0 {
			t.Fatalf("key %q: corner should be transparent, got alpha %d", key, corner.A)
		}
	}
}

func TestTonesAreWholeFrames(t *testing.T) {
	for name, b := range map[string][]byte{
		"orb":    OrbChime(),
		"caught": CaughtSting(),
		"step":   FootstepThud(false),
		"sprint": FootstepThud(true),
		"hunter": HunterStep(),
		"drone":  SeenDrone(),
	} {
		if len(b) == 0 {
			t.Fatalf("%s: empty buffer", name)
		}
		if len(b)%4 != 0 {
			t.Fatalf("%s: %d bytes is not whole 16-bit stereo frames", name, len(b))
		}
	}
}

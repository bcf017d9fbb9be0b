package hunter

import (
	"math"
	"testing"
)

// viewerAt places the camera at the given angle (degrees) and distance
// relative to the hunter's heading.
func viewerAt(h *Hunter, deg, dist float64) (float64, float64) {
	rad := h.angle + deg*math.Pi/180
	return h.x + math.Cos(rad)*dist, h.y + math.Sin(rad)*dist
}

func TestFacingLabelBands(t *testing.T) {
	cases := []struct {
		name string
		deg  float64
		want Facing
	}{
		{"dead ahead", 0, FaceFront},
		{"ahead and off to the side", 30, FaceFront},
		{"ahead on the other side", -30, FaceFront},
		{"square to the left", 90, FaceLeft},
		{"rear left quarter", 120, FaceLeft},
		{"directly behind", 180, FaceBack},
		{"rear past the left band", 165, FaceBack},
		{"square to the right", -90, FaceRight},
		{"rear right quarter", -120, FaceRight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := New(320, 320, math.Pi/3, DefaultConfig())
			cx, cy := viewerAt(h, tc.deg, 200)
			if got := h.FacingLabel(cx, cy); got != tc.want {
				t.Fatalf("deg %.0f: got %v, want %v", tc.deg, got, tc.want)
			}
		})
	}
}

func TestFacingLabelHysteresis(t *testing.T) {
	h := New(320, 320, 0, DefaultConfig())

	cx, cy := viewerAt(h, 90, 200)
	if got := h.FacingLabel(cx, cy); got != FaceLeft {
		t.Fatalf("square left: got %v", got)
	}

	// just inside the front band, but still within the widened left band:
	// the previous label holds
	cx, cy = viewerAt(h, 55, 200)
	if got := h.FacingLabel(cx, cy); got != FaceLeft {
		t.Fatalf("55 deg after left: got %v, want held FaceLeft", got)
	}

	// well past the margin, the label switches
	cx, cy = viewerAt(h, 40, 200)
	if got := h.FacingLabel(cx, cy); got != FaceFront {
		t.Fatalf("40 deg: got %v, want FaceFront", got)
	}

	// crossing back to 55 now keeps front, since front's widened band
	// covers it too
	cx, cy = viewerAt(h, 55, 200)
	if got := h.FacingLabel(cx, cy); got != FaceFront {
		t.Fatalf("55 deg after front: got %v, want held FaceFront", got)
	}
}

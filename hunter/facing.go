package hunter

import (
	"math"

	"github.com/Vann06/gloamway/geom"
)

// Facing is the cardinal sprite label a viewer should use for the hunter,
// relative to the hunter's own heading.
type Facing uint8

const (
	FaceFront Facing = iota // viewer sees the hunter head on
	FaceLeft                // viewer sees its left side
	FaceBack
	FaceRight
)

// Nominal band edges in degrees, and the extra margin kept once a label is
// active so the sprite does not flicker when the viewer orbits a boundary.
const (
	frontEdge  = 60.0
	backEdge   = 150.0
	keepMargin = 12.0
)

// FacingLabel classifies the angle from the hunter to the viewer against
// the hunter's heading into one of four sprite labels, with hysteresis:
// the previous label is kept while the angle stays inside its widened
// band. Presentational only; behavior state is untouched.
func (h *Hunter) FacingLabel(camX, camY float64) Facing {
	toCam := math.Atan2(camY-h.y, camX-h.x)
	deg := geom.NormalizeAngle(toCam-h.angle) * 180 / math.Pi

	var candidate Facing
	switch {
	case deg > -frontEdge && deg <= frontEdge:
		candidate = FaceFront
	case deg > frontEdge && deg <= backEdge:
		candidate = FaceLeft
	case deg <= -frontEdge && deg > -backEdge:
		candidate = FaceRight
	default:
		candidate = FaceBack
	}

	if inKeepBand(h.lastFacing, deg) {
		return h.lastFacing
	}
	h.lastFacing = candidate
	return candidate
}

func inKeepBand(f Facing, deg float64) bool {
	switch f {
	case FaceFront:
		return deg > -frontEdge-keepMargin && deg <= frontEdge+keepMargin
	case FaceLeft:
		return deg > frontEdge-keepMargin && deg <= backEdge+keepMargin
	case FaceRight:
		return deg >= -backEdge-keepMargin && deg < -frontEdge+keepMargin
	case FaceBack:
		return deg <= -backEdge+keepMargin || deg > backEdge-keepMargin
	}
	return false
}

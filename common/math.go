package common

// BaseWidth and BaseHeight are the internal framebuffer dimensions.
// The window scales this surface up without changing the ray count.
const (
	BaseWidth  = 640
	BaseHeight = 400
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

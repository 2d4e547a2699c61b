package colour

import "math"

const (
	// chromaCeiling bounds the gamut bisection; no in-gamut sRGB colour
	// exceeds OKLCH chroma 0.4.
	chromaCeiling = 0.4

	// gamutIterations gives the bisection roughly 4e-7 precision over the
	// [0, 0.4] chroma interval.
	gamutIterations = 20

	// channelTolerance absorbs floating-point noise at the cube faces.
	channelTolerance = 1e-4
)

// InGamut reports whether the OKLCH triple maps inside the sRGB cube.
func InGamut(l, c, h float64) bool {
	a, b := lchToLab(c, h)
	r, g, bl := oklabToLinear(l, a, b)
	return inRange(r) && inRange(g) && inRange(bl)
}

func inRange(v float64) bool {
	return v >= -channelTolerance && v <= 1+channelTolerance
}

// MaxChroma returns the largest chroma that keeps the given lightness and
// hue inside the sRGB gamut, found by bisection. It is 0 exactly at l=0 and
// l=1, where only pure black and white exist.
func MaxChroma(l, h float64) float64 {
	if l <= 0 || l >= 1 {
		return 0
	}

	lo, hi := 0.0, chromaCeiling
	for i := 0; i < gamutIterations; i++ {
		mid := (lo + hi) / 2
		if InGamut(l, mid, h) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// ClampChroma limits a desired chroma to what the gamut allows at the given
// lightness and hue. Negative input clamps to 0.
func ClampChroma(desired, l, h float64) float64 {
	if desired <= 0 {
		return 0
	}
	return math.Min(desired, MaxChroma(l, h))
}

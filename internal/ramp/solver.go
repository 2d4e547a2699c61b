package ramp

import (
	"math"

	"github.com/ramptone/ramptone/internal/colour"
)

const (
	// solverIterations bounds the binary search; 20 halvings of [0,1]
	// resolve lightness to about 1e-6.
	solverIterations = 20

	// solverEarlyExit stops the search once the measured ratio is within
	// 0.01 of the target.
	solverEarlyExit = 0.01
)

// SolveLightness finds the OKLCH lightness at which a colour with the given
// hue and chroma reaches the target WCAG contrast ratio against the
// background. The search direction is fixed once per call from the
// background's lightness: dark backgrounds search toward higher lightness,
// light backgrounds toward lower, which avoids oscillation where the
// contrast curve is non-monotonic near the extremes. The best candidate
// seen across all iterations is returned, so an unreachable target yields
// the closest achievable answer rather than an error.
func SolveLightness(hue, chroma float64, background colour.LCH, target float64) float64 {
	target = clampContrast(target)
	searchUp := background.L <= 0.5

	lo, hi := 0.0, 1.0
	bestL := 0.5
	bestErr := math.Inf(1)

	for i := 0; i < solverIterations; i++ {
		mid := (lo + hi) / 2
		candidate := colour.LCH{
			L:     mid,
			C:     colour.ClampChroma(chroma, mid, hue),
			H:     hue,
			Alpha: 1,
		}

		ratio := colour.Contrast(candidate, background)
		if err := math.Abs(ratio - target); err < bestErr {
			bestErr = err
			bestL = mid
		}
		if bestErr < solverEarlyExit {
			break
		}

		if searchUp {
			// Against a dark background, contrast grows with lightness.
			if ratio < target {
				lo = mid
			} else {
				hi = mid
			}
		} else {
			// Against a light background, contrast grows as lightness falls.
			if ratio < target {
				hi = mid
			} else {
				lo = mid
			}
		}
	}

	return bestL
}

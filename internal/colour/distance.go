package colour

import "math"

// DeltaE returns the perceptual difference between two colours as the
// Euclidean distance in OKLab, scaled by 100 so values read like classic
// CIE delta-E figures (2 or less is hard to tell apart).
func DeltaE(x, y LCH) float64 {
	xa, xb := lchToLab(x.C, x.H)
	ya, yb := lchToLab(y.C, y.H)

	dl := x.L - y.L
	da := xa - ya
	db := xb - yb

	return 100 * math.Sqrt(dl*dl+da*da+db*db)
}

package ramp

import (
	"sort"

	"gonum.org/v1/gonum/interp"
)

// HueShiftPreset names a fixed pair of light/dark hue-shift degrees.
type HueShiftPreset string

const (
	HueShiftNone     HueShiftPreset = "none"
	HueShiftSubtle   HueShiftPreset = "subtle"
	HueShiftNatural  HueShiftPreset = "natural"
	HueShiftDramatic HueShiftPreset = "dramatic"
	HueShiftCustom   HueShiftPreset = "custom"
)

// hueShiftPresets maps a preset tag to its (light, dark) shift degrees.
// Presets are plain data; only the custom variant reads the struct fields.
var hueShiftPresets = map[HueShiftPreset][2]float64{
	HueShiftNone:     {0, 0},
	HueShiftSubtle:   {8, 8},
	HueShiftNatural:  {15, 15},
	HueShiftDramatic: {30, 30},
}

// HueShift rotates stop hues as a function of target lightness. The effect
// is zero at lightness 0.5 and grows linearly toward both ends of the ramp.
type HueShift struct {
	Preset   HueShiftPreset
	LightDeg float64
	DarkDeg  float64

	// Invert flips the rotation direction at both ends.
	Invert bool
}

// degrees resolves the preset table, falling back to the explicit fields
// for the custom variant (and for unknown tags).
func (h HueShift) degrees() (light, dark float64) {
	if d, ok := hueShiftPresets[h.Preset]; ok {
		return d[0], d[1]
	}
	return h.LightDeg, h.DarkDeg
}

// Offset returns the hue rotation in degrees for a stop at the given
// target lightness: -normalizedL * shift/2, where normalizedL spans [-1,1]
// across the lightness range. Light stops use the light shift, dark stops
// the dark shift.
func (h HueShift) Offset(targetL float64) float64 {
	light, dark := h.degrees()
	n := (clamp01(targetL) - 0.5) * 2

	shift := dark
	if n > 0 {
		shift = light
	}

	offset := -n * (shift / 2)
	if h.Invert {
		offset = -offset
	}
	return offset
}

// ChromaCurvePreset names a fixed (light, mid, dark) chroma-percent triple.
type ChromaCurvePreset string

const (
	ChromaCurveFlat       ChromaCurvePreset = "flat"
	ChromaCurveBell       ChromaCurvePreset = "bell"
	ChromaCurvePastel     ChromaCurvePreset = "pastel"
	ChromaCurveJewel      ChromaCurvePreset = "jewel"
	ChromaCurveLinearFade ChromaCurvePreset = "linear-fade"
	ChromaCurveCustom     ChromaCurvePreset = "custom"
)

// chromaCurvePresets maps a preset tag to (light%, mid%, dark%) chroma
// multipliers in [0,100].
var chromaCurvePresets = map[ChromaCurvePreset][3]float64{
	ChromaCurveFlat:       {100, 100, 100},
	ChromaCurveBell:       {70, 100, 70},
	ChromaCurvePastel:     {85, 65, 45},
	ChromaCurveJewel:      {60, 100, 95},
	ChromaCurveLinearFade: {100, 75, 50},
}

// Anchor lightness values the light/mid/dark percentages attach to.
const (
	anchorLight = 0.85
	anchorMid   = 0.55
	anchorDark  = 0.25
)

// CurvePoint is one control point of a fully custom chroma curve:
// at lightness L, scale chroma to Percent of its incoming value.
type CurvePoint struct {
	L       float64
	Percent float64
}

// ChromaCurve scales stop chroma as a function of target lightness. A
// preset (or the explicit light/mid/dark percents) anchors the curve at
// lightness 0.85/0.55/0.25; Points, when present, replace the anchors with
// a piecewise-linear fit over arbitrary control points. The curve only
// ever reduces chroma.
type ChromaCurve struct {
	Preset   ChromaCurvePreset
	LightPct float64
	MidPct   float64
	DarkPct  float64
	Points   []CurvePoint
}

func (c ChromaCurve) percents() (light, mid, dark float64) {
	if p, ok := chromaCurvePresets[c.Preset]; ok {
		return p[0], p[1], p[2]
	}
	return c.LightPct, c.MidPct, c.DarkPct
}

// Factor returns the chroma multiplier in [0,1] for a stop at the given
// target lightness.
func (c ChromaCurve) Factor(targetL float64) float64 {
	l := clamp01(targetL)

	if pct, ok := c.pointsFactor(l); ok {
		return clampFactor(pct / 100)
	}

	light, mid, dark := c.percents()
	var pct float64
	switch {
	case l >= anchorLight:
		pct = light
	case l <= anchorDark:
		pct = dark
	case l >= anchorMid:
		t := (l - anchorMid) / (anchorLight - anchorMid)
		pct = mid + t*(light-mid)
	default:
		t := (l - anchorDark) / (anchorMid - anchorDark)
		pct = dark + t*(mid-dark)
	}
	return clampFactor(pct / 100)
}

// pointsFactor evaluates the custom control points with a piecewise-linear
// interpolant. Returns false when there are too few usable points, in which
// case the anchor curve applies.
func (c ChromaCurve) pointsFactor(l float64) (float64, bool) {
	if len(c.Points) < 2 {
		return 0, false
	}

	pts := make([]CurvePoint, len(c.Points))
	copy(pts, c.Points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].L < pts[j].L })

	xs := make([]float64, 0, len(pts))
	ys := make([]float64, 0, len(pts))
	for _, p := range pts {
		// Fit requires strictly increasing abscissae.
		if len(xs) > 0 && p.L <= xs[len(xs)-1] {
			continue
		}
		xs = append(xs, clamp01(p.L))
		ys = append(ys, p.Percent)
	}
	if len(xs) < 2 {
		return 0, false
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return 0, false
	}

	// Clamp into the fitted range; the interpolant is undefined outside it.
	if l < xs[0] {
		l = xs[0]
	}
	if l > xs[len(xs)-1] {
		l = xs[len(xs)-1]
	}
	return pl.Predict(l), true
}

// clampFactor keeps the multiplier in [0,1]: the curve never increases
// chroma and never produces a negative one.
func clampFactor(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

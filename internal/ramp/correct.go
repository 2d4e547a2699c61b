package ramp

import (
	"math"

	"github.com/ramptone/ramptone/internal/colour"
)

// brightnessCompensation models the Helmholtz-Kohlrausch effect: saturated
// colours read brighter than their measured luminance, most strongly in the
// blue region. The magnitude peaks at hue 270 and vanishes at hue 90, and
// scales with chroma up to 0.2.
func brightnessCompensation(c colour.LCH) float64 {
	sat := math.Min(c.C/0.2, 1)
	hueWeight := 0.5 + 0.5*math.Cos((c.H-270)*math.Pi/180)
	return 0.05 * sat * hueWeight
}

// applyBrightnessCompensation counteracts the perceived-brightness boost:
// on light backgrounds the colour is darkened, on dark backgrounds
// lightened.
func applyBrightnessCompensation(c colour.LCH, darkBackground bool) colour.LCH {
	comp := brightnessCompensation(c)
	if darkBackground {
		c.L = clamp01(c.L + comp)
	} else {
		c.L = clamp01(c.L - comp)
	}
	return c
}

// Hue attractors for the drift compensation. High-lightness colours drift
// toward yellow-green/blue-violet, low-lightness ones toward red/green.
var (
	lightAttractors = [2]float64{90, 270}
	darkAttractors  = [2]float64{0, 140}
)

// hueDriftDeadZone is the band around mid-lightness where no drift
// compensation applies.
const hueDriftDeadZone = 0.1

// applyHueDrift counteracts the Bezold-Bruecke shift by rotating the hue
// away from the nearest attractor, by 5*(2|deviation|)^1.5 degrees.
func applyHueDrift(c colour.LCH) colour.LCH {
	dev := c.L - 0.5
	if math.Abs(dev) < hueDriftDeadZone {
		return c
	}

	attractors := darkAttractors
	if dev > 0 {
		attractors = lightAttractors
	}

	attractor := attractors[0]
	if colour.HueDistance(c.H, attractors[1]) < colour.HueDistance(c.H, attractors[0]) {
		attractor = attractors[1]
	}

	amount := 5 * math.Pow(2*math.Abs(dev), 1.5)

	// Rotate away from the attractor. A colour sitting exactly on the
	// attractor pushes clockwise.
	dir := 1.0
	if colour.SignedHueDelta(c.H, attractor) < 0 {
		dir = -1
	}

	c.H = colour.NormalizeHue(c.H + dir*amount)
	return c
}

// applyCorrections runs the enabled perceptual corrections in their fixed
// order: hue drift first, then brightness compensation.
func (cfg Config) applyCorrections(c colour.LCH, bg colour.LCH) colour.LCH {
	if cfg.HueDriftCorrection {
		c = applyHueDrift(c)
	}
	if cfg.HueCorrection {
		c = applyBrightnessCompensation(c, bg.L <= 0.5)
	}
	return c
}

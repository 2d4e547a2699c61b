package ramp

import (
	"github.com/ramptone/ramptone/internal/colour"
)

// Chroma shoulder bounds: stops lighter or darker than these keep a
// progressively smaller share of the base chroma, so near-white and
// near-black stops don't retain implausible saturation.
const (
	shoulderLight = 0.90
	shoulderDark  = 0.15
	shoulderFloor = 0.30
)

// chromaShoulder returns the chroma retention factor for a target
// lightness: 1 inside the shoulders, easing linearly down to the floor at
// the extremes.
func chromaShoulder(l float64) float64 {
	switch {
	case l > shoulderLight:
		t := (l - shoulderLight) / (1 - shoulderLight)
		return 1 - t*(1-shoulderFloor)
	case l < shoulderDark:
		t := (shoulderDark - l) / shoulderDark
		return 1 - t*(1-shoulderFloor)
	default:
		return 1
	}
}

// generated carries a stop's colour plus the bookkeeping the orchestrator
// reports for diagnostics.
type generated struct {
	number    int
	col       colour.LCH
	originalL float64
	expandedL float64
	manual    bool
}

// resolveLightness runs the emphasis method for one stop: explicit
// override, then the per-ramp table, then the built-in fallback curve. The
// contrast method converts its resolved ratio into a lightness with the
// solver.
func (cfg Config) resolveLightness(stop Stop, base colour.LCH, bg colour.LCH) float64 {
	if cfg.method() == MethodContrast {
		var target float64
		if stop.ContrastOverride != nil {
			target = *stop.ContrastOverride
		} else {
			target = tableLookup(cfg.contrastTable(), stop.Number)
		}
		return SolveLightness(base.H, base.C, bg, clampContrast(target))
	}

	if stop.LightnessOverride != nil {
		return clamp01(*stop.LightnessOverride)
	}
	return clamp01(tableLookup(cfg.lightnessTable(), stop.Number))
}

// generateOne runs the single-stop pipeline: resolve target lightness,
// resolve target chroma with the gamut-safety shoulder, apply the artistic
// curves, apply the perceptual corrections, and clamp into gamut. Manual
// overrides skip everything except (optionally) the correction pass.
func (cfg Config) generateOne(stop Stop, base colour.LCH, bg colour.LCH) generated {
	if stop.ManualOverride != nil {
		c := *stop.ManualOverride
		c.L = clamp01(c.L)
		c.H = colour.NormalizeHue(c.H)
		if c.Alpha == 0 {
			c.Alpha = 1
		}
		originalL := c.L
		if cfg.CorrectOverrides {
			c = cfg.applyCorrections(c, bg)
		}
		c.C = colour.ClampChroma(c.C, c.L, c.H)
		return generated{
			number:    stop.Number,
			col:       c,
			originalL: originalL,
			expandedL: c.L,
			manual:    true,
		}
	}

	targetL := cfg.resolveLightness(stop, base, bg)
	originalL := targetL

	chroma := base.C * chromaShoulder(targetL)
	hue := base.H

	if cfg.HueShift != nil {
		hue = colour.NormalizeHue(hue + cfg.HueShift.Offset(targetL))
	}
	if cfg.ChromaCurve != nil {
		chroma *= cfg.ChromaCurve.Factor(targetL)
	}

	c := colour.LCH{
		L:     targetL,
		C:     colour.ClampChroma(chroma, targetL, hue),
		H:     hue,
		Alpha: 1,
	}

	c = cfg.applyCorrections(c, bg)

	// The corrections may have moved lightness; re-clamp chroma where the
	// colour actually ended up.
	c.C = colour.ClampChroma(c.C, c.L, c.H)

	return generated{
		number:    stop.Number,
		col:       c,
		originalL: originalL,
		expandedL: c.L,
	}
}

// GenerateStop is the single-stop entry point used for previews and
// pickers. It returns the stop's final colour as an uppercase hex string.
// PreserveIdentity has no effect here; pinning needs the whole ramp and is
// handled by Generate.
func GenerateStop(cfg Config, stop Stop) string {
	base := colour.ParseHex(cfg.BaseColor)
	bg := cfg.background()
	return cfg.generateOne(stop, base, bg).col.Hex()
}

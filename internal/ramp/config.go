// Package ramp generates multi-stop colour ramps from a base colour plus
// per-ramp configuration, for use as design tokens. Generation is a pure
// function of its inputs: identical configuration always yields identical
// output, with no randomness or hidden state.
package ramp

import (
	"sort"

	"github.com/ramptone/ramptone/internal/colour"
)

// Method selects how a stop's target lightness is resolved.
type Method string

const (
	// MethodLightness reads the target lightness from overrides or the
	// per-stop lightness table.
	MethodLightness Method = "lightness"

	// MethodContrast solves for the lightness that reaches a target WCAG
	// contrast ratio against the configured background.
	MethodContrast Method = "contrast"
)

// Config describes how a single colour's ramp is generated.
type Config struct {
	// BaseColor is the hex sRGB seed for the whole ramp.
	BaseColor string

	// Method picks lightness- or contrast-driven emphasis. Defaults to
	// MethodLightness when empty.
	Method Method

	// Background is the hex colour the contrast method and the perceptual
	// corrections work against. Defaults to white when empty.
	Background string

	// LightnessTable maps stop number to target lightness in [0,1]. Stops
	// missing from the table interpolate over the built-in default curve.
	LightnessTable map[int]float64

	// ContrastTable maps stop number to target WCAG contrast ratio in
	// [1,21]. Same fallback behaviour as LightnessTable.
	ContrastTable map[int]float64

	// PreserveIdentity pins the stop whose resolved target lightness is
	// closest to the base colour's own lightness to the exact base colour.
	PreserveIdentity bool

	// HueCorrection enables the saturated-brightness compensation
	// (Helmholtz-Kohlrausch).
	HueCorrection bool

	// HueDriftCorrection enables the hue-drift compensation across
	// lightness (Bezold-Bruecke).
	HueDriftCorrection bool

	// CorrectOverrides opts manually-overridden stops into the correction
	// pass; otherwise overrides bypass generation entirely.
	CorrectOverrides bool

	// HueShift, when set, applies an artistic hue offset across the ramp.
	HueShift *HueShift

	// ChromaCurve, when set, scales chroma across the ramp.
	ChromaCurve *ChromaCurve
}

// Stop identifies one entry of a ramp. Number is the sort key (50, 100,
// ... 950 by convention), not a lightness.
type Stop struct {
	Number            int
	LightnessOverride *float64
	ContrastOverride  *float64
	ManualOverride    *colour.LCH
}

// DefaultLightnessTable is the built-in stop-number to target-lightness
// curve used when a ramp supplies no table of its own.
var DefaultLightnessTable = map[int]float64{
	50:  0.97,
	100: 0.93,
	200: 0.86,
	300: 0.78,
	400: 0.68,
	500: 0.57,
	600: 0.48,
	700: 0.39,
	800: 0.30,
	900: 0.22,
	950: 0.16,
}

// DefaultContrastTable is the built-in stop-number to contrast-ratio curve
// for the contrast method, tuned so stop 500 hits the WCAG AA 4.5:1 mark
// against a white background.
var DefaultContrastTable = map[int]float64{
	50:  1.07,
	100: 1.18,
	200: 1.45,
	300: 1.95,
	400: 2.80,
	500: 4.50,
	600: 6.40,
	700: 8.60,
	800: 11.40,
	900: 14.70,
	950: 17.20,
}

// DefaultStops returns the conventional stop set in ascending order.
func DefaultStops() []Stop {
	numbers := make([]int, 0, len(DefaultLightnessTable))
	for n := range DefaultLightnessTable {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	stops := make([]Stop, len(numbers))
	for i, n := range numbers {
		stops[i] = Stop{Number: n}
	}
	return stops
}

// tableLookup resolves a stop number against a table, interpolating
// linearly between the nearest entries and clamping beyond the ends. The
// table must be non-empty.
func tableLookup(table map[int]float64, number int) float64 {
	if v, ok := table[number]; ok {
		return v
	}

	keys := make([]int, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	if number <= keys[0] {
		return table[keys[0]]
	}
	if number >= keys[len(keys)-1] {
		return table[keys[len(keys)-1]]
	}

	// Find the bracketing entries.
	hi := sort.SearchInts(keys, number)
	lo := hi - 1
	x0, x1 := float64(keys[lo]), float64(keys[hi])
	y0, y1 := table[keys[lo]], table[keys[hi]]
	t := (float64(number) - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampContrast(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 21 {
		return 21
	}
	return v
}

func (c Config) method() Method {
	if c.Method == MethodContrast {
		return MethodContrast
	}
	return MethodLightness
}

func (c Config) background() colour.LCH {
	if c.Background == "" {
		return colour.ParseHex("#FFFFFF")
	}
	return colour.ParseHex(c.Background)
}

func (c Config) lightnessTable() map[int]float64 {
	if len(c.LightnessTable) > 0 {
		return c.LightnessTable
	}
	return DefaultLightnessTable
}

func (c Config) contrastTable() map[int]float64 {
	if len(c.ContrastTable) > 0 {
		return c.ContrastTable
	}
	return DefaultContrastTable
}

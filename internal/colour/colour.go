// Package colour implements the perceptual colour maths behind ramp
// generation: OKLCH conversion, WCAG luminance and contrast, sRGB gamut
// solving, and perceptual distance.
package colour

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// LCH is a colour in the OKLCH cylindrical space: lightness L in [0,1],
// chroma C >= 0 (in-gamut sRGB tops out around 0.4), and hue H in degrees
// [0,360). Alpha is opacity in [0,1]. Values are immutable; every transform
// returns a new LCH.
type LCH struct {
	L     float64 `json:"l"`
	C     float64 `json:"c"`
	H     float64 `json:"h"`
	Alpha float64 `json:"alpha,omitempty"`
}

// Fallback is the neutral colour returned when parsing malformed input.
// Callers that need to detect the fallback can re-serialise and compare.
var Fallback = LCH{L: 0.5, C: 0.1, H: 0, Alpha: 1}

// ParseHex parses a case-insensitive "#RRGGBB" (or "#RGB") string into an
// LCH colour. Malformed input yields Fallback rather than an error, which
// keeps the generation pipeline total.
func ParseHex(s string) LCH {
	c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return Fallback
	}
	return FromRGB(c)
}

// FromRGB converts an sRGB colour to OKLCH.
func FromRGB(c colorful.Color) LCH {
	r, g, b := c.LinearRgb()
	l, a, bb := linearToOKLab(r, g, b)
	return labToLCH(l, a, bb)
}

// RGB converts the colour to sRGB, clamping lightness and chroma so the
// result always lies inside the sRGB cube.
func (c LCH) RGB() colorful.Color {
	l := clamp01(c.L)
	ch := ClampChroma(c.C, l, c.H)
	a, b := lchToLab(ch, c.H)
	lr, lg, lb := oklabToLinear(l, a, b)
	return colorful.LinearRgb(lr, lg, lb).Clamped()
}

// Hex serialises the colour to an uppercase "#RRGGBB" string, gamut-safe.
func (c LCH) Hex() string {
	rgb := c.RGB()
	return fmt.Sprintf("#%02X%02X%02X",
		uint8(math.Round(rgb.R*255)),
		uint8(math.Round(rgb.G*255)),
		uint8(math.Round(rgb.B*255)))
}

// NormalizeHue wraps a hue angle into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HueDistance returns the angular distance between two hues, in [0,180].
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormalizeHue(h1) - NormalizeHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// SignedHueDelta returns the shortest signed rotation from hue a to hue h,
// in (-180, 180].
func SignedHueDelta(h, a float64) float64 {
	d := math.Mod(h-a+540, 360) - 180
	return d
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

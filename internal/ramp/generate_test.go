package ramp

import (
	"math"
	"testing"

	"github.com/ramptone/ramptone/internal/colour"
)

func TestGenerateStopMidRed(t *testing.T) {
	cfg := Config{BaseColor: "#FF0000", Method: MethodLightness}

	hex := GenerateStop(cfg, Stop{Number: 500})
	got := colour.ParseHex(hex)

	if math.Abs(got.L-0.57) > 0.02 {
		t.Errorf("stop 500 lightness = %v, want ~0.57", got.L)
	}
	if got.C < 0.15 {
		t.Errorf("stop 500 chroma = %v, want a saturated red", got.C)
	}
	if colour.HueDistance(got.H, 29) > 4 {
		t.Errorf("stop 500 hue = %v, want near the base red", got.H)
	}
}

func TestGenerateStopExtremesKeepReducedChroma(t *testing.T) {
	cfg := Config{BaseColor: "#FF0000", Method: MethodLightness}

	mid := colour.ParseHex(GenerateStop(cfg, Stop{Number: 500}))
	light := colour.ParseHex(GenerateStop(cfg, Stop{Number: 50}))
	dark := colour.ParseHex(GenerateStop(cfg, Stop{Number: 900}))

	if light.C >= mid.C {
		t.Errorf("stop 50 chroma %v not reduced below mid %v", light.C, mid.C)
	}
	if dark.C >= mid.C {
		t.Errorf("stop 900 chroma %v not reduced below mid %v", dark.C, mid.C)
	}
	for _, c := range []colour.LCH{light, dark} {
		if !colour.InGamut(c.L, c.C, c.H) {
			t.Errorf("generated extreme stop out of gamut: %+v", c)
		}
	}
}

func TestGenerateStopContrastMethod(t *testing.T) {
	target := 4.5
	cfg := Config{
		BaseColor:  "#0000FF",
		Method:     MethodContrast,
		Background: "#FFFFFF",
	}

	hex := GenerateStop(cfg, Stop{Number: 500, ContrastOverride: &target})
	measured := colour.ContrastHex(hex, "#FFFFFF")
	if measured < 4.4 || measured > 4.6 {
		t.Errorf("measured contrast = %.3f, want within 0.1 of 4.5 after quantisation", measured)
	}
}

func TestGenerateStopLightnessOverride(t *testing.T) {
	cfg := Config{BaseColor: "#3366FF", Method: MethodLightness}

	l := 0.42
	hex := GenerateStop(cfg, Stop{Number: 500, LightnessOverride: &l})
	got := colour.ParseHex(hex)
	if math.Abs(got.L-l) > 0.01 {
		t.Errorf("override lightness = %v, want %v", got.L, l)
	}

	// Out-of-range overrides clamp rather than fail.
	bad := 1.7
	hex = GenerateStop(cfg, Stop{Number: 500, LightnessOverride: &bad})
	if got := colour.ParseHex(hex); got.L < 0.95 {
		t.Errorf("clamped override produced lightness %v, want near 1", got.L)
	}
}

func TestGenerateStopManualOverride(t *testing.T) {
	manual := colour.LCH{L: 0.3, C: 0.1, H: 200, Alpha: 1}
	cfg := Config{
		BaseColor: "#FF0000",
		Method:    MethodLightness,
		// Curves configured but must be bypassed by the override.
		HueShift:    &HueShift{Preset: HueShiftDramatic},
		ChromaCurve: &ChromaCurve{Preset: ChromaCurvePastel},
	}

	hex := GenerateStop(cfg, Stop{Number: 500, ManualOverride: &manual})
	got := colour.ParseHex(hex)

	if math.Abs(got.L-manual.L) > 0.01 || colour.HueDistance(got.H, manual.H) > 2 {
		t.Errorf("manual override not honoured: got %+v, want %+v", got, manual)
	}
}

func TestGenerateStopManualOverrideWithCorrections(t *testing.T) {
	manual := colour.LCH{L: 0.9, C: 0.3, H: 275, Alpha: 1}
	base := Config{
		BaseColor:          "#FF0000",
		Background:         "#FFFFFF",
		HueCorrection:      true,
		HueDriftCorrection: true,
	}

	withoutOptIn := base
	plain := GenerateStop(withoutOptIn, Stop{Number: 100, ManualOverride: &manual})

	withOptIn := base
	withOptIn.CorrectOverrides = true
	corrected := GenerateStop(withOptIn, Stop{Number: 100, ManualOverride: &manual})

	if plain == corrected {
		t.Error("CorrectOverrides should pass the override through the correction pass")
	}
	if got := colour.ParseHex(corrected); got.L >= colour.ParseHex(plain).L {
		t.Errorf("brightness compensation on a light background should darken: %v vs %v", got.L, colour.ParseHex(plain).L)
	}
}

func TestGenerateStopMalformedBase(t *testing.T) {
	cfg := Config{BaseColor: "definitely not a colour", Method: MethodLightness}

	// The pipeline is total: the fallback neutral flows through instead of
	// an error.
	hex := GenerateStop(cfg, Stop{Number: 500})
	got := colour.ParseHex(hex)
	if colour.HueDistance(got.H, colour.Fallback.H) > 2 && got.C > 0.02 {
		t.Errorf("fallback base not used: %+v", got)
	}
}

func TestHueShiftNaturalOnYellow(t *testing.T) {
	// Inverted natural shift on a yellow base: light stops move toward
	// cyan, dark stops toward warm, the mid stop stays put.
	cfg := Config{
		BaseColor: "#FFD700",
		Method:    MethodLightness,
		HueShift:  &HueShift{Preset: HueShiftNatural, Invert: true},
	}
	base := colour.ParseHex(cfg.BaseColor)
	bg := cfg.background()

	lightL := 0.95
	darkL := 0.15
	midL := 0.5

	light := cfg.generateOne(Stop{Number: 50, LightnessOverride: &lightL}, base, bg).col
	dark := cfg.generateOne(Stop{Number: 900, LightnessOverride: &darkL}, base, bg).col
	mid := cfg.generateOne(Stop{Number: 500, LightnessOverride: &midL}, base, bg).col

	if colour.SignedHueDelta(light.H, base.H) <= 0 {
		t.Errorf("light stop hue %v did not move toward cyan from %v", light.H, base.H)
	}
	if colour.SignedHueDelta(dark.H, base.H) >= 0 {
		t.Errorf("dark stop hue %v did not move toward warm from %v", dark.H, base.H)
	}
	if colour.HueDistance(mid.H, base.H) > 1e-9 {
		t.Errorf("mid stop hue %v shifted; want unchanged from %v", mid.H, base.H)
	}
}

func TestChromaShoulder(t *testing.T) {
	tests := []struct {
		l    float64
		want float64
	}{
		{l: 0.5, want: 1},
		{l: 0.9, want: 1},
		{l: 0.15, want: 1},
		{l: 1.0, want: shoulderFloor},
		{l: 0.0, want: shoulderFloor},
		{l: 0.95, want: 0.65},
		{l: 0.075, want: 0.65},
	}

	for _, tt := range tests {
		if got := chromaShoulder(tt.l); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("chromaShoulder(%v) = %v, want %v", tt.l, got, tt.want)
		}
	}
}

func TestTableLookup(t *testing.T) {
	table := map[int]float64{100: 0.9, 500: 0.5, 900: 0.2}

	tests := []struct {
		number int
		want   float64
	}{
		{number: 100, want: 0.9},
		{number: 500, want: 0.5},
		{number: 300, want: 0.7},   // halfway between 100 and 500
		{number: 700, want: 0.35},  // halfway between 500 and 900
		{number: 50, want: 0.9},    // clamped below
		{number: 1000, want: 0.2},  // clamped above
	}

	for _, tt := range tests {
		if got := tableLookup(table, tt.number); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("tableLookup(%d) = %v, want %v", tt.number, got, tt.want)
		}
	}
}

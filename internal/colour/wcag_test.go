package colour

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    colorful.Color
		want float64
		tol  float64
	}{
		{name: "white", c: colorful.Color{R: 1, G: 1, B: 1}, want: 1.0, tol: 1e-9},
		{name: "black", c: colorful.Color{R: 0, G: 0, B: 0}, want: 0.0, tol: 1e-9},
		{name: "red", c: colorful.Color{R: 1, G: 0, B: 0}, want: 0.2126, tol: 1e-4},
		{name: "green", c: colorful.Color{R: 0, G: 1, B: 0}, want: 0.7152, tol: 1e-4},
		{name: "blue", c: colorful.Color{R: 0, G: 0, B: 1}, want: 0.0722, tol: 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.c); math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Luminance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{R: 0, G: 0, B: 0}

	if got := ContrastRatio(white, black); math.Abs(got-21) > 1e-9 {
		t.Errorf("white/black contrast = %v, want 21", got)
	}
	if got := ContrastRatio(white, white); math.Abs(got-1) > 1e-9 {
		t.Errorf("white/white contrast = %v, want 1", got)
	}
	// Argument order must not matter.
	grey := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	if a, b := ContrastRatio(white, grey), ContrastRatio(grey, white); math.Abs(a-b) > 1e-12 {
		t.Errorf("contrast not symmetric: %v vs %v", a, b)
	}
}

func TestContrastHex(t *testing.T) {
	if got := ContrastHex("#FFFFFF", "#000000"); math.Abs(got-21) > 1e-9 {
		t.Errorf("ContrastHex(white, black) = %v, want 21", got)
	}
	// Malformed input falls back to the neutral colour, never errors.
	got := ContrastHex("not-a-colour", "#FFFFFF")
	want := Contrast(Fallback, ParseHex("#FFFFFF"))
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ContrastHex with fallback = %v, want %v", got, want)
	}
}

package colour

import (
	"math"
	"testing"
)

func TestMaxChromaZeroAtExtremes(t *testing.T) {
	for _, h := range []float64{0, 30, 90, 180, 264, 330} {
		if got := MaxChroma(0, h); got != 0 {
			t.Errorf("MaxChroma(0, %v) = %v, want 0", h, got)
		}
		if got := MaxChroma(1, h); got != 0 {
			t.Errorf("MaxChroma(1, %v) = %v, want 0", h, got)
		}
	}
}

func TestMaxChromaMidtones(t *testing.T) {
	tests := []struct {
		name string
		l    float64
		h    float64
	}{
		{name: "mid red", l: 0.6, h: 29},
		{name: "mid blue", l: 0.45, h: 264},
		{name: "mid green", l: 0.55, h: 142},
		{name: "light yellow", l: 0.9, h: 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MaxChroma(tt.l, tt.h)
			if c <= 0 || c > 0.4 {
				t.Fatalf("MaxChroma(%v, %v) = %v, want in (0, 0.4]", tt.l, tt.h, c)
			}
			// Just inside the boundary must be in gamut, just outside must not.
			if !InGamut(tt.l, c*0.999, tt.h) {
				t.Errorf("chroma just below MaxChroma is out of gamut")
			}
			if InGamut(tt.l, c+0.01, tt.h) {
				t.Errorf("chroma well above MaxChroma is still in gamut")
			}
		})
	}
}

func TestClampChroma(t *testing.T) {
	maxC := MaxChroma(0.6, 29)

	tests := []struct {
		name    string
		desired float64
		want    float64
	}{
		{name: "within gamut", desired: maxC / 2, want: maxC / 2},
		{name: "at boundary", desired: maxC, want: maxC},
		{name: "beyond boundary", desired: 0.5, want: maxC},
		{name: "negative", desired: -0.1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampChroma(tt.desired, 0.6, 29); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ClampChroma(%v) = %v, want %v", tt.desired, got, tt.want)
			}
		})
	}
}

func TestRGBAlwaysInsideCube(t *testing.T) {
	// Even wildly out-of-gamut requests must land inside the sRGB cube.
	for _, c := range []LCH{
		{L: 0.5, C: 0.9, H: 264, Alpha: 1},
		{L: 0.95, C: 0.4, H: 29, Alpha: 1},
		{L: 0.05, C: 0.4, H: 142, Alpha: 1},
		{L: 1.2, C: 0.2, H: 0, Alpha: 1},
		{L: -0.2, C: 0.2, H: 0, Alpha: 1},
	} {
		rgb := c.RGB()
		for i, v := range []float64{rgb.R, rgb.G, rgb.B} {
			if v < -1e-4 || v > 1+1e-4 {
				t.Errorf("channel %d of %+v out of cube: %v", i, c, v)
			}
		}
	}
}

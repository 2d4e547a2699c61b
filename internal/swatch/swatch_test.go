package swatch

import (
	"image/color"
	"testing"

	"github.com/ramptone/ramptone/internal/ramp"
)

func TestRenderDimensions(t *testing.T) {
	cfg := ramp.Config{BaseColor: "#FF0000", Method: ramp.MethodLightness}
	results := []ramp.Result{
		ramp.Generate("red", cfg, ramp.DefaultStops()),
	}

	img := Render(results)
	bounds := img.Bounds()

	wantW := margin*2 + len(results[0].Stops)*cellWidth
	wantH := margin*2 + len(results)*(cellHeight+labelHeight)
	if bounds.Dx() != wantW || bounds.Dy() != wantH {
		t.Errorf("bounds = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), wantW, wantH)
	}
}

func TestRenderFillsCells(t *testing.T) {
	cfg := ramp.Config{BaseColor: "#FF0000", Method: ramp.MethodLightness}
	result := ramp.Generate("red", cfg, ramp.DefaultStops())

	img := Render([]ramp.Result{result})

	// Sample the centre of the first cell; it must match the stop colour.
	want := toRGBA(result.Stops[0].Hex)
	x := margin + cellWidth/2
	y := margin + labelHeight + cellHeight/2
	got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	if got != want {
		t.Errorf("cell centre = %+v, want %+v", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	img := Render(nil)
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		t.Error("empty render should still produce a valid image")
	}
}

func TestLabelColourContrast(t *testing.T) {
	if got := labelColour("#000000"); got != color.White {
		t.Errorf("black swatch label = %v, want white", got)
	}
	if got := labelColour("#FFFFFF"); got != color.Black {
		t.Errorf("white swatch label = %v, want black", got)
	}
}

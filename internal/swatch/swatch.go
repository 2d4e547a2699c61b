// Package swatch renders generated ramps into a PNG swatch sheet for
// visual inspection outside the terminal.
package swatch

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ramptone/ramptone/internal/colour"
	"github.com/ramptone/ramptone/internal/ramp"
)

const (
	cellWidth   = 96
	cellHeight  = 64
	labelHeight = 18
	margin      = 12
)

// Render draws one row of cells per ramp, one cell per stop, with the
// colour ID above each row and the stop number inside each cell.
func Render(results []ramp.Result) *image.RGBA {
	maxStops := 0
	for _, r := range results {
		if len(r.Stops) > maxStops {
			maxStops = len(r.Stops)
		}
	}
	if maxStops == 0 || len(results) == 0 {
		return image.NewRGBA(image.Rect(0, 0, margin*2, margin*2))
	}

	width := margin*2 + maxStops*cellWidth
	height := margin*2 + len(results)*(cellHeight+labelHeight)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for ri, result := range results {
		rowY := margin + ri*(cellHeight+labelHeight)
		drawText(img, margin, rowY+12, result.ColorID, color.Black)

		for si, stop := range result.Stops {
			x := margin + si*cellWidth
			y := rowY + labelHeight
			fill := toRGBA(stop.Hex)
			cell := image.Rect(x, y, x+cellWidth, y+cellHeight)
			draw.Draw(img, cell, image.NewUniform(fill), image.Point{}, draw.Src)

			drawText(img, x+6, y+16, strconv.Itoa(stop.StopNumber), labelColour(stop.Hex))
		}
	}

	return img
}

// labelColour picks black or white for in-cell text, whichever contrasts
// better with the swatch.
func labelColour(hex string) color.Color {
	if colour.ContrastHex(hex, "#FFFFFF") >= colour.ContrastHex(hex, "#000000") {
		return color.White
	}
	return color.Black
}

func toRGBA(hex string) color.RGBA {
	rgb := colour.ParseHex(hex).RGB()
	return color.RGBA{
		R: uint8(math.Round(rgb.R * 255)),
		G: uint8(math.Round(rgb.G * 255)),
		B: uint8(math.Round(rgb.B * 255)),
		A: 255,
	}
}

func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

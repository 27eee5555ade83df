package texgrow

import (
	"image"
	"image/color"
	"math"
)

// quantizeChannel rounds to the nearest integer and clamps to [0,255].
func quantizeChannel(x float64) uint8 {
	v := math.Round(x)
	if v < 0 {
		return 0
	}
	if v > MaxChannel {
		return 255
	}
	return uint8(v)
}

// Quantize converts the float grid into an opaque 8-bit RGB image.
// Grid rows map to image X and grid columns to image Y.
func Quantize(g *Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.N, g.N))
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			col := g.At(r, c)
			img.SetRGBA(r, c, color.RGBA{
				R: quantizeChannel(col[ChR]),
				G: quantizeChannel(col[ChG]),
				B: quantizeChannel(col[ChB]),
				A: 0xFF,
			})
		}
	}
	return img
}

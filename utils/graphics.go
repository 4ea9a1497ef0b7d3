package utils

import (
	"image/color"
)

// ArraysToXY interleaves coordinates into the x1,y1,x2,y2... layout used by
// avs geometry
func ArraysToXY(r1, r2 []float32) (xy []float32) {
	xy = make([]float32, 2*len(r1))
	for i := range r1 {
		xy[2*i] = r1[i]
		xy[2*i+1] = r2[i]
	}
	return
}

// ColorRamp maps f in [0,1] onto blue, green, red, values outside are clamped
func ColorRamp(f float32) (c color.RGBA) {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	if f < 0.5 {
		g := 2 * f
		return color.RGBA{R: 0, G: uint8(255 * g), B: uint8(255 * (1 - g)), A: 255}
	}
	r := 2 * (f - 0.5)
	return color.RGBA{R: uint8(255 * r), G: uint8(255 * (1 - r)), B: 0, A: 255}
}

package render

import "image/color"

// Spring returns n opaque colors sampled evenly from the "spring" colormap,
// which runs from magenta (state 0) to yellow (highest state).
func Spring(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	if n == 1 {
		out[0] = color.RGBA{R: 255, G: 0, B: 255, A: 255}
		return out
	}
	for i := range out {
		g := uint8(255 * i / (n - 1))
		out[i] = color.RGBA{R: 255, G: g, B: 255 - g, A: 255}
	}
	return out
}

// Mono returns the black/white palette used for binary diagrams.
func Mono() []color.RGBA {
	return []color.RGBA{
		{A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
}

// Glyphs maps cell states to characters for text diagrams.
var Glyphs = []byte{' ', '#', '+'}

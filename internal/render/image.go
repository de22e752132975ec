package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"eca/internal/core"
)

// Image draws grid with one palette color per cell, each cell scaled to a
// scale x scale block.
func Image(grid *core.ByteGrid, palette []color.RGBA, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, grid.W*scale, grid.H*scale))
	line := make([]byte, 4*grid.W)
	for y := 0; y < grid.H; y++ {
		fillPaletteRGBA(line, grid.Row(y), palette)
		for sy := 0; sy < scale; sy++ {
			dst := img.Pix[(y*scale+sy)*img.Stride:]
			for x := 0; x < grid.W; x++ {
				px := line[4*x : 4*x+4]
				for sx := 0; sx < scale; sx++ {
					copy(dst[4*(x*scale+sx):], px)
				}
			}
		}
	}
	return img
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Text renders grid one line per row using Glyphs.
func Text(grid *core.ByteGrid) string {
	var b strings.Builder
	b.Grow((grid.W + 1) * grid.H)
	for y := 0; y < grid.H; y++ {
		b.WriteString(TextRow(grid.Row(y)))
		b.WriteByte('\n')
	}
	return b.String()
}

// TextRow renders a single row using Glyphs.
func TextRow(row []uint8) string {
	out := make([]byte, len(row))
	for i, v := range row {
		if int(v) < len(Glyphs) {
			out[i] = Glyphs[v]
			continue
		}
		out[i] = '?'
	}
	return string(out)
}

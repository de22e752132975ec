package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"eca/internal/core"
)

func TestSpringEndpoints(t *testing.T) {
	p := Spring(3)
	require.Len(t, p, 3)
	require.Equal(t, color.RGBA{R: 255, G: 0, B: 255, A: 255}, p[0])
	require.Equal(t, color.RGBA{R: 255, G: 127, B: 128, A: 255}, p[1])
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 0, A: 255}, p[2])
	require.Nil(t, Spring(0))
}

func TestFillPaletteClampsToLastColor(t *testing.T) {
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []uint8{0, 9}, Mono())
	require.Equal(t, []byte{0, 0, 0, 255, 255, 255, 255, 255}, buf)

	fillPaletteRGBA(buf, []uint8{1, 1}, nil)
	require.Equal(t, make([]byte, 8), buf)
}

func TestImageScalesCells(t *testing.T) {
	grid, err := core.FromRows([][]uint8{{0, 1}, {1, 0}})
	require.NoError(t, err)

	img := Image(grid, Mono(), 3)
	require.Equal(t, 6, img.Bounds().Dx())
	require.Equal(t, 6, img.Bounds().Dy())
	require.Equal(t, color.RGBA{A: 255}, img.RGBAAt(2, 2))
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(3, 2))
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(0, 5))

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestText(t *testing.T) {
	grid, err := core.FromRows([][]uint8{{0, 1, 2}, {2, 7, 0}})
	require.NoError(t, err)
	require.Equal(t, " #+\n+? \n", Text(grid))
}

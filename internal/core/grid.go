package core

import "fmt"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// FromRows copies equal-length rows into a grid. Row y of the input becomes
// row y of the grid, so a space-time history keeps time running downwards.
func FromRows(rows [][]uint8) (*ByteGrid, error) {
	if len(rows) == 0 {
		return NewByteGrid(0, 0), nil
	}
	w := len(rows[0])
	g := NewByteGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), w)
		}
		copy(g.Row(y), row)
	}
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Row returns the cells of row y, sharing the backing slice.
func (g *ByteGrid) Row(y int) []uint8 { return g.data[y*g.W : (y+1)*g.W] }

// At returns the cell at (x, y).
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Max returns the largest cell value, or 0 for an empty grid.
func (g *ByteGrid) Max() uint8 {
	var m uint8
	for _, v := range g.data {
		if v > m {
			m = v
		}
	}
	return m
}

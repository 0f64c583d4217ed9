package pixelgrid

import (
	"fmt"
	"image"
)

// New constructs a w×h grid with every sample set to black.
// Returns ErrBadShape if w or h is not positive.
// Complexity: O(w×h) time and memory.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadShape, w, h)
	}

	return &Grid{w: w, h: h, pix: make([]RGB, w*h)}, nil
}

// FromRows builds a grid from rows[y][x]. The input is deep-copied.
// Returns ErrBadShape on no rows or no columns, ErrNonRectangular if any row
// length differs from the first.
func FromRows(rows [][]RGB) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{w: w, h: h, pix: make([]RGB, w*h)}
	for y, row := range rows {
		copy(g.pix[y*w:(y+1)*w], row)
	}

	return g, nil
}

// FromImage copies img into a new grid. The image bounds are re-based so
// that img.Bounds().Min becomes (0,0).
// Returns ErrNilImage for a nil img and ErrBadShape for empty bounds.
// Complexity: O(W×H).
func FromImage(img image.Image) (*Grid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	g, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.pix[y*g.w+x] = rgbFrom(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// index maps (x,y) to its row-major offset, panicking when out of range.
func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfRange, x, y, g.w, g.h))
	}

	return y*g.w + x
}

// At returns the sample at column x, row y. Panics if (x,y) is out of range.
func (g *Grid) At(x, y int) RGB {
	return g.pix[g.index(x, y)]
}

// Set stores c at column x, row y. Panics if (x,y) is out of range.
func (g *Grid) Set(x, y int, c RGB) {
	g.pix[g.index(x, y)] = c
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []RGB {
	start := g.index(0, y)
	out := make([]RGB, g.w)
	copy(out, g.pix[start:start+g.w])

	return out
}

// Clone returns a deep copy of the grid.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	pix := make([]RGB, len(g.pix))
	copy(pix, g.pix)

	return &Grid{w: g.w, h: g.h, pix: pix}
}

// Equal reports whether g and other have the same shape and samples.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.pix {
		if other.pix[i] != c {
			return false
		}
	}

	return true
}

// Image returns a fresh, fully opaque *image.RGBA with the grid contents.
// The result shares no memory with g.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.w, g.h))
	for i, c := range g.pix {
		o := i * 4
		img.Pix[o+0] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = 0xff
	}

	return img
}

// String renders the grid as rows of (r,g,b) triples, for debugging.
func (g *Grid) String() string {
	var s string
	for y := 0; y < g.h; y++ {
		s += "["
		for x := 0; x < g.w; x++ {
			c := g.pix[y*g.w+x]
			s += fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
			if x < g.w-1 {
				s += " "
			}
		}
		s += "]\n"
	}

	return s
}

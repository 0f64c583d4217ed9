package energy

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seamcarve/pixelgrid"
)

// Field is a row-major table of per-pixel energies.
// w is the number of columns, h the number of rows, and data holds w*h
// values. A Field is immutable once returned.
type Field struct {
	w, h int       // dimensions, both ≥ 1
	data []float64 // flat backing storage, length == w*h
}

// Compute returns the energy of every pixel of g.
//
// Stage 1 (Prepare): apply options and allocate the table.
// Stage 2 (Execute): fill rows, either inline or split into contiguous
// chunks handed to an errgroup bounded by Options.Workers. Each goroutine
// writes a disjoint range of rows, so no locking is needed.
// Stage 3 (Finalize): wait for all chunks before returning.
//
// The result does not depend on the number of workers.
// Complexity: O(W·H) time and memory.
func Compute(g *pixelgrid.Grid, opts ...Option) *Field {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	w, h := g.Width(), g.Height()
	f := &Field{w: w, h: h, data: make([]float64, w*h)}

	workers := min(cfg.Workers, h)
	if workers <= 1 {
		f.fillRows(g, 0, h)

		return f
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	chunk := (h + workers - 1) / workers
	for start := 0; start < h; start += chunk {
		end := min(start+chunk, h)
		eg.Go(func() error {
			f.fillRows(g, start, end)

			return nil
		})
	}
	_ = eg.Wait() // fillRows never fails

	return f
}

// fillRows computes rows [start, end).
func (f *Field) fillRows(g *pixelgrid.Grid, start, end int) {
	for y := start; y < end; y++ {
		row := f.data[y*f.w : (y+1)*f.w]
		for x := range row {
			row[x] = pixel(g, x, y)
		}
	}
}

// FromValues builds a Field from rows[y][x], mainly for feeding hand-made
// energy tables to seam search. The input is deep-copied.
// Returns ErrBadShape for empty or ragged input and ErrBadValue for
// negative, NaN or infinite entries.
func FromValues(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	h, w := len(rows), len(rows[0])
	f := &Field{w: w, h: h, data: make([]float64, 0, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrBadShape
		}
		for x, v := range row {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrBadValue, v, x, y)
			}
		}
		f.data = append(f.data, row...)
	}

	return f, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.w }

// Height returns the number of rows.
func (f *Field) Height() int { return f.h }

// At returns the energy at (x,y). Panics if (x,y) is out of range; callers
// holding external coordinates should use the package-level At instead.
func (f *Field) At(x, y int) float64 {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d field", ErrOutOfBounds, x, y, f.w, f.h))
	}

	return f.data[y*f.w+x]
}

// Sum returns the total energy of the field.
func (f *Field) Sum() float64 {
	var s float64
	for _, v := range f.data {
		s += v
	}

	return s
}

// Max returns the largest energy in the field.
func (f *Field) Max() float64 {
	m := f.data[0]
	for _, v := range f.data[1:] {
		if v > m {
			m = v
		}
	}

	return m
}

// Transpose returns a new field with rows and columns swapped.
// The dual-gradient formula is symmetric in its two axes, so
// Compute(pixelgrid.Transpose(g)) equals Compute(g).Transpose().
func (f *Field) Transpose() *Field {
	out := &Field{w: f.h, h: f.w, data: make([]float64, len(f.data))}
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			out.data[x*out.w+y] = f.data[y*f.w+x]
		}
	}

	return out
}

// Image renders the field as grayscale, scaled so that Max() maps to 255.
// A field with no energy at all renders black.
func (f *Field) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.w, f.h))
	m := f.Max()
	if m == 0 {
		return img
	}
	for i, v := range f.data {
		img.Pix[i] = uint8(math.Round(v / m * 255))
	}

	return img
}

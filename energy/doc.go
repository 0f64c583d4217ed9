// Package energy computes the dual-gradient energy of every pixel in a
// pixelgrid.Grid.
//
// 🚀 What is dual-gradient energy?
//
//	For a pixel (x,y) let Δx² be the sum over the R, G and B channels of the
//	squared difference between its left and right neighbours, and Δy² the
//	same for the pixels above and below. The energy is sqrt(Δx² + Δy²).
//	High energy marks edges and texture; low energy marks flat regions that
//	can be removed with little visible damage.
//
// Borders wrap around: the left neighbour of column 0 is the last column of
// the same row, the pixel above row 0 is the last row of the same column,
// and likewise for the other two edges. Every pixel therefore has exactly two
// neighbours per axis, with no clamping or padding. This differs from the
// more common "duplicate the border" convention and is observable in border
// energies.
//
// ⚙️ Usage:
//
//	e, err := energy.At(g, x, y)        // single pixel, validated
//	f := energy.Compute(g)              // whole field, sequential
//	f = energy.Compute(g, energy.WithWorkers(4))
//
// Performance:
//
//   - At:      O(1)
//   - Compute: O(W·H) time and memory; rows may be spread across workers.
package energy

package seam

import (
	"github.com/katalvlaran/seamcarve/pixelgrid"
)

// RemoveVertical returns a new grid, one column narrower than g, with the
// pixel s[y] dropped from every row y. Surviving pixels keep their
// left-to-right order. g itself is never modified.
//
// Returns an error wrapping ErrInvalidSeam, and no grid, if s fails
// CheckRemovable.
// Complexity: O(W·H).
func RemoveVertical(g *pixelgrid.Grid, s Seam) (*pixelgrid.Grid, error) {
	w, h := g.Width(), g.Height()
	if err := CheckRemovable(s, w, h); err != nil {
		return nil, err
	}

	out, err := pixelgrid.New(w-1, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		nx := 0
		for x := 0; x < w; x++ {
			if x == s[y] {
				continue
			}
			out.Set(nx, y, g.At(x, y))
			nx++
		}
	}

	return out, nil
}

package energy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seamcarve/pixelgrid"
)

// At returns the dual-gradient energy of pixel (x,y) in g.
//
// Returns ErrOutOfBounds (wrapped with the coordinate and grid size) when
// (x,y) lies outside g. The result is always ≥ 0.
// Complexity: O(1).
func At(g *pixelgrid.Grid, x, y int) (float64, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d picture", ErrOutOfBounds, x, y, g.Width(), g.Height())
	}

	return pixel(g, x, y), nil
}

// pixel computes the energy of an in-range pixel.
func pixel(g *pixelgrid.Grid, x, y int) float64 {
	w, h := g.Width(), g.Height()
	left := g.At((x+w-1)%w, y)
	right := g.At((x+1)%w, y)
	up := g.At(x, (y+h-1)%h)
	down := g.At(x, (y+1)%h)

	return math.Sqrt(float64(gradient(left, right) + gradient(up, down)))
}

// gradient returns the squared colour distance between a and b.
func gradient(a, b pixelgrid.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)

	return dr*dr + dg*dg + db*db
}

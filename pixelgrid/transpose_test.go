package pixelgrid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcarve/pixelgrid"
)

// randomGrid fills a w×h grid from a seeded source.
func randomGrid(t testing.TB, rng *rand.Rand, w, h int) *pixelgrid.Grid {
	t.Helper()
	g, err := pixelgrid.New(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, pixelgrid.RGB{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))})
		}
	}

	return g
}

// TestTranspose_SwapsCoordinates checks out.At(x,y) == in.At(y,x).
func TestTranspose_SwapsCoordinates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := randomGrid(t, rng, 5, 3)

	tr := pixelgrid.Transpose(g)
	require.Equal(t, 3, tr.Width())
	require.Equal(t, 5, tr.Height())
	for y := 0; y < tr.Height(); y++ {
		for x := 0; x < tr.Width(); x++ {
			assert.Equal(t, g.At(y, x), tr.At(x, y), "at (%d,%d)", x, y)
		}
	}
}

// TestTranspose_Involution ensures transposing twice restores the grid and
// never touches the input.
func TestTranspose_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, dims := range [][2]int{{1, 1}, {1, 4}, {4, 1}, {6, 6}, {7, 2}} {
		g := randomGrid(t, rng, dims[0], dims[1])
		before := g.Clone()

		back := pixelgrid.Transpose(pixelgrid.Transpose(g))
		assert.True(t, g.Equal(back), "dims %v", dims)
		assert.True(t, g.Equal(before), "input mutated for dims %v", dims)
	}
}

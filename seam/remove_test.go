package seam_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/pixelgrid"
	"github.com/katalvlaran/seamcarve/seam"
)

// numbered returns a w×h grid whose pixel (x,y) encodes its own coordinates.
func numbered(t testing.TB, w, h int) *pixelgrid.Grid {
	t.Helper()
	g, err := pixelgrid.New(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, pixelgrid.RGB{R: uint8(x), G: uint8(y)})
		}
	}

	return g
}

// TestValidate_Errors covers every rejection reason.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		s    seam.Seam
	}{
		{"Nil", nil},
		{"TooShort", seam.Seam{0, 0}},
		{"TooLong", seam.Seam{0, 0, 0, 0}},
		{"Negative", seam.Seam{0, -1, 0}},
		{"TooLarge", seam.Seam{3, 3, 3}},
		{"Jump", seam.Seam{0, 2, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, seam.Validate(tc.s, 3, 3), seam.ErrInvalidSeam)
		})
	}
	assert.NoError(t, seam.Validate(seam.Seam{0, 1, 2}, 3, 3))
	assert.NoError(t, seam.Validate(seam.Seam{0, 0}, 1, 2), "width 1 is structurally fine")
}

// TestRemoveVertical_DropsSeamPixels checks the content of the new grid.
func TestRemoveVertical_DropsSeamPixels(t *testing.T) {
	g := numbered(t, 4, 3)
	before := g.Clone()
	s := seam.Seam{1, 2, 3}

	out, err := seam.RemoveVertical(g, s)
	require.NoError(t, err)
	require.Equal(t, 3, out.Width())
	require.Equal(t, 3, out.Height())

	want := [][]uint8{{0, 2, 3}, {0, 1, 3}, {0, 1, 2}}
	for y, row := range want {
		for x, origX := range row {
			assert.Equal(t, pixelgrid.RGB{R: origX, G: uint8(y)}, out.At(x, y), "(%d,%d)", x, y)
		}
	}
	assert.True(t, g.Equal(before), "input grid must stay untouched")
}

// TestRemoveVertical_Rejects ensures invalid seams fail without output.
func TestRemoveVertical_Rejects(t *testing.T) {
	g := numbered(t, 3, 3)
	for _, s := range []seam.Seam{{0, 0}, {0, 5, 0}, {0, 2, 0}} {
		out, err := seam.RemoveVertical(g, s)
		assert.ErrorIs(t, err, seam.ErrInvalidSeam, "seam %v", s)
		assert.Nil(t, out)
	}

	narrow := numbered(t, 1, 3)
	out, err := seam.RemoveVertical(narrow, seam.Seam{0, 0, 0})
	assert.ErrorIs(t, err, seam.ErrInvalidSeam, "removing the last column must fail")
	assert.Nil(t, out)
}

// TestRemoveVertical_Repeated shrinks a picture column by column.
func TestRemoveVertical_Repeated(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, err := pixelgrid.New(8, 5)
	require.NoError(t, err)
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			g.Set(x, y, pixelgrid.RGB{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))})
		}
	}

	for n := 1; n < 8; n++ {
		g, err = seam.RemoveVertical(g, seam.FindVertical(energy.Compute(g)))
		require.NoError(t, err)
		assert.Equal(t, 8-n, g.Width())
		assert.Equal(t, 5, g.Height())
	}
	_, err = seam.RemoveVertical(g, seam.FindVertical(energy.Compute(g)))
	assert.ErrorIs(t, err, seam.ErrInvalidSeam)
}

// TestRemoveVertical_KeepsMostEnergy checks that removing the minimum seam
// leaves at least as much of the original energy as removing any other seam.
func TestRemoveVertical_KeepsMostEnergy(t *testing.T) {
	f := mustField(t, [][]float64{
		{3, 1, 4, 1},
		{5, 9, 2, 6},
		{5, 3, 5, 8},
	})
	best := seam.FindVertical(f)
	bestCost, err := seam.Cost(f, best)
	require.NoError(t, err)
	// hand-computed: 1 → 2 → 3 via columns 1, 2, 1.
	assert.Equal(t, seam.Seam{1, 2, 1}, best)
	assert.Equal(t, 6.0, bestCost)

	total := f.Sum()
	for _, s := range allSeams(4, 3) {
		c, err := seam.Cost(f, s)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total-bestCost, total-c, "seam %v", s)
	}
}

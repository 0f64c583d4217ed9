package seam_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/seam"
)

// mustField builds a Field from literal rows or fails the test.
func mustField(t testing.TB, rows [][]float64) *energy.Field {
	t.Helper()
	f, err := energy.FromValues(rows)
	require.NoError(t, err)

	return f
}

// randomField returns a w×h field with small integer energies, so that ties
// are frequent.
func randomField(t testing.TB, rng *rand.Rand, w, h int) *energy.Field {
	t.Helper()
	rows := make([][]float64, h)
	for y := range rows {
		rows[y] = make([]float64, w)
		for x := range rows[y] {
			rows[y][x] = float64(rng.Intn(6))
		}
	}

	return mustField(t, rows)
}

// allSeams enumerates every valid vertical seam of a w×h picture.
func allSeams(w, h int) []seam.Seam {
	var out []seam.Seam
	var walk func(prefix seam.Seam)
	walk = func(prefix seam.Seam) {
		if len(prefix) == h {
			out = append(out, append(seam.Seam(nil), prefix...))
			return
		}
		last := prefix[len(prefix)-1]
		for d := -1; d <= 1; d++ {
			if x := last + d; x >= 0 && x < w {
				walk(append(prefix, x))
			}
		}
	}
	for x := 0; x < w; x++ {
		walk(seam.Seam{x})
	}

	return out
}

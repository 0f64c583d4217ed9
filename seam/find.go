package seam

import (
	"github.com/katalvlaran/seamcarve/energy"
)

// FindVertical returns the minimum-energy vertical seam of f.
// The result has length f.Height() and every entry lies in [0, f.Width()).
// Ties are broken as described in the package documentation.
// Complexity: O(W·H) time and memory.
func FindVertical(f *energy.Field) Seam {
	s, _ := FindVerticalWithCost(f)

	return s
}

// FindVerticalWithCost is FindVertical that also returns the seam's total
// energy, i.e. the minimal accumulated distance in the last row.
func FindVerticalWithCost(f *energy.Field) (Seam, float64) {
	t := newTable(f)
	t.relax(f)
	end := t.cheapestEnd()

	return t.backtrace(end), t.dist[(t.h-1)*t.w+end]
}

// table holds the DP state for a single FindVertical call.
type table struct {
	w, h int
	dist []float64 // dist[y*w+x]: cheapest accumulated energy from row 0 to (x,y)
	pred []int     // pred[y*w+x]: column in row y-1 the cheapest path came from
}

// newTable allocates the tables and seeds row 0.
func newTable(f *energy.Field) *table {
	w, h := f.Width(), f.Height()
	t := &table{
		w:    w,
		h:    h,
		dist: make([]float64, w*h),
		pred: make([]int, w*h),
	}
	for x := 0; x < w; x++ {
		t.dist[x] = f.At(x, 0)
		t.pred[x] = x // seam starts here
	}

	return t
}

// relax fills rows 1..h-1. Row y reads only row y-1, which is complete by
// the time the loop reaches y.
func (t *table) relax(f *energy.Field) {
	for y := 1; y < t.h; y++ {
		prev := t.dist[(y-1)*t.w : y*t.w]
		row := y * t.w
		for x := 0; x < t.w; x++ {
			best, from := prev[x], x
			if x > 0 && prev[x-1] < best {
				best, from = prev[x-1], x-1
			}
			if x < t.w-1 && prev[x+1] < best {
				best, from = prev[x+1], x+1
			}
			t.dist[row+x] = best + f.At(x, y)
			t.pred[row+x] = from
		}
	}
}

// cheapestEnd returns the lowest column with minimal distance in the last row.
func (t *table) cheapestEnd() int {
	last := t.dist[(t.h-1)*t.w:]
	end := 0
	for x := 1; x < t.w; x++ {
		if last[x] < last[end] {
			end = x
		}
	}

	return end
}

// backtrace walks predecessors from (end, h-1) up to row 0. The row-0 entry
// comes from row 1's predecessor; row 0's self-links are never followed.
func (t *table) backtrace(end int) Seam {
	s := make(Seam, t.h)
	s[t.h-1] = end
	for y := t.h - 1; y > 0; y-- {
		s[y-1] = t.pred[y*t.w+s[y]]
	}

	return s
}

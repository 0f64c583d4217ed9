package pixelgrid

// Transpose returns a new grid with width and height swapped, such that
// Transpose(g).At(x, y) == g.At(y, x). The input is left untouched.
//
// Seam algorithms are written for the vertical case only; horizontal seams
// are found and removed by transposing, running the vertical code and
// transposing back.
//
// Complexity: O(W×H) time and memory.
func Transpose(g *Grid) *Grid {
	out := &Grid{w: g.h, h: g.w, pix: make([]RGB, len(g.pix))}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			out.pix[x*out.w+y] = g.pix[y*g.w+x]
		}
	}

	return out
}

package energy_test

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/pixelgrid"
)

// ExampleAt shows the wrap-around border rule on a 3×1 strip.
//
// Scenario:
//
//	[black][red][blue]
//
//	The left neighbour of column 0 is column 2 (blue), the right one is
//	red; the vertical neighbours of a one-row image are the pixel itself.
func ExampleAt() {
	g, _ := pixelgrid.FromRows([][]pixelgrid.RGB{
		{{R: 0, G: 0, B: 0}, {R: 200, G: 0, B: 0}, {R: 0, G: 0, B: 100}},
	})
	for x := 0; x < g.Width(); x++ {
		e, _ := energy.At(g, x, 0)
		fmt.Printf("x=%d energy=%.2f\n", x, e)
	}
	_, err := energy.At(g, 3, 0)
	fmt.Println(err)
	// Output:
	// x=0 energy=223.61
	// x=1 energy=100.00
	// x=2 energy=200.00
	// energy: coordinate out of bounds: (3,0) in 3x1 picture
}

package seam

import "errors"

// ErrInvalidSeam indicates a seam that cannot be applied to the current
// picture. The returned error wraps it with the specific reason.
var ErrInvalidSeam = errors.New("seam: invalid seam")

// Seam lists one index per row (vertical) or per column (horizontal).
type Seam []int

// Direction selects the orientation of a seam.
type Direction int

const (
	// Vertical seams run top to bottom and remove one column.
	Vertical Direction = iota
	// Horizontal seams run left to right and remove one row.
	Horizontal
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

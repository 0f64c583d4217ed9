package seam

import "github.com/katalvlaran/seamcarve/energy"

// Cost returns the total energy of f along s.
// Returns an error wrapping ErrInvalidSeam if s is not a valid seam for f.
func Cost(f *energy.Field, s Seam) (float64, error) {
	if err := Validate(s, f.Width(), f.Height()); err != nil {
		return 0, err
	}
	var total float64
	for y, x := range s {
		total += f.At(x, y)
	}

	return total, nil
}

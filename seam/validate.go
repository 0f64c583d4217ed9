package seam

import "fmt"

// Validate checks that s is a well-formed vertical seam for a picture of
// the given width and height:
//   - len(s) == height,
//   - every entry lies in [0, width),
//   - consecutive entries differ by at most one.
//
// Every violation returns an error wrapping ErrInvalidSeam.
// Complexity: O(height).
func Validate(s Seam, width, height int) error {
	if s == nil {
		return fmt.Errorf("%w: seam is nil", ErrInvalidSeam)
	}
	if len(s) != height {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidSeam, len(s), height)
	}
	for i, v := range s {
		if v < 0 || v >= width {
			return fmt.Errorf("%w: entry %d is %d, want [0,%d)", ErrInvalidSeam, i, v, width)
		}
		if i > 0 && abs(v-s[i-1]) > 1 {
			return fmt.Errorf("%w: step %d→%d between entries %d and %d", ErrInvalidSeam, s[i-1], v, i-1, i)
		}
	}

	return nil
}

// CheckRemovable is Validate plus the requirement that removing the seam
// leaves at least one column.
func CheckRemovable(s Seam, width, height int) error {
	if width <= 1 {
		return fmt.Errorf("%w: picture width is %d, nothing left to remove", ErrInvalidSeam, width)
	}

	return Validate(s, width, height)
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

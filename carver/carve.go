package carver

import (
	"fmt"
)

// Carve removes n minimum-energy seams of the given direction, one at a
// time, recomputing energy after each removal.
//
// Returns ErrInvalidInput for n < 0 or an unknown direction, and
// ErrInvalidSeam if n seams would leave a zero dimension. Both are checked
// before anything is removed.
// Complexity: O(n·W·H).
func (c *Carver) Carve(dir Direction, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: seam count %d is negative", ErrInvalidInput, n)
	}
	var size int
	switch dir {
	case Vertical:
		size = c.Width()
	case Horizontal:
		size = c.Height()
	default:
		return fmt.Errorf("%w: unknown direction %d", ErrInvalidInput, int(dir))
	}
	if n >= size {
		return fmt.Errorf("%w: cannot remove %d %s seams from %d", ErrInvalidSeam, n, dir, size)
	}

	for i := 0; i < n; i++ {
		var err error
		if dir == Vertical {
			err = c.RemoveVerticalSeam(c.FindVerticalSeam())
		} else {
			err = c.RemoveHorizontalSeam(c.FindHorizontalSeam())
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Resize carves the picture down to width×height, removing vertical seams
// first and horizontal seams second.
//
// Returns ErrInvalidInput if the target is not positive or exceeds the
// current size in either dimension; the picture is then left unchanged.
func (c *Carver) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: target %dx%d must be positive", ErrInvalidInput, width, height)
	}
	if width > c.Width() || height > c.Height() {
		return fmt.Errorf("%w: target %dx%d exceeds picture %dx%d", ErrInvalidInput, width, height, c.Width(), c.Height())
	}
	if err := c.Carve(Vertical, c.Width()-width); err != nil {
		return err
	}

	return c.Carve(Horizontal, c.Height()-height)
}

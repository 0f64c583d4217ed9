package carver

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/pixelgrid"
	"github.com/katalvlaran/seamcarve/seam"
)

// Carver is a seam-carving session over one picture.
type Carver struct {
	grid *pixelgrid.Grid // current picture, replaced on every removal
	opts Options
}

// New starts a session on a copy of img. Later changes to img do not affect
// the session. Returns ErrInvalidInput if img is nil or has empty bounds.
func New(img image.Image, opts ...Option) (*Carver, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: picture is nil", ErrInvalidInput)
	}
	g, err := pixelgrid.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return newCarver(g, opts), nil
}

// NewFromGrid starts a session on a copy of g.
// Returns ErrInvalidInput if g is nil.
func NewFromGrid(g *pixelgrid.Grid, opts ...Option) (*Carver, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrInvalidInput)
	}

	return newCarver(g.Clone(), opts), nil
}

func newCarver(g *pixelgrid.Grid, opts []Option) *Carver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Carver{grid: g, opts: cfg}
}

// Picture returns a copy of the current picture.
func (c *Carver) Picture() *image.RGBA {
	return c.grid.Image()
}

// Grid returns a copy of the current picture as a pixel grid.
func (c *Carver) Grid() *pixelgrid.Grid {
	return c.grid.Clone()
}

// Width returns the width of the current picture.
func (c *Carver) Width() int { return c.grid.Width() }

// Height returns the height of the current picture.
func (c *Carver) Height() int { return c.grid.Height() }

// Energy returns the energy of pixel (x,y) in the current picture, or an
// error wrapping ErrOutOfBounds if (x,y) lies outside it.
func (c *Carver) Energy(x, y int) (float64, error) {
	return energy.At(c.grid, x, y)
}

// field computes the energy field of g with the session's worker setting.
func (c *Carver) field(g *pixelgrid.Grid) *energy.Field {
	return energy.Compute(g, energy.WithWorkers(c.opts.Workers))
}

// FindVerticalSeam returns the column index of the minimum-energy vertical
// seam for each row, top to bottom.
func (c *Carver) FindVerticalSeam() seam.Seam {
	return seam.FindVertical(c.field(c.grid))
}

// FindHorizontalSeam returns the row index of the minimum-energy horizontal
// seam for each column, left to right.
func (c *Carver) FindHorizontalSeam() seam.Seam {
	return seam.FindVertical(c.field(pixelgrid.Transpose(c.grid)))
}

// RemoveVerticalSeam removes s from the picture, making it one column
// narrower. On error the picture is unchanged.
func (c *Carver) RemoveVerticalSeam(s seam.Seam) error {
	next, err := seam.RemoveVertical(c.grid, s)
	if err != nil {
		return err
	}
	c.replace(next, Vertical, s)

	return nil
}

// RemoveHorizontalSeam removes s from the picture, making it one row
// shorter. On error the picture is unchanged.
func (c *Carver) RemoveHorizontalSeam(s seam.Seam) error {
	// validate before paying for two transpositions
	if err := seam.CheckRemovable(s, c.Height(), c.Width()); err != nil {
		return err
	}
	next, err := seam.RemoveVertical(pixelgrid.Transpose(c.grid), s)
	if err != nil {
		return err
	}
	c.replace(pixelgrid.Transpose(next), Horizontal, s)

	return nil
}

// replace installs next as the current picture and notifies the observer.
func (c *Carver) replace(next *pixelgrid.Grid, dir Direction, s seam.Seam) {
	c.grid = next
	if c.opts.Observer != nil {
		c.opts.Observer(Event{
			Direction: dir,
			Seam:      append(seam.Seam(nil), s...),
			Width:     next.Width(),
			Height:    next.Height(),
		})
	}
}

// EnergyImage renders the current energy field as grayscale.
func (c *Carver) EnergyImage() *image.Gray {
	return c.field(c.grid).Image()
}

// SeamImage returns a copy of the current picture with the next seam of the
// given direction painted red.
func (c *Carver) SeamImage(dir Direction) *image.RGBA {
	img := c.Picture()
	red := color.RGBA{R: 0xff, A: 0xff}
	if dir == Horizontal {
		for x, y := range c.FindHorizontalSeam() {
			img.SetRGBA(x, y, red)
		}

		return img
	}
	for y, x := range c.FindVerticalSeam() {
		img.SetRGBA(x, y, red)
	}

	return img
}

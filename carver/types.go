package carver

import (
	"errors"

	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/seam"
)

// Sentinel errors returned by Carver methods.
var (
	// ErrInvalidInput indicates an absent source or an unusable argument.
	ErrInvalidInput = errors.New("carver: invalid input")

	// ErrOutOfBounds is energy.ErrOutOfBounds, re-exported for callers.
	ErrOutOfBounds = energy.ErrOutOfBounds

	// ErrInvalidSeam is seam.ErrInvalidSeam, re-exported for callers.
	ErrInvalidSeam = seam.ErrInvalidSeam
)

// Direction aliases seam.Direction so callers need not import package seam.
type Direction = seam.Direction

const (
	// Vertical seams remove one column.
	Vertical = seam.Vertical
	// Horizontal seams remove one row.
	Horizontal = seam.Horizontal
)

// Event describes one completed seam removal.
type Event struct {
	Direction Direction // orientation of the removed seam
	Seam      seam.Seam // the seam that was removed
	Width     int       // picture width after removal
	Height    int       // picture height after removal
}

// Options configures a Carver.
//
// Workers  – goroutines used to compute energy fields (see energy.WithWorkers).
// Observer – if non-nil, called after every successful removal.
type Options struct {
	Workers  int
	Observer func(Event)
}

// Option represents a functional option for configuring a Carver.
type Option func(*Options)

// WithWorkers sets the number of goroutines used for energy computation.
// n ≤ 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithObserver registers fn to be called after each removal.
func WithObserver(fn func(Event)) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// DefaultOptions returns sequential energy computation and no observer.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

package energy

import (
	"errors"
	"runtime"
)

// Sentinel errors returned by the energy package.
var (
	// ErrOutOfBounds indicates a coordinate outside the current grid.
	ErrOutOfBounds = errors.New("energy: coordinate out of bounds")

	// ErrBadShape indicates an empty or ragged value table passed to FromValues.
	ErrBadShape = errors.New("energy: field must be non-empty and rectangular")

	// ErrBadValue indicates a negative, NaN or infinite value passed to FromValues.
	ErrBadValue = errors.New("energy: values must be finite and non-negative")
)

// Options configures Compute.
//
// Workers – number of goroutines filling rows concurrently. Values ≤ 1 run
// sequentially on the calling goroutine.
type Options struct {
	Workers int
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithWorkers sets how many rows may be computed concurrently.
// n ≤ 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Workers = n
	}
}

// DefaultOptions returns the sequential configuration (Workers: 1).
func DefaultOptions() Options {
	return Options{Workers: 1}
}

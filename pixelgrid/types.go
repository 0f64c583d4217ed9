package pixelgrid

import (
	"errors"
	"image/color"
)

// Sentinel errors for pixelgrid operations.
var (
	// ErrBadShape indicates a width or height that is not positive.
	ErrBadShape = errors.New("pixelgrid: width and height must be > 0")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pixelgrid: all rows must have the same length")
	// ErrNilImage indicates that a nil image.Image was passed to FromImage.
	ErrNilImage = errors.New("pixelgrid: image is nil")
	// ErrOutOfRange indicates a coordinate outside the grid. Only raised
	// through panics, since it signals a bug in the caller.
	ErrOutOfRange = errors.New("pixelgrid: coordinate out of range")
)

// RGB is a single opaque colour sample with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color. The sample is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8

	return r, g, b, 0xffff
}

// rgbFrom converts any color.Color to an RGB sample, dropping alpha.
// Premultiplied colours are un-premultiplied first, so a half-transparent
// red stays red instead of turning dark.
func rgbFrom(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	return RGB{R: n.R, G: n.G, B: n.B}
}

// Grid is a Width×Height matrix of RGB samples stored row-major.
// The zero value is not usable; build grids with New, FromRows or FromImage.
type Grid struct {
	w, h int   // dimensions, both ≥ 1
	pix  []RGB // flat backing storage, len == w*h
}

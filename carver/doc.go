// Package carver is the seam-carving session API.
//
// A Carver owns one picture for the lifetime of a session. Queries (Width,
// Height, Energy, Find*Seam) read it; removals replace it with a new, smaller
// picture. Every removal validates its seam first, so a failed call leaves
// the session exactly as it was.
//
// Horizontal operations transpose the picture, run the vertical algorithm
// from package seam and, for removals, transpose back.
//
// Errors:
//
//   - ErrInvalidInput: nil source image, negative seam count, resize target
//     larger than the picture or not positive.
//   - ErrOutOfBounds:  Energy called with a coordinate outside the picture.
//   - ErrInvalidSeam:  wrong length, out-of-range entry, a step larger than
//     one, or a removal that would leave a zero dimension.
//
// A Carver is not safe for concurrent use.
package carver

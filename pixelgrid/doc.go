// Package pixelgrid holds the mutable 2-D array of colour samples that a
// seam-carving session works on.
//
// What:
//
//   - Grid stores Width×Height RGB samples in a flat row-major slice.
//   - FromImage and Image convert to and from image.Image, always copying.
//   - Transpose swaps the roles of rows and columns, so vertical-only
//     algorithms can serve the horizontal case as well.
//
// Why:
//
//   - A single owned buffer means no aliasing between a caller's image and
//     the carving state: every conversion is a deep copy.
//   - Out-of-range access is a programming error and panics; coordinates
//     that come from users are validated by higher layers before they reach
//     the grid.
//
// Complexity:
//
//   - At, Set, InBounds: O(1).
//   - New, Clone, FromImage, Image, Transpose: O(W×H) time and memory.
//
// Errors:
//
//   - ErrBadShape: requested or decoded dimensions are not positive.
//   - ErrNonRectangular: FromRows got rows of differing lengths.
//   - ErrNilImage: FromImage got a nil image.
//   - ErrOutOfRange: wrapped into the panic value of At/Set on bad indices.
package pixelgrid

// Package seamcarve is content-aware image shrinking by seam carving.
//
// 🚀 What is seam carving?
//
//	Instead of scaling a picture uniformly, seam carving repeatedly removes
//	a connected one-pixel-wide path (a "seam") of least visual importance,
//	running top to bottom to drop a column or left to right to drop a row.
//	Importance is measured per pixel by a dual-gradient energy.
//
// Under the hood, everything is organized under four subpackages:
//
//	pixelgrid/  owned RGB grid, image conversion, transposition
//	energy/     dual-gradient energy with wrap-around borders
//	seam/       minimum seam by dynamic programming, validation, removal
//	carver/     session API tying it together (find, remove, carve, resize)
//
// plus the cmd/seamcarve command-line tool.
//
// Quick example:
//
//	c, err := carver.New(img)
//	if err != nil {
//		return err
//	}
//	if err := c.Resize(c.Width()-50, c.Height()); err != nil {
//		return err
//	}
//	out := c.Picture()
//
//	go get github.com/katalvlaran/seamcarve
package seamcarve

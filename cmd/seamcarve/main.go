// Command seamcarve shrinks images with content-aware seam carving.
//
// Usage:
//
//	seamcarve resize IN OUT --width W --height H
//	seamcarve energy IN OUT
//	seamcarve seam IN [--horizontal] [--overlay OUT]
//
// Global flags: --config FILE (YAML), --workers N, --verbose.
// Input formats: png, jpeg, gif, bmp, tiff and webp. Output format follows
// the file extension (webp output is not supported).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

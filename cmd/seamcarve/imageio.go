package main

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers webp with image.Decode
)

// openImage decodes path, applying any EXIF orientation so the picture is
// carved the way it is displayed.
func openImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return img, nil
}

// saveImage encodes img to path, choosing the format from the extension.
func saveImage(path string, img image.Image, cfg Config) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(cfg.JPEGQuality)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

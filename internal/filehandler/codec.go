package filehandler

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/webp" // registers the WebP decoder used by imaging.Open
)

// MaxQuality is the highest JPEG quality accepted by Save.
const MaxQuality = 100

// Load decodes the image at path. The codec is chosen from the file contents;
// EXIF orientation is applied so that the pixels match what a viewer shows.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filepath.Base(path), err)
	}

	b := img.Bounds()
	log.Debug().
		Str("path", path).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Msg("Image loaded")

	return img, nil
}

// Save encodes img to path using the format implied by the extension.
// Read-only formats such as WebP are rejected.
// quality applies to JPEG output and is clamped to 1..MaxQuality; the other
// supported formats are lossless.
func Save(img image.Image, path string, quality int) error {
	if quality < 1 {
		quality = 1
	} else if quality > MaxQuality {
		quality = MaxQuality
	}

	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to write image %s: %w", filepath.Base(path), err)
	}

	b := img.Bounds()
	log.Debug().
		Str("path", path).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Int("quality", quality).
		Msg("Image written")

	return nil
}

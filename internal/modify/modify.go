package modify

import (
	"fmt"
	"image"

	"github.com/disintegration/gift"
	"github.com/fpang/watermark-manager/internal/filehandler"
	"github.com/rs/zerolog/log"
)

// Adjustment strengths, as percentages on gift's -100..100 scale.
const (
	BrightnessPercent = 50 // +0.5
	ContrastPercent   = 20 // +0.2
)

// Filter returns the gift filter implementing m.
func Filter(m Modification) (gift.Filter, error) {
	switch m {
	case Brighter:
		return gift.Brightness(BrightnessPercent), nil
	case Contrast:
		return gift.Contrast(ContrastPercent), nil
	case Grayscale:
		return gift.Grayscale(), nil
	case Invert:
		return gift.Invert(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModification, string(m))
	}
}

// Apply runs the filter for m once over src and returns a new image.
// src is not modified.
func Apply(src image.Image, m Modification) (*image.NRGBA, error) {
	f, err := Filter(m)
	if err != nil {
		return nil, err
	}

	g := gift.New(f)
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst, nil
}

// Modifier loads an image, applies one modification and writes the result.
type Modifier struct {
	// Quality is the JPEG quality used when writing.
	Quality int
}

// NewModifier returns a Modifier writing at the given quality.
func NewModifier(quality int) *Modifier {
	return &Modifier{Quality: quality}
}

// Run loads inputPath, applies m, writes the result to outputPath and returns
// the modified image for the watermark stage. An unknown modification fails
// before anything is read or written.
func (mod *Modifier) Run(m Modification, inputPath, outputPath string) (image.Image, error) {
	if _, err := Filter(m); err != nil {
		return nil, err
	}

	src, err := filehandler.Load(inputPath)
	if err != nil {
		return nil, err
	}

	dst, err := Apply(src, m)
	if err != nil {
		return nil, err
	}

	if err := filehandler.Save(dst, outputPath, mod.Quality); err != nil {
		return nil, err
	}

	log.Info().
		Str("modification", string(m)).
		Str("input", inputPath).
		Str("output", outputPath).
		Msg("Image modification applied")

	return dst, nil
}

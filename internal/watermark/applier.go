package watermark

import (
	"image"

	"github.com/fpang/watermark-manager/internal/filehandler"
	"github.com/rs/zerolog/log"
)

// Applier writes watermarked images to disk.
type Applier struct {
	// Quality is the JPEG quality used when writing.
	Quality int
	// Opacity is the source opacity for image watermarks.
	Opacity float64

	stamper *TextStamper
}

// NewApplier returns an Applier that stamps text with stamper.
func NewApplier(stamper *TextStamper, quality int, opacity float64) *Applier {
	return &Applier{
		Quality: quality,
		Opacity: opacity,
		stamper: stamper,
	}
}

// ApplyText stamps text onto img and writes the result to outputPath.
func (a *Applier) ApplyText(img image.Image, text, outputPath string) error {
	out := a.stamper.Stamp(img, text)
	if err := filehandler.Save(out, outputPath, a.Quality); err != nil {
		return err
	}

	log.Info().
		Str("output", outputPath).
		Int("text_length", len(text)).
		Msg("Text watermark applied")
	return nil
}

// ApplyImage loads the watermark at markPath, composites it centred over img
// and writes the result to outputPath.
func (a *Applier) ApplyImage(img image.Image, markPath, outputPath string) error {
	mark, err := filehandler.Load(markPath)
	if err != nil {
		return err
	}

	out := Overlay(img, mark, a.Opacity)
	if err := filehandler.Save(out, outputPath, a.Quality); err != nil {
		return err
	}

	offset := Offset(img.Bounds(), mark.Bounds())
	log.Info().
		Str("output", outputPath).
		Str("watermark", markPath).
		Int("offset_x", offset.X).
		Int("offset_y", offset.Y).
		Float64("opacity", a.Opacity).
		Msg("Image watermark applied")
	return nil
}

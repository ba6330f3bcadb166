package watermark

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultOpacity is the source opacity used for image watermarks.
const DefaultOpacity = 0.5

// Offset returns the position, relative to the top-left of base, at which a
// mark of the given bounds is centred: ((baseW-markW)/2, (baseH-markH)/2).
// The offset is negative on an axis where the mark is larger than the base.
func Offset(base, mark image.Rectangle) image.Point {
	return image.Pt((base.Dx()-mark.Dx())/2, (base.Dy()-mark.Dy())/2)
}

// Overlay composites mark centred over base with source-over blending at the
// given opacity and returns the result. base is not modified. Parts of the
// mark outside base are clipped.
func Overlay(base, mark image.Image, opacity float64) *image.NRGBA {
	pos := base.Bounds().Min.Add(Offset(base.Bounds(), mark.Bounds()))
	return imaging.Overlay(base, mark, pos, opacity)
}

package watermark

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the text watermark size in pixels.
const DefaultFontSize = 64

// TextStamper draws text centred on an image using the Go Bold face at a
// fixed size and colour.
type TextStamper struct {
	face  font.Face
	color color.Color
}

// NewTextStamper builds a stamper for the given pixel size and colour.
func NewTextStamper(size float64, col color.Color) (*TextStamper, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return &TextStamper{face: face, color: col}, nil
}

// Close releases the font face.
func (s *TextStamper) Close() error {
	return s.face.Close()
}

// Stamp returns a copy of base with text drawn on it. Text is wrapped at word
// boundaries to the image width and explicit newlines are kept; every line is
// centred horizontally and the block is centred vertically. A word wider than
// the image is left on its own line and clipped.
func (s *TextStamper) Stamp(base image.Image, text string) *image.NRGBA {
	dst := imaging.Clone(base)
	if strings.TrimSpace(text) == "" {
		return dst
	}

	b := dst.Bounds()
	lines := s.wrap(text, b.Dx())

	m := s.face.Metrics()
	ascent := m.Ascent.Ceil()
	lineHeight := m.Height.Ceil()
	blockHeight := lineHeight*(len(lines)-1) + ascent + m.Descent.Ceil()
	top := b.Min.Y + (b.Dy()-blockHeight)/2

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(s.color),
		Face: s.face,
	}
	for i, line := range lines {
		w := d.MeasureString(line).Ceil()
		d.Dot = fixed.P(b.Min.X+(b.Dx()-w)/2, top+ascent+i*lineHeight)
		d.DrawString(line)
	}

	return dst
}

// wrap splits text into lines no wider than maxWidth where word boundaries allow.
func (s *TextStamper) wrap(text string, maxWidth int) []string {
	var lines []string
	limit := fixed.I(maxWidth)

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if font.MeasureString(s.face, candidate) > limit {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}

	return lines
}

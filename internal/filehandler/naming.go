package filehandler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// OutputSuffix is inserted between the base name and the extension of every output file.
const OutputSuffix = "-with-watermark"

// FallbackExtension replaces the extension of outputs whose input format
// cannot be written.
const FallbackExtension = ".png"

// ErrNoExtension is returned for file names without a usable extension.
var ErrNoExtension = errors.New("file name has no extension")

// OutputName derives the output file name for an input file name by inserting
// OutputSuffix before the extension: "test.jpg" becomes "test-with-watermark.jpg".
//
// The split happens at the last dot, so "my.photo.jpg" becomes
// "my.photo-with-watermark.jpg" and the extension that selects the encoder is
// kept. Names with no dot, an empty base (".jpg") or an empty extension
// ("photo.") are rejected.
func OutputName(name string) (string, error) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return "", fmt.Errorf("%w: %q", ErrNoExtension, name)
	}
	return name[:i] + OutputSuffix + name[i:], nil
}

// WritableName returns name unchanged when its extension can be encoded, and
// with the extension replaced by FallbackExtension when it can only be read:
// "test-with-watermark.webp" becomes "test-with-watermark.png".
func WritableName(name string) string {
	ext := filepath.Ext(name)
	if !IsImage(ext) || IsWritable(ext) {
		return name
	}
	return strings.TrimSuffix(name, ext) + FallbackExtension
}

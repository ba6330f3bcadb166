// Package filehandler provides image file handling for the watermark manager:
// locating files in the image directory, deriving output names, decoding and
// encoding images, and reading EXIF metadata for diagnostics.
//
// Decoding and encoding are delegated to disintegration/imaging, which picks
// the encoder from the file extension. WebP files can be read but not written.
// EXIF is read with evanoberholster/imagemeta.
package filehandler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// SupportedImageExtensions defines the file extensions that can be read,
// mapped to their MIME types.
var SupportedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".bmp":  "image/bmp",
	".webp": "image/webp",
}

// readOnlyExtensions are decoded but have no encoder.
var readOnlyExtensions = map[string]bool{
	".webp": true,
}

// IsImage returns true if the file extension corresponds to a supported image.
func IsImage(ext string) bool {
	_, ok := SupportedImageExtensions[strings.ToLower(ext)]
	return ok
}

// IsWritable returns true if images with this extension can be encoded.
func IsWritable(ext string) bool {
	return IsImage(ext) && !readOnlyExtensions[strings.ToLower(ext)]
}

// GetMIMEType returns the MIME type for a given file extension.
func GetMIMEType(ext string) (string, error) {
	if mimeType, ok := SupportedImageExtensions[strings.ToLower(ext)]; ok {
		return mimeType, nil
	}
	return "", fmt.Errorf("unsupported file extension: %s", ext)
}

// ImagePath joins a file name entered by the user with the image directory.
// Names are taken as-is; the image directory is flat.
func ImagePath(dir, name string) string {
	return filepath.Join(dir, name)
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug().Err(err).Str("path", path).Msg("Failed to stat file")
		}
		return false
	}
	return info.Mode().IsRegular()
}

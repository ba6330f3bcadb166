package filehandler

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"time"

	"github.com/evanoberholster/imagemeta"
	"github.com/rs/zerolog/log"
)

// ImageInfo describes an input image before it is processed.
// Dimensions come from the image header; camera and date come from EXIF when present.
type ImageInfo struct {
	Width  int
	Height int
	Format string

	// Timestamp, with fallback DateTimeOriginal > CreateDate > ModifyDate
	DateTaken time.Time
	HasDate   bool

	// Camera info
	CameraMake  string
	CameraModel string
}

// HasEXIF reports whether any EXIF field was found.
func (i *ImageInfo) HasEXIF() bool {
	return i.HasDate || i.CameraMake != "" || i.CameraModel != ""
}

// ExtractImageInfo reads the header and, when available, the EXIF block of the
// image at filePath. Missing EXIF is not an error: PNG, GIF and BMP files
// rarely carry any.
func ExtractImageInfo(filePath string) (*ImageInfo, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}

	info := &ImageInfo{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind file: %w", err)
	}

	exifData, err := imagemeta.Decode(file)
	if err != nil {
		log.Debug().Err(err).Str("path", filePath).Msg("No EXIF metadata")
		return info, nil
	}

	if !exifData.DateTimeOriginal().IsZero() {
		info.DateTaken = exifData.DateTimeOriginal()
		info.HasDate = true
	} else if !exifData.CreateDate().IsZero() {
		info.DateTaken = exifData.CreateDate()
		info.HasDate = true
	} else if !exifData.ModifyDate().IsZero() {
		info.DateTaken = exifData.ModifyDate()
		info.HasDate = true
	}

	info.CameraMake = strings.TrimSpace(exifData.Make)
	info.CameraModel = strings.TrimSpace(exifData.Model)

	log.Debug().
		Str("path", filePath).
		Bool("has_date", info.HasDate).
		Str("camera", strings.TrimSpace(info.CameraMake+" "+info.CameraModel)).
		Msg("Image metadata extraction complete")

	return info, nil
}

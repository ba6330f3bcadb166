// Package app drives the watermark manager: it repeatedly collects a session
// from the user and runs it, reporting the outcome of each run on its own.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fpang/watermark-manager/internal/cli"
	"github.com/fpang/watermark-manager/internal/filehandler"
	"github.com/fpang/watermark-manager/internal/modify"
	"github.com/fpang/watermark-manager/internal/watermark"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Status lines printed after each run.
const (
	MsgSuccess            = "Adding watermark has been successful"
	MsgFailure            = "Something went wrong... Try again!"
	MsgPreconditionFailed = "Something went wrong... Try again"
)

// ErrMissingFile is returned by RunOnce when the input image or the watermark
// image does not exist.
var ErrMissingFile = errors.New("file does not exist")

// Runner owns the prompt loop.
type Runner struct {
	prompter cli.Prompter
	modifier *modify.Modifier
	applier  *watermark.Applier
	imageDir string
	out      io.Writer
}

// NewRunner returns a Runner reading answers from prompter, working on files
// in imageDir and printing status lines to out.
func NewRunner(prompter cli.Prompter, modifier *modify.Modifier, applier *watermark.Applier, imageDir string, out io.Writer) *Runner {
	return &Runner{
		prompter: prompter,
		modifier: modifier,
		applier:  applier,
		imageDir: imageDir,
		out:      out,
	}
}

// Run collects and runs sessions until the user declines to continue, a
// prompt is aborted, or ctx is cancelled. A failed run is reported and the
// loop carries on. Only prompt I/O failures are returned.
func (r *Runner) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		session, err := cli.Collect(r.prompter)
		if err != nil {
			if errors.Is(err, cli.ErrCancelled) || errors.Is(err, cli.ErrAborted) {
				log.Debug().Err(err).Msg("Prompt loop ended by user")
				return nil
			}
			return fmt.Errorf("failed to collect answers: %w", err)
		}

		r.report(r.RunOnce(ctx, session))
	}
	return nil
}

// report prints the status line for the outcome of one run.
func (r *Runner) report(err error) {
	switch {
	case err == nil:
		fmt.Fprintln(r.out, MsgSuccess)
	case errors.Is(err, ErrMissingFile):
		fmt.Fprintln(r.out, MsgPreconditionFailed)
	default:
		fmt.Fprintln(r.out, MsgFailure)
	}
}

// RunOnce checks that the files named in s exist, applies the modification
// and then the watermark, writing both stages to the derived output path.
// Nothing is written when a precondition fails or the modification is unknown,
// and the modified image is removed again when the watermark stage fails.
// WebP inputs are written as PNG.
func (r *Runner) RunOnce(ctx context.Context, s *cli.Session) (err error) {
	logger := log.With().
		Str("run", uuid.NewString()).
		Str("input", s.InputImage).
		Str("modification", string(s.Modification)).
		Str("watermark_type", string(s.WatermarkKind)).
		Logger()

	defer func() {
		if err != nil {
			logger.Debug().Err(err).Msg("Run failed")
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := watermark.ParseKind(string(s.WatermarkKind)); err != nil {
		return err
	}

	inputPath := filehandler.ImagePath(r.imageDir, s.InputImage)
	if !filehandler.Exists(inputPath) {
		return fmt.Errorf("input image %s: %w", inputPath, ErrMissingFile)
	}

	var markPath string
	if s.WatermarkKind == watermark.ImageKind {
		markPath = filehandler.ImagePath(r.imageDir, s.WatermarkImage)
		if !filehandler.Exists(markPath) {
			return fmt.Errorf("watermark image %s: %w", markPath, ErrMissingFile)
		}
	}

	outputName, err := filehandler.OutputName(s.InputImage)
	if err != nil {
		return err
	}
	if ext := filepath.Ext(outputName); !filehandler.IsImage(ext) {
		return fmt.Errorf("unsupported image format: %s", ext)
	}
	outputName = filehandler.WritableName(outputName)
	outputPath := filehandler.ImagePath(r.imageDir, outputName)

	logInputInfo(logger, inputPath)

	var modified image.Image
	if modified, err = r.modifier.Run(s.Modification, inputPath, outputPath); err != nil {
		return err
	}

	switch s.WatermarkKind {
	case watermark.TextKind:
		err = r.applier.ApplyText(modified, s.WatermarkText, outputPath)
	case watermark.ImageKind:
		err = r.applier.ApplyImage(modified, markPath, outputPath)
	}
	if err != nil {
		removePartial(logger, outputPath)
		return err
	}

	logger.Info().Str("output", outputPath).Msg("Watermark added")
	return nil
}

// removePartial deletes the modified-only image left behind when the
// watermark stage fails.
func removePartial(logger zerolog.Logger, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Str("output", path).Msg("Failed to remove partial output")
	}
}

// logInputInfo logs the dimensions and EXIF summary of the input image.
func logInputInfo(logger zerolog.Logger, path string) {
	info, err := filehandler.ExtractImageInfo(path)
	if err != nil {
		logger.Debug().Err(err).Msg("Could not read image info")
		return
	}

	evt := logger.Debug().
		Int("width", info.Width).
		Int("height", info.Height).
		Str("format", info.Format)
	if mimeType, err := filehandler.GetMIMEType(filepath.Ext(path)); err == nil {
		evt = evt.Str("mime_type", mimeType)
	}
	if info.HasEXIF() {
		if info.HasDate {
			evt = evt.Time("date_taken", info.DateTaken)
		}
		evt = evt.Str("camera", strings.TrimSpace(info.CameraMake+" "+info.CameraModel))
	}
	evt.Msg("Input image")
}

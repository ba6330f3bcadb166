package cli

import (
	"errors"

	"github.com/fpang/watermark-manager/internal/modify"
	"github.com/fpang/watermark-manager/internal/watermark"
)

// Prompt texts and defaults.
const (
	WelcomeMessage = "Hi! Welcome to \"Watermark manager\". Copy your image files to `/img` folder. " +
		"Then you'll be able to use them in the app. Are you ready?"
	InputImageMessage     = "What file do you want to mark?"
	ModificationMessage   = "Choose an image modification:"
	WatermarkKindMessage  = "Choose a watermark type:"
	WatermarkTextMessage  = "Type your watermark text:"
	WatermarkImageMessage = "Type your watermark file name:"

	DefaultInputImage     = "test.jpg"
	DefaultWatermarkImage = "logo.png"
)

// ErrCancelled is returned by Collect when the user is not ready to start.
var ErrCancelled = errors.New("cancelled by user")

// Session holds the answers for one watermarking run.
type Session struct {
	InputImage    string
	Modification  modify.Modification
	WatermarkKind watermark.Kind
	// WatermarkText is set for TextKind.
	WatermarkText string
	// WatermarkImage is set for ImageKind.
	WatermarkImage string
}

// Collect asks the session questions in order and returns the answers.
// Declining the readiness question returns ErrCancelled; an interrupted
// prompt returns ErrAborted. Answers are recorded as given; validating the
// modification and watermark type is left to the run.
func Collect(p Prompter) (*Session, error) {
	ready, err := p.Confirm(WelcomeMessage)
	if err != nil {
		return nil, err
	}
	if !ready {
		return nil, ErrCancelled
	}

	s := &Session{}

	if s.InputImage, err = p.Input(InputImageMessage, DefaultInputImage); err != nil {
		return nil, err
	}

	label, err := p.Select(ModificationMessage, modify.Labels())
	if err != nil {
		return nil, err
	}
	s.Modification = modify.Modification(label)

	label, err = p.Select(WatermarkKindMessage, watermark.KindLabels())
	if err != nil {
		return nil, err
	}
	s.WatermarkKind = watermark.Kind(label)

	switch s.WatermarkKind {
	case watermark.TextKind:
		s.WatermarkText, err = p.Input(WatermarkTextMessage, "")
	case watermark.ImageKind:
		s.WatermarkImage, err = p.Input(WatermarkImageMessage, DefaultWatermarkImage)
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

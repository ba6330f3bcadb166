// Package watermark stamps text or composites a second image onto an image.
package watermark

import (
	"errors"
	"fmt"
)

// Kind selects the watermark variant. The value is the label shown in the prompt.
type Kind string

const (
	TextKind  Kind = "Text watermark"
	ImageKind Kind = "Image watermark"
)

// ErrUnknownKind is returned for a label that is not one of Kinds().
var ErrUnknownKind = errors.New("unknown watermark type")

// Kinds returns the watermark kinds in prompt order.
func Kinds() []Kind {
	return []Kind{TextKind, ImageKind}
}

// KindLabels returns the prompt labels in order.
func KindLabels() []string {
	return []string{string(TextKind), string(ImageKind)}
}

// ParseKind returns the kind with the given label.
func ParseKind(label string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == label {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, label)
}

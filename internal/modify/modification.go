// Package modify applies one of a fixed set of pixel-level adjustments to an
// image before it is watermarked.
package modify

import (
	"errors"
	"fmt"
)

// Modification is one of the adjustments offered to the user. The value is the
// label shown in the prompt.
type Modification string

const (
	Brighter  Modification = "make image brighter"
	Contrast  Modification = "increase contrast"
	Grayscale Modification = "make image b&w"
	Invert    Modification = "invert image"
)

// ErrUnknownModification is returned for a label that is not one of All().
var ErrUnknownModification = errors.New("unknown image modification")

// All returns the modifications in prompt order.
func All() []Modification {
	return []Modification{Brighter, Contrast, Grayscale, Invert}
}

// Labels returns the prompt labels in order.
func Labels() []string {
	mods := All()
	labels := make([]string, len(mods))
	for i, m := range mods {
		labels[i] = string(m)
	}
	return labels
}

// Parse returns the modification with the given label.
func Parse(label string) (Modification, error) {
	for _, m := range All() {
		if string(m) == label {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModification, label)
}

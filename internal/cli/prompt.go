// Package cli collects a watermarking session from the user through a
// sequence of interactive prompts.
package cli

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrAborted is returned by a Prompter when the user interrupts a prompt
// (Ctrl+C, Esc) or input ends.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user one question at a time. Every call blocks until the
// question is answered.
type Prompter interface {
	// Confirm asks a yes/no question. The default answer is yes.
	Confirm(message string) (bool, error)
	// Input asks for free text. An empty answer returns def.
	Input(message, def string) (string, error)
	// Select asks for one of choices. The default is the first choice.
	Select(message string, choices []string) (string, error)
}

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LinePrompter asks questions one line at a time. It is used when stdin is
// not a terminal, e.g. when answers are piped in.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a LinePrompter reading answers from in and writing
// questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Confirm implements Prompter.
func (p *LinePrompter) Confirm(message string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "? %s (Y/n) ", message)

		answer, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// Input implements Prompter.
func (p *LinePrompter) Input(message, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "? %s (%s) ", message, def)
	} else {
		fmt.Fprintf(p.out, "? %s ", message)
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Select implements Prompter. The answer may be the choice number or its label.
func (p *LinePrompter) Select(message string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("no choices to select from")
	}

	fmt.Fprintf(p.out, "? %s\n", message)
	for i, c := range choices {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, c)
	}

	for {
		fmt.Fprint(p.out, "  Answer [1]: ")

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			return choices[0], nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1], nil
		}
		for _, c := range choices {
			if strings.EqualFold(c, answer) {
				return c, nil
			}
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(choices))
	}
}

// readLine returns the next trimmed line. End of input with nothing read is ErrAborted.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				fmt.Fprintln(p.out)
				return "", ErrAborted
			}
		} else {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
	return strings.TrimSpace(line), nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TeaPrompter asks each question with a small bubbletea program: arrow-key
// lists for choices and an editable text field for free text.
type TeaPrompter struct {
	opts []tea.ProgramOption
}

// NewTeaPrompter returns a TeaPrompter bound to ctx; cancelling ctx aborts the
// prompt being shown.
func NewTeaPrompter(ctx context.Context, in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{
		opts: []tea.ProgramOption{
			tea.WithContext(ctx),
			tea.WithInput(in),
			tea.WithOutput(out),
		},
	}
}

func (p *TeaPrompter) run(m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m, p.opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return nil, ErrAborted
		}
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}
	return final, nil
}

// Confirm implements Prompter.
func (p *TeaPrompter) Confirm(message string) (bool, error) {
	final, err := p.run(newConfirmModel(message))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.value, nil
}

// Input implements Prompter.
func (p *TeaPrompter) Input(message, def string) (string, error) {
	final, err := p.run(newInputModel(message, def))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.Value(), nil
}

// Select implements Prompter.
func (p *TeaPrompter) Select(message string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("no choices to select from")
	}
	final, err := p.run(newSelectModel(message, choices))
	if err != nil {
		return "", err
	}
	m := final.(selectModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.choices[m.cursor], nil
}

// confirmModel is a yes/no question answered with y, n or enter for the default.
type confirmModel struct {
	message string
	value   bool
	done    bool
	aborted bool
}

func newConfirmModel(message string) confirmModel {
	return confirmModel{message: message, value: true}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "y", "Y":
		m.value = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.value = false
		m.done = true
		return m, tea.Quit
	case "left", "right", "tab":
		m.value = !m.value
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return question(m.message) + " " + answerStyle.Render(yesNo(m.value)) + "\n"
	}
	if m.aborted {
		return ""
	}
	return question(m.message) + " " + hintStyle.Render("(Y/n)") + " " + yesNo(m.value)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// inputModel is a free text question with an optional default.
type inputModel struct {
	message string
	def     string
	input   textinput.Model
	done    bool
	aborted bool
}

func newInputModel(message, def string) inputModel {
	ti := textinput.New()
	ti.Placeholder = def
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Focus()

	return inputModel{message: message, def: def, input: ti}
}

// Value returns the entered text, or the default if nothing was typed.
func (m inputModel) Value() string {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		return m.def
	}
	return v
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return question(m.message) + " " + answerStyle.Render(m.Value()) + "\n"
	}
	if m.aborted {
		return ""
	}
	hint := ""
	if m.def != "" {
		hint = hintStyle.Render("("+m.def+")") + " "
	}
	return question(m.message) + " " + hint + m.input.View()
}

// selectModel is a single choice from a list, moved with the arrow keys.
type selectModel struct {
	message string
	choices []string
	cursor  int
	done    bool
	aborted bool
}

func newSelectModel(message string, choices []string) selectModel {
	return selectModel{message: message, choices: choices}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := key.String(); s {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % len(m.choices)
	case "enter":
		m.done = true
		return m, tea.Quit
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if n := int(s[0] - '1'); n < len(m.choices) {
				m.cursor = n
			}
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		return question(m.message) + " " + answerStyle.Render(m.choices[m.cursor]) + "\n"
	}
	if m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(question(m.message) + " " + hintStyle.Render("(Use arrow keys)") + "\n")
	for i, c := range m.choices {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("❯ " + c))
		} else {
			b.WriteString("  " + c)
		}
		b.WriteString("\n")
	}
	return b.String()
}

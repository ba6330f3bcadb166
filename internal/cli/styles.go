package cli

import "github.com/charmbracelet/lipgloss"

var (
	questionMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	messageStyle      = lipgloss.NewStyle().Bold(true)
	answerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	hintStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
)

func question(message string) string {
	return questionMarkStyle.Render("?") + " " + messageStyle.Render(message)
}

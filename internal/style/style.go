// Package style defines lipgloss styles for terminal output.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Variable names omit a "Style" suffix since they're accessed via the package (style.Title).
var (
	// Title is used for section headers.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Success is used for completion messages.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	// Label is used for inline labels (e.g., "Saved:").
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	// Muted is used for de-emphasized text (e.g., file paths, rules).
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
)

const ruleWidth = 35

// Rule returns a horizontal separator line.
func Rule() string {
	return Muted.Render(strings.Repeat("-", ruleWidth))
}

// Block frames content between rules under a title, for echoing documents in debug mode.
func Block(title, content string) string {
	var sb strings.Builder

	sb.WriteString(Title.Render(title))
	sb.WriteString("\n")
	sb.WriteString(Rule())
	sb.WriteString("\n")
	sb.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(Rule())
	sb.WriteString("\n")

	return sb.String()
}

// Saved renders the one-line confirmation printed after an article is written.
func Saved(path string) string {
	return Success.Render("Article saved") + " " + Label.Render("Path:") + " " + Muted.Render(path)
}

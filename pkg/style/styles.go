// Package style renders presetforge output for the terminal: the operation
// log produced by materialization, preset listings and errors.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Styles for different output elements
var (
	// TitleStyle is used for section headers
	TitleStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	// MutedStyle is used for secondary information
	MutedStyle = pterm.NewStyle(pterm.FgGray)

	// WarnStyle is used for non-fatal warnings in the operation log
	WarnStyle = pterm.NewStyle(pterm.FgYellow)

	// SuccessStyle is used for the final success marker
	SuccessStyle = pterm.NewStyle(pterm.FgGreen, pterm.Bold)

	// headingBlock frames the preview heading
	headingBlock = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// Bold returns the string in bold
func Bold(s string) string {
	return pterm.Bold.Sprint(s)
}

// Heading renders a framed heading line for preview output
func Heading(s string) string {
	return headingBlock.Render(s)
}

// Indent indents each line of text by the given number of levels
func Indent(text string, levels int) string {
	prefix := strings.Repeat("  ", levels)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

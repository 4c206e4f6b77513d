package repl

import "github.com/charmbracelet/lipgloss"

var (
	colorPrompt = lipgloss.Color("#7C3AED")
	colorResult = lipgloss.Color("#10B981")
	colorError  = lipgloss.Color("#EF4444")
	colorMuted  = lipgloss.Color("#6B7280")
)

// Styles groups the lipgloss styles used by the loop. The zero value
// renders everything unstyled.
type Styles struct {
	Prompt lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(colorPrompt),
		Result: lipgloss.NewStyle().Foreground(colorResult),
		Error:  lipgloss.NewStyle().Foreground(colorError),
		Help:   lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

// Package mainview provides the poem panel.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/poemgen/internal/presentation/tui/textutil"
)

// Props defines the properties for the poem panel.
type Props struct {
	Width       int
	Height      int
	Title       string
	Description string
	Error       string
	Body        string
	Placeholder string
	Hint        string
	Accent      lipgloss.Color
	Muted       lipgloss.Color
	ErrorColor  lipgloss.Color
}

// ErrorText returns the inline error wrapped to width, unstyled.
func ErrorText(message string, width int) string {
	return textutil.Wrap("✗ "+message, width)
}

// Render renders the poem panel. Placeholder is shown when Body is empty.
func Render(p Props) string {
	header := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(fit(p.Title, p.Width)),
		lipgloss.NewStyle().Foreground(p.Muted).Render(fit(p.Description, p.Width)),
	)

	parts := []string{header}
	if p.Error != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(p.ErrorColor).Bold(true).Render(ErrorText(p.Error, p.Width)), "")
	}

	bodyStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent)
	if p.Width > 0 {
		bodyStyle = bodyStyle.Width(p.Width - 2)
	}
	if p.Height > 0 {
		bodyStyle = bodyStyle.Height(p.Height)
	}

	body := p.Body
	if body == "" {
		bodyStyle = bodyStyle.
			BorderStyle(lipgloss.Border{Top: "╌", Bottom: "╌", Left: "╎", Right: "╎", TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯"}).
			BorderForeground(p.Muted).
			Foreground(p.Muted).
			Align(lipgloss.Center)
		body = p.Placeholder
	}
	parts = append(parts, bodyStyle.Render(body))
	if p.Hint != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(p.Muted).Render(fit(p.Hint, p.Width)))
	}

	return lipgloss.NewStyle().PaddingLeft(1).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func fit(text string, width int) string {
	if width <= 0 {
		return text
	}
	return textutil.Truncate(text, width)
}

// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Quit asks for confirmation before exiting.
	Quit
	// Help lists the key bindings.
	Help
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Width   int
	Height  int
	Accent  lipgloss.Color
	Muted   lipgloss.Color
}

// Render renders the modal component centered on screen.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	borderColor := p.Muted
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)
	if p.Kind == Quit {
		borderColor = p.Accent
		style = style.Width(40).Align(lipgloss.Center)
	}

	body := p.Body
	if p.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Render(p.Title) + "\n\n" + p.Body
	}
	content := style.BorderForeground(borderColor).Render(body)

	if p.Width <= 0 || p.Height <= 0 {
		return content
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}

// Package layout provides the screen layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Navbar  string
	Body    string
	Notices string
	Footer  string
}

// Render stacks the navigation bar, screen body, notices and footer.
func Render(p Props) string {
	parts := []string{p.Navbar, p.Body}
	if p.Notices != "" {
		parts = append(parts, p.Notices)
	}
	parts = append(parts, p.Footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Columns places the form and poem panel side by side, or stacks them.
func Columns(left, right string, stacked bool) string {
	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

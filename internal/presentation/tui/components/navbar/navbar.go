// Package navbar provides the navigation bar shown on every screen.
package navbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Link is one navigation entry.
type Link struct {
	Title  string
	Active bool
}

// Props defines the properties for the navigation bar.
type Props struct {
	Brand  string
	Links  []Link
	Width  int
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

// Render renders the navigation bar.
func Render(p Props) string {
	brand := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Render("✨ " + p.Brand)

	links := make([]string, 0, len(p.Links))
	for _, link := range p.Links {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(p.Muted)
		if link.Active {
			style = style.Bold(true).Foreground(p.Accent).Underline(true)
		}
		links = append(links, style.Render(link.Title))
	}
	right := strings.Join(links, " ")

	gap := p.Width - lipgloss.Width(brand) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := brand + strings.Repeat(" ", gap) + right

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.Muted).
		Render(bar)
}

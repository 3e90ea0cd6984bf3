// Package form provides the poem request form.
package form

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Row is one labelled form control.
type Row struct {
	Label   string
	Value   string
	Focused bool
	// Select rows render their value between cycling arrows.
	Select bool
}

// Props defines the properties for the form component.
type Props struct {
	Title        string
	Description  string
	Rows         []Row
	Button       string
	ButtonFocus  bool
	ButtonActive bool
	Width        int
	Stacked      bool
	Accent       lipgloss.Color
	Muted        lipgloss.Color
}

// Render renders the form column.
func Render(p Props) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("✨ " + p.Title)
	desc := lipgloss.NewStyle().Foreground(p.Muted).Render(p.Description)

	parts := []string{title, desc, ""}
	for _, row := range p.Rows {
		parts = append(parts, renderRow(row, p))
	}
	parts = append(parts, "", renderButton(p))

	style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	if p.Width > 0 {
		style = style.Width(p.Width)
	}
	if !p.Stacked {
		style = style.
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(p.Muted)
		if p.Width > 0 {
			style = style.Width(p.Width - 1)
		}
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderRow(row Row, p Props) string {
	label := lipgloss.NewStyle().Foreground(p.Muted)
	marker := "  "
	if row.Focused {
		label = label.Foreground(p.Accent).Bold(true)
		marker = "▸ "
	}

	value := row.Value
	if row.Select {
		value = fmt.Sprintf("‹ %s ›", row.Value)
	}
	return label.Render(marker+row.Label) + "\n  " + value
}

func renderButton(p Props) string {
	style := lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(p.Muted)
	switch {
	case !p.ButtonActive:
		style = style.Faint(true)
	case p.ButtonFocus:
		style = style.Bold(true).BorderForeground(p.Accent).Foreground(p.Accent)
	}
	return style.Render(p.Button)
}

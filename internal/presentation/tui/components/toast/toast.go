// Package toast renders transient notices.
package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/poemgen/internal/presentation/tui/textutil"
)

// itemChrome is the icon, its trailing space and the horizontal padding.
const itemChrome = 4

// Level is the severity of a toast.
type Level int

const (
	Info Level = iota
	Success
	Error
)

// Item is one visible toast.
type Item struct {
	Level Level
	Text  string
}

// Props defines the properties for the toast stack.
type Props struct {
	Items   []Item
	Width   int
	Info    lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// Render renders one line per toast, newest last, right-aligned.
// Each toast is cut to a single line that fits Width.
func Render(p Props) string {
	if len(p.Items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		lines = append(lines, renderItem(item, p))
	}
	out := lipgloss.JoinVertical(lipgloss.Right, lines...)
	if p.Width > 0 {
		out = lipgloss.PlaceHorizontal(p.Width, lipgloss.Right, out)
	}
	return out
}

func renderItem(item Item, p Props) string {
	icon, color := "•", p.Info
	switch item.Level {
	case Success:
		icon, color = "✓", p.Success
	case Error:
		icon, color = "✗", p.Error
	}
	text := textutil.SingleLine(item.Text)
	if p.Width > 0 {
		text = textutil.Truncate(text, p.Width-itemChrome)
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Padding(0, 1).
		Render(icon + " " + text)
}

// Package home provides the landing screen.
package home

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/poemgen/internal/presentation/tui/metrics"
	"github.com/tesso57/poemgen/internal/presentation/tui/textutil"
)

const (
	cardPaddingX = 2
	// cardChrome is the border and margin columns around a card's padded body.
	cardChrome   = 4
	minCardWidth = 12
)

// Card is one application tile.
type Card struct {
	Icon        string
	Title       string
	Description string
	Selected    bool
	Disabled    bool
}

// Props defines the properties for the landing screen.
type Props struct {
	Title    string
	Subtitle string
	Cards    []Card
	Width    int
	Height   int
	Accent   lipgloss.Color
	Muted    lipgloss.Color
}

// Render renders the landing screen centered in the available area.
func Render(p Props) string {
	title := lipgloss.NewStyle().Bold(true).Render(p.Title)
	subtitle := lipgloss.NewStyle().Foreground(p.Muted).Render(p.Subtitle)

	if p.Width > 0 {
		title = textutil.Truncate(title, p.Width)
		subtitle = textutil.Truncate(subtitle, p.Width)
	}

	width := cardWidth(p.Width)
	cards := make([]string, 0, len(p.Cards))
	for _, c := range p.Cards {
		cards = append(cards, renderCard(c, p, width))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if p.Width > 0 && lipgloss.Width(row) > p.Width {
		row = lipgloss.JoinVertical(lipgloss.Center, cards...)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		subtitle,
		"",
		row,
	)
	if p.Width <= 0 || p.Height <= 0 {
		return content
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}

// cardWidth shrinks cards that would not fit the screen on their own.
func cardWidth(screen int) int {
	if screen <= 0 || screen-cardChrome >= metrics.CardWidth {
		return metrics.CardWidth
	}
	return max(screen-cardChrome, minCardWidth)
}

func renderCard(c Card, p Props, width int) string {
	border := p.Muted
	if c.Selected && !c.Disabled {
		border = p.Accent
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		c.Icon,
		"",
		lipgloss.NewStyle().Bold(!c.Disabled).Render(textutil.Truncate(c.Title, width-2*cardPaddingX)),
		lipgloss.NewStyle().Foreground(p.Muted).Render(c.Description),
	)

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, cardPaddingX).
		Margin(0, 1)
	if c.Disabled {
		style = style.Faint(true).BorderStyle(lipgloss.HiddenBorder())
	}
	return style.Render(body)
}

package update

import (
	"github.com/charmbracelet/lipgloss"
	mainview "github.com/tesso57/poemgen/internal/presentation/tui/components/main"
	"github.com/tesso57/poemgen/internal/presentation/tui/metrics"
	"github.com/tesso57/poemgen/internal/presentation/tui/state"
)

// LayoutMetrics describes how the generator screen divides the terminal.
type LayoutMetrics struct {
	Stacked     bool
	FormWidth   int
	PanelWidth  int
	PanelHeight int
}

// UpdateSizes resizes the theme input and poem viewport to the terminal.
func UpdateSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := BuildLayout(s)
	s.ThemeInput.Width = clampMin(layout.FormWidth-metrics.ThemeInputPadding, 1)
	s.Viewport.Width = clampMin(layout.PanelWidth-metrics.PanelBorderWidth-metrics.PanelPaddingLeft, 1)
	s.Viewport.Height = layout.PanelHeight
}

// BuildLayout computes the generator layout for the current state.
func BuildLayout(s *state.ModelState) LayoutMetrics {
	layout := LayoutMetrics{
		Stacked:    true,
		FormWidth:  s.Width,
		PanelWidth: s.Width,
	}
	if s.Width >= metrics.WideLayoutMinWidth {
		layout.Stacked = false
		layout.FormWidth = s.Width * metrics.FormColumnRatio / 5
		layout.PanelWidth = s.Width - layout.FormWidth
	}

	available := clampMin(s.Height-metrics.NavbarLines-footerHeight(s)-noticeHeight(s), 1)
	panelHeight := available - metrics.PanelTitleLines - metrics.PanelBorderWidth - metrics.PanelHintLines -
		errorHeight(s, layout.PanelWidth-metrics.PanelPaddingLeft)
	if layout.Stacked {
		panelHeight -= metrics.FormLines
	}
	layout.PanelHeight = clampMin(panelHeight, 1)
	return layout
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	text := state.FooterText(s.Route, s.Generator.Loading, GeneratingStatusLabel, s.Help.View(&s.Keys))
	return lipgloss.Height(text)
}

func noticeHeight(s *state.ModelState) int {
	return len(s.Notices.Items)
}

// errorHeight is the height of the wrapped inline error at the panel's content width.
func errorHeight(s *state.ModelState, width int) int {
	if s.Generator.Err == "" {
		return 0
	}
	return lipgloss.Height(mainview.ErrorText(s.Generator.Err, width)) + metrics.PanelErrorGap
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}

// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/poemgen/internal/domain/poem"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/form"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/home"
	mainview "github.com/tesso57/poemgen/internal/presentation/tui/components/main"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/modal"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/navbar"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/toast"
	"github.com/tesso57/poemgen/internal/presentation/tui/metrics"
	"github.com/tesso57/poemgen/internal/presentation/tui/state"
	"github.com/tesso57/poemgen/internal/presentation/tui/update"
	"github.com/tesso57/poemgen/internal/presentation/tui/view"
)

const (
	brandName       = "AI Apps"
	homeTitle       = "Welcome to AI Apps"
	homeSubtitle    = "Explore powerful AI-powered applications"
	formTitle       = "Create Your Poem"
	formDescription = "Configure the settings to generate your personalized poem"
	panelTitle      = "Your Generated Poem"
	panelEmpty      = "Your poem will appear here..."
	panelReady      = "Your beautiful AI-generated poem is ready!"
	placeholderText = "Ready to create poetry\nFill out the form and generate your first poem"
)

func (m *Model) buildProps() view.Props {
	footer := m.buildFooterProps()
	props := view.Props{
		Navbar: m.buildNavbarProps(),
		Toasts: m.buildToastProps(),
		Modal:  m.buildModalProps(),
		Footer: footer,
	}

	if m.state.Route == state.HomeRoute {
		homeProps := m.buildHomeProps(footer)
		props.Home = &homeProps
		return props
	}

	layout := update.BuildLayout(m.state)
	props.Stacked = layout.Stacked
	props.Form = m.buildFormProps(layout)
	props.Panel = m.buildPanelProps(layout)
	return props
}

func (m *Model) buildNavbarProps() navbar.Props {
	links := make([]navbar.Link, 0, len(state.Routes))
	for _, r := range state.Routes {
		links = append(links, navbar.Link{Title: r.Title(), Active: r == m.state.Route})
	}
	return navbar.Props{
		Brand:  brandName,
		Links:  links,
		Width:  m.state.Width,
		Accent: lipgloss.Color(m.settings.Theme.Accent),
		Muted:  lipgloss.Color(m.settings.Theme.Muted),
	}
}

func (m *Model) buildHomeProps(footer string) home.Props {
	cards := make([]home.Card, 0, len(state.HomeCards))
	for i, c := range state.HomeCards {
		cards = append(cards, home.Card{
			Icon:        c.Icon,
			Title:       c.Title,
			Description: c.Description,
			Selected:    i == m.state.HomeCursor,
			Disabled:    c.Disabled,
		})
	}

	height := 0
	if m.state.Height > 0 {
		height = max(m.state.Height-metrics.NavbarLines-lipgloss.Height(footer)-len(m.state.Notices.Items), 1)
	}
	return home.Props{
		Title:    homeTitle,
		Subtitle: homeSubtitle,
		Cards:    cards,
		Width:    m.state.Width,
		Height:   height,
		Accent:   lipgloss.Color(m.settings.Theme.Accent),
		Muted:    lipgloss.Color(m.settings.Theme.Muted),
	}
}

func (m *Model) buildFormProps(layout update.LayoutMetrics) form.Props {
	g := m.state.Generator
	focus := m.state.Focus
	rows := []form.Row{
		{Label: "Theme or Topic", Value: m.state.ThemeInput.View(), Focused: focus == state.ThemeField},
		{Label: "Poetry Style", Value: poem.Label(poem.StyleOptions, string(g.Form.Style)), Focused: focus == state.StyleField, Select: true},
		{Label: "Mood", Value: poem.Label(poem.MoodOptions, string(g.Form.Mood)), Focused: focus == state.MoodField, Select: true},
		{Label: "Length", Value: poem.Label(poem.LengthOptions, string(g.Form.Length)), Focused: focus == state.LengthField, Select: true},
	}

	button := "✨ Generate Poem"
	if g.Loading {
		button = m.state.Spinner.View() + " " + update.GeneratingStatusLabel
	}

	return form.Props{
		Title:        formTitle,
		Description:  formDescription,
		Rows:         rows,
		Button:       button,
		ButtonFocus:  focus == state.GenerateButton,
		ButtonActive: g.CanGenerate(),
		Width:        layout.FormWidth,
		Stacked:      layout.Stacked,
		Accent:       lipgloss.Color(m.settings.Theme.Accent),
		Muted:        lipgloss.Color(m.settings.Theme.Muted),
	}
}

func (m *Model) buildPanelProps(layout update.LayoutMetrics) mainview.Props {
	g := m.state.Generator
	description := panelEmpty
	body := ""
	hint := ""
	switch {
	case g.Loading:
		body = fmt.Sprintf("\n %s %s", m.state.Spinner.View(), update.GeneratingStatusLabel)
	case g.HasPoem():
		description = panelReady
		body = m.state.Viewport.View()
		hint = fmt.Sprintf("%s copy • %s download • pgup/pgdn scroll",
			m.state.Keys.Copy.Help().Key, m.state.Keys.Download.Help().Key)
	}

	return mainview.Props{
		Width:       layout.PanelWidth - metrics.PanelPaddingLeft,
		Height:      m.state.Viewport.Height,
		Title:       panelTitle,
		Description: description,
		Error:       g.Err,
		Body:        body,
		Placeholder: placeholderText,
		Hint:        hint,
		Accent:      lipgloss.Color(m.settings.Theme.Accent),
		Muted:       lipgloss.Color(m.settings.Theme.Muted),
		ErrorColor:  lipgloss.Color(m.settings.Theme.Error),
	}
}

func (m *Model) buildToastProps() toast.Props {
	items := make([]toast.Item, 0, len(m.state.Notices.Items))
	for _, n := range m.state.Notices.Items {
		items = append(items, toast.Item{Level: toastLevel(n.Level), Text: n.Text})
	}
	return toast.Props{
		Items:   items,
		Width:   m.state.Width,
		Info:    lipgloss.Color(m.settings.Theme.Accent),
		Success: lipgloss.Color(m.settings.Theme.Success),
		Error:   lipgloss.Color(m.settings.Theme.Error),
	}
}

func (m *Model) buildModalProps() modal.Props {
	switch m.state.Modal {
	case state.QuitModal:
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
			Accent:  lipgloss.Color(m.settings.Theme.Accent),
			Muted:   lipgloss.Color(m.settings.Theme.Muted),
		}
	case state.HelpModal:
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Title:   "Keys",
			Body:    m.state.Help.FullHelpView(m.state.Keys.FullHelp()),
			Width:   m.state.Width,
			Height:  m.state.Height,
			Accent:  lipgloss.Color(m.settings.Theme.Accent),
			Muted:   lipgloss.Color(m.settings.Theme.Muted),
		}
	default:
		return modal.Props{Visible: false}
	}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Route, m.state.Generator.Loading, update.GeneratingStatusLabel, helpText)
}

func toastLevel(level state.NoticeLevel) toast.Level {
	switch level {
	case state.NoticeSuccess:
		return toast.Success
	case state.NoticeError:
		return toast.Error
	default:
		return toast.Info
	}
}

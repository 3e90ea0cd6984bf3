package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/poemgen/internal/application/settings"
	"github.com/tesso57/poemgen/internal/application/usecase"
	"github.com/tesso57/poemgen/internal/presentation/tui/state"
	"github.com/tesso57/poemgen/internal/presentation/tui/update"
	"github.com/tesso57/poemgen/internal/presentation/tui/view"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	poems    *usecase.PoemService
	state    *state.ModelState
}

// NewModel creates a new application model starting on route.
func NewModel(cfg settings.Settings, poemSvc *usecase.PoemService, route state.Route) *Model {
	if route == "" {
		route = state.HomeRoute
	}
	return &Model{
		settings: cfg,
		poems:    poemSvc,
		state:    newModelState(cfg, route),
	}
}

// Init starts the cursor blink and the backend health probe.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, update.HealthCheckCmd(m.poems))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateSizes(m.state)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.HealthCheckedMsg:
		update.HandleHealthCheckedMsg(msg, m.deps())
		return m, nil
	case update.PoemGeneratedMsg:
		cmds = append(cmds, update.HandlePoemGeneratedMsg(m.state, msg, m.deps()))
	case update.PoemCopiedMsg:
		cmds = append(cmds, update.HandlePoemCopiedMsg(m.state, msg, m.deps()))
		update.UpdateSizes(m.state)
	case update.PoemDownloadedMsg:
		cmds = append(cmds, update.HandlePoemDownloadedMsg(m.state, msg, m.deps()))
		update.UpdateSizes(m.state)
	case update.NoticeExpiredMsg:
		update.HandleNoticeExpiredMsg(m.state, msg)
		update.UpdateSizes(m.state)
		return m, nil
	}

	if m.state.Generator.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.state.ThemeInput, cmd = m.state.ThemeInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Poems:          m.poems,
		NoticeDuration: m.settings.Notice.Duration(),
	}
}

func newModelState(cfg settings.Settings, route state.Route) *state.ModelState {
	st := &state.ModelState{
		Generator:  state.GeneratorState{Form: cfg.InitialRequest()},
		ThemeInput: newTextInput(),
		Viewport:   newViewport(),
		Help:       help.New(),
		Spinner:    newSpinner(cfg.Theme.Accent),
		Notices:    state.Notices{Max: cfg.Notice.MaxVisible},
		Keys:       state.NewKeyMap(cfg.KeyMap),
	}
	st.Navigate(route)
	return st
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "e.g., love, nature, dreams, friendship..."
	ti.Prompt = "› "
	ti.Width = 40
	return ti
}

func newSpinner(color string) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	// Arrow keys move form focus, so the poem only scrolls by page.
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "½ page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "½ page up"),
		),
	}
	return vp
}

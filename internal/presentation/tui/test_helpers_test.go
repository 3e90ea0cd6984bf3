package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/poemgen/internal/application/settings"
	"github.com/tesso57/poemgen/internal/application/usecase"
	"github.com/tesso57/poemgen/internal/domain/poem"
	"github.com/tesso57/poemgen/internal/presentation/tui/state"
)

type stubPoemGenerator struct {
	mock.Mock
}

func (s *stubPoemGenerator) Generate(ctx context.Context, req poem.Request) (poem.Response, error) {
	args := s.Called(ctx, req)
	resp, _ := args.Get(0).(poem.Response)
	return resp, args.Error(1)
}

func (s *stubPoemGenerator) Health(ctx context.Context) (string, error) {
	if len(s.ExpectedCalls) == 0 {
		return "Hello World", nil
	}
	args := s.Called(ctx)
	return args.String(0), args.Error(1)
}

type stubClipboard struct {
	mock.Mock
	copied []string
}

func (s *stubClipboard) WriteText(text string) error {
	if len(s.ExpectedCalls) > 0 {
		return s.Called(text).Error(0)
	}
	s.copied = append(s.copied, text)
	return nil
}

type stubFileWriter struct {
	mock.Mock
	files map[string]string
}

func (s *stubFileWriter) WriteFile(name string, data []byte) (string, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(name, data)
		return args.String(0), args.Error(1)
	}
	if s.files == nil {
		s.files = make(map[string]string)
	}
	s.files[name] = string(data)
	return "/downloads/" + name, nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		Defaults: settings.DefaultsConfig{Style: "free_verse", Mood: "neutral", Length: "medium"},
		KeyMap: settings.KeyMapConfig{
			Up: "up,k", Down: "down,j",
			NextField: "tab", PrevField: "shift+tab",
			NextValue: "right", PrevValue: "left",
			Open: "enter", Back: "esc", Quit: "q",
			Copy: "ctrl+y", Download: "ctrl+s", Help: "?",
		},
		Theme:  settings.ThemeConfig{Accent: "99", Muted: "244", Success: "42", Error: "203"},
		Notice: settings.NoticeConfig{DurationMillis: 3000, MaxVisible: 3},
	}
}

func newTestModel(gen usecase.PoemGenerator, clip usecase.Clipboard, files usecase.FileWriter, route state.Route) *Model {
	m := NewModel(testSettings(), usecase.NewPoemService(gen, clip, files), route)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *Model, msg tea.KeyMsg) (*Model, tea.Cmd) {
	tm, cmd := m.Update(msg)
	return tm.(*Model), cmd
}

func typeText(m *Model, text string) *Model {
	for _, r := range text {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// findMsg runs cmd, expanding batches, and returns the first message of type T.
// Only use it on commands that do not sleep.
func findMsg[T tea.Msg](cmd tea.Cmd) (T, bool) {
	var zero T
	if cmd == nil {
		return zero, false
	}
	switch msg := cmd().(type) {
	case T:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if found, ok := findMsg[T](c); ok {
				return found, true
			}
		}
	}
	return zero, false
}

func assertFitsWidth(t *testing.T, out string, width int) {
	t.Helper()
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > width {
			t.Fatalf("line %d is %d columns wide, terminal is %d: %q", i, w, width, line)
		}
	}
}

// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/poemgen/internal/application/usecase"
	"github.com/tesso57/poemgen/internal/domain/poem"
	"github.com/tesso57/poemgen/internal/presentation/tui/intent"
	"github.com/tesso57/poemgen/internal/presentation/tui/state"
)

// Notice texts shown to the user.
const (
	NoticeEmptyTheme      = "Please enter a theme for your poem"
	NoticeGenerated       = "Poem generated successfully!"
	NoticeGenerateFailed  = "Failed to generate poem"
	NoticeGenerateError   = "Error generating poem"
	NoticeCopied          = "Poem copied to clipboard!"
	NoticeCopyFailed      = "Failed to copy poem"
	NoticeDownloaded      = "Poem downloaded!"
	NoticeDownloadFailed  = "Failed to download poem"
	GeneratingStatusLabel = "Generating Poem..."
)

const defaultNoticeDuration = 3 * time.Second

// Deps groups external dependencies for updates.
type Deps struct {
	Poems          *usecase.PoemService
	NoticeDuration time.Duration
	Logger         *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

func (d Deps) noticeDuration() time.Duration {
	if d.NoticeDuration > 0 {
		return d.NoticeDuration
	}
	return defaultNoticeDuration
}

// HealthCheckedMsg is emitted after probing the backend root endpoint.
type HealthCheckedMsg struct {
	Message string
	Err     error
}

// PoemGeneratedMsg is emitted when a generation request completes.
type PoemGeneratedMsg struct {
	RequestID uint64
	Poem      string
	Err       error
}

// PoemCopiedMsg is emitted after copying the poem to the clipboard.
type PoemCopiedMsg struct {
	Err error
}

// PoemDownloadedMsg is emitted after writing the poem to disk.
type PoemDownloadedMsg struct {
	Path string
	Err  error
}

// NoticeExpiredMsg removes a notice once its display time is over.
type NoticeExpiredMsg struct {
	ID uint64
}

// HealthCheckCmd probes the backend once.
func HealthCheckCmd(poemSvc *usecase.PoemService) tea.Cmd {
	return func() tea.Msg {
		message, err := poemSvc.Health(context.Background())
		return HealthCheckedMsg{Message: message, Err: err}
	}
}

// GeneratePoemCmd creates a command that requests one poem.
func GeneratePoemCmd(poemSvc *usecase.PoemService, requestID uint64, req poem.Request) tea.Cmd {
	return func() tea.Msg {
		text, err := poemSvc.Generate(context.Background(), req)
		return PoemGeneratedMsg{RequestID: requestID, Poem: text, Err: err}
	}
}

// CopyPoemCmd copies text to the clipboard.
func CopyPoemCmd(poemSvc *usecase.PoemService, text string) tea.Cmd {
	return func() tea.Msg {
		return PoemCopiedMsg{Err: poemSvc.Copy(text)}
	}
}

// DownloadPoemCmd saves text under a name derived from theme.
func DownloadPoemCmd(poemSvc *usecase.PoemService, theme, text string) tea.Cmd {
	return func() tea.Msg {
		path, err := poemSvc.Download(theme, text)
		return PoemDownloadedMsg{Path: path, Err: err}
	}
}

func noticeExpiryCmd(id uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: id}
	})
}

// PushNotice shows a notice and schedules its removal.
func PushNotice(s *state.ModelState, level state.NoticeLevel, text string, deps Deps) tea.Cmd {
	id := s.Notices.Push(level, text)
	return noticeExpiryCmd(id, deps.noticeDuration())
}

// HandleKeyMsg processes key input based on the current route and modal.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit, true
	}

	switch s.Modal {
	case state.QuitModal:
		return handleQuitModal(s, msg)
	case state.HelpModal:
		return handleHelpModal(s, msg)
	}

	switch s.Route {
	case state.HomeRoute:
		return handleHomeIntent(s, intent.FromKeyMsg(msg, s.Keys))
	case state.GeneratorRoute:
		return handleGeneratorKey(s, msg, deps)
	default:
		return nil, false
	}
}

func handleQuitModal(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Modal = state.NoModal
		return nil, true
	}
	return nil, true
}

func handleHelpModal(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.ToggleHelp || parsed.Type == intent.Back || parsed.Type == intent.Quit {
		s.Modal = state.NoModal
	}
	return nil, true
}

func handleHomeIntent(s *state.ModelState, in intent.Intent) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Quit:
		s.Modal = state.QuitModal
		return nil, true
	case intent.ToggleHelp:
		s.Modal = state.HelpModal
		return nil, true
	case intent.Up, intent.PrevField:
		s.HomeCursor = state.NextEnabledCard(s.HomeCursor, -1)
		return nil, true
	case intent.Down, intent.NextField:
		s.HomeCursor = state.NextEnabledCard(s.HomeCursor, 1)
		return nil, true
	case intent.Open:
		card, ok := state.CardAt(s.HomeCursor)
		if !ok || card.Disabled {
			return nil, true
		}
		s.Navigate(card.Route)
		return nil, true
	default:
		return nil, false
	}
}

func handleGeneratorKey(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	vk := s.Viewport.KeyMap
	typing := s.EditingText() && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace)
	if !typing && key.Matches(msg, vk.PageDown, vk.PageUp, vk.HalfPageDown, vk.HalfPageUp) {
		var cmd tea.Cmd
		s.Viewport, cmd = s.Viewport.Update(msg)
		return cmd, true
	}
	if s.EditingText() {
		parsed := intent.FromTextInputKeyMsg(msg, s.Keys)
		if parsed.Type == intent.None {
			var cmd tea.Cmd
			s.ThemeInput, cmd = s.ThemeInput.Update(msg)
			s.Generator.UpdateField(state.ThemeField, s.ThemeInput.Value())
			return cmd, true
		}
		return handleGeneratorIntent(s, parsed, deps)
	}
	return handleGeneratorIntent(s, intent.FromKeyMsg(msg, s.Keys), deps)
}

func handleGeneratorIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Quit:
		s.Modal = state.QuitModal
		return nil, true
	case intent.ToggleHelp:
		s.Modal = state.HelpModal
		return nil, true
	case intent.NextField, intent.Down:
		s.SetFocus(s.Focus.Next(1))
		return nil, true
	case intent.PrevField, intent.Up:
		s.SetFocus(s.Focus.Next(-1))
		return nil, true
	case intent.NextValue:
		cycleFocusedOption(s, 1)
		return nil, true
	case intent.PrevValue:
		cycleFocusedOption(s, -1)
		return nil, true
	case intent.Open:
		return StartGeneration(s, deps), true
	case intent.Back:
		s.Navigate(state.HomeRoute)
		return nil, true
	case intent.Copy:
		if !s.Generator.HasPoem() {
			return nil, true
		}
		return CopyPoemCmd(deps.Poems, s.Generator.Poem), true
	case intent.Download:
		if !s.Generator.HasPoem() {
			return nil, true
		}
		return DownloadPoemCmd(deps.Poems, s.Generator.Form.Theme, s.Generator.Poem), true
	default:
		return nil, false
	}
}

func cycleFocusedOption(s *state.ModelState, delta int) {
	form := s.Generator.Form
	switch s.Focus {
	case state.StyleField:
		s.Generator.UpdateField(state.StyleField, poem.Cycle(poem.StyleOptions, string(form.Style), delta))
	case state.MoodField:
		s.Generator.UpdateField(state.MoodField, poem.Cycle(poem.MoodOptions, string(form.Mood), delta))
	case state.LengthField:
		s.Generator.UpdateField(state.LengthField, poem.Cycle(poem.LengthOptions, string(form.Length), delta))
	}
}

// StartGeneration dispatches a generation request for the current form.
// It does nothing while a request is in flight.
func StartGeneration(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Generator.Loading {
		return nil
	}
	if err := s.Generator.Form.Validate(); err != nil {
		return PushNotice(s, state.NoticeError, NoticeEmptyTheme, deps)
	}

	req := s.Generator.Form
	id := s.Generator.Begin()
	s.Viewport.SetContent("")
	UpdateSizes(s)
	deps.logger().Info("generating poem",
		"request_id", id,
		"style", req.Style,
		"mood", req.Mood,
		"length", req.Length,
	)
	return tea.Batch(s.Spinner.Tick, GeneratePoemCmd(deps.Poems, id, req))
}

// HandleWindowSize records the terminal size and resizes components.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateSizes(s)
	refreshPoemViewport(s)
}

// HandleHealthCheckedMsg logs the probe result. It has no visible effect.
func HandleHealthCheckedMsg(msg HealthCheckedMsg, deps Deps) {
	if msg.Err != nil {
		deps.logger().Warn("backend health check failed", "error", msg.Err)
		return
	}
	deps.logger().Info("backend health check", "message", msg.Message)
}

// HandlePoemGeneratedMsg applies a completed generation. Superseded completions are dropped.
func HandlePoemGeneratedMsg(s *state.ModelState, msg PoemGeneratedMsg, deps Deps) tea.Cmd {
	log := deps.logger()
	if msg.Err == nil {
		if !s.Generator.Succeed(msg.RequestID, msg.Poem) {
			log.Debug("discarding stale poem", "request_id", msg.RequestID, "latest", s.Generator.RequestID)
			return nil
		}
		UpdateSizes(s)
		refreshPoemViewport(s)
		log.Info("poem generated", "request_id", msg.RequestID)
		return PushNotice(s, state.NoticeSuccess, NoticeGenerated, deps)
	}

	if !s.Generator.Fail(msg.RequestID, usecase.ErrorMessage(msg.Err)) {
		log.Debug("discarding stale failure", "request_id", msg.RequestID, "error", msg.Err)
		return nil
	}
	UpdateSizes(s)
	log.Warn("poem generation failed", "request_id", msg.RequestID, "error", msg.Err)

	var genErr *usecase.GenerationError
	if errors.As(msg.Err, &genErr) {
		return PushNotice(s, state.NoticeError, NoticeGenerateFailed, deps)
	}
	return PushNotice(s, state.NoticeError, NoticeGenerateError, deps)
}

// HandlePoemCopiedMsg reports the clipboard result.
func HandlePoemCopiedMsg(s *state.ModelState, msg PoemCopiedMsg, deps Deps) tea.Cmd {
	if msg.Err != nil {
		deps.logger().Warn("copy poem failed", "error", msg.Err)
		return PushNotice(s, state.NoticeError, NoticeCopyFailed, deps)
	}
	return PushNotice(s, state.NoticeSuccess, NoticeCopied, deps)
}

// HandlePoemDownloadedMsg reports the download result.
func HandlePoemDownloadedMsg(s *state.ModelState, msg PoemDownloadedMsg, deps Deps) tea.Cmd {
	if msg.Err != nil {
		deps.logger().Warn("download poem failed", "error", msg.Err)
		return PushNotice(s, state.NoticeError, NoticeDownloadFailed, deps)
	}
	deps.logger().Info("poem downloaded", "path", msg.Path)
	return PushNotice(s, state.NoticeSuccess, fmt.Sprintf("%s (%s)", NoticeDownloaded, msg.Path), deps)
}

// HandleNoticeExpiredMsg removes an expired notice.
func HandleNoticeExpiredMsg(s *state.ModelState, msg NoticeExpiredMsg) {
	s.Notices.Expire(msg.ID)
}

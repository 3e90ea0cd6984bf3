package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Route      Route
	Modal      Modal
	HomeCursor int
	Focus      Field
	Generator  GeneratorState
	ThemeInput textinput.Model
	Viewport   viewport.Model
	Help       help.Model
	Spinner    spinner.Model
	Notices    Notices
	Keys       KeyMap
	Width      int
	Height     int
}

// Navigate switches to route and resets any open modal.
func (s *ModelState) Navigate(route Route) {
	s.Route = route
	s.Modal = NoModal
	if route == GeneratorRoute {
		s.SetFocus(ThemeField)
	}
}

// SetFocus moves form focus, keeping the theme input's cursor in sync.
func (s *ModelState) SetFocus(field Field) {
	s.Focus = field
	if field == ThemeField {
		s.ThemeInput.Focus()
		return
	}
	s.ThemeInput.Blur()
}

// EditingText reports whether keystrokes are going into the theme input.
func (s *ModelState) EditingText() bool {
	return s.Route == GeneratorRoute && s.Modal == NoModal && s.Focus == ThemeField
}

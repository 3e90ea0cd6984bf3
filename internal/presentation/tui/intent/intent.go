// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/poemgen/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Up
	Down
	NextField
	PrevField
	NextValue
	PrevValue
	Open
	Back
	Copy
	Download
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Copy):
		return Intent{Type: Copy}
	case key.Matches(msg, keys.Download):
		return Intent{Type: Download}
	case key.Matches(msg, keys.NextField):
		return Intent{Type: NextField}
	case key.Matches(msg, keys.PrevField):
		return Intent{Type: PrevField}
	case key.Matches(msg, keys.NextValue):
		return Intent{Type: NextValue}
	case key.Matches(msg, keys.PrevValue):
		return Intent{Type: PrevValue}
	case key.Matches(msg, keys.Up):
		return Intent{Type: Up}
	case key.Matches(msg, keys.Down):
		return Intent{Type: Down}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	default:
		return Intent{Type: None}
	}
}

// FromTextInputKeyMsg maps keys while the theme input has focus.
// Printable keys belong to the input, so only non-text bindings are honored.
func FromTextInputKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		return Intent{Type: None}
	}
	parsed := FromKeyMsg(msg, keys)
	switch parsed.Type {
	case NextValue, PrevValue, Quit, ToggleHelp:
		// left/right move the text cursor; q and ? are typed.
		return Intent{Type: None}
	default:
		return parsed
	}
}

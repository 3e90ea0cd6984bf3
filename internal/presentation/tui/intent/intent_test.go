package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/poemgen/internal/application/settings"
	"github.com/tesso57/poemgen/internal/presentation/tui/state"
)

func testKeys() state.KeyMap {
	return state.NewKeyMap(settings.KeyMapConfig{
		Up:        "up,k",
		Down:      "down,j",
		NextField: "tab",
		PrevField: "shift+tab",
		NextValue: "right",
		PrevValue: "left",
		Open:      "enter",
		Back:      "esc",
		Quit:      "q",
		Copy:      "ctrl+y",
		Download:  "ctrl+s",
		Help:      "?",
	})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestFromKeyMsg(t *testing.T) {
	keys := testKeys()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Type
	}{
		{name: "quit", msg: runeKey('q'), want: Quit},
		{name: "help", msg: runeKey('?'), want: ToggleHelp},
		{name: "copy", msg: tea.KeyMsg{Type: tea.KeyCtrlY}, want: Copy},
		{name: "download", msg: tea.KeyMsg{Type: tea.KeyCtrlS}, want: Download},
		{name: "next field", msg: tea.KeyMsg{Type: tea.KeyTab}, want: NextField},
		{name: "prev field", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, want: PrevField},
		{name: "next value", msg: tea.KeyMsg{Type: tea.KeyRight}, want: NextValue},
		{name: "prev value", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: PrevValue},
		{name: "up", msg: runeKey('k'), want: Up},
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, want: Down},
		{name: "open", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: Open},
		{name: "back", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: Back},
		{name: "unbound", msg: runeKey('z'), want: None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromKeyMsg(tt.msg, keys).Type; got != tt.want {
				t.Fatalf("FromKeyMsg(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestFromTextInputKeyMsg(t *testing.T) {
	keys := testKeys()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Type
	}{
		{name: "q is typed", msg: runeKey('q'), want: None},
		{name: "k is typed", msg: runeKey('k'), want: None},
		{name: "question mark is typed", msg: runeKey('?'), want: None},
		{name: "space is typed", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: None},
		{name: "left moves cursor", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: None},
		{name: "enter generates", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: Open},
		{name: "tab moves focus", msg: tea.KeyMsg{Type: tea.KeyTab}, want: NextField},
		{name: "esc goes home", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: Back},
		{name: "copy", msg: tea.KeyMsg{Type: tea.KeyCtrlY}, want: Copy},
		{name: "down arrow", msg: tea.KeyMsg{Type: tea.KeyDown}, want: Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTextInputKeyMsg(tt.msg, keys).Type; got != tt.want {
				t.Fatalf("FromTextInputKeyMsg(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

// Package state holds UI state types for the TUI.
package state

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/poemgen/internal/application/settings"
)

// Route identifies a screen by its path.
type Route string

const (
	HomeRoute      Route = "/"
	GeneratorRoute Route = "/poem-generator"
)

// Routes lists the known routes in navigation order.
var Routes = []Route{HomeRoute, GeneratorRoute}

// Title returns the navigation label for the route.
func (r Route) Title() string {
	switch r {
	case HomeRoute:
		return "Home"
	case GeneratorRoute:
		return "Poem Generator"
	default:
		return string(r)
	}
}

// ParseRoute maps a path to a known route.
func ParseRoute(path string) (Route, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return HomeRoute, nil
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	for _, r := range Routes {
		if string(r) == p {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown route %q", path)
}

// Modal is an overlay drawn above the current route.
type Modal int

const (
	NoModal Modal = iota
	QuitModal
	HelpModal
)

// Field is a focusable control on the generator form.
type Field int

const (
	ThemeField Field = iota
	StyleField
	MoodField
	LengthField
	GenerateButton
)

// fieldCount is the number of focusable generator controls.
const fieldCount = int(GenerateButton) + 1

// Next returns the field delta steps away, wrapping around.
func (f Field) Next(delta int) Field {
	return Field(((int(f)+delta)%fieldCount + fieldCount) % fieldCount)
}

// Name returns the request field name for form fields.
func (f Field) Name() string {
	switch f {
	case ThemeField:
		return "theme"
	case StyleField:
		return "style"
	case MoodField:
		return "mood"
	case LengthField:
		return "length"
	default:
		return ""
	}
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextField key.Binding
	PrevField key.Binding
	NextValue key.Binding
	PrevValue key.Binding
	Open      key.Binding
	Back      key.Binding
	Quit      key.Binding
	Copy      key.Binding
	Download  key.Binding
	Help      key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Back, k.Open}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextField, k.PrevField},
		{k.PrevValue, k.NextValue, k.Open, k.Back},
		{k.Copy, k.Download, k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		NextField: key.NewBinding(
			key.WithKeys(splitKeys(cfg.NextField)...),
			key.WithHelp(cfg.NextField, "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys(splitKeys(cfg.PrevField)...),
			key.WithHelp(cfg.PrevField, "prev field"),
		),
		NextValue: key.NewBinding(
			key.WithKeys(splitKeys(cfg.NextValue)...),
			key.WithHelp(cfg.NextValue, "next option"),
		),
		PrevValue: key.NewBinding(
			key.WithKeys(splitKeys(cfg.PrevValue)...),
			key.WithHelp(cfg.PrevValue, "prev option"),
		),
		Open: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Open)...),
			key.WithHelp(cfg.Open, "open/generate"),
		),
		Back: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Back)...),
			key.WithHelp(cfg.Back, "home"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Copy: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Copy)...),
			key.WithHelp(cfg.Copy, "copy poem"),
		),
		Download: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Download)...),
			key.WithHelp(cfg.Download, "download poem"),
		),
		Help: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}

// Package settings defines application-level configuration data.
package settings

import (
	"time"

	"github.com/tesso57/poemgen/internal/domain/poem"
)

// DefaultAPIBase is used when neither the config file nor the environment set one.
const DefaultAPIBase = "http://localhost:8000"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up        string `yaml:"up" kong:"help='Up key',default='up,k'"`
	Down      string `yaml:"down" kong:"help='Down key',default='down,j'"`
	NextField string `yaml:"next_field" kong:"help='Next form field key',default='tab'"`
	PrevField string `yaml:"prev_field" kong:"help='Previous form field key',default='shift+tab'"`
	NextValue string `yaml:"next_value" kong:"help='Next option value key',default='right'"`
	PrevValue string `yaml:"prev_value" kong:"help='Previous option value key',default='left'"`
	Open      string `yaml:"open" kong:"help='Open/Generate key',default='enter'"`
	Back      string `yaml:"back" kong:"help='Back to home key',default='esc'"`
	Quit      string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Copy      string `yaml:"copy" kong:"help='Copy poem key',default='ctrl+y'"`
	Download  string `yaml:"download" kong:"help='Download poem key',default='ctrl+s'"`
	Help      string `yaml:"help" kong:"help='Toggle help key',default='?'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent  string `yaml:"accent" kong:"help='Accent color',default='99'"`
	Muted   string `yaml:"muted" kong:"help='Muted text color',default='244'"`
	Success string `yaml:"success" kong:"help='Success notice color',default='42'"`
	Error   string `yaml:"error" kong:"help='Error color',default='203'"`
}

// APIConfig defines how the generation backend is reached.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" kong:"help='Backend base URL',default='http://localhost:8000'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Request timeout in seconds (0 = none)',default='0'"`
}

// Timeout returns the request timeout, zero meaning none.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DownloadConfig defines where downloaded poems are written.
type DownloadConfig struct {
	Dir string `yaml:"dir" kong:"help='Directory for downloaded poems'"`
}

// DefaultsConfig defines the initial form selections.
type DefaultsConfig struct {
	Style  string `yaml:"style" kong:"help='Initial poetry style',default='free_verse'"`
	Mood   string `yaml:"mood" kong:"help='Initial mood',default='neutral'"`
	Length string `yaml:"length" kong:"help='Initial length',default='medium'"`
}

// NoticeConfig defines toast behavior.
type NoticeConfig struct {
	DurationMillis int `yaml:"duration_millis" kong:"help='Notice display time in milliseconds',default='3000'"`
	MaxVisible     int `yaml:"max_visible" kong:"help='Maximum notices shown at once',default='3'"`
}

// Duration returns how long a notice stays visible.
func (c NoticeConfig) Duration() time.Duration {
	if c.DurationMillis <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.DurationMillis) * time.Millisecond
}

// LogConfig defines the log sink. The terminal belongs to the UI, so logs go to a file.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Log file path'"`
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}

// Settings represents the application configuration.
type Settings struct {
	API      APIConfig      `yaml:"api" kong:"embed,prefix='api.'"`
	Download DownloadConfig `yaml:"download" kong:"embed,prefix='download.'"`
	Defaults DefaultsConfig `yaml:"defaults" kong:"embed,prefix='defaults.'"`
	KeyMap   KeyMapConfig   `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme    ThemeConfig    `yaml:"theme" kong:"embed,prefix='theme.'"`
	Notice   NoticeConfig   `yaml:"notice" kong:"embed,prefix='notice.'"`
	Log      LogConfig      `yaml:"log" kong:"embed,prefix='log.'"`
}

// InitialRequest builds the starting form state from configured defaults.
// Unknown values fall back to the built-in defaults.
func (s Settings) InitialRequest() poem.Request {
	req := poem.DefaultRequest()
	if style, ok := poem.ParseStyle(s.Defaults.Style); ok {
		req.Style = style
	}
	if mood, ok := poem.ParseMood(s.Defaults.Mood); ok {
		req.Mood = mood
	}
	if length, ok := poem.ParseLength(s.Defaults.Length); ok {
		req.Length = length
	}
	return req
}

// Package poem defines the poem generation request and response models.
package poem

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyTheme is returned when a request has no usable theme.
var ErrEmptyTheme = errors.New("please enter a theme for your poem")

// Style is the poetic form requested from the generator.
type Style string

const (
	FreeVerse Style = "free_verse"
	Haiku     Style = "haiku"
	Sonnet    Style = "sonnet"
	Limerick  Style = "limerick"
)

// Mood is the emotional tone requested from the generator.
type Mood string

const (
	Happy      Mood = "happy"
	Sad        Mood = "sad"
	Romantic   Mood = "romantic"
	Mysterious Mood = "mysterious"
	Neutral    Mood = "neutral"
)

// Length is the requested size of the poem.
type Length string

const (
	Short  Length = "short"
	Medium Length = "medium"
	Long   Length = "long"
)

// Option is one selectable value with its display label.
type Option struct {
	Value string
	Label string
}

// StyleOptions lists styles in display order.
var StyleOptions = []Option{
	{Value: string(FreeVerse), Label: "Free Verse"},
	{Value: string(Haiku), Label: "Haiku"},
	{Value: string(Sonnet), Label: "Sonnet"},
	{Value: string(Limerick), Label: "Limerick"},
}

// MoodOptions lists moods in display order.
var MoodOptions = []Option{
	{Value: string(Happy), Label: "Happy"},
	{Value: string(Sad), Label: "Melancholic"},
	{Value: string(Romantic), Label: "Romantic"},
	{Value: string(Mysterious), Label: "Mysterious"},
	{Value: string(Neutral), Label: "Neutral"},
}

// LengthOptions lists lengths in display order.
var LengthOptions = []Option{
	{Value: string(Short), Label: "Short (4-8 lines)"},
	{Value: string(Medium), Label: "Medium (8-16 lines)"},
	{Value: string(Long), Label: "Long (16-24 lines)"},
}

// Request is the payload sent to the generation endpoint.
type Request struct {
	Theme  string `json:"theme"`
	Style  Style  `json:"style"`
	Mood   Mood   `json:"mood"`
	Length Length `json:"length"`
}

// DefaultRequest returns the form state shown before any input.
func DefaultRequest() Request {
	return Request{
		Style:  FreeVerse,
		Mood:   Neutral,
		Length: Medium,
	}
}

// Validate reports whether the request can be sent.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Theme) == "" {
		return ErrEmptyTheme
	}
	return nil
}

// Response is the generation endpoint's reply.
type Response struct {
	Success  bool           `json:"success"`
	Poem     string         `json:"poem,omitempty"`
	Error    string         `json:"error,omitempty"`
	Theme    string         `json:"theme,omitempty"`
	Style    string         `json:"style,omitempty"`
	Mood     string         `json:"mood,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug lower-cases the theme and joins whitespace runs with a hyphen.
func Slug(theme string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(theme), "-")
}

// DownloadFilename returns the file name used when saving a poem.
func DownloadFilename(theme string) string {
	return "poem-" + Slug(theme) + ".txt"
}

// ParseStyle returns the style for value, or false if it is not a known style.
func ParseStyle(value string) (Style, bool) {
	if !contains(StyleOptions, value) {
		return "", false
	}
	return Style(value), true
}

// ParseMood returns the mood for value, or false if it is not a known mood.
func ParseMood(value string) (Mood, bool) {
	if !contains(MoodOptions, value) {
		return "", false
	}
	return Mood(value), true
}

// ParseLength returns the length for value, or false if it is not a known length.
func ParseLength(value string) (Length, bool) {
	if !contains(LengthOptions, value) {
		return "", false
	}
	return Length(value), true
}

// Label returns the display label for value within options, or value itself.
func Label(options []Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// Cycle returns the option value delta steps away from current, wrapping around.
// Unknown values are treated as the first option.
func Cycle(options []Option, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, opt := range options {
		if opt.Value == current {
			idx = i
			break
		}
	}
	n := len(options)
	idx = ((idx+delta)%n + n) % n
	return options[idx].Value
}

func contains(options []Option, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

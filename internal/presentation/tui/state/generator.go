package state

import "github.com/tesso57/poemgen/internal/domain/poem"

// GeneratorState is the generator screen's view state.
// At most one of Poem and Err is non-empty, and Loading is true only while
// the request identified by RequestID is in flight.
type GeneratorState struct {
	Form      poem.Request
	Poem      string
	Loading   bool
	Err       string
	RequestID uint64
}

// UpdateField replaces one form field. Unknown fields are ignored.
func (g *GeneratorState) UpdateField(field Field, value string) {
	switch field {
	case ThemeField:
		g.Form.Theme = value
	case StyleField:
		g.Form.Style = poem.Style(value)
	case MoodField:
		g.Form.Mood = poem.Mood(value)
	case LengthField:
		g.Form.Length = poem.Length(value)
	}
}

// Begin marks a new request in flight and returns its id.
func (g *GeneratorState) Begin() uint64 {
	g.RequestID++
	g.Loading = true
	g.Poem = ""
	g.Err = ""
	return g.RequestID
}

// Succeed stores the poem for request id. It reports false for superseded requests.
func (g *GeneratorState) Succeed(id uint64, text string) bool {
	if id != g.RequestID {
		return false
	}
	g.Loading = false
	g.Poem = text
	g.Err = ""
	return true
}

// Fail stores the error for request id. It reports false for superseded requests.
func (g *GeneratorState) Fail(id uint64, message string) bool {
	if id != g.RequestID {
		return false
	}
	g.Loading = false
	g.Poem = ""
	g.Err = message
	return true
}

// HasPoem reports whether a poem is displayed.
func (g *GeneratorState) HasPoem() bool {
	return g.Poem != ""
}

// CanGenerate mirrors the Generate button's enabled state.
func (g *GeneratorState) CanGenerate() bool {
	return !g.Loading && g.Form.Validate() == nil
}

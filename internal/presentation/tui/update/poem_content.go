package update

import (
	"github.com/tesso57/poemgen/internal/presentation/tui/state"
	"github.com/tesso57/poemgen/internal/presentation/tui/textutil"
)

func refreshPoemViewport(s *state.ModelState) {
	if s == nil {
		return
	}
	s.Viewport.SetContent(buildPoemContent(s.Generator.Poem, poemWrapWidth(s)))
	s.Viewport.GotoTop()
}

// buildPoemContent wraps text for display only. Copy and download use the raw poem.
func buildPoemContent(text string, width int) string {
	if text == "" {
		return ""
	}
	return textutil.Wrap(text, width)
}

func poemWrapWidth(s *state.ModelState) int {
	width := s.Viewport.Width - s.Viewport.Style.GetHorizontalFrameSize()
	if width <= 0 {
		// Before the first resize: leave the text unwrapped.
		return 0
	}
	return width
}

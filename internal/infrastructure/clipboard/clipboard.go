// Package clipboard provides system clipboard access.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer copies text to a clipboard backend.
type Writer func(text string) error

// System writes to the OS clipboard.
type System struct {
	write       Writer
	unsupported func() bool
}

// NewSystem creates a clipboard bound to the OS clipboard utilities.
func NewSystem() System {
	return System{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// NewSystemWithWriter creates a clipboard with a custom writer for tests.
func NewSystemWithWriter(write Writer) System {
	return System{
		write:       write,
		unsupported: func() bool { return false },
	}
}

// WriteText copies text to the clipboard.
func (s System) WriteText(text string) error {
	if s.write == nil {
		return errors.New("clipboard is not configured")
	}
	if s.unsupported != nil && s.unsupported() {
		return errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	return nil
}

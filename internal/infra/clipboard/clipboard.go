// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// Ensure System implements domain.Clipboard.
var _ domain.Clipboard = (*System)(nil)

// ErrUnsupported is returned when no clipboard utility is available
// (for example xclip or xsel on Linux).
var ErrUnsupported = errors.New("system clipboard is not supported")

// System writes to the OS clipboard.
type System struct {
	write       func(string) error
	unsupported bool
}

// New creates a clipboard backed by the OS clipboard.
func New() *System {
	return &System{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// NewWithWriter creates a clipboard that writes through fn.
// This is useful for testing.
func NewWithWriter(fn func(string) error) *System {
	return &System{write: fn}
}

// SetText replaces the clipboard contents with text.
func (s *System) SetText(text string) error {
	if s.unsupported {
		return ErrUnsupported
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

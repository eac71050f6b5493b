package domain

import (
	"fmt"
	"strings"
)

// KeyEvent is a host-neutral key-down event.
// Code uses DOM-style physical key codes (e.g. "KeyC").
type KeyEvent struct {
	Code   string
	Meta   bool // Platform command modifier held
	Repeat bool // Auto-repeated while held down
}

// KeyBindings maps key codes to copy modes.
type KeyBindings map[string]Mode

// Default key codes per mode.
const (
	DefaultBranchKey   = "KeyC"
	DefaultURLKey      = "KeyZ"
	DefaultMarkdownKey = "KeyM"
	DefaultPlainKey    = "KeyX"
)

// DefaultKeyBindings returns the stock shortcut table.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		DefaultBranchKey:   ModeBranch,
		DefaultURLKey:      ModeURL,
		DefaultMarkdownKey: ModeMarkdown,
		DefaultPlainKey:    ModePlain,
	}
}

// Lookup returns the mode bound to code.
func (b KeyBindings) Lookup(code string) (Mode, bool) {
	m, ok := b[code]
	return m, ok
}

// KeyForMode returns the key code bound to mode, or "" if unbound.
func (b KeyBindings) KeyForMode(mode Mode) string {
	for code, m := range b {
		if m == mode {
			return code
		}
	}
	return ""
}

// KeyCodeFromRune converts a typed letter or digit into a DOM-style key code.
// Returns "" for anything else.
func KeyCodeFromRune(r rune) string {
	switch {
	case r >= 'a' && r <= 'z':
		return "Key" + strings.ToUpper(string(r))
	case r >= 'A' && r <= 'Z':
		return "Key" + string(r)
	case r >= '0' && r <= '9':
		return "Digit" + string(r)
	}
	return ""
}

// ValidateKeyCode checks that code is a letter or digit key code.
func ValidateKeyCode(code string) error {
	switch {
	case len(code) == 4 && strings.HasPrefix(code, "Key") && code[3] >= 'A' && code[3] <= 'Z':
		return nil
	case len(code) == 6 && strings.HasPrefix(code, "Digit") && code[5] >= '0' && code[5] <= '9':
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidKeyCode, code)
}

// MenuCommand is a named entry the host surfaces in its command menu.
type MenuCommand struct {
	Label string
	Mode  Mode
}

// Menu command labels.
const (
	MenuLabelMarkdown = "Copy as Markdown"
	MenuLabelSummary  = "Copy as Summary"
)

// DefaultMenuCommands returns the commands registered with the host menu.
func DefaultMenuCommands() []MenuCommand {
	return []MenuCommand{
		{Label: MenuLabelMarkdown, Mode: ModeMarkdown},
		{Label: MenuLabelSummary, Mode: ModePlain},
	}
}

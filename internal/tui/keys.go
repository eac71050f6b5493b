package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Copy shortcuts, one per bound mode
	Copy []key.Binding

	// Location bar
	SelectAll key.Binding // Select the whole location

	// Palette
	Palette key.Binding // Open command palette
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding // Run selected command

	// General
	Help   key.Binding // Toggle help
	Escape key.Binding // Cancel/back
	Quit   key.Binding // Quit application
}

// DefaultKeyMap returns the default keybindings with copy shortcuts for bindings.
func DefaultKeyMap(bindings domain.KeyBindings) KeyMap {
	return KeyMap{
		Copy: copyBindings(bindings),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),
		Palette: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "commands"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// copyBindings builds one help entry per bound key, ordered by mode.
func copyBindings(bindings domain.KeyBindings) []key.Binding {
	order := make(map[domain.Mode]int)
	for i, m := range domain.AllModes() {
		order[m] = i
	}

	codes := make([]string, 0, len(bindings))
	for code := range bindings {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		return order[bindings[codes[i]]] < order[bindings[codes[j]]]
	})

	out := make([]key.Binding, 0, len(codes))
	for _, code := range codes {
		k := altKey(code)
		if k == "" {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, string(bindings[code])),
		))
	}
	return out
}

// altKey converts a key code such as KeyC or Digit1 to its bubbletea
// key string (alt+c, alt+1).
func altKey(code string) string {
	switch {
	case strings.HasPrefix(code, "Key") && len(code) == 4:
		return "alt+" + strings.ToLower(code[3:])
	case strings.HasPrefix(code, "Digit") && len(code) == 6:
		return "alt+" + code[5:]
	}
	return ""
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(k.Copy)+3)
	out = append(out, k.Copy...)
	return append(out, k.Palette, k.Help, k.Quit)
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Copy,
		{k.SelectAll, k.Escape},
		{k.Palette, k.Up, k.Down, k.Enter},
		{k.Help, k.Quit},
	}
}

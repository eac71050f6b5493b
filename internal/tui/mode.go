// Package tui provides the terminal user interface for jira-clean-copy.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Location bar has focus
	ModePalette             // Command palette is open
	ModeHelp                // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePalette:
		return "palette"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Toast      lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray
	Text:       lipgloss.Color("#DFE6E9"), // Light gray
	Toast:      lipgloss.Color("#323232"),
}

// Styles holds all lipgloss styles used by the TUI.
type Styles struct {
	App          lipgloss.Style
	Header       lipgloss.Style
	Label        lipgloss.Style
	Location     lipgloss.Style
	Selected     lipgloss.Style
	IssueKey     lipgloss.Style
	Muted        lipgloss.Style
	Copied       lipgloss.Style
	Toast        lipgloss.Style
	ErrorMsg     lipgloss.Style
	Warning      lipgloss.Style
	PaletteTitle lipgloss.Style
	Palette      lipgloss.Style
	Footer       lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		Label: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(10),
		Location: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(Colors.Background).
			Background(Colors.Warning),
		IssueKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Success),
		Muted: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Copied: lipgloss.NewStyle().
			Foreground(Colors.Text),
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Colors.Toast).
			Padding(0, 2),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),
		Warning: lipgloss.NewStyle().
			Foreground(Colors.Warning),
		PaletteTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		Palette: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}

package notify

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	clearLine  = "\r\x1b[2K"
	cursorUp   = "\x1b[1A"
	toastColor = "#323232"
)

// TerminalSurface writes messages as a styled pill on its own line.
// On a terminal, Hide erases the pill again.
type TerminalSurface struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	style    lipgloss.Style
	once     sync.Once
	tty      bool
	visible  bool
}

// NewTerminalSurface creates a surface that writes to w.
func NewTerminalSurface(w io.Writer) *TerminalSurface {
	return &TerminalSurface{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		tty:      isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Style builds the pill style. Repeated calls are no-ops.
func (s *TerminalSurface) Style() {
	s.once.Do(func() {
		s.style = s.renderer.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(toastColor)).
			Padding(0, 2)
	})
}

// Show writes text.
func (s *TerminalSurface) Show(text string) {
	_, _ = io.WriteString(s.w, s.style.Render(text)+"\n")
	s.visible = true
}

// Hide erases the last pill when writing to a terminal.
func (s *TerminalSurface) Hide() {
	if !s.visible {
		return
	}
	s.visible = false
	if s.tty {
		_, _ = io.WriteString(s.w, cursorUp+clearLine)
	}
}

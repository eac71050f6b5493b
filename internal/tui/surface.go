package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/jira-clean-copy/internal/infra/notify"
)

// programSurface shows toast messages inside the running program.
// It is not ready until a program is attached.
type programSurface struct {
	send func(tea.Msg)
	mu   sync.Mutex
}

func newProgramSurface() *programSurface {
	return &programSurface{}
}

// attach routes messages to p.
func (s *programSurface) attach(p *tea.Program) {
	s.attachFunc(p.Send)
}

func (s *programSurface) attachFunc(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

// factory reports the surface once a program is attached.
func (s *programSurface) factory() notify.SurfaceFactory {
	return func() (notify.Surface, bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s, s.send != nil
	}
}

// Style is a no-op; the view styles the toast.
func (s *programSurface) Style() {}

// Show sends text to the program.
func (s *programSurface) Show(text string) {
	s.dispatch(MsgToastShow{Text: text})
}

// Hide clears the toast.
func (s *programSurface) Hide() {
	s.dispatch(MsgToastHide{})
}

func (s *programSurface) dispatch(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

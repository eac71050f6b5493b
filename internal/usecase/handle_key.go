package usecase

import (
	"context"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// HandleKeyInput contains a key-down event and the page it happened on.
type HandleKeyInput struct {
	Page  domain.Page
	Event domain.KeyEvent
}

// HandleKeyOutput reports what a key event did.
// Handled is true when the event matched a shortcut and a copy was attempted.
type HandleKeyOutput struct {
	Copy    *CopyIssueOutput
	Mode    domain.Mode
	Handled bool
}

// HandleKey maps shortcut key events to copy modes.
type HandleKey struct {
	copyIssue *CopyIssue
	bindings  domain.KeyBindings
}

// NewHandleKey creates a new HandleKey use case.
// A nil bindings table uses the defaults.
func NewHandleKey(copyIssue *CopyIssue, bindings domain.KeyBindings) *HandleKey {
	if bindings == nil {
		bindings = domain.DefaultKeyBindings()
	}
	return &HandleKey{
		copyIssue: copyIssue,
		bindings:  bindings,
	}
}

// Bindings returns the active shortcut table.
func (uc *HandleKey) Bindings() domain.KeyBindings {
	return uc.bindings
}

// Execute runs the copy bound to the event.
// Auto-repeats, events without the command modifier, unbound keys and
// events while text is selected are ignored.
func (uc *HandleKey) Execute(ctx context.Context, in HandleKeyInput) (*HandleKeyOutput, error) {
	if in.Event.Repeat || !in.Event.Meta {
		return &HandleKeyOutput{}, nil
	}

	mode, ok := uc.bindings.Lookup(in.Event.Code)
	if !ok {
		return &HandleKeyOutput{}, nil
	}

	// Leave copy-of-selected-text alone.
	if in.Page == nil || in.Page.Selection() != "" {
		return &HandleKeyOutput{}, nil
	}

	out, err := uc.copyIssue.Execute(ctx, CopyIssueInput{Page: in.Page, Mode: mode})
	return &HandleKeyOutput{
		Copy:    out,
		Mode:    mode,
		Handled: true,
	}, err
}

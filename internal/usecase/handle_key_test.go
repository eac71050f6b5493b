package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/jira-clean-copy/internal/domain"
	"github.com/runoshun/jira-clean-copy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleKey_Execute_Bindings(t *testing.T) {
	tests := []struct {
		code     string
		wantMode domain.Mode
		wantText string
	}{
		{"KeyC", domain.ModeBranch, "ABC-123-Fix-login-bug"},
		{"KeyZ", domain.ModeURL, "https://x.atlassian.net/browse/ABC-123"},
		{"KeyM", domain.ModeMarkdown, "[ABC-123: Fix login bug](https://x.atlassian.net/browse/ABC-123)"},
		{"KeyX", domain.ModePlain, "ABC-123: Fix login bug"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			f := newCopyFixture()
			uc := NewHandleKey(f.uc, nil)
			page := testutil.NewMockPage("https://x.atlassian.net/browse/ABC-123")

			out, err := uc.Execute(context.Background(), HandleKeyInput{
				Page:  page,
				Event: domain.KeyEvent{Code: tt.code, Meta: true},
			})

			require.NoError(t, err)
			assert.True(t, out.Handled)
			assert.Equal(t, tt.wantMode, out.Mode)
			assert.Equal(t, tt.wantText, f.clipboard.Last())
		})
	}
}

func TestHandleKey_Execute_Ignored(t *testing.T) {
	tests := []struct {
		name      string
		event     domain.KeyEvent
		selection string
	}{
		{"repeat", domain.KeyEvent{Code: "KeyC", Meta: true, Repeat: true}, ""},
		{"no meta", domain.KeyEvent{Code: "KeyC"}, ""},
		{"unbound key", domain.KeyEvent{Code: "KeyV", Meta: true}, ""},
		{"text selected", domain.KeyEvent{Code: "KeyC", Meta: true}, "some text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCopyFixture()
			uc := NewHandleKey(f.uc, nil)
			page := testutil.NewMockPage("https://x.atlassian.net/browse/ABC-123")
			page.Selected = tt.selection

			out, err := uc.Execute(context.Background(), HandleKeyInput{Page: page, Event: tt.event})

			require.NoError(t, err)
			assert.False(t, out.Handled)
			assert.Zero(t, f.issues.Calls())
			assert.Empty(t, f.clipboard.Writes)
		})
	}
}

func TestHandleKey_Execute_CustomBindings(t *testing.T) {
	f := newCopyFixture()
	uc := NewHandleKey(f.uc, domain.KeyBindings{"KeyB": domain.ModeBranch})
	page := testutil.NewMockPage("https://x.atlassian.net/browse/ABC-123")

	out, err := uc.Execute(context.Background(), HandleKeyInput{Page: page, Event: domain.KeyEvent{Code: "KeyC", Meta: true}})
	require.NoError(t, err)
	assert.False(t, out.Handled)

	out, err = uc.Execute(context.Background(), HandleKeyInput{Page: page, Event: domain.KeyEvent{Code: "KeyB", Meta: true}})
	require.NoError(t, err)
	assert.True(t, out.Handled)
	assert.Equal(t, "ABC-123-Fix-login-bug", f.clipboard.Last())
}

func TestHandleKey_Execute_NoKeyOnPage(t *testing.T) {
	f := newCopyFixture()
	uc := NewHandleKey(f.uc, nil)
	page := testutil.NewMockPage("https://x.atlassian.net/jira/dashboards")

	out, err := uc.Execute(context.Background(), HandleKeyInput{Page: page, Event: domain.KeyEvent{Code: "KeyC", Meta: true}})

	require.NoError(t, err)
	assert.True(t, out.Handled)
	assert.False(t, out.Copy.Copied)
	assert.Zero(t, f.notifier.Count())
}

func TestHandleKey_Execute_FetchError(t *testing.T) {
	f := newCopyFixture()
	f.issues.Err = testutil.ErrMock
	uc := NewHandleKey(f.uc, nil)
	page := testutil.NewMockPage("https://x.atlassian.net/browse/ABC-123")

	out, err := uc.Execute(context.Background(), HandleKeyInput{Page: page, Event: domain.KeyEvent{Code: "KeyZ", Meta: true}})

	assert.ErrorIs(t, err, testutil.ErrMock)
	assert.True(t, out.Handled)
	assert.Zero(t, f.notifier.Count())
}

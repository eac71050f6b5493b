package usecase

import (
	"context"
	"net/url"
	"testing"

	"github.com/runoshun/jira-clean-copy/internal/domain"
	"github.com/runoshun/jira-clean-copy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMenuCommands_Execute_Defaults(t *testing.T) {
	f := newCopyFixture()
	registry := testutil.NewMockCommandRegistry()
	page := testutil.NewMockPage("https://x.atlassian.net/browse/ABC-123")
	uc := NewRegisterMenuCommands(f.uc, f.logger)

	out, err := uc.Execute(context.Background(), RegisterMenuCommandsInput{Registry: registry, Page: page})

	require.NoError(t, err)
	assert.Equal(t, []string{domain.MenuLabelMarkdown, domain.MenuLabelSummary}, out.Labels)
	assert.Empty(t, f.clipboard.Writes, "registering must not copy")

	require.True(t, registry.Invoke(domain.MenuLabelMarkdown))
	assert.Equal(t, "[ABC-123: Fix login bug](https://x.atlassian.net/browse/ABC-123)", f.clipboard.Last())

	require.True(t, registry.Invoke(domain.MenuLabelSummary))
	assert.Equal(t, "ABC-123: Fix login bug", f.clipboard.Last())
	assert.Equal(t, 2, f.notifier.Count())
}

func TestRegisterMenuCommands_Execute_ReadsLocationAtInvoke(t *testing.T) {
	f := newCopyFixture()
	f.issues.Issues["XYZ-9"] = &domain.Issue{Key: "XYZ-9", Summary: "Other"}
	registry := testutil.NewMockCommandRegistry()
	page := testutil.NewMockPage("https://x.atlassian.net/browse/ABC-123")
	uc := NewRegisterMenuCommands(f.uc, f.logger)

	_, err := uc.Execute(context.Background(), RegisterMenuCommandsInput{Registry: registry, Page: page})
	require.NoError(t, err)

	moved, err := url.Parse("https://x.atlassian.net/browse/XYZ-9")
	require.NoError(t, err)
	page.URL = moved

	registry.Invoke(domain.MenuLabelSummary)
	assert.Equal(t, "XYZ-9: Other", f.clipboard.Last())
}

func TestRegisterMenuCommands_Execute_CallbackErrorIsLogged(t *testing.T) {
	f := newCopyFixture()
	f.issues.Err = testutil.ErrMock
	registry := testutil.NewMockCommandRegistry()
	page := testutil.NewMockPage("https://x.atlassian.net/browse/ABC-123")
	uc := NewRegisterMenuCommands(f.uc, f.logger)

	_, err := uc.Execute(context.Background(), RegisterMenuCommandsInput{Registry: registry, Page: page})
	require.NoError(t, err)

	assert.NotPanics(t, func() { registry.Invoke(domain.MenuLabelMarkdown) })
	assert.Zero(t, f.notifier.Count())
	assert.True(t, f.logger.HasLevel("WARN"))
}

func TestRegisterMenuCommands_Execute_RegistryError(t *testing.T) {
	f := newCopyFixture()
	registry := testutil.NewMockCommandRegistry()
	registry.Err = domain.ErrDuplicateLabel
	uc := NewRegisterMenuCommands(f.uc, nil)

	_, err := uc.Execute(context.Background(), RegisterMenuCommandsInput{Registry: registry})

	assert.ErrorIs(t, err, domain.ErrDuplicateLabel)
}

func TestRegisterMenuCommands_Execute_CustomCommands(t *testing.T) {
	f := newCopyFixture()
	registry := testutil.NewMockCommandRegistry()
	page := testutil.NewMockPage("https://x.atlassian.net/browse/ABC-123")
	uc := NewRegisterMenuCommands(f.uc, nil)

	out, err := uc.Execute(context.Background(), RegisterMenuCommandsInput{
		Registry: registry,
		Page:     page,
		Commands: []domain.MenuCommand{{Label: "Copy Branch", Mode: domain.ModeBranch}},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Copy Branch"}, out.Labels)
	registry.Invoke("Copy Branch")
	assert.Equal(t, "ABC-123-Fix-login-bug", f.clipboard.Last())
}

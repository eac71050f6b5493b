package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/jira-clean-copy/internal/domain"
	"github.com/runoshun/jira-clean-copy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowIssue_Execute(t *testing.T) {
	issues := testutil.NewMockIssueFetcher(domain.Issue{Key: "ABC-123", Summary: "Fix login bug!"})
	uc := NewShowIssue(issues)

	out, err := uc.Execute(context.Background(), ShowIssueInput{Page: testutil.NewMockPage("https://x.atlassian.net/browse/ABC-123")})

	require.NoError(t, err)
	assert.Equal(t, "ABC-123", out.Issue.Key)
	assert.Equal(t, "Fix login bug!", out.Issue.Summary)
	assert.Equal(t, "https://x.atlassian.net", out.Origin)
	require.Len(t, out.Renderings, 4)
	assert.Equal(t, Rendering{Mode: domain.ModeBranch, Text: "ABC-123-Fix-login-bug"}, out.Renderings[0])
	assert.Equal(t, domain.ModeURL, out.Renderings[3].Mode)
}

func TestShowIssue_Execute_NoKey(t *testing.T) {
	uc := NewShowIssue(testutil.NewMockIssueFetcher())

	_, err := uc.Execute(context.Background(), ShowIssueInput{Page: testutil.NewMockPage("https://x.atlassian.net/")})
	assert.ErrorIs(t, err, domain.ErrIssueNotFound)

	_, err = uc.Execute(context.Background(), ShowIssueInput{})
	assert.ErrorIs(t, err, domain.ErrIssueNotFound)
}

func TestShowIssue_Execute_LookupError(t *testing.T) {
	uc := NewShowIssue(testutil.NewMockIssueFetcher())

	_, err := uc.Execute(context.Background(), ShowIssueInput{Page: testutil.NewMockPage("https://x.atlassian.net/browse/NOPE-1")})

	assert.ErrorIs(t, err, domain.ErrIssueLookup)
}

// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// CopyIssueInput contains the parameters for copying an issue.
type CopyIssueInput struct {
	Page domain.Page // Page whose issue is copied
	Mode domain.Mode // Representation to copy
}

// CopyIssueOutput contains the result of a copy.
// Copied is false when the page has no issue key.
type CopyIssueOutput struct {
	Key     string // Located issue key
	Text    string // Text written to the clipboard
	Message string // Confirmation shown to the user
	Copied  bool
}

// CopyIssue is the use case behind every trigger:
// locate, fetch, transform, write to the clipboard, notify.
type CopyIssue struct {
	issues    domain.IssueFetcher
	clipboard domain.Clipboard
	notifier  domain.Notifier
	logger    domain.Logger
}

// NewCopyIssue creates a new CopyIssue use case.
func NewCopyIssue(issues domain.IssueFetcher, clipboard domain.Clipboard, notifier domain.Notifier, logger domain.Logger) *CopyIssue {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &CopyIssue{
		issues:    issues,
		clipboard: clipboard,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute copies the page's issue in the requested mode.
// A page without an issue key is a silent no-op.
// Lookup failures are returned without retry and nothing is shown.
func (uc *CopyIssue) Execute(ctx context.Context, in CopyIssueInput) (*CopyIssueOutput, error) {
	if !in.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, in.Mode)
	}
	if in.Page == nil {
		return &CopyIssueOutput{}, nil
	}

	loc := in.Page.Location()
	key, ok := domain.LocateIssueKey(loc)
	if !ok {
		uc.logger.Debug("", "copy", "no issue key in page URL")
		return &CopyIssueOutput{}, nil
	}

	origin := domain.Origin(loc)
	fetched, err := uc.issues.GetIssue(ctx, origin, key)
	if err != nil {
		uc.logger.Warn(key, "copy", fmt.Sprintf("lookup failed: %v", err))
		return nil, fmt.Errorf("fetch issue %s: %w", key, err)
	}

	issue := domain.Issue{Key: key, Summary: fetched.Summary}
	text := domain.Format(issue, origin, in.Mode)

	// The clipboard result does not gate the confirmation.
	if err := uc.clipboard.SetText(text); err != nil {
		uc.logger.Warn(key, "clipboard", fmt.Sprintf("write failed: %v", err))
	}

	msg := domain.StatusMessage(key, in.Mode)
	uc.notifier.Show(msg)
	uc.logger.Info(key, "copy", fmt.Sprintf("copied as %s", in.Mode))

	return &CopyIssueOutput{
		Key:     key,
		Text:    text,
		Message: msg,
		Copied:  true,
	}, nil
}

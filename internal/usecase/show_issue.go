package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// ShowIssueInput contains the page to inspect.
type ShowIssueInput struct {
	Page domain.Page
}

// Rendering is one copy mode's output.
type Rendering struct {
	Mode domain.Mode `json:"mode" yaml:"mode"`
	Text string      `json:"text" yaml:"text"`
}

// ShowIssueOutput contains the issue and every rendering of it.
type ShowIssueOutput struct {
	Issue      domain.Issue `json:"issue" yaml:"issue"`
	Origin     string       `json:"origin" yaml:"origin"`
	Renderings []Rendering  `json:"renderings" yaml:"renderings"`
}

// ShowIssue previews all copy modes without touching the clipboard.
type ShowIssue struct {
	issues domain.IssueFetcher
}

// NewShowIssue creates a new ShowIssue use case.
func NewShowIssue(issues domain.IssueFetcher) *ShowIssue {
	return &ShowIssue{issues: issues}
}

// Execute looks up the page's issue and renders it in every mode.
func (uc *ShowIssue) Execute(ctx context.Context, in ShowIssueInput) (*ShowIssueOutput, error) {
	if in.Page == nil {
		return nil, domain.ErrIssueNotFound
	}
	loc := in.Page.Location()
	key, ok := domain.LocateIssueKey(loc)
	if !ok {
		return nil, domain.ErrIssueNotFound
	}

	origin := domain.Origin(loc)
	fetched, err := uc.issues.GetIssue(ctx, origin, key)
	if err != nil {
		return nil, fmt.Errorf("fetch issue %s: %w", key, err)
	}

	issue := domain.Issue{Key: key, Summary: fetched.Summary}
	modes := domain.AllModes()
	renderings := make([]Rendering, 0, len(modes))
	for _, m := range modes {
		renderings = append(renderings, Rendering{Mode: m, Text: domain.Format(issue, origin, m)})
	}

	return &ShowIssueOutput{
		Issue:      issue,
		Origin:     origin,
		Renderings: renderings,
	}, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// CreateBranchInput contains the parameters for creating an issue branch.
type CreateBranchInput struct {
	Page     domain.Page
	Checkout bool // Switch to the branch after creating it
	DryRun   bool // Only compute the name
}

// CreateBranchOutput contains the branch name and whether it was created.
type CreateBranchOutput struct {
	Branch   string
	Previous string // Branch checked out before switching; set with Checkout
	Created  bool
}

// CreateBranch creates a git branch named after the page's issue.
type CreateBranch struct {
	issues   domain.IssueFetcher
	branches domain.BranchCreator
	logger   domain.Logger
}

// NewCreateBranch creates a new CreateBranch use case.
func NewCreateBranch(issues domain.IssueFetcher, branches domain.BranchCreator, logger domain.Logger) *CreateBranch {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &CreateBranch{
		issues:   issues,
		branches: branches,
		logger:   logger,
	}
}

// Execute creates the branch at HEAD. The name is the branch-mode copy text.
func (uc *CreateBranch) Execute(ctx context.Context, in CreateBranchInput) (*CreateBranchOutput, error) {
	if in.Page == nil {
		return nil, domain.ErrIssueNotFound
	}
	loc := in.Page.Location()
	key, ok := domain.LocateIssueKey(loc)
	if !ok {
		return nil, domain.ErrIssueNotFound
	}
	if !domain.IsIssueKey(key) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidBranchName, key)
	}

	origin := domain.Origin(loc)
	fetched, err := uc.issues.GetIssue(ctx, origin, key)
	if err != nil {
		return nil, fmt.Errorf("fetch issue %s: %w", key, err)
	}

	branch := domain.Format(domain.Issue{Key: key, Summary: fetched.Summary}, origin, domain.ModeBranch)
	if in.DryRun {
		return &CreateBranchOutput{Branch: branch}, nil
	}

	exists, err := uc.branches.BranchExists(branch)
	if err != nil {
		return nil, fmt.Errorf("check branch: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrBranchExists, branch)
	}

	var previous string
	if in.Checkout {
		previous, err = uc.branches.CurrentBranch()
		if err != nil {
			return nil, fmt.Errorf("current branch: %w", err)
		}
	}

	if err := uc.branches.CreateBranch(branch, in.Checkout); err != nil {
		return nil, fmt.Errorf("create branch: %w", err)
	}
	uc.logger.Info(key, "branch", fmt.Sprintf("created %s", branch))

	return &CreateBranchOutput{Branch: branch, Previous: previous, Created: true}, nil
}

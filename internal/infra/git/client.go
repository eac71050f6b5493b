// Package git provides git operations on the working repository.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// Ensure Client implements domain.BranchCreator.
var _ domain.BranchCreator = (*Client)(nil)

// Client provides branch operations backed by go-git.
type Client struct {
	repo *git.Repository
}

// NewClient opens the repository containing dir.
// Parent directories are searched for a .git entry.
func NewClient(dir string) (*Client, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotGitRepo, dir)
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return NewClientWithRepo(repo), nil
}

// NewClientWithRepo creates a Client for an already opened repository.
func NewClientWithRepo(repo *git.Repository) *Client {
	return &Client{repo: repo}
}

// CurrentBranch returns the short name of the checked out branch.
func (c *Client) CurrentBranch() (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return head.Name().Short(), nil
}

// BranchExists checks if a local branch exists.
func (c *Client) BranchExists(name string) (bool, error) {
	_, err := c.repo.Reference(plumbing.NewBranchReferenceName(name), false)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("check branch %s: %w", name, err)
}

// CreateBranch creates name at HEAD. With checkout the worktree is switched
// to the new branch, keeping local changes.
func (c *Client) CreateBranch(name string, checkout bool) error {
	refName := plumbing.NewBranchReferenceName(name)
	if err := refName.Validate(); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidBranchName, name)
	}

	head, err := c.repo.Head()
	if err != nil {
		return fmt.Errorf("resolve HEAD: %w", err)
	}

	if err := c.repo.Storer.SetReference(plumbing.NewHashReference(refName, head.Hash())); err != nil {
		return fmt.Errorf("create branch %s: %w", name, err)
	}

	if !checkout {
		return nil
	}

	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	if err := wt.Checkout(&git.CheckoutOptions{Branch: refName, Keep: true}); err != nil {
		return fmt.Errorf("checkout %s: %w", name, err)
	}
	return nil
}

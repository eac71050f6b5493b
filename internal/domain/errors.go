package domain

import "errors"

// Domain errors.
var (
	ErrInvalidPageURL    = errors.New("not an absolute page URL or issue key")
	ErrNoBaseURL         = errors.New("bare issue key needs jira.base_url in config")
	ErrIssueNotFound     = errors.New("no issue key found in page URL")
	ErrInvalidMode       = errors.New("invalid copy mode")
	ErrInvalidKeyCode    = errors.New("invalid key code")
	ErrIssueLookup       = errors.New("issue lookup failed")
	ErrConfigExists      = errors.New("config file already exists")
	ErrBranchExists      = errors.New("branch already exists")
	ErrInvalidBranchName = errors.New("issue key is not usable as a branch name")
	ErrNotGitRepo        = errors.New("not a git repository (or any of the parent directories)")
	ErrUnknownCommand    = errors.New("unknown menu command")
	ErrDuplicateLabel    = errors.New("menu command already registered")
)

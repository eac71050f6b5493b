package domain

import (
	"context"
	"net/url"
)

// IssueFetcher looks up issues on the Jira instance behind a page origin.
type IssueFetcher interface {
	// GetIssue fetches key from the instance at origin.
	GetIssue(ctx context.Context, origin, key string) (*Issue, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// SetText replaces the clipboard contents.
	SetText(text string) error
}

// Notifier shows a transient confirmation message.
type Notifier interface {
	// Show displays text, replacing any visible message.
	Show(text string)
}

// CommandRegistry is the host's command menu.
type CommandRegistry interface {
	// Register adds a named command bound to callback.
	Register(label string, callback func()) error
}

// Page is the read-only context of the page being viewed.
type Page interface {
	// Location returns the current page URL.
	Location() *url.URL

	// Selection returns the currently selected text, or "".
	Selection() string
}

// BranchCreator creates git branches in the working repository.
type BranchCreator interface {
	// CurrentBranch returns the short name of the checked out branch.
	CurrentBranch() (string, error)

	// BranchExists checks if a local branch exists.
	BranchExists(name string) (bool, error)

	// CreateBranch creates name at HEAD, optionally checking it out.
	CreateBranch(name string, checkout bool) error
}

// Logger writes categorized log entries.
// An empty issue key logs to the global log only.
type Logger interface {
	Debug(issueKey, category, msg string)
	Info(issueKey, category, msg string)
	Warn(issueKey, category, msg string)
	Error(issueKey, category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

func (NopLogger) Debug(_, _, _ string) {}
func (NopLogger) Info(_, _, _ string)  {}
func (NopLogger) Warn(_, _, _ string)  {}
func (NopLogger) Error(_, _, _ string) {}

// ConfigInfo describes a config file location.
type ConfigInfo struct {
	Path   string
	Exists bool
}

// ConfigLoader loads the effective configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- local).
	Load() (*Config, error)
}

// ConfigManager manages config files.
type ConfigManager interface {
	// GlobalConfigInfo returns the global config file info.
	GlobalConfigInfo() ConfigInfo

	// LocalConfigInfo returns the working-directory config file info.
	LocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes a template to the global config path.
	InitGlobalConfig(cfg *Config) error

	// InitLocalConfig writes a template to the working-directory config path.
	InitLocalConfig(cfg *Config) error
}

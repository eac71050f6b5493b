// Package cli provides the command-line interface for jira-clean-copy.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/jira-clean-copy/internal/app"
	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// Command group IDs.
const (
	groupCopy  = "copy"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for jiracopy.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "jiracopy",
		Short: "Copy Jira issues as branch names, links or summaries",
		Long: `jiracopy copies a clean representation of a Jira issue to the clipboard.

Give it an issue URL (or a bare key like ABC-123 when jira.base_url is set)
and pick a representation:

  branch    ABC-123-Fix-login-bug
  plain     ABC-123: Fix login bug
  markdown  [ABC-123: Fix login bug](https://jira.example.com/browse/ABC-123)
  url       https://jira.example.com/browse/ABC-123

Run without arguments to open the interactive UI, where Alt+C, Alt+Z,
Alt+M and Alt+X copy the issue in the location bar.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupCopy, Title: "Copy Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	copyCmd := newCopyCommand(c)
	copyCmd.GroupID = groupCopy

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupCopy

	locateCmd := newLocateCommand(c)
	locateCmd.GroupID = groupCopy

	branchCmd := newBranchCommand(c)
	branchCmd.GroupID = groupCopy

	menuCmd := newMenuCommand(c)
	menuCmd.GroupID = groupCopy

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupCopy

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		copyCmd,
		showCmd,
		locateCmd,
		branchCmd,
		menuCmd,
		tuiCmd,
		configCmd,
	)

	return root
}

// resolvePage turns a command argument into the page it names.
func resolvePage(c *app.Container, arg string) (domain.Page, error) {
	var baseURL string
	if c != nil && c.AppConfig != nil {
		baseURL = c.AppConfig.Jira.BaseURL
	}
	u, err := domain.ResolvePageURL(arg, baseURL)
	if err != nil {
		return nil, err
	}
	return domain.StaticPage{URL: u}, nil
}

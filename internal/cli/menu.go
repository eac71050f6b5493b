package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/jira-clean-copy/internal/app"
	"github.com/runoshun/jira-clean-copy/internal/domain"
	"github.com/runoshun/jira-clean-copy/internal/usecase"
)

// newMenuCommand creates the menu command.
func newMenuCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "List or run the copy menu commands",
		Long: `List or run the commands offered in the copy menu.

The same commands appear in the interactive UI's command palette.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newMenuListCommand(c))
	cmd.AddCommand(newMenuRunCommand(c))

	return cmd
}

// registerMenu registers the default menu commands against page.
func registerMenu(cmd *cobra.Command, c *app.Container, page domain.Page) error {
	_, err := c.RegisterMenuCommandsUseCase().Execute(cmd.Context(), usecase.RegisterMenuCommandsInput{
		Registry: c.Menu,
		Page:     page,
	})
	return err
}

// newMenuListCommand creates the menu list subcommand.
func newMenuListCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menu commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := registerMenu(cmd, c, domain.StaticPage{}); err != nil {
				return err
			}
			for _, label := range c.Menu.Commands() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	}
	return cmd
}

// newMenuRunCommand creates the menu run subcommand.
func newMenuRunCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <label> <issue-url|KEY>",
		Short: "Run a menu command against an issue",
		Long: `Run a menu command against an issue.

Menu commands report failures only in the log file, like the interactive UI.`,
		Example: `  jiracopy menu run "Copy as Markdown" https://jira.example.com/browse/ABC-123`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := resolvePage(c, args[1])
			if err != nil {
				return err
			}
			if err := registerMenu(cmd, c, page); err != nil {
				return err
			}
			return c.Menu.Run(args[0])
		},
	}
	return cmd
}

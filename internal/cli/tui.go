package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/jira-clean-copy/internal/app"
	"github.com/runoshun/jira-clean-copy/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running jiracopy without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [issue-url|KEY]",
		Short: "Launch interactive TUI",
		Long: `Launch the interactive terminal user interface.

Paste an issue URL into the location bar, then press Alt+C (branch),
Alt+Z (url), Alt+M (markdown) or Alt+X (plain), or open the command
palette with ctrl+p.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				page, err := resolvePage(c, args[0])
				if err != nil {
					return err
				}
				return launchTUIAtFunc(c, page.Location().String())
			}
			return launchTUIFunc(c)
		},
	}
	return cmd
}

// launchTUIAtFunc is a function variable for launching the TUI at a location, allowing it to be mocked in tests.
var launchTUIAtFunc = tui.Run

// launchTUI launches the TUI with an empty location bar.
func launchTUI(c *app.Container) error {
	return launchTUIAtFunc(c, "")
}

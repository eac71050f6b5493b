package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/jira-clean-copy/internal/app"
	"github.com/runoshun/jira-clean-copy/internal/domain"
	"github.com/runoshun/jira-clean-copy/internal/usecase"
)

// Output formats for the show command.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func modeNames() string {
	names := make([]string, 0, len(domain.AllModes()))
	for _, m := range domain.AllModes() {
		names = append(names, string(m))
	}
	return strings.Join(names, "|")
}

// newCopyCommand creates the copy command.
func newCopyCommand(c *app.Container) *cobra.Command {
	var modeFlag string
	var printText bool

	cmd := &cobra.Command{
		Use:   "copy <issue-url|KEY>",
		Short: "Copy an issue to the clipboard",
		Long: `Copy an issue to the clipboard and show a confirmation.

The issue key is read from the selectedIssue query parameter when present,
otherwise from a /browse/KEY path. The summary is fetched from Jira on
every call.

Modes: ` + modeNames(),
		Example: `  jiracopy copy https://jira.example.com/browse/ABC-123
  jiracopy copy --mode markdown ABC-123
  jiracopy copy -m url 'https://jira.example.com/jira/software/projects/ABC/boards/1?selectedIssue=ABC-7'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseMode(modeFlag)
			if err != nil {
				return err
			}
			page, err := resolvePage(c, args[0])
			if err != nil {
				return err
			}

			out, err := c.CopyIssueUseCase().Execute(cmd.Context(), usecase.CopyIssueInput{
				Page: page,
				Mode: mode,
			})
			if err != nil {
				return err
			}
			if !out.Copied {
				return fmt.Errorf("%w: %s", domain.ErrIssueNotFound, args[0])
			}

			if printText {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", string(domain.ModeBranch), "Copy mode ("+modeNames()+")")
	cmd.Flags().BoolVarP(&printText, "print", "p", false, "Also print the copied text to stdout")

	return cmd
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <issue-url|KEY>",
		Short: "Show every representation of an issue",
		Long: `Fetch an issue and print it in every copy mode without touching the clipboard.

Output formats: text (default), json, yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := resolvePage(c, args[0])
			if err != nil {
				return err
			}

			out, err := c.ShowIssueUseCase().Execute(cmd.Context(), usecase.ShowIssueInput{Page: page})
			if err != nil {
				return err
			}

			return writeShowOutput(cmd.OutOrStdout(), out, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text|json|yaml)")

	return cmd
}

// writeShowOutput renders a ShowIssue result in the requested format.
func writeShowOutput(w io.Writer, out *usecase.ShowIssueOutput, format string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case outputText, "":
		_, _ = fmt.Fprintf(w, "Key:     %s\n", out.Issue.Key)
		_, _ = fmt.Fprintf(w, "Summary: %s\n", out.Issue.Summary)
		_, _ = fmt.Fprintln(w)
		for _, r := range out.Renderings {
			_, _ = fmt.Fprintf(w, "%-9s %s\n", r.Mode, r.Text)
		}
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
	return nil
}

// newLocateCommand creates the locate command.
func newLocateCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate <issue-url|KEY>",
		Short: "Print the issue key found in a URL",
		Long: `Print the issue key found in a URL without contacting Jira.

Exits with an error when the URL does not name an issue.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := resolvePage(c, args[0])
			if err != nil {
				return err
			}
			key, ok := domain.LocateIssueKey(page.Location())
			if !ok {
				return fmt.Errorf("%w: %s", domain.ErrIssueNotFound, args[0])
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
	return cmd
}

// newBranchCommand creates the branch command.
func newBranchCommand(c *app.Container) *cobra.Command {
	var checkout bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "branch <issue-url|KEY>",
		Short: "Create a git branch named after an issue",
		Long: `Create a git branch named after an issue at HEAD of the current repository.

The branch name is the branch-mode copy text, for example ABC-123-Fix-login-bug.

Error conditions:
- Not inside a git repository: error
- Branch already exists: error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := resolvePage(c, args[0])
			if err != nil {
				return err
			}

			var branches domain.BranchCreator
			if !dryRun {
				branches, err = c.BranchCreator()
				if err != nil {
					return err
				}
			}

			out, err := c.CreateBranchUseCase(branches).Execute(cmd.Context(), usecase.CreateBranchInput{
				Page:     page,
				Checkout: checkout,
				DryRun:   dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case !out.Created:
				_, _ = fmt.Fprintln(w, out.Branch)
			case checkout:
				_, _ = fmt.Fprintf(w, "Switched to a new branch '%s' (from '%s')\n", out.Branch, out.Previous)
			default:
				_, _ = fmt.Fprintf(w, "Created branch '%s'\n", out.Branch)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&checkout, "checkout", "c", false, "Switch to the new branch")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the branch name without creating it")

	return cmd
}

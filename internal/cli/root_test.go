package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/jira-clean-copy/internal/app"
	"github.com/runoshun/jira-clean-copy/internal/domain"
	"github.com/runoshun/jira-clean-copy/internal/testutil"
)

// cliFixture bundles a container wired to mocks with the mocks themselves.
type cliFixture struct {
	container *app.Container
	issues    *testutil.MockIssueFetcher
	clipboard *testutil.MockClipboard
	notifier  *testutil.MockNotifier
}

func newCLIFixture(t *testing.T, appConfig *domain.Config) *cliFixture {
	t.Helper()

	issues := testutil.NewMockIssueFetcher(
		domain.Issue{Key: "ABC-123", Summary: "Fix login bug!"},
		domain.Issue{Key: "XYZ-9", Summary: "Hello, World"},
	)
	cb := &testutil.MockClipboard{}
	notifier := &testutil.MockNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c := app.NewWithDeps(app.Config{WorkDir: t.TempDir()}, appConfig, issues, cb, notifier, logger)
	return &cliFixture{
		container: c,
		issues:    issues,
		clipboard: cb,
		notifier:  notifier,
	}
}

// run executes the root command with args and returns stdout and stderr.
func (f *cliFixture) run(args ...string) (string, string, error) {
	root := NewRootCommand(f.container, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	// Save original function and restore after test
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	// Create root command with nil container (not used in this test)
	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "launchTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "launchTUIFunc should not be called when --help is provided")
	assert.Contains(t, buf.String(), "Copy Commands:")
	assert.Contains(t, buf.String(), "Setup Commands:")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Warnings = []string{"unknown key \"jira.token\""}
	f := newCLIFixture(t, cfg)

	_, stderr, err := f.run("locate", "https://jira.example.com/browse/ABC-123")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown key \"jira.token\"")
}

func TestTUICommand_WithArgument(t *testing.T) {
	originalAt := launchTUIAtFunc
	defer func() {
		launchTUIAtFunc = originalAt
	}()

	var gotLocation string
	launchTUIAtFunc = func(_ *app.Container, location string) error {
		gotLocation = location
		return nil
	}

	cfg := domain.NewDefaultConfig()
	cfg.Jira.BaseURL = "https://jira.example.com"
	f := newCLIFixture(t, cfg)

	_, _, err := f.run("tui", "ABC-123")

	require.NoError(t, err)
	assert.Equal(t, "https://jira.example.com/browse/ABC-123", gotLocation)
}

func TestTUICommand_NoArgument(t *testing.T) {
	originalAt := launchTUIAtFunc
	defer func() {
		launchTUIAtFunc = originalAt
	}()

	gotLocation := "unset"
	launchTUIAtFunc = func(_ *app.Container, location string) error {
		gotLocation = location
		return nil
	}

	f := newCLIFixture(t, nil)
	_, _, err := f.run("tui")

	require.NoError(t, err)
	assert.Equal(t, "", gotLocation)
}

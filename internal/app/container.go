// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/jira-clean-copy/internal/domain"
	"github.com/runoshun/jira-clean-copy/internal/infra/clipboard"
	"github.com/runoshun/jira-clean-copy/internal/infra/config"
	"github.com/runoshun/jira-clean-copy/internal/infra/git"
	"github.com/runoshun/jira-clean-copy/internal/infra/jira"
	"github.com/runoshun/jira-clean-copy/internal/infra/logging"
	"github.com/runoshun/jira-clean-copy/internal/infra/menu"
	"github.com/runoshun/jira-clean-copy/internal/infra/notify"
	"github.com/runoshun/jira-clean-copy/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir  string // Directory holding the local config and the git repository
	StateDir string // Directory for log files
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Issues        domain.IssueFetcher
	Clipboard     domain.Clipboard
	Notifier      domain.Notifier
	IssueLog      domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Menu      *menu.Registry
	Logger    *slog.Logger
	AppConfig *domain.Config

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container rooted at dir.
// Configuration errors fall back to defaults and are reported as warnings.
func New(dir string) (*Container, error) {
	cfg := Config{
		WorkDir:  dir,
		StateDir: logging.DefaultStateDir(),
	}

	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, err.Error())
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	issueLog := logging.New(cfg.StateDir, logging.ParseLevel(appConfig.Log.Level))

	c := &Container{
		Issues:        jira.NewClient(appConfig.Jira.SessionCookie, appConfig.LookupTimeout()),
		Clipboard:     clipboard.New(),
		IssueLog:      issueLog,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		Menu:          menu.NewRegistry(),
		Logger:        logger,
		AppConfig:     appConfig,
		closers:       []io.Closer{issueLog},
		Config:        cfg,
	}
	c.Notifier = c.NewToast(notify.StaticSurface(notify.NewTerminalSurface(os.Stderr)))
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, issues domain.IssueFetcher, cb domain.Clipboard, notifier domain.Notifier, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Issues:    issues,
		Clipboard: cb,
		Notifier:  notifier,
		IssueLog:  domain.NopLogger{},
		Menu:      menu.NewRegistry(),
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// NewToast creates a toast on the surfaces made by factory. When enabled
// in config, messages are also raised as desktop notifications.
func (c *Container) NewToast(factory notify.SurfaceFactory) *notify.Toast {
	if c.AppConfig.Notify.Desktop {
		primary := factory
		factory = func() (notify.Surface, bool) {
			s, ok := primary()
			if !ok {
				return nil, false
			}
			return notify.MultiSurface{s, notify.NewDesktopSurface()}, true
		}
	}
	return notify.NewToast(factory, c.AppConfig.DismissDelay())
}

// KeyBindings returns the configured shortcut table.
func (c *Container) KeyBindings() domain.KeyBindings {
	bindings, _ := c.AppConfig.KeyBindings()
	return bindings
}

// BranchCreator opens the git repository containing the working directory.
func (c *Container) BranchCreator() (domain.BranchCreator, error) {
	return git.NewClient(c.Config.WorkDir)
}

// Close releases resources held by the container.
// Every failure is logged; the first one is returned.
func (c *Container) Close() error {
	var firstErr error
	for _, cl := range c.closers {
		err := cl.Close()
		if err == nil {
			continue
		}
		if c.Logger != nil {
			c.Logger.Warn("failed to release resource", "error", err)
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// UseCase factory methods

// CopyIssueUseCase returns a new CopyIssue use case.
func (c *Container) CopyIssueUseCase() *usecase.CopyIssue {
	return usecase.NewCopyIssue(c.Issues, c.Clipboard, c.Notifier, c.IssueLog)
}

// HandleKeyUseCase returns a new HandleKey use case using the configured bindings.
func (c *Container) HandleKeyUseCase() *usecase.HandleKey {
	return usecase.NewHandleKey(c.CopyIssueUseCase(), c.KeyBindings())
}

// RegisterMenuCommandsUseCase returns a new RegisterMenuCommands use case.
func (c *Container) RegisterMenuCommandsUseCase() *usecase.RegisterMenuCommands {
	return usecase.NewRegisterMenuCommands(c.CopyIssueUseCase(), c.IssueLog)
}

// ShowIssueUseCase returns a new ShowIssue use case.
func (c *Container) ShowIssueUseCase() *usecase.ShowIssue {
	return usecase.NewShowIssue(c.Issues)
}

// CreateBranchUseCase returns a new CreateBranch use case.
func (c *Container) CreateBranchUseCase(branches domain.BranchCreator) *usecase.CreateBranch {
	return usecase.NewCreateBranch(c.Issues, branches, c.IssueLog)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

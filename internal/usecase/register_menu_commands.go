package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// RegisterMenuCommandsInput contains the host menu and the page the commands act on.
type RegisterMenuCommandsInput struct {
	Registry domain.CommandRegistry
	Page     domain.Page
	Commands []domain.MenuCommand // nil = domain.DefaultMenuCommands()
}

// RegisterMenuCommandsOutput lists the registered labels.
type RegisterMenuCommandsOutput struct {
	Labels []string
}

// RegisterMenuCommands binds copy commands to the host command menu.
type RegisterMenuCommands struct {
	copyIssue *CopyIssue
	logger    domain.Logger
}

// NewRegisterMenuCommands creates a new RegisterMenuCommands use case.
func NewRegisterMenuCommands(copyIssue *CopyIssue, logger domain.Logger) *RegisterMenuCommands {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &RegisterMenuCommands{
		copyIssue: copyIssue,
		logger:    logger,
	}
}

// Execute registers each command. Callbacks read the page location when
// invoked, not when registered. Callback failures are logged and dropped.
func (uc *RegisterMenuCommands) Execute(ctx context.Context, in RegisterMenuCommandsInput) (*RegisterMenuCommandsOutput, error) {
	commands := in.Commands
	if commands == nil {
		commands = domain.DefaultMenuCommands()
	}

	labels := make([]string, 0, len(commands))
	for _, cmd := range commands {
		mode := cmd.Mode
		label := cmd.Label
		callback := func() {
			if _, err := uc.copyIssue.Execute(ctx, CopyIssueInput{Page: in.Page, Mode: mode}); err != nil {
				uc.logger.Warn("", "menu", fmt.Sprintf("%s: %v", label, err))
			}
		}
		if err := in.Registry.Register(label, callback); err != nil {
			return nil, fmt.Errorf("register %q: %w", label, err)
		}
		labels = append(labels, label)
	}

	return &RegisterMenuCommandsOutput{Labels: labels}, nil
}

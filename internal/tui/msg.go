package tui

import "github.com/runoshun/jira-clean-copy/internal/usecase"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgKeyHandled is sent when a shortcut key event has been processed.
type MsgKeyHandled struct {
	Output *usecase.HandleKeyOutput
}

func (MsgKeyHandled) sealed() {}

// MsgMenuRan is sent after a palette command has run.
type MsgMenuRan struct {
	Label string
}

func (MsgMenuRan) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgToastShow is sent by the toast surface to display a message.
type MsgToastShow struct {
	Text string
}

func (MsgToastShow) sealed() {}

// MsgToastHide is sent by the toast surface to remove the message.
type MsgToastHide struct{}

func (MsgToastHide) sealed() {}

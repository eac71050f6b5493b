package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/jira-clean-copy/internal/app"
	"github.com/runoshun/jira-clean-copy/internal/domain"
	"github.com/runoshun/jira-clean-copy/internal/usecase"
)

// repeatWindow is the gap below which an identical shortcut counts as
// terminal auto-repeat. Terminals do not report key repeat themselves.
const repeatWindow = 80 * time.Millisecond

// paletteItem is a command palette entry.
type paletteItem string

func (i paletteItem) Title() string       { return string(i) }
func (i paletteItem) Description() string { return "" }
func (i paletteItem) FilterValue() string { return string(i) }

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	handleKey *usecase.HandleKey
	page      *locationBar
	err       error
	now       func() time.Time

	// State
	warnings   []string
	toast      string
	lastCopied string
	lastCode   string
	lastAt     time.Time

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	palette  list.Model
	location textinput.Model

	// Numeric state (smaller types last)
	mode     Mode
	width    int
	height   int
	selected bool
}

// New creates a new TUI Model with the given container, showing location
// in the location bar. The container's menu receives the copy commands.
func New(c *app.Container, location string) *Model {
	li := textinput.New()
	li.Placeholder = "https://your-domain.atlassian.net/browse/ABC-123"
	li.Prompt = ""
	li.CharLimit = 2048
	// ctrl+a selects the location instead of jumping to line start.
	li.KeyMap.LineStart = key.NewBinding(key.WithKeys("home"))
	li.SetValue(location)
	li.Focus()

	page := &locationBar{}
	page.set(location, false)

	handleKey := c.HandleKeyUseCase()

	m := &Model{
		container: c,
		handleKey: handleKey,
		page:      page,
		now:       time.Now,
		warnings:  c.AppConfig.Warnings,
		keys:      DefaultKeyMap(handleKey.Bindings()),
		styles:    DefaultStyles(),
		help:      help.New(),
		location:  li,
		mode:      ModeNormal,
	}

	if _, err := c.RegisterMenuCommandsUseCase().Execute(context.Background(), usecase.RegisterMenuCommandsInput{
		Registry: c.Menu,
		Page:     page,
	}); err != nil {
		m.err = err
	}

	m.palette = newPalette(c.Menu.Commands())
	return m
}

func newPalette(labels []string) list.Model {
	items := make([]list.Item, 0, len(labels))
	for _, l := range labels {
		items = append(items, paletteItem(l))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 40, len(items)+2)
	l.Title = "Commands"
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run starts the TUI at location and blocks until it exits.
// Toast messages are shown inside the program.
func Run(c *app.Container, location string) error {
	surface := newProgramSurface()
	c.Notifier = c.NewToast(surface.factory())

	m := New(c, location)
	p := tea.NewProgram(m, tea.WithAltScreen())
	surface.attach(p)

	_, err := p.Run()
	return err
}

// keyEvent converts an alt+rune key press to a host neutral key event.
func (m *Model) keyEvent(msg tea.KeyMsg) (domain.KeyEvent, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return domain.KeyEvent{}, false
	}
	code := domain.KeyCodeFromRune(msg.Runes[0])
	if code == "" {
		return domain.KeyEvent{}, false
	}

	now := m.now()
	repeat := msg.Alt && code == m.lastCode && now.Sub(m.lastAt) < repeatWindow
	if msg.Alt {
		m.lastCode = code
		m.lastAt = now
	}

	return domain.KeyEvent{
		Code:   code,
		Meta:   msg.Alt,
		Repeat: repeat,
	}, true
}

// dispatchKey runs the shortcut use case off the update loop.
// A failed lookup is already logged by the copy use case and leaves the
// screen unchanged, like a shortcut that matched nothing.
func (m *Model) dispatchKey(ev domain.KeyEvent) tea.Cmd {
	uc := m.handleKey
	page := m.page
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.HandleKeyInput{
			Page:  page,
			Event: ev,
		})
		if err != nil {
			return MsgKeyHandled{}
		}
		return MsgKeyHandled{Output: out}
	}
}

// runMenu invokes a palette command off the update loop.
func (m *Model) runMenu(label string) tea.Cmd {
	registry := m.container.Menu
	return func() tea.Msg {
		if err := registry.Run(label); err != nil {
			return MsgError{Err: err}
		}
		return MsgMenuRan{Label: label}
	}
}

// syncPage publishes the location bar state to the page.
func (m *Model) syncPage() {
	m.page.set(m.location.Value(), m.selected)
}

// IssueKey returns the issue key in the location bar.
func (m *Model) IssueKey() (string, bool) {
	return domain.LocateIssueKey(m.page.Location())
}

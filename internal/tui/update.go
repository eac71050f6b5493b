package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.location.Width = max(msg.Width-20, 20)
		m.palette.SetWidth(min(max(msg.Width-8, 20), 60))
		return m, nil

	case MsgKeyHandled:
		if out := msg.Output; out != nil && out.Copy != nil && out.Copy.Copied {
			m.lastCopied = out.Copy.Text
			m.err = nil
		}
		return m, nil

	case MsgMenuRan:
		return m, nil

	case MsgToastShow:
		m.toast = msg.Text
		return m, nil

	case MsgToastHide:
		m.toast = ""
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.location, cmd = m.location.Update(msg)
	return m, cmd
}

// handleKeyMsg routes key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePalette:
		return m.handlePaletteKey(msg)
	case ModeHelp:
		m.mode = ModeNormal
		return m, nil
	case ModeNormal:
	}

	if ev, ok := m.keyEvent(msg); ok && ev.Meta {
		if _, bound := m.handleKey.Bindings().Lookup(ev.Code); bound {
			return m, m.dispatchKey(ev)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Palette):
		m.palette.Select(0)
		m.mode = ModePalette
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		m.selected = m.location.Value() != ""
		m.syncPage()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.selected = false
		m.err = nil
		m.syncPage()
		return m, nil
	}

	// Any other key edits or moves within the location and drops the selection.
	m.selected = false
	var cmd tea.Cmd
	m.location, cmd = m.location.Update(msg)
	m.syncPage()
	return m, cmd
}

// handlePaletteKey handles keys while the command palette is open.
func (m *Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Palette):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeNormal
		item, ok := m.palette.SelectedItem().(paletteItem)
		if !ok {
			return m, nil
		}
		return m, m.runMenu(string(item))
	}

	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)
	return m, cmd
}

package tui

import (
	"strings"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModePalette:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the location bar, issue status and palette.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("jira-clean-copy"))
	b.WriteString("\n\n")

	for _, w := range m.warnings {
		b.WriteString(m.styles.Warning.Render("Warning: "+w) + "\n")
	}
	if len(m.warnings) > 0 {
		b.WriteString("\n")
	}

	input := m.location.View()
	if m.selected {
		input = m.styles.Selected.Render(m.location.Value())
	}
	b.WriteString(m.styles.Label.Render("Location"))
	b.WriteString(m.styles.Location.Render(input))
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render("Issue"))
	if key, ok := m.IssueKey(); ok {
		b.WriteString(m.styles.IssueKey.Render(key))
	} else {
		b.WriteString(m.styles.Muted.Render("no issue key in location"))
	}
	b.WriteString("\n")

	if m.selected {
		b.WriteString(m.styles.Label.Render(""))
		b.WriteString(m.styles.Muted.Render("text selected, shortcuts paused"))
		b.WriteString("\n")
	}

	if m.lastCopied != "" {
		b.WriteString(m.styles.Label.Render("Copied"))
		b.WriteString(m.styles.Copied.Render(m.lastCopied))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.mode == ModePalette {
		b.WriteString("\n")
		b.WriteString(m.styles.Palette.Render(
			m.styles.PaletteTitle.Render("Commands") + "\n" + m.palette.View(),
		))
		b.WriteString("\n")
	}

	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Toast.Render(m.toast))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return b.String()
}

// viewHelp renders the full key reference.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("press any key to return"))
	return b.String()
}

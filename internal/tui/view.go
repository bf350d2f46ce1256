package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	content := m.renderContent()
	switch {
	case m.keybinds != nil:
		content = m.keybinds.View(m.width, m.height)
	case m.picker != nil:
		content = m.picker.View(m.width, m.height)
	}
	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// renderContent produces the string content for the view: grid pane on
// the left, CSV pane on the right, status bar at the bottom.
func (m Model) renderContent() string {
	if m.width == 0 {
		return ""
	}

	contentH := m.height - statusRows
	gridLines := m.renderGrid()
	csvLines := m.renderCSVPane()

	var b strings.Builder
	for row := 0; row < contentH; row++ {
		b.WriteString(lineAt(gridLines, row, m.layout.grid.Dx()))
		b.WriteString(m.styles.Border.Render("│"))
		b.WriteString(lineAt(csvLines, row, m.layout.csv.Dx()))
		b.WriteByte('\n')
	}

	m.renderStatusBar(&b)
	return b.String()
}

// lineAt returns the row'th line, or a blank line of the pane width when
// the pane has fewer lines than the content area.
func lineAt(lines []string, row, width int) string {
	if row < len(lines) {
		return lines[row]
	}
	if width < 0 {
		width = 0
	}
	return strings.Repeat(" ", width)
}

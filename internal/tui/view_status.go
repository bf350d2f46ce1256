package tui

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
)

// mode returns the status bar mode label.
func (m Model) mode() string {
	switch {
	case m.editing():
		return "EDIT"
	case m.bulkFocused():
		return "CSV"
	}
	return "GRID"
}

// cellLabel is the spreadsheet-style reference of the selected cell.
func (m Model) cellLabel() string {
	ref := m.sm.Input.Selected.Ref
	return colName(ref.Col) + strconv.Itoa(ref.Row+1)
}

// renderStatusBar writes the status separator and bar.
func (m Model) renderStatusBar(b *strings.Builder) {
	b.WriteString(m.styles.Border.Render(strings.Repeat("─", m.width)))
	b.WriteByte('\n')

	rows, cols := m.sm.Table.Size()

	var leftParts []string
	leftParts = append(leftParts, m.styles.StatusText.Render(" "+m.sheetID))
	leftParts = append(leftParts,
		m.styles.StatusText.Render(strconv.Itoa(rows)+"x"+strconv.Itoa(cols)))
	if !m.bulkFocused() {
		leftParts = append(leftParts, m.styles.StatusText.Render(m.cellLabel()))
	}
	left := strings.Join(leftParts, m.styles.StatusText.Render("  "))

	var rightParts []string
	rightParts = append(rightParts, m.styles.StatusText.Render("ctrl+h help"))
	rightParts = append(rightParts, m.styles.StatusMode.Render(m.mode()))
	right := strings.Join(rightParts, m.styles.StatusText.Render("  "))

	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := m.width - leftW - rightW - 1
	if gap < 0 {
		gap = 0
	}
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(right)
	b.WriteString(" ")
}

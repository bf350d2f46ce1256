package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// renderCSVPane renders the right pane: the CSV text area, framed by a
// one-line title. Each line is padded or clipped to the pane width.
func (m Model) renderCSVPane() []string {
	c := m.layout.csv
	w, h := c.Dx(), c.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	title := " csv"
	if added, removed := m.pendingDiff(); added+removed > 0 {
		title += "  " + m.styles.DiffAdd.Render("+"+strconv.Itoa(added)) +
			" " + m.styles.DiffDel.Render("-"+strconv.Itoa(removed))
	}

	lines := make([]string, 0, h)
	lines = append(lines, padLine(m.styles.Muted.Render(title), w))

	for _, l := range strings.Split(m.csvArea.View(), "\n") {
		if len(lines) >= h {
			break
		}
		if ansi.StringWidth(l) > w {
			l = ansi.Truncate(l, w, "")
		}
		lines = append(lines, padLine(l, w))
	}
	return lines
}

package tui

import (
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// pendingDiff counts the lines the CSV pane has added and removed
// relative to the encoded table it was seeded from. Zero while the pane
// text is untouched.
func (m Model) pendingDiff() (added, removed int) {
	if !m.bulkFocused() {
		return 0, 0
	}
	return diffStats(m.csvBase, m.csvArea.Value())
}

// diffStats counts added and removed lines between two texts.
func diffStats(before, after string) (added, removed int) {
	if before == after {
		return 0, 0
	}
	edits := myers.ComputeEdits(span.URIFromPath("sheet.csv"), before, after)
	unified := gotextdiff.ToUnified("before", "after", before, edits)
	for _, h := range unified.Hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case gotextdiff.Insert:
				added++
			case gotextdiff.Delete:
				removed++
			}
		}
	}
	return added, removed
}

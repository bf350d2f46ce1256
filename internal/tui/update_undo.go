package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/tably/internal/sheet"
)

func (m *Model) handleUndo() (Model, tea.Cmd) {
	m.restore(m.hist.Undo)
	return *m, nil
}

func (m *Model) handleRedo() (Model, tea.Cmd) {
	m.restore(m.hist.Redo)
	return *m, nil
}

// restore swaps in a table from the history stack. Restored states are
// persisted like any other mutation but never re-recorded.
func (m *Model) restore(fn func(sheet.Table) (sheet.Table, bool)) {
	tbl, ok := fn(m.sm.Table)
	if !ok {
		return
	}
	m.sm, _ = m.sm.ReplaceTable(tbl)
	m.scrollIntoView()
	m.persist()
	m.syncCSVPane()
}

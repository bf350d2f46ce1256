package tui

import (
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/tably/internal/sheet"
)

// updateGrid processes a key event while the grid owns the focus. Keys
// without a handler fall through to the printable-rune check, which
// seeds a fresh cell edit with the typed character.
func (m Model) updateGrid(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if handler := m.keyPressHandlers()[msg.Keystroke()]; handler != nil {
		return handler(&m)
	}
	if text := msg.Text; text != "" && utf8.RuneCountInString(text) == 1 {
		m.startEdit(text)
	}
	return m, nil
}

func (m *Model) keyPressHandlers() map[string]func(*Model) (Model, tea.Cmd) {
	return map[string]func(*Model) (Model, tea.Cmd){
		"ctrl+c": (*Model).handleQuit,
		"ctrl+q": (*Model).handleQuit,
		"up":     (*Model).handleUp,
		"down":   (*Model).handleDown,
		"left":   (*Model).handleLeft,
		"right":  (*Model).handleRight,
		"enter":  (*Model).handleEnter,
		"tab":    (*Model).handleTab,
		"ctrl+o": (*Model).handleInsertRowAfter,
		"alt+o":  (*Model).handleInsertRowBefore,
		"ctrl+l": (*Model).handleInsertColAfter,
		"alt+l":  (*Model).handleInsertColBefore,
		"ctrl+d": (*Model).handleDeleteRow,
		"alt+d":  (*Model).handleDeleteCol,
		"ctrl+z": (*Model).handleUndo,
		"ctrl+y": (*Model).handleRedo,
		"ctrl+f": (*Model).handleCtrlF,
		"ctrl+n": (*Model).handleCtrlN,
		"ctrl+h": (*Model).handleCtrlH,
	}
}

func (m *Model) handleQuit() (Model, tea.Cmd) {
	return *m, m.flushAndQuit()
}

func (m *Model) handleUp() (Model, tea.Cmd) {
	m.moveSelection(sheet.Up)
	return *m, nil
}

func (m *Model) handleDown() (Model, tea.Cmd) {
	m.moveSelection(sheet.Down)
	return *m, nil
}

func (m *Model) handleLeft() (Model, tea.Cmd) {
	m.moveSelection(sheet.Left)
	return *m, nil
}

func (m *Model) handleRight() (Model, tea.Cmd) {
	m.moveSelection(sheet.Right)
	return *m, nil
}

func (m *Model) handleEnter() (Model, tea.Cmd) {
	m.startEdit("")
	return *m, nil
}

func (m *Model) handleTab() (Model, tea.Cmd) {
	m.enterCSVPane()
	return *m, nil
}

func (m *Model) handleInsertRowAfter() (Model, tea.Cmd) {
	m.structuralEdit((sheet.Model).InsertRowAfter)
	return *m, nil
}

func (m *Model) handleInsertRowBefore() (Model, tea.Cmd) {
	m.structuralEdit((sheet.Model).InsertRowBefore)
	return *m, nil
}

func (m *Model) handleInsertColAfter() (Model, tea.Cmd) {
	m.structuralEdit((sheet.Model).InsertColAfter)
	return *m, nil
}

func (m *Model) handleInsertColBefore() (Model, tea.Cmd) {
	m.structuralEdit((sheet.Model).InsertColBefore)
	return *m, nil
}

func (m *Model) handleDeleteRow() (Model, tea.Cmd) {
	m.structuralEdit((sheet.Model).DeleteRow)
	return *m, nil
}

func (m *Model) handleDeleteCol() (Model, tea.Cmd) {
	m.structuralEdit((sheet.Model).DeleteCol)
	return *m, nil
}

func (m *Model) structuralEdit(op func(sheet.Model) (sheet.Model, bool)) {
	before := m.sm.Table
	var changed bool
	m.sm, changed = op(m.sm)
	m.scrollIntoView()
	m.applyChange(before, changed)
}

func (m *Model) handleCtrlF() (Model, tea.Cmd) {
	m.openSheetPicker()
	return *m, nil
}

func (m *Model) handleCtrlN() (Model, tea.Cmd) {
	m.openNewSheet()
	return *m, nil
}

func (m *Model) handleCtrlH() (Model, tea.Cmd) {
	m.openKeybindsModal()
	return *m, nil
}

func (m *Model) flushAndQuit() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		st.Flush()
		return tea.Quit()
	}
}

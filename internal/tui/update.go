package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/tably/internal/csvio"
	"github.com/xonecas/tably/internal/sheet"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	// -- Paste (bracketed paste into the focused editor) ---------------------
	case tea.PasteMsg:
		m.insertPaste(msg.Content)
		return m, nil

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		return m.routeKeyPress(msg)
	}

	return m, nil
}

// routeKeyPress dispatches a key by mode: modals first, then the cell
// editor, then the CSV pane, then grid navigation. While an editor is
// active, grid navigation keys are suppressed entirely.
func (m Model) routeKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.picker != nil:
		return m.updatePicker(msg)
	case m.keybinds != nil:
		return m.updateKeybinds(msg)
	case m.editing():
		return m.updateCellEdit(msg)
	case m.bulkFocused():
		return m.updateCSVPane(msg)
	}
	return m.updateGrid(msg)
}

// ---------------------------------------------------------------------------
// Cell edit mode
// ---------------------------------------------------------------------------

func (m Model) updateCellEdit(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.Keystroke() {
	case "enter":
		before := m.sm.Table
		var changed bool
		m.sm, changed = m.sm.Commit()
		m.cellInput.Blur()
		m.cellInput.SetValue("")
		m.applyChange(before, changed)
		return m, nil
	case "esc":
		m.sm = m.sm.CancelEdit()
		m.cellInput.Blur()
		m.cellInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.cellInput, cmd = m.cellInput.Update(msg)
	m.sm = m.sm.SetBuffer(m.cellInput.Value())
	return m, cmd
}

// startEdit enters cell edit mode with the given seed buffer. The focus
// move onto the cell editor is a best-effort directive; the core state
// transition stands whether or not the component takes focus.
func (m *Model) startEdit(seed string) {
	next, focus := m.sm.StartEdit(seed)
	m.sm = next
	if focus {
		m.cellInput.SetValue(seed)
		m.cellInput.CursorEnd()
		m.cellInput.Focus()
	}
}

// ---------------------------------------------------------------------------
// CSV pane (bulk text selection)
// ---------------------------------------------------------------------------

func (m Model) updateCSVPane(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.Keystroke() {
	case "esc", "tab":
		// Abandon pending text and return to the grid.
		m.leaveCSVPane()
		m.syncCSVPane()
		return m, nil
	case "ctrl+s":
		// Apply the pane text as a bulk edit.
		before := m.sm.Table
		tbl := csvio.Decode(m.csvArea.Value())
		var changed bool
		m.sm, changed = m.sm.ReplaceTable(tbl)
		m.leaveCSVPane()
		m.applyChange(before, changed)
		m.syncCSVPane()
		return m, nil
	case "ctrl+c", "ctrl+q":
		return m, m.flushAndQuit()
	}

	var cmd tea.Cmd
	m.csvArea, cmd = m.csvArea.Update(msg)
	return m, cmd
}

// enterCSVPane moves focus onto the CSV text view.
func (m *Model) enterCSVPane() {
	m.lastRef = m.sm.Input.Selected.Ref
	m.sm = m.sm.SelectBulkText()
	m.syncCSVPane()
	m.csvArea.Focus()
}

// leaveCSVPane restores the cell selection held before the pane took
// focus, clamped to the (possibly replaced) table.
func (m *Model) leaveCSVPane() {
	m.csvArea.Blur()
	rows, cols := m.sm.Table.Size()
	ref := m.lastRef
	if ref.Row > rows-1 {
		ref.Row = rows - 1
	}
	if ref.Row < 0 {
		ref.Row = 0
	}
	if ref.Col > cols-1 {
		ref.Col = cols - 1
	}
	if ref.Col < 0 {
		ref.Col = 0
	}
	m.sm = m.sm.Select(ref)
}

// ---------------------------------------------------------------------------
// Paste
// ---------------------------------------------------------------------------

// insertPaste inserts pasted text into the focused editor. Ignored
// while the grid owns the focus.
func (m *Model) insertPaste(text string) {
	if text == "" {
		return
	}
	switch {
	case m.editing():
		m.cellInput.SetValue(m.cellInput.Value() + text)
		m.cellInput.CursorEnd()
		m.sm = m.sm.SetBuffer(m.cellInput.Value())
	case m.bulkFocused():
		m.csvArea.InsertString(text)
	}
}

// moveSelection shifts the grid cursor and keeps it scrolled into view.
func (m *Model) moveSelection(d sheet.Dir) {
	m.sm = m.sm.MoveSelection(d)
	m.scrollIntoView()
}

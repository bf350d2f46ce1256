package sheet

// SelectionKind discriminates the two selection variants.
type SelectionKind int

const (
	// SelectCell means a single cell is selected.
	SelectCell SelectionKind = iota
	// SelectBulk means focus is on the whole-table CSV text view.
	SelectBulk
)

// Selection is either one cell or the bulk text view.
type Selection struct {
	Kind SelectionKind
	Ref  Ref
}

// InputState tracks what is selected, whether it is being edited, and
// the transient edit buffer. Text is only meaningful while Editing is
// true (or while the bulk text view is focused, which is treated as
// always editing the whole document).
type InputState struct {
	Selected Selection
	Editing  bool
	Text     string
}

// Model is the whole editable state: the table plus input state. Every
// transition returns a new Model; intents are processed one at a time
// against the single current value, so no locking is ever needed.
type Model struct {
	Table Table
	Input InputState
}

// NewModel builds the initial state: cell (0,0) selected, not editing.
func NewModel(t Table) Model {
	return Model{
		Table: t,
		Input: InputState{Selected: Selection{Kind: SelectCell}},
	}
}

// Select moves selection to ref, discarding any edit buffer.
func (m Model) Select(ref Ref) Model {
	m.Input = InputState{Selected: Selection{Kind: SelectCell, Ref: ref}}
	return m
}

// SelectBulkText moves focus to the whole-table CSV text view.
func (m Model) SelectBulkText() Model {
	m.Input = InputState{Selected: Selection{Kind: SelectBulk}}
	return m
}

// StartEdit begins editing the currently selected cell with the given
// seed buffer. The second return reports whether an editor-focus request
// should be issued to the rendering layer; it is false (and the state is
// unchanged) when the bulk text view is focused.
func (m Model) StartEdit(seed string) (Model, bool) {
	if m.Input.Selected.Kind != SelectCell {
		return m, false
	}
	m.Input.Editing = true
	m.Input.Text = seed
	return m, true
}

// CancelEdit discards the in-progress buffer and returns to the idle
// selected state. No-op when not editing.
func (m Model) CancelEdit() Model {
	if !m.Input.Editing {
		return m
	}
	m.Input.Editing = false
	m.Input.Text = ""
	return m
}

// SetBuffer replaces the live edit buffer. No-op when not editing.
func (m Model) SetBuffer(text string) Model {
	if !m.Input.Editing {
		return m
	}
	m.Input.Text = text
	return m
}

// Commit parses the edit buffer, writes the resulting cell at the
// selection, and returns to the idle selected state. The second return
// reports whether the table changed (and persistence should run).
func (m Model) Commit() (Model, bool) {
	if !m.Input.Editing || m.Input.Selected.Kind != SelectCell {
		return m, false
	}
	ref := m.Input.Selected.Ref
	next := m.Table.SetCell(ref, ParseInput(m.Input.Text))
	changed := !next.Equal(m.Table)
	m.Table = next
	m.Input = InputState{Selected: Selection{Kind: SelectCell, Ref: ref}}
	return m, changed
}

// MoveSelection shifts the selected cell one step, clamped to bounds.
// Only valid while a cell is selected and not editing; no-op otherwise.
func (m Model) MoveSelection(d Dir) Model {
	if m.Input.Editing || m.Input.Selected.Kind != SelectCell {
		return m
	}
	next := Move(d, m.Input.Selected.Ref, m.Table)
	if next.Row < 0 || next.Col < 0 {
		// Zero-row or zero-col table: nowhere to go.
		return m
	}
	m.Input.Selected.Ref = next
	return m
}

// ReplaceTable swaps in a whole new table (the bulk CSV edit path) and
// clamps the selection to the new bounds. The second return reports
// whether the table changed.
func (m Model) ReplaceTable(t Table) (Model, bool) {
	changed := !t.Equal(m.Table)
	m.Table = t
	m.Input.Selected.Ref = m.clampRef(m.Input.Selected.Ref)
	return m, changed
}

// structural mutates the table via fn when a cell is selected, keeping
// the selection inside bounds afterwards.
func (m Model) structural(fn func(Table) Table) (Model, bool) {
	if m.Input.Editing || m.Input.Selected.Kind != SelectCell {
		return m, false
	}
	next := fn(m.Table)
	changed := !next.Equal(m.Table)
	m.Table = next
	m.Input.Selected.Ref = m.clampRef(m.Input.Selected.Ref)
	return m, changed
}

func (m Model) clampRef(ref Ref) Ref {
	rows, cols := m.Table.Size()
	ref.Row = clamp(ref.Row, 0, max(rows-1, 0))
	ref.Col = clamp(ref.Col, 0, max(cols-1, 0))
	return ref
}

// InsertRowBefore inserts an empty row above the selected cell.
func (m Model) InsertRowBefore() (Model, bool) {
	at := m.Input.Selected.Ref.Row
	return m.structural(func(t Table) Table { return t.InsertRow(at) })
}

// InsertRowAfter inserts an empty row below the selected cell.
func (m Model) InsertRowAfter() (Model, bool) {
	at := m.Input.Selected.Ref.Row + 1
	return m.structural(func(t Table) Table { return t.InsertRow(at) })
}

// DeleteRow removes the selected cell's row.
func (m Model) DeleteRow() (Model, bool) {
	at := m.Input.Selected.Ref.Row
	return m.structural(func(t Table) Table { return t.DeleteRow(at) })
}

// InsertColBefore inserts an empty column left of the selected cell.
func (m Model) InsertColBefore() (Model, bool) {
	at := m.Input.Selected.Ref.Col
	return m.structural(func(t Table) Table { return t.InsertCol(at) })
}

// InsertColAfter inserts an empty column right of the selected cell.
func (m Model) InsertColAfter() (Model, bool) {
	at := m.Input.Selected.Ref.Col + 1
	return m.structural(func(t Table) Table { return t.InsertCol(at) })
}

// DeleteCol removes the selected cell's column.
func (m Model) DeleteCol() (Model, bool) {
	at := m.Input.Selected.Ref.Col
	return m.structural(func(t Table) Table { return t.DeleteCol(at) })
}

package sheet

import "testing"

func TestInitialState(t *testing.T) {
	m := NewModel(testTable())
	if m.Input.Selected.Kind != SelectCell || m.Input.Selected.Ref != (Ref{}) {
		t.Errorf("initial selection = %+v, want cell (0,0)", m.Input.Selected)
	}
	if m.Input.Editing {
		t.Error("initial state must not be editing")
	}
}

func TestCommitNumericAndText(t *testing.T) {
	m := NewModel(testTable())

	m, focus := m.StartEdit("")
	if !focus {
		t.Fatal("StartEdit on a selected cell must request focus")
	}
	m = m.SetBuffer("3.14")
	m, changed := m.Commit()
	if !changed {
		t.Fatal("commit of a new value must report a change")
	}
	if got := m.Table.Get(Ref{}); got != Numeric(3.14) {
		t.Errorf("cell = %v, want Numeric(3.14)", got)
	}
	if m.Input.Editing || m.Input.Text != "" {
		t.Errorf("commit must clear edit state, got %+v", m.Input)
	}

	m, _ = m.StartEdit("")
	m = m.SetBuffer("abc")
	m, _ = m.Commit()
	if got := m.Table.Get(Ref{}); got != Text("abc") {
		t.Errorf("cell = %v, want Text(abc)", got)
	}
}

func TestCancelEditDiscardsBuffer(t *testing.T) {
	m := NewModel(testTable())
	m, _ = m.StartEdit("x")
	m = m.CancelEdit()
	if m.Input.Editing || m.Input.Text != "" {
		t.Errorf("cancel left edit state: %+v", m.Input)
	}
	if !m.Table.Equal(testTable()) {
		t.Error("cancel must not touch the table")
	}
	// No-op when idle.
	if got := m.CancelEdit(); got.Input != m.Input {
		t.Error("CancelEdit while idle must be a no-op")
	}
}

func TestSetBufferOnlyWhileEditing(t *testing.T) {
	m := NewModel(testTable())
	if got := m.SetBuffer("zzz"); got.Input.Text != "" {
		t.Error("SetBuffer while idle must be a no-op")
	}
}

func TestStartEditSeedsBuffer(t *testing.T) {
	m := NewModel(testTable())
	m, _ = m.StartEdit("a")
	if !m.Input.Editing || m.Input.Text != "a" {
		t.Errorf("seeded edit state = %+v", m.Input)
	}
}

func TestStartEditFromBulkIsNoop(t *testing.T) {
	m := NewModel(testTable()).SelectBulkText()
	got, focus := m.StartEdit("a")
	if focus {
		t.Error("bulk selection must not request cell focus")
	}
	if got.Input.Editing {
		t.Error("bulk selection must not enter cell edit mode")
	}
}

func TestMoveSelection(t *testing.T) {
	m := NewModel(testTable())
	m = m.MoveSelection(Down)
	if m.Input.Selected.Ref != (Ref{Row: 1}) {
		t.Errorf("ref = %v, want (1,0)", m.Input.Selected.Ref)
	}
	// Clamped at edges.
	m = m.MoveSelection(Down)
	if m.Input.Selected.Ref != (Ref{Row: 1}) {
		t.Errorf("ref = %v, want clamp at (1,0)", m.Input.Selected.Ref)
	}
	// No-op while editing.
	edit, _ := m.StartEdit("")
	if got := edit.MoveSelection(Up); got.Input.Selected.Ref != edit.Input.Selected.Ref {
		t.Error("MoveSelection while editing must be a no-op")
	}
	// No-op while bulk focused.
	bulk := m.SelectBulkText()
	if got := bulk.MoveSelection(Up); got.Input.Selected != bulk.Input.Selected {
		t.Error("MoveSelection while bulk focused must be a no-op")
	}
}

func TestStructuralOpsFollowSelection(t *testing.T) {
	m := NewModel(testTable()).Select(Ref{Row: 1, Col: 1})

	ins, changed := m.InsertRowBefore()
	if !changed {
		t.Fatal("InsertRowBefore must report a change")
	}
	if rows, _ := ins.Table.Size(); rows != 3 {
		t.Errorf("rows = %d, want 3", rows)
	}
	if ins.Table.Get(Ref{Row: 1, Col: 0}) != Text("") {
		t.Error("inserted row not at selected index")
	}

	ins, _ = m.InsertRowAfter()
	if ins.Table.Get(Ref{Row: 1, Col: 1}) != Numeric(18) || ins.Table.Get(Ref{Row: 2, Col: 0}) != Text("") {
		t.Error("InsertRowAfter misplaced the new row")
	}

	ins, _ = m.InsertColAfter()
	if _, cols := ins.Table.Size(); cols != 3 {
		t.Errorf("cols = %d, want 3", cols)
	}

	del, _ := m.DeleteRow()
	if rows, _ := del.Table.Size(); rows != 1 {
		t.Errorf("rows after delete = %d, want 1", rows)
	}
	// Selection clamped back inside bounds.
	if del.Input.Selected.Ref.Row != 0 {
		t.Errorf("selection row = %d, want 0", del.Input.Selected.Ref.Row)
	}
}

func TestStructuralOpsNoopFromBulk(t *testing.T) {
	m := NewModel(testTable()).SelectBulkText()
	got, changed := m.DeleteRow()
	if changed || !got.Table.Equal(m.Table) {
		t.Error("structural op while bulk focused must be a no-op")
	}
}

func TestReplaceTableClampsSelection(t *testing.T) {
	m := NewModel(New(5, 5)).Select(Ref{Row: 4, Col: 4})
	m, changed := m.ReplaceTable(New(2, 2))
	if !changed {
		t.Fatal("ReplaceTable with a different table must report change")
	}
	if m.Input.Selected.Ref != (Ref{Row: 1, Col: 1}) {
		t.Errorf("selection = %v, want (1,1)", m.Input.Selected.Ref)
	}

	_, changed = m.ReplaceTable(New(2, 2))
	if changed {
		t.Error("ReplaceTable with an equal table must not report change")
	}
}

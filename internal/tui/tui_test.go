package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/tably/internal/sheet"
)

func key(ch rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: ch, Text: string(ch)}
}

func ctrl(ch rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: ch, Mod: tea.ModCtrl}
}

func special(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	default:
		return tea.KeyPressMsg{}
	}
}

// newTestModel builds a sized model without a backing store. The store
// methods are all nil-safe, so saves become no-ops.
func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(sheet.Default(), "test-sheet", nil, nil)
	m.styles = plainStyles()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestArrowsMoveSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, special("down"), special("right"))
	if got := m.sm.Input.Selected.Ref; got != (sheet.Ref{Row: 1, Col: 1}) {
		t.Fatalf("expected (1,1), got %+v", got)
	}
}

func TestMoveClampsAtEdges(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, special("up"), special("left"))
	if got := m.sm.Input.Selected.Ref; got != (sheet.Ref{}) {
		t.Fatalf("expected (0,0), got %+v", got)
	}
}

func TestTypedCharSeedsEditAndCommits(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, key('4'))
	if !m.editing() {
		t.Fatal("expected edit mode after typing a character")
	}
	m = press(t, m, key('2'), special("enter"))
	if m.editing() {
		t.Fatal("expected edit mode to end on enter")
	}
	got := m.sm.Table.Get(sheet.Ref{})
	if got.Kind != sheet.KindNumeric || got.Num != 42 {
		t.Fatalf("expected numeric 42, got %+v", got)
	}
}

func TestEnterStartsEmptyEdit(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, special("enter"))
	if !m.editing() {
		t.Fatal("expected edit mode")
	}
	if m.sm.Input.Text != "" {
		t.Fatalf("expected empty buffer, got %q", m.sm.Input.Text)
	}
}

func TestEscCancelsEdit(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, key('x'), special("esc"))
	if m.editing() {
		t.Fatal("expected edit cancelled")
	}
	if got := m.sm.Table.Get(sheet.Ref{}); got.Str != "Name" {
		t.Fatalf("expected cell untouched, got %+v", got)
	}
}

func TestArrowsSuppressedWhileEditing(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, key('x'), special("down"))
	if got := m.sm.Input.Selected.Ref; got != (sheet.Ref{}) {
		t.Fatalf("expected selection to stay at (0,0), got %+v", got)
	}
	if !m.editing() {
		t.Fatal("expected edit to survive a navigation key")
	}
}

func TestCommitKeepsSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, special("down"), key('7'), special("enter"))
	if got := m.sm.Input.Selected.Ref; got != (sheet.Ref{Row: 1}) {
		t.Fatalf("expected selection to stay at (1,0), got %+v", got)
	}
}

func TestTabTogglesCSVPane(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, special("down"), special("tab"))
	if !m.bulkFocused() {
		t.Fatal("expected CSV pane focus")
	}
	m = press(t, m, special("esc"))
	if m.bulkFocused() {
		t.Fatal("expected grid focus after esc")
	}
	if got := m.sm.Input.Selected.Ref; got != (sheet.Ref{Row: 1}) {
		t.Fatalf("expected selection restored to (1,0), got %+v", got)
	}
}

func TestCSVPaneSeededFromTable(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, special("tab"))
	if got := m.csvArea.Value(); got != "Name,Age\nBob,18" {
		t.Fatalf("unexpected pane text %q", got)
	}
}

func TestBulkApplyReplacesTable(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, special("tab"))
	m.csvArea.SetValue("a,b,c\n1,2,3")
	m = press(t, m, ctrl('s'))
	if m.bulkFocused() {
		t.Fatal("expected grid focus after apply")
	}
	rows, cols := m.sm.Table.Size()
	if rows != 2 || cols != 3 {
		t.Fatalf("expected 2x3 table, got %dx%d", rows, cols)
	}
	if got := m.sm.Table.Get(sheet.Ref{Row: 1, Col: 2}); got.Kind != sheet.KindNumeric || got.Num != 3 {
		t.Fatalf("expected numeric 3, got %+v", got)
	}
}

func TestBulkApplyClampsSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, special("down"), special("right"), special("tab"))
	m.csvArea.SetValue("only")
	m = press(t, m, ctrl('s'))
	if got := m.sm.Input.Selected.Ref; got != (sheet.Ref{}) {
		t.Fatalf("expected selection clamped to (0,0), got %+v", got)
	}
}

func TestInsertRowBelow(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, ctrl('o'))
	rows, _ := m.sm.Table.Size()
	if rows != 3 {
		t.Fatalf("expected 3 rows, got %d", rows)
	}
	if got := m.sm.Table.Get(sheet.Ref{Row: 1}); got.Str != "" {
		t.Fatalf("expected empty inserted row, got %+v", got)
	}
	if got := m.sm.Table.Get(sheet.Ref{Row: 2}); got.Str != "Bob" {
		t.Fatalf("expected Bob shifted down, got %+v", got)
	}
}

func TestDeleteColumn(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyPressMsg{Code: 'd', Mod: tea.ModAlt})
	_, cols := m.sm.Table.Size()
	if cols != 1 {
		t.Fatalf("expected 1 column, got %d", cols)
	}
	if got := m.sm.Table.Get(sheet.Ref{}); got.Str != "Age" {
		t.Fatalf("expected Age column to remain, got %+v", got)
	}
}

func TestStructuralEditRefreshesCSVPane(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, ctrl('d')) // delete row 0
	if got := m.csvBase; got != "Bob,18" {
		t.Fatalf("expected pane re-seeded, got %q", got)
	}
}

func TestKeybindsModalOpensAndCloses(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, ctrl('h'))
	if m.keybinds == nil {
		t.Fatal("expected keybinds modal open")
	}
	// Keys route to the modal, not the grid.
	m = press(t, m, special("down"))
	if got := m.sm.Input.Selected.Ref; got != (sheet.Ref{}) {
		t.Fatalf("expected selection unchanged under modal, got %+v", got)
	}
	m = press(t, m, special("esc"))
	if m.keybinds != nil {
		t.Fatal("expected keybinds modal closed")
	}
}

func TestNewSheetStartsConfiguredSize(t *testing.T) {
	m := newTestModel(t)
	before := m.sheetID
	m = press(t, m, ctrl('n'))
	if m.sheetID == before {
		t.Fatal("expected a fresh sheet id")
	}
	rows, cols := m.sm.Table.Size()
	if rows != 8 || cols != 4 {
		t.Fatalf("expected default 8x4 sheet, got %dx%d", rows, cols)
	}
}

func TestStatusBarMode(t *testing.T) {
	m := newTestModel(t)
	if m.mode() != "GRID" {
		t.Fatalf("expected GRID, got %s", m.mode())
	}
	m = press(t, m, key('x'))
	if m.mode() != "EDIT" {
		t.Fatalf("expected EDIT, got %s", m.mode())
	}
	m = press(t, m, special("esc"), special("tab"))
	if m.mode() != "CSV" {
		t.Fatalf("expected CSV, got %s", m.mode())
	}
}

func TestRenderContentCoversScreen(t *testing.T) {
	m := newTestModel(t)
	content := m.renderContent()
	lines := strings.Split(content, "\n")
	if len(lines) != 24 {
		t.Fatalf("expected 24 lines, got %d", len(lines))
	}
}

func TestCellLabel(t *testing.T) {
	tests := []struct {
		ref  sheet.Ref
		want string
	}{
		{sheet.Ref{}, "A1"},
		{sheet.Ref{Row: 9, Col: 1}, "B10"},
		{sheet.Ref{Row: 0, Col: 25}, "Z1"},
		{sheet.Ref{Row: 0, Col: 26}, "AA1"},
	}
	for _, tt := range tests {
		m := newTestModel(t)
		m.sm = m.sm.Select(tt.ref)
		if got := m.cellLabel(); got != tt.want {
			t.Errorf("label for %+v: expected %s, got %s", tt.ref, tt.want, got)
		}
	}
}

func TestUndoRestoresTable(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, key('9'), special("enter"))
	if got := m.sm.Table.Get(sheet.Ref{}); got.Num != 9 {
		t.Fatalf("expected numeric 9 committed, got %+v", got)
	}
	m = press(t, m, ctrl('z'))
	if got := m.sm.Table.Get(sheet.Ref{}); got.Str != "Name" {
		t.Fatalf("expected Name restored, got %+v", got)
	}
	m = press(t, m, ctrl('y'))
	if got := m.sm.Table.Get(sheet.Ref{}); got.Num != 9 {
		t.Fatalf("expected redo back to 9, got %+v", got)
	}
}

func TestUndoCoversStructuralEdits(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, ctrl('d'), ctrl('z'))
	rows, _ := m.sm.Table.Size()
	if rows != 2 {
		t.Fatalf("expected deleted row restored, got %d rows", rows)
	}
}

func TestUndoRefreshesCSVPane(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, ctrl('d'), ctrl('z'))
	if got := m.csvBase; got != "Name,Age\nBob,18" {
		t.Fatalf("expected pane re-seeded from restored table, got %q", got)
	}
}

func TestDiffStats(t *testing.T) {
	added, removed := diffStats("a\nb\nc", "a\nx\nc\nd")
	if added != 2 || removed != 1 {
		t.Fatalf("expected +2 -1, got +%d -%d", added, removed)
	}
	added, removed = diffStats("same", "same")
	if added != 0 || removed != 0 {
		t.Fatalf("expected no changes, got +%d -%d", added, removed)
	}
}

// Package history tracks table snapshots so mutations can be reversed.
// Tables are immutable values, so a snapshot is just the value itself.
package history

import "github.com/xonecas/tably/internal/sheet"

// DefaultLimit bounds how many undo steps are kept.
const DefaultLimit = 100

// Stack is a bounded undo/redo stack of table states.
type Stack struct {
	past   []sheet.Table
	future []sheet.Table
	limit  int
}

// New creates a Stack keeping at most limit undo steps. A non-positive
// limit falls back to DefaultLimit.
func New(limit int) *Stack {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack{limit: limit}
}

// Push records the table state before a mutation and clears any redo
// states. The oldest step is dropped when the limit is exceeded.
func (s *Stack) Push(t sheet.Table) {
	s.past = append(s.past, t)
	if len(s.past) > s.limit {
		s.past = s.past[1:]
	}
	s.future = s.future[:0]
}

// Undo returns the most recent recorded state, storing current for
// redo. The second return is false when there is nothing to undo.
func (s *Stack) Undo(current sheet.Table) (sheet.Table, bool) {
	if len(s.past) == 0 {
		return sheet.Table{}, false
	}
	prev := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	s.future = append(s.future, current)
	return prev, true
}

// Redo reverses the most recent Undo. The second return is false when
// there is nothing to redo.
func (s *Stack) Redo(current sheet.Table) (sheet.Table, bool) {
	if len(s.future) == 0 {
		return sheet.Table{}, false
	}
	next := s.future[len(s.future)-1]
	s.future = s.future[:len(s.future)-1]
	s.past = append(s.past, current)
	return next, true
}

// CanUndo reports whether an Undo would succeed.
func (s *Stack) CanUndo() bool { return len(s.past) > 0 }

// CanRedo reports whether a Redo would succeed.
func (s *Stack) CanRedo() bool { return len(s.future) > 0 }

// Reset drops all recorded states, e.g. when switching sheets.
func (s *Stack) Reset() {
	s.past = s.past[:0]
	s.future = s.future[:0]
}

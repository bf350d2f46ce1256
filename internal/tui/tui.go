// Package tui is the terminal front end: it translates key presses into
// transitions on the pure sheet model, renders the grid and the CSV
// text view, and write-through-saves every table change to the store.
package tui

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/tably/internal/config"
	"github.com/xonecas/tably/internal/csvio"
	"github.com/xonecas/tably/internal/history"
	"github.com/xonecas/tably/internal/sheet"
	"github.com/xonecas/tably/internal/store"
	"github.com/xonecas/tably/internal/tui/modal"
)

// Model is the application model.
type Model struct {
	width  int
	height int
	layout layout
	styles Styles

	// Core state machine: table + selection/edit state. Replaced
	// wholesale on every accepted intent.
	sm      sheet.Model
	sheetID string
	store   *store.Store
	hist    *history.Stack

	// Config-derived rendering bounds.
	minColW, maxColW int
	newRows, newCols int

	cellInput textinput.Model // in-cell editor
	csvArea   textarea.Model  // right pane: whole-table CSV view
	csvBase   string          // encoded table the CSV pane was seeded from

	// Grid viewport origin (top-left visible cell).
	scrollX int
	scrollY int

	// Cell selected before the CSV pane took focus.
	lastRef sheet.Ref

	picker   *modal.Model // sheet picker (ctrl+f)
	keybinds *modal.Model // key binding help (ctrl+h)
}

// New creates the TUI model around an initial table.
func New(tbl sheet.Table, sheetID string, st *store.Store, cfg *config.Config) Model {
	if cfg == nil {
		cfg = &config.Config{}
	}

	ci := textinput.New()
	ci.Prompt = ""

	ca := textarea.New()
	ca.Prompt = ""
	ca.ShowLineNumbers = false

	m := Model{
		styles:    DefaultStyles(),
		sm:        sheet.NewModel(tbl),
		sheetID:   sheetID,
		store:     st,
		hist:      history.New(history.DefaultLimit),
		minColW:   cfg.UI.MinColOrDefault(),
		maxColW:   cfg.UI.MaxColOrDefault(),
		newRows:   cfg.Sheet.RowsOrDefault(),
		newCols:   cfg.Sheet.ColsOrDefault(),
		cellInput: ci,
		csvArea:   ca,
	}
	m.syncCSVPane()
	return m
}

// Init is required by BubbleTea.
func (m Model) Init() tea.Cmd { return nil }

// bulkFocused reports whether the CSV text view owns the focus.
func (m Model) bulkFocused() bool {
	return m.sm.Input.Selected.Kind == sheet.SelectBulk
}

// editing reports whether a cell edit is in progress.
func (m Model) editing() bool { return m.sm.Input.Editing }

// syncCSVPane refreshes the CSV pane from the current table. Called
// whenever the table changes while the grid owns the focus.
func (m *Model) syncCSVPane() {
	m.csvBase = csvio.Encode(m.sm.Table)
	m.csvArea.SetValue(m.csvBase)
}

// persist write-through-saves the current table. Called after every
// transition that changed it; the save request is issued before the
// update returns, but completion is never awaited.
func (m *Model) persist() {
	body, err := sheet.MarshalDocument(m.sm.Table)
	if err != nil {
		log.Warn().Err(err).Str("sheet", m.sheetID).Msg("failed to encode document")
		return
	}
	m.store.Save(m.sheetID, body)
}

// applyChange records a table change: undo snapshot, persist, CSV pane
// refresh. before is the table as it was ahead of the mutation.
func (m *Model) applyChange(before sheet.Table, changed bool) {
	if !changed {
		return
	}
	m.hist.Push(before)
	m.persist()
	if !m.bulkFocused() {
		m.syncCSVPane()
	}
}

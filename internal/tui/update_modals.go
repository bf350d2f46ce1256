package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/tably/internal/sheet"
	"github.com/xonecas/tably/internal/tui/modal"
)

func modalColors() modal.Colors {
	return modal.Colors{
		Fg:     hexFg,
		Bg:     hexBg,
		Dim:    hexMuted,
		SelFg:  hexCursorFg,
		SelBg:  hexCursorBg,
		Border: hexBorder,
	}
}

func (m *Model) openSheetPicker() {
	infos, err := m.store.List()
	if err != nil {
		log.Warn().Err(err).Msg("failed to list sheets")
		return
	}
	items := make([]modal.Item, len(infos))
	for i, info := range infos {
		items[i] = modal.Item{
			Name: info.ID,
			Desc: info.Updated.Format("2006-01-02 15:04"),
		}
	}
	filterFn := func(query string) []modal.Item {
		if query == "" {
			return items
		}
		q := strings.ToLower(query)
		var filtered []modal.Item
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), q) {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	md := modal.New(filterFn, "Sheet: ", modalColors())
	m.picker = &md
}

func (m *Model) openKeybindsModal() {
	items := []modal.Item{
		{Name: "arrows", Desc: "move selection"},
		{Name: "enter", Desc: "edit cell / commit edit"},
		{Name: "any character", Desc: "start editing with that character"},
		{Name: "esc", Desc: "cancel edit / leave csv pane"},
		{Name: "tab", Desc: "toggle grid / csv pane"},
		{Name: "ctrl+s", Desc: "apply csv pane as bulk edit"},
		{Name: "ctrl+o / alt+o", Desc: "insert row below / above"},
		{Name: "ctrl+l / alt+l", Desc: "insert column right / left"},
		{Name: "ctrl+d / alt+d", Desc: "delete row / column"},
		{Name: "ctrl+z / ctrl+y", Desc: "undo / redo"},
		{Name: "ctrl+f", Desc: "open sheet picker"},
		{Name: "ctrl+n", Desc: "new sheet"},
		{Name: "ctrl+h", Desc: "this help"},
		{Name: "ctrl+c / ctrl+q", Desc: "quit"},
	}
	filterFn := func(query string) []modal.Item {
		if query == "" {
			return items
		}
		q := strings.ToLower(query)
		var filtered []modal.Item
		for _, item := range items {
			name := strings.ToLower(item.Name)
			desc := strings.ToLower(item.Desc)
			if strings.Contains(name, q) || strings.Contains(desc, q) {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	md := modal.New(filterFn, "Keys: ", modalColors())
	m.keybinds = &md
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a := m.picker.HandleMsg(msg).(type) {
	case modal.ActionClose:
		m.picker = nil
	case modal.ActionSelect:
		m.picker = nil
		m.switchSheet(a.Item.Name)
	}
	return m, nil
}

func (m Model) updateKeybinds(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := m.keybinds.HandleMsg(msg).(modal.ActionClose); ok {
		m.keybinds = nil
	}
	return m, nil
}

// openNewSheet starts a fresh sheet with a generated id, sized per
// config. The current sheet's latest state is already queued for save.
func (m *Model) openNewSheet() {
	m.switchTo(uuid.NewString(), sheet.New(m.newRows, m.newCols))
	m.persist()
}

// switchSheet loads a stored sheet by id and makes it current. A body
// that fails to decode falls back to the default table.
func (m *Model) switchSheet(id string) {
	if id == m.sheetID {
		return
	}
	tbl := sheet.Default()
	if body, ok := m.store.Load(id); ok {
		t, err := sheet.UnmarshalDocument(body)
		if err != nil {
			log.Warn().Err(err).Str("sheet", id).Msg("stored document is malformed")
		} else {
			tbl = t
		}
	}
	m.switchTo(id, tbl)
}

func (m *Model) switchTo(id string, tbl sheet.Table) {
	m.sheetID = id
	m.sm = sheet.NewModel(tbl)
	m.hist.Reset()
	m.scrollX, m.scrollY = 0, 0
	m.lastRef = sheet.Ref{}
	m.cellInput.SetValue("")
	m.cellInput.Blur()
	m.csvArea.Blur()
	m.syncCSVPane()
}

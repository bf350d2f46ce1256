package modal

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

var testColors = Colors{Dim: "#666", SelFg: "#fff", SelBg: "#444", Border: "#555"}

func sheets(query string) []Item {
	all := []Item{
		{Name: "budget"},
		{Name: "inventory"},
		{Name: "roster"},
	}
	if query == "" {
		return all
	}
	var out []Item
	for _, it := range all {
		if strings.Contains(it.Name, query) {
			out = append(out, it)
		}
	}
	return out
}

func key(ch rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: ch, Text: string(ch)}
}

func special(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	default:
		return tea.KeyPressMsg{}
	}
}

func TestEscapeCloses(t *testing.T) {
	m := New(sheets, "> ", testColors)
	a := m.HandleMsg(special("esc"))
	if _, ok := a.(ActionClose); !ok {
		t.Fatalf("expected ActionClose, got %T", a)
	}
}

func TestEnterSelectsFirst(t *testing.T) {
	m := New(sheets, "> ", testColors)
	a := m.HandleMsg(special("enter"))
	sel, ok := a.(ActionSelect)
	if !ok {
		t.Fatalf("expected ActionSelect, got %T", a)
	}
	if sel.Item.Name != "budget" {
		t.Fatalf("expected budget, got %s", sel.Item.Name)
	}
}

func TestDownThenEnterSelectsHighlighted(t *testing.T) {
	m := New(sheets, "> ", testColors)
	m.HandleMsg(special("down")) // enter list, selected=0
	m.HandleMsg(special("down")) // selected=1
	a := m.HandleMsg(special("enter"))
	sel, ok := a.(ActionSelect)
	if !ok {
		t.Fatalf("expected ActionSelect, got %T", a)
	}
	if sel.Item.Name != "inventory" {
		t.Fatalf("expected inventory, got %s", sel.Item.Name)
	}
}

func TestUpFromTopReturnsFocusToInput(t *testing.T) {
	m := New(sheets, "> ", testColors)
	m.HandleMsg(special("down")) // enter list
	if !m.inList {
		t.Fatal("expected inList=true")
	}
	m.HandleMsg(special("up")) // back to input
	if m.inList {
		t.Fatal("expected inList=false")
	}
}

func TestTypingFilters(t *testing.T) {
	m := New(sheets, "> ", testColors)
	m.HandleMsg(key('r'))
	if string(m.input) != "r" {
		t.Fatalf("expected input 'r', got %q", string(m.input))
	}
	if len(m.items) != 2 { // inventory, roster
		t.Fatalf("expected 2 items, got %d", len(m.items))
	}
}

func TestBackspaceRemovesCharAndRefilters(t *testing.T) {
	m := New(sheets, "> ", testColors)
	m.HandleMsg(key('r'))
	m.HandleMsg(key('o'))
	m.HandleMsg(special("backspace"))
	if string(m.input) != "r" {
		t.Fatalf("expected 'r', got %q", string(m.input))
	}
	if len(m.items) != 2 {
		t.Fatalf("expected 2 items after refilter, got %d", len(m.items))
	}
}

func TestViewRenders(t *testing.T) {
	m := New(sheets, "> ", testColors)
	v := m.View(100, 40)
	if v == "" {
		t.Fatal("expected non-empty view")
	}
}

func TestEmptyResultsEnterNoAction(t *testing.T) {
	m := New(func(string) []Item { return nil }, "> ", testColors)
	a := m.HandleMsg(special("enter"))
	if a != nil {
		t.Fatalf("expected nil action, got %T", a)
	}
}

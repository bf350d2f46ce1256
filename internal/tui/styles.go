package tui

import "charm.land/lipgloss/v2"

const (
	hexBg       = "#101010"
	hexFg       = "#d0d0d0"
	hexMuted    = "#666666"
	hexBorder   = "#2a2a2a"
	hexCursorBg = "#005f87"
	hexCursorFg = "#ffffff"
)

var (
	ColorBg        = lipgloss.Color(hexBg)
	ColorFg        = lipgloss.Color(hexFg)
	ColorMuted     = lipgloss.Color(hexMuted)
	ColorBorder    = lipgloss.Color(hexBorder)
	ColorAccent    = lipgloss.Color("#00AA00")
	ColorCursorBg  = lipgloss.Color(hexCursorBg)
	ColorCursorFg  = lipgloss.Color(hexCursorFg)
	ColorHeaderBg  = lipgloss.Color("#1c1c1c")
	ColorNumeric   = lipgloss.Color("#87d7ff")
	ColorError     = lipgloss.Color("#d75f5f")
	ColorDiffAdd   = lipgloss.Color("#5faf5f")
	ColorDiffDel   = lipgloss.Color("#d75f5f")
)

// Styles groups the lipgloss styles used across the views.
type Styles struct {
	Text       lipgloss.Style
	Muted      lipgloss.Style
	Border     lipgloss.Style
	Header     lipgloss.Style
	Cursor     lipgloss.Style
	EditCursor lipgloss.Style
	Numeric    lipgloss.Style
	Error      lipgloss.Style
	StatusText lipgloss.Style
	StatusMode lipgloss.Style
	DiffAdd    lipgloss.Style
	DiffDel    lipgloss.Style
	BgFill     lipgloss.Style
}

// DefaultStyles returns the standard dark theme.
func DefaultStyles() Styles {
	return Styles{
		Text:       lipgloss.NewStyle().Foreground(ColorFg),
		Muted:      lipgloss.NewStyle().Foreground(ColorMuted),
		Border:     lipgloss.NewStyle().Foreground(ColorBorder),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(ColorFg).Background(ColorHeaderBg),
		Cursor:     lipgloss.NewStyle().Foreground(ColorCursorFg).Background(ColorCursorBg),
		EditCursor: lipgloss.NewStyle().Foreground(ColorBg).Background(ColorAccent),
		Numeric:    lipgloss.NewStyle().Foreground(ColorNumeric),
		Error:      lipgloss.NewStyle().Foreground(ColorError),
		StatusText: lipgloss.NewStyle().Foreground(ColorMuted),
		StatusMode: lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		DiffAdd:    lipgloss.NewStyle().Foreground(ColorDiffAdd),
		DiffDel:    lipgloss.NewStyle().Foreground(ColorDiffDel),
		BgFill:     lipgloss.NewStyle(),
	}
}

// plainStyles renders everything unstyled. Used by tests so output is
// byte-stable without ANSI stripping.
func plainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Text: s, Muted: s, Border: s, Header: s, Cursor: s, EditCursor: s,
		Numeric: s, Error: s, StatusText: s, StatusMode: s,
		DiffAdd: s, DiffDel: s, BgFill: s,
	}
}

package tui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/tably/internal/sheet"
)

// widthSampleRows caps how many rows are inspected when sizing a
// column, so huge sheets don't make every render a full scan.
const widthSampleRows = 200

// colName converts a zero-based column index to its spreadsheet label:
// A..Z, then AA, AB, and so on.
func colName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}

// gutterWidth is the row-number gutter: widest row number plus a space.
func (m Model) gutterWidth() int {
	rows, _ := m.sm.Table.Size()
	if rows < 1 {
		rows = 1
	}
	return len(strconv.Itoa(rows)) + 1
}

// colWidth sizes a column from its label and a sample of its cells,
// clamped to the configured bounds.
func (m Model) colWidth(col int) int {
	rows, _ := m.sm.Table.Size()
	w := ansi.StringWidth(colName(col))
	for r := 0; r < rows && r < widthSampleRows; r++ {
		if cw := ansi.StringWidth(m.sm.Table.Get(sheet.Ref{Row: r, Col: col}).String()); cw > w {
			w = cw
		}
	}
	if w < m.minColW {
		w = m.minColW
	}
	if w > m.maxColW {
		w = m.maxColW
	}
	return w
}

// gridSlot is one visible column and the width it renders at.
type gridSlot struct {
	col   int
	width int
}

// visibleSlots lays out columns from the scroll origin until the grid
// pane is full. The last column may be cut short to the remaining space.
func (m Model) visibleSlots() []gridSlot {
	avail := m.layout.grid.Dx() - m.gutterWidth()
	_, cols := m.sm.Table.Size()
	var slots []gridSlot
	x := 0
	for c := m.scrollX; c < cols && x < avail; c++ {
		cw := m.colWidth(c)
		if x+cw > avail {
			cw = avail - x
		}
		slots = append(slots, gridSlot{col: c, width: cw})
		x += cw + 1
	}
	return slots
}

// scrollIntoView adjusts the viewport origin so the selected cell is
// rendered. Rows scroll by one; columns scroll until the selection's
// column fits at its full width.
func (m *Model) scrollIntoView() {
	if m.sm.Input.Selected.Kind != sheet.SelectCell {
		return
	}
	ref := m.sm.Input.Selected.Ref

	visibleRows := m.layout.grid.Dy() - 1 // minus header
	if visibleRows < 1 {
		visibleRows = 1
	}
	if ref.Row < m.scrollY {
		m.scrollY = ref.Row
	}
	if ref.Row >= m.scrollY+visibleRows {
		m.scrollY = ref.Row - visibleRows + 1
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}

	if ref.Col < m.scrollX {
		m.scrollX = ref.Col
	}
	for m.scrollX < ref.Col && !m.colFits(ref.Col) {
		m.scrollX++
	}
	if m.scrollX < 0 {
		m.scrollX = 0
	}
}

// colFits reports whether col renders at full width from the current
// scroll origin.
func (m Model) colFits(col int) bool {
	avail := m.layout.grid.Dx() - m.gutterWidth()
	x := 0
	for c := m.scrollX; c <= col; c++ {
		x += m.colWidth(c)
		if x > avail {
			return false
		}
		x++ // separator
	}
	return true
}

// renderGrid renders the grid pane: a header of column labels, a row
// number gutter, and the visible window of cells. Every line is padded
// to the pane width.
func (m Model) renderGrid() []string {
	g := m.layout.grid
	w, h := g.Dx(), g.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	rows, _ := m.sm.Table.Size()
	gutter := m.gutterWidth()
	slots := m.visibleSlots()
	lines := make([]string, 0, h)

	// Header row.
	var hb strings.Builder
	hb.WriteString(strings.Repeat(" ", gutter))
	for _, s := range slots {
		hb.WriteString(m.styles.Header.Render(padRight(colName(s.col), s.width)))
		hb.WriteByte(' ')
	}
	lines = append(lines, padLine(hb.String(), w))

	// Data rows.
	for i := 0; i < h-1; i++ {
		r := m.scrollY + i
		if r >= rows {
			lines = append(lines, strings.Repeat(" ", w))
			continue
		}
		var b strings.Builder
		num := strconv.Itoa(r + 1)
		b.WriteString(m.styles.Muted.Render(padLeft(num, gutter-1)))
		b.WriteByte(' ')
		for _, s := range slots {
			b.WriteString(m.renderCell(r, s.col, s.width))
			b.WriteByte(' ')
		}
		lines = append(lines, padLine(b.String(), w))
	}

	return lines
}

// renderCell renders one cell at the given width: numerics right
// aligned, text left aligned, the selection highlighted, and the live
// edit buffer shown in place while editing.
func (m Model) renderCell(row, col, width int) string {
	ref := sheet.Ref{Row: row, Col: col}
	selected := m.sm.Input.Selected.Kind == sheet.SelectCell && m.sm.Input.Selected.Ref == ref

	if selected && m.editing() {
		return m.styles.EditCursor.Render(padRight(tailClip(m.sm.Input.Text, width), width))
	}

	cell := m.sm.Table.Get(ref)
	text := ansi.Truncate(cell.String(), width, "…")

	var padded string
	if cell.Kind == sheet.KindNumeric {
		padded = padLeft(text, width)
	} else {
		padded = padRight(text, width)
	}

	switch {
	case selected:
		return m.styles.Cursor.Render(padded)
	case cell.Kind == sheet.KindNumeric:
		return m.styles.Numeric.Render(padded)
	default:
		return m.styles.Text.Render(padded)
	}
}

// tailClip keeps the end of s within width, so the caret end of a long
// edit buffer stays visible.
func tailClip(s string, width int) string {
	for ansi.StringWidth(s) > width {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}

func padRight(s string, w int) string {
	if d := w - ansi.StringWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func padLeft(s string, w int) string {
	if d := w - ansi.StringWidth(s); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}

// padLine pads or clips a composed (possibly styled) line to the pane
// width. Only trailing separator space is ever clipped.
func padLine(s string, w int) string {
	if sw := ansi.StringWidth(s); sw > w {
		return ansi.Truncate(s, w, "")
	} else if sw < w {
		return s + strings.Repeat(" ", w-sw)
	}
	return s
}

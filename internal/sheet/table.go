package sheet

// Table is a rectangular grid of cells: every row has the same column
// count as row 0. A Table is treated as an immutable value: mutation
// methods return a fresh copy so earlier snapshots stay valid.
type Table [][]Cell

// Ref is a zero-based (row, column) address. Validity is relative to a
// Table at time of use; a Ref carries no bounds of its own.
type Ref struct {
	Row int
	Col int
}

// Size returns the dimensions, derived on every call. Cols is the width
// of row 0, or 0 when there are no rows.
func (t Table) Size() (rows, cols int) {
	rows = len(t)
	if rows > 0 {
		cols = len(t[0])
	}
	return rows, cols
}

// Get returns the cell at ref, or an empty Text cell when out of bounds.
func (t Table) Get(ref Ref) Cell {
	if ref.Row < 0 || ref.Row >= len(t) {
		return Text("")
	}
	row := t[ref.Row]
	if ref.Col < 0 || ref.Col >= len(row) {
		return Text("")
	}
	return row[ref.Col]
}

// Contains reports whether ref addresses a cell inside the table.
func (t Table) Contains(ref Ref) bool {
	rows, cols := t.Size()
	return ref.Row >= 0 && ref.Row < rows && ref.Col >= 0 && ref.Col < cols
}

// clone deep-copies the table.
func (t Table) clone() Table {
	out := make(Table, len(t))
	for i, row := range t {
		out[i] = make([]Cell, len(row))
		copy(out[i], row)
	}
	return out
}

// SetCell returns a table with the cell at ref replaced. Out-of-bounds
// refs return the table unchanged.
func (t Table) SetCell(ref Ref, c Cell) Table {
	if !t.Contains(ref) {
		return t
	}
	out := t.clone()
	out[ref.Row][ref.Col] = c
	return out
}

// emptyRow builds a row of empty Text cells.
func emptyRow(cols int) []Cell {
	row := make([]Cell, cols)
	for i := range row {
		row[i] = Text("")
	}
	return row
}

// InsertRow returns a table with a row of empty Text cells inserted
// before at. The index is clamped to [0, rows].
func (t Table) InsertRow(at int) Table {
	rows, cols := t.Size()
	if at < 0 {
		at = 0
	}
	if at > rows {
		at = rows
	}
	out := make(Table, 0, rows+1)
	for i, row := range t {
		if i == at {
			out = append(out, emptyRow(cols))
		}
		cp := make([]Cell, len(row))
		copy(cp, row)
		out = append(out, cp)
	}
	if at == rows {
		out = append(out, emptyRow(cols))
	}
	return out
}

// DeleteRow returns a table with the row at the given index removed.
// Out-of-range indexes return the table unchanged.
func (t Table) DeleteRow(at int) Table {
	if at < 0 || at >= len(t) {
		return t
	}
	out := make(Table, 0, len(t)-1)
	for i, row := range t {
		if i == at {
			continue
		}
		cp := make([]Cell, len(row))
		copy(cp, row)
		out = append(out, cp)
	}
	return out
}

// InsertCol returns a table with an empty Text cell inserted before
// column at in every row. The index is clamped to [0, cols].
func (t Table) InsertCol(at int) Table {
	_, cols := t.Size()
	if at < 0 {
		at = 0
	}
	if at > cols {
		at = cols
	}
	out := make(Table, len(t))
	for i, row := range t {
		cp := make([]Cell, 0, len(row)+1)
		cp = append(cp, row[:at]...)
		cp = append(cp, Text(""))
		cp = append(cp, row[at:]...)
		out[i] = cp
	}
	return out
}

// DeleteCol returns a table with column at removed from every row.
// Out-of-range indexes return the table unchanged.
func (t Table) DeleteCol(at int) Table {
	_, cols := t.Size()
	if at < 0 || at >= cols {
		return t
	}
	out := make(Table, len(t))
	for i, row := range t {
		cp := make([]Cell, 0, len(row)-1)
		cp = append(cp, row[:at]...)
		cp = append(cp, row[at+1:]...)
		out[i] = cp
	}
	return out
}

// Equal reports value equality of two tables.
func (t Table) Equal(o Table) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if len(t[i]) != len(o[i]) {
			return false
		}
		for j := range t[i] {
			if t[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// Default is the built-in starter table used when no persisted document
// exists or the persisted document is malformed.
func Default() Table {
	return Table{
		{Text("Name"), Text("Age")},
		{Text("Bob"), Numeric(18)},
	}
}

// New builds an empty table of the given dimensions filled with empty
// Text cells. Non-positive dimensions yield the empty table.
func New(rows, cols int) Table {
	if rows <= 0 || cols <= 0 {
		return Table{}
	}
	out := make(Table, rows)
	for i := range out {
		out[i] = emptyRow(cols)
	}
	return out
}

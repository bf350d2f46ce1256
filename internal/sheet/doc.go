package sheet

import (
	"encoding/json"
	"fmt"
)

// The persistence document is a host-neutral JSON encoding of a table:
// an array of rows, each an array of tagged cells
// {"kind":"Numeric","value":1.5} or {"kind":"Text","value":"x"}.
// Unlike the CSV path this round-trips the Numeric/Text distinction
// exactly.

const (
	docKindNumeric = "Numeric"
	docKindText    = "Text"
)

type docCell struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// MarshalDocument encodes the table as a persistence document.
func MarshalDocument(t Table) ([]byte, error) {
	rows := make([][]docCell, len(t))
	for i, row := range t {
		rows[i] = make([]docCell, len(row))
		for j, c := range row {
			var kind string
			var val any
			switch c.Kind {
			case KindNumeric:
				kind, val = docKindNumeric, c.Num
			default:
				kind, val = docKindText, c.Str
			}
			raw, err := json.Marshal(val)
			if err != nil {
				return nil, fmt.Errorf("marshal cell (%d,%d): %w", i, j, err)
			}
			rows[i][j] = docCell{Kind: kind, Value: raw}
		}
	}
	return json.Marshal(rows)
}

// UnmarshalDocument decodes a persistence document back into a table.
// Any shape violation (not a nested array, unknown kind, value type
// not matching the kind, ragged rows) is an error; callers substitute
// the default table rather than surfacing it.
func UnmarshalDocument(data []byte) (Table, error) {
	var rows [][]docCell
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	t := make(Table, len(rows))
	for i, row := range rows {
		if i > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d cells, row 0 has %d", i, len(row), len(rows[0]))
		}
		t[i] = make([]Cell, len(row))
		for j, dc := range row {
			cell, err := dc.toCell()
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			t[i][j] = cell
		}
	}
	return t, nil
}

func (dc docCell) toCell() (Cell, error) {
	switch dc.Kind {
	case docKindNumeric:
		var v float64
		if err := json.Unmarshal(dc.Value, &v); err != nil {
			return Cell{}, fmt.Errorf("numeric value: %w", err)
		}
		return Numeric(v), nil
	case docKindText:
		var s string
		if err := json.Unmarshal(dc.Value, &s); err != nil {
			return Cell{}, fmt.Errorf("text value: %w", err)
		}
		return Text(s), nil
	default:
		return Cell{}, fmt.Errorf("unknown cell kind %q", dc.Kind)
	}
}

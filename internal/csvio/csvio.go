// Package csvio converts between sheet.Table and plain comma-separated
// text. Encoding is hand-rolled so the output byte format stays under
// our control (no trailing newline, \n row joins); decoding rides on
// encoding/csv configured to never fail on user input.
package csvio

import (
	"encoding/csv"
	"strings"

	"github.com/xonecas/tably/internal/sheet"
)

// Encode renders the table as CSV text. Fields are joined with commas
// and rows with \n, without a trailing newline. A field is wrapped in
// double quotes, with internal quotes doubled, when it contains a
// quote, comma, CR or LF.
func Encode(t sheet.Table) string {
	var b strings.Builder
	for i, row := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeField(cell.String()))
		}
	}
	return b.String()
}

func escapeField(s string) string {
	if !strings.ContainsAny(s, "\",\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Decode parses CSV text into a table. Every field, header row
// included, goes through sheet.ParseInput for type inference, so there
// is no parse-failure state: text that isn't a number is just text.
// Ragged records are padded with empty Text cells to the widest record
// so the result is always rectangular. Empty input yields the empty
// table.
func Decode(text string) sheet.Table {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil || len(records) == 0 {
		// LazyQuotes makes read errors unreachable in practice; an
		// unreadable input simply becomes the empty table.
		return sheet.Table{}
	}

	width := 0
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}

	t := make(sheet.Table, len(records))
	for i, rec := range records {
		row := make([]sheet.Cell, width)
		for j := range row {
			if j < len(rec) {
				row[j] = sheet.ParseInput(rec[j])
			} else {
				row[j] = sheet.Text("")
			}
		}
		t[i] = row
	}
	return t
}

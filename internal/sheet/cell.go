// Package sheet holds the core grid model: cells, tables, addressing,
// and the selection/edit state machine. Everything here is pure, no IO
// and no rendering, so the TUI and the store can both treat a Table as an
// immutable snapshot.
package sheet

import (
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the two cell variants. The set is closed.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
)

// Cell is one grid entry: either a number or verbatim text.
// Exactly one variant is active, selected by Kind.
type Cell struct {
	Kind Kind
	Num  float64
	Str  string
}

// Text returns a textual cell.
func Text(s string) Cell { return Cell{Kind: KindText, Str: s} }

// Numeric returns a numeric cell.
func Numeric(v float64) Cell { return Cell{Kind: KindNumeric, Num: v} }

// String renders the cell. Total: Numeric uses the canonical shortest
// decimal representation, Text is returned unchanged.
func (c Cell) String() string {
	switch c.Kind {
	case KindNumeric:
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	default:
		return c.Str
	}
}

// ParseInput maps user-entered text to a Cell. A string that fully
// parses as a plain decimal float (optional sign, digits, optional
// fraction, optional exponent) becomes Numeric; everything else is Text
// verbatim, the empty string included. ParseFloat alone is too
// permissive here: it also accepts NaN, infinities, hex floats and
// underscore digit groups, none of which are grid numbers (NaN has no
// JSON form and is not equal to itself). Both cell commits and CSV type
// inference go through this one function so round-trips stay stable.
func ParseInput(text string) Cell {
	if strings.ContainsAny(text, "xXpP_") {
		return Text(text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Text(text)
	}
	return Numeric(v)
}

package sheet

import "testing"

func TestParseInput(t *testing.T) {
	tests := []struct {
		in   string
		want Cell
	}{
		{"3.14", Numeric(3.14)},
		{"18", Numeric(18)},
		{"-2.5e3", Numeric(-2500)},
		{"+7", Numeric(7)},
		{"abc", Text("abc")},
		{"", Text("")},
		{"12abc", Text("12abc")},
		{"1 2", Text("1 2")},
		{" 5", Text(" 5")}, // leading space is not part of the float grammar
		{"Age", Text("Age")},
		{"NaN", Text("NaN")},
		{"0x1p-2", Text("0x1p-2")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseInput(tt.in); got != tt.want {
				t.Errorf("ParseInput(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Numeric(18), "18"},
		{Numeric(3.14), "3.14"},
		{Numeric(-0.5), "-0.5"},
		{Text("hello"), "hello"},
		{Text(""), ""},
		{Text("1.0"), "1.0"}, // text is verbatim, never re-formatted
	}
	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// Inputs ParseFloat accepts beyond the plain decimal grammar must stay
// Text: a non-finite Numeric would have no JSON form and would break
// table self-equality.
func TestNonDecimalFloatFormsStayText(t *testing.T) {
	inputs := []string{"NaN", "nan", "Inf", "-inf", "+Inf", "infinity", "0x1p-2", "0X2P1", "1_000"}
	for _, in := range inputs {
		if got := ParseInput(in); got.Kind != KindText || got.Str != in {
			t.Errorf("ParseInput(%q) = %#v, want Text verbatim", in, got)
		}
	}

	tbl := Table{{ParseInput("NaN"), ParseInput("-inf")}}
	if !tbl.Equal(tbl) {
		t.Fatal("expected table holding these inputs to equal itself")
	}
	if _, err := MarshalDocument(tbl); err != nil {
		t.Fatalf("expected document encoding to succeed, got %v", err)
	}
}

// Committing a numeric cell's rendering back through ParseInput must
// reproduce a Numeric with the same rendering.
func TestNumericStringifyParseStable(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 18, 3.14, 1e21, -2.5e-7, 123456789.123} {
		c := Numeric(v)
		got := ParseInput(c.String())
		if got.Kind != KindNumeric {
			t.Fatalf("ParseInput(%q): not numeric", c.String())
		}
		if got.String() != c.String() {
			t.Errorf("round trip of %v: %q != %q", v, got.String(), c.String())
		}
	}
}

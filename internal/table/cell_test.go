package table

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind CellKind
		wantNum  float64
	}{
		{"empty field", "", KindNull, 0},
		{"whitespace only", "   ", KindNull, 0},
		{"integer", "30", KindNumber, 30},
		{"negative integer", "-4", KindNumber, -4},
		{"decimal", "3.14", KindNumber, 3.14},
		{"negative decimal", "-2.5", KindNumber, -2.5},
		{"signed positive", "+5", KindNumber, 5},
		{"leading zeros", "007", KindNumber, 7},
		{"padded number", " 42 ", KindNumber, 42},
		{"plain string", "alice", KindString, 0},
		{"mixed digits and letters", "12ab", KindString, 0},
		{"two decimal points", "1.2.3", KindString, 0},
		{"trailing dot", "5.", KindString, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := Parse(tt.raw)
			if cell.Kind != tt.wantKind {
				t.Errorf("Parse(%q).Kind = %v, want %v", tt.raw, cell.Kind, tt.wantKind)
			}
			if tt.wantKind == KindNumber && cell.Num != tt.wantNum {
				t.Errorf("Parse(%q).Num = %v, want %v", tt.raw, cell.Num, tt.wantNum)
			}
		})
	}
}

func TestParse_PreservesText(t *testing.T) {
	cell := Parse("007")
	if cell.Text != "007" {
		t.Errorf("Parse(\"007\").Text = %q, want %q", cell.Text, "007")
	}

	cell = Parse("alice")
	if cell.Text != "alice" {
		t.Errorf("Parse(\"alice\").Text = %q, want %q", cell.Text, "alice")
	}
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		name   string
		cell   Cell
		want   float64
		wantOK bool
	}{
		{"number cell", Number(30), 30, true},
		{"numeric string", String("30"), 30, true},
		{"decimal string", String("2.5"), 2.5, true},
		{"negative string", String("-7"), -7, true},
		{"plain string", String("alice"), 0, false},
		{"empty string", String(""), 0, false},
		{"null", Null(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.cell.Numeric()
			if ok != tt.wantOK {
				t.Fatalf("Numeric() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Numeric() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	if got := Null().String(); got != "NULL" {
		t.Errorf("Null().String() = %q, want %q", got, "NULL")
	}
	if got := String("bob").String(); got != "bob" {
		t.Errorf("String(bob).String() = %q, want %q", got, "bob")
	}
	if got := Parse("25").String(); got != "25" {
		t.Errorf("Parse(25).String() = %q, want %q", got, "25")
	}
}

func TestCellMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"null", Null(), "null"},
		{"string", String("alice"), `"alice"`},
		{"number", Number(30), "30"},
		{"decimal", Number(2.5), "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.cell)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

package mol_test

import (
	"errors"
	"testing"

	. "github.com/andrew-torda/molfile/pkg/mol"
)

func TestCol(t *testing.T) {
	var coltests = []struct {
		s          string
		start, end int
		want       string
		ok         bool
	}{
		{"  5  4", 0, 3, "  5", true},
		{"  5  4", 3, 6, "  4", true},
		{"  5  4", 6, 9, "", false},
		{"  5  4 ", 6, 9, " ", true},
		{"  5", 1, 10, " 5", true},
		{"", 0, 3, "", false},
	}
	for _, tt := range coltests {
		got, ok := Col(tt.s, tt.start, tt.end)
		if got != tt.want || ok != tt.ok {
			t.Errorf("col(%q, %d, %d) got %q %v, want %q %v",
				tt.s, tt.start, tt.end, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAtoi(t *testing.T) {
	var atoitests = []struct {
		s    string
		n    int
		fail bool
	}{
		{"5", 5, false},
		{"12", 12, false},
		{"-1", -1, false},
		{"", 0, true},
		{"x", 0, true},
		{"1.5", 0, true},
		{"+1", 0, true},
		{"+", 0, true},
	}
	for _, tt := range atoitests {
		n, err := Atoi(tt.s)
		if tt.fail {
			if !errors.Is(err, ErrInvalidNumericField) {
				t.Errorf("atoi(%q) wanted invalid numeric field, got %v", tt.s, err)
			}
			continue
		}
		if err != nil || n != tt.n {
			t.Errorf("atoi(%q) got %d %v, want %d", tt.s, n, err, tt.n)
		}
	}
}

func TestSplitLines(t *testing.T) {
	var splittests = []struct {
		s string
		n int
	}{
		{"a\nb\nc\nd", 4},
		{"a\nb\nc\nd\n", 4},
		{"a\r\nb\r\nc\r\nd\r\n", 4},
		{"a\nb\n\n\n", 4},
		{"", 1},
	}
	for _, tt := range splittests {
		ss := SplitLines(tt.s)
		if len(ss) != tt.n {
			t.Errorf("splitting %q got %d lines, want %d", tt.s, len(ss), tt.n)
		}
		for _, l := range ss {
			if len(l) > 0 && l[len(l)-1] == '\r' {
				t.Errorf("carriage return left on %q", l)
			}
		}
	}
}

func TestSplitProgram(t *testing.T) {
	var progtests = []struct {
		s, prog, stamp string
	}{
		{"  ChemDraw  03/14/24", "ChemDraw", "03/14/24"},
		{"  -ISIS-  10150212342D", "-ISIS-", "10150212342D"},
		{"  RDKit          3D", "RDKit", ""},
		{"  OnlyProgram", "OnlyProgram", ""},
		{"single spaced line", "", ""},
		{"", "", ""},
		{"\tChemDraw\t03/14/24", "", ""},
	}
	for _, tt := range progtests {
		prog, stamp := SplitProgram(tt.s)
		if prog != tt.prog || stamp != tt.stamp {
			t.Errorf("%q got %q %q, want %q %q", tt.s, prog, stamp, tt.prog, tt.stamp)
		}
	}
}

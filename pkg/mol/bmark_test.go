// How long does a parse take ? Most of the time should go in
// splitting lines and trimming fields.

package mol_test

import (
	"fmt"
	"strings"
	"testing"

	. "github.com/andrew-torda/molfile/pkg/mol"
)

// bigMol makes a chain of n carbons with n-1 single bonds.
func bigMol(n int) string {
	var b strings.Builder
	b.WriteString("chain\n  bench  now\n\n")
	b.WriteString(padInt(n) + padInt(n-1) + "  0  0  0  0  0  0  0  0999 V2000\n")
	for i := 0; i < n; i++ {
		b.WriteString(atomLine(float64(i)*1.5, 0, 0, "C") + "\n")
	}
	for i := 1; i < n; i++ {
		b.WriteString(padInt(i) + padInt(i+1) + "  1  0\n")
	}
	b.WriteString("M  END\n")
	return b.String()
}

// padInt right justifies n in three columns. Good to 999.
func padInt(n int) string { return fmt.Sprintf("%3d", n) }

func TestBigMol(t *testing.T) {
	doc, err := Parse(bigMol(999))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Atoms) != 999 || len(doc.Bonds) != 998 {
		t.Fatal("expected 999 atoms and 998 bonds, got", len(doc.Atoms), len(doc.Bonds))
	}
}

func BenchmarkParse(b *testing.B) {
	s := bigMol(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(s); err != nil {
			b.Fatal(err)
		}
	}
}

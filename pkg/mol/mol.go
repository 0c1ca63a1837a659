// 2 Oct 2026

package mol

// Header is the first three lines of a mol file.
// Title and Comment are kept exactly as they were, spaces included.
type Header struct {
	Title     string `json:"title" yaml:"title"`
	Program   string `json:"program" yaml:"program"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Comment   string `json:"comment" yaml:"comment"`
}

// Counts comes from the fourth line. Molecules is the number of atoms.
// The name is odd, but it is what people downstream expect.
type Counts struct {
	Molecules int    `json:"molecules" yaml:"molecules"`
	Bonds     int    `json:"bonds" yaml:"bonds"`
	Lists     string `json:"lists" yaml:"lists"`
	Chiral    bool   `json:"chiral" yaml:"chiral"`
	Stext     string `json:"stext" yaml:"stext"`
	Version   string `json:"version" yaml:"version"`
}

// Position holds the coordinates as the decimal text from the file.
type Position struct {
	X string `json:"x" yaml:"x"`
	Y string `json:"y" yaml:"y"`
	Z string `json:"z" yaml:"z"`
}

// Atom is one line of the atom block.
type Atom struct {
	Position Position `json:"position" yaml:"position"`
	Element  string   `json:"type" yaml:"type"`
}

// Bond is [atom1, atom2, type]. Atom numbers start from 1, so
// atom n is Document.Atoms[n-1].
type Bond [3]int

func (b Bond) Atom1() int     { return b[0] }
func (b Bond) Atom2() int     { return b[1] }
func (b Bond) Type() BondType { return BondType(b[2]) }

// Has says if atom n is one of the ends of the bond.
func (b Bond) Has(n int) bool { return b[0] == n || b[1] == n }

// Other returns the atom at the far end of the bond from n, or 0 if
// n is not in the bond.
func (b Bond) Other(n int) int {
	switch n {
	case b[0]:
		return b[1]
	case b[1]:
		return b[0]
	}
	return 0
}

// BondType is the bond code from the file. We do not check it.
type BondType int

const (
	Single BondType = iota + 1
	Double
	Triple
	Aromatic
	SingleOrDouble
	SingleOrAromatic
	DoubleOrAromatic
	AnyBond
)

var bondNames = [...]string{
	Single:           "single",
	Double:           "double",
	Triple:           "triple",
	Aromatic:         "aromatic",
	SingleOrDouble:   "single or double",
	SingleOrAromatic: "single or aromatic",
	DoubleOrAromatic: "double or aromatic",
	AnyBond:          "any",
}

func (t BondType) String() string {
	if t < Single || int(t) >= len(bondNames) {
		return "unknown"
	}
	return bondNames[t]
}

// Document is everything we read from one mol record.
// Nothing in here points back into the input string's owner, and
// nobody changes it after Parse returns.
type Document struct {
	Header Header `json:"header" yaml:"header"`
	Counts Counts `json:"counts" yaml:"counts"`
	Atoms  []Atom `json:"atoms" yaml:"atoms"`
	Bonds  []Bond `json:"bonds" yaml:"bonds"`
}

// NAtom returns the number of atoms read.
func (d *Document) NAtom() int { return len(d.Atoms) }

// NBond returns the number of bonds read.
func (d *Document) NBond() int { return len(d.Bonds) }

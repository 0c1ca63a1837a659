// 2 Oct 2026
// One pass over the lines of a mol record. No going back.

package mol

// Columns of the fixed width fields.
const (
	cntWidth  = 3 // each counts field is three wide
	cntAtom   = 0 // window numbers in the counts line
	cntBond   = 1
	cntList   = 2
	cntChiral = 4
	cntStext  = 5
	verStart  = 33
	verEnd    = 39

	xStart, xEnd   = 0, 10
	yStart, yEnd   = 10, 20
	zStart, zEnd   = 20, 30
	elStart, elEnd = 31, 33

	bndWidth  = 3
	nHdrLines = 3
)

// parser carries the lines and where we are in them.
type parser struct {
	lines []string
	ndx   int // index of next line to read
}

// pErr builds a ParseError for line ndx (0-based).
func (p *parser) pErr(kind error, block string, ndx int, field string, cause error) *ParseError {
	e := &ParseError{Kind: kind, Block: block, Field: field, Err: cause}
	if ndx >= 0 && ndx < len(p.lines) {
		e.Line = ndx + 1
		e.Text = p.lines[ndx]
	}
	return e
}

// Parse reads one mol record from s. On success, the document has
// exactly Counts.Molecules atoms and Counts.Bonds bonds and every bond
// points at atoms that exist. On failure, the error is a *ParseError
// and there is no document.
func Parse(s string) (*Document, error) {
	p := parser{lines: splitLines(s)}
	if len(p.lines) < nHdrLines+1 {
		return nil, p.pErr(ErrMalformedInput, blkHeader, -1, "", nil)
	}
	doc := new(Document)
	p.header(&doc.Header)
	if err := p.counts(&doc.Counts); err != nil {
		return nil, err
	}
	var err error
	if doc.Atoms, err = p.atoms(doc.Counts.Molecules); err != nil {
		return nil, err
	}
	if doc.Bonds, err = p.bonds(doc.Counts.Bonds, len(doc.Atoms)); err != nil {
		return nil, err
	}
	return doc, nil
}

// header cannot fail. We already know there are enough lines.
func (p *parser) header(h *Header) {
	h.Title = p.lines[0]
	h.Program, h.Timestamp = splitProgram(p.lines[1])
	h.Comment = p.lines[2]
	p.ndx = nHdrLines
}

// counts reads the fourth line. Atom and bond counts must be there and
// be numbers, the rest we take as we find them.
func (p *parser) counts(c *Counts) error {
	ndx := p.ndx
	s := p.lines[ndx]
	getn := func(i int, field string) (int, error) {
		f, _ := window(s, i)
		n, err := atoi(f)
		if err != nil {
			return 0, p.pErr(ErrMalformedCounts, blkCounts, ndx, field, err)
		}
		if n < 0 {
			return 0, p.pErr(ErrMalformedCounts, blkCounts, ndx, field, negCount(n))
		}
		return n, nil
	}
	var err error
	if c.Molecules, err = getn(cntAtom, "atoms"); err != nil {
		return err
	}
	if c.Bonds, err = getn(cntBond, "bonds"); err != nil {
		return err
	}
	c.Lists, _ = window(s, cntList)
	chiral, _ := window(s, cntChiral)
	c.Chiral = chiral == "1"
	c.Stext, _ = window(s, cntStext)
	c.Version = tcol(s, verStart, verEnd)
	p.ndx++
	return nil
}

// atoms reads n lines of the atom block. Short lines just give empty
// fields. Coordinates are left as text.
func (p *parser) atoms(n int) ([]Atom, error) {
	if left := len(p.lines) - p.ndx; left < n {
		return nil, p.pErr(ErrTruncatedAtomBlock, blkAtom, len(p.lines)-1, "",
			shortBy{n, left})
	}
	atoms := make([]Atom, n)
	for i := range atoms {
		s := p.lines[p.ndx]
		atoms[i] = Atom{
			Position: Position{
				X: tcol(s, xStart, xEnd),
				Y: tcol(s, yStart, yEnd),
				Z: tcol(s, zStart, zEnd),
			},
			Element: tcol(s, elStart, elEnd),
		}
		p.ndx++
	}
	return atoms, nil
}

var bondFields = [...]string{"atom1", "atom2", "type"}

// bonds reads n lines of the bond block. Every field must be an
// integer and both ends must be atoms we have read.
func (p *parser) bonds(n, nAtom int) ([]Bond, error) {
	if left := len(p.lines) - p.ndx; left < n {
		return nil, p.pErr(ErrTruncatedBondBlock, blkBond, len(p.lines)-1, "",
			shortBy{n, left})
	}
	bonds := make([]Bond, n)
	for i := range bonds {
		s := p.lines[p.ndx]
		for j := range bonds[i] {
			f := tcol(s, j*bndWidth, (j+1)*bndWidth)
			v, err := atoi(f)
			if err != nil {
				return nil, p.pErr(ErrInvalidNumericField, blkBond, p.ndx, bondFields[j], err)
			}
			bonds[i][j] = v
		}
		for j := 0; j < 2; j++ {
			if a := bonds[i][j]; a < 1 || a > nAtom {
				return nil, p.pErr(ErrBadAtomRef, blkBond, p.ndx, bondFields[j],
					atomRange{a, nAtom})
			}
		}
		p.ndx++
	}
	return bonds, nil
}

// An error that remembers which block, line and field broke, and
// the start of the line we were trying to read.

package mol

import (
	"errors"
	"strconv"
)

const maxMsgLen = 70

// The kinds of failure. A *ParseError matches its kind with errors.Is.
var (
	ErrMalformedInput      = errors.New("malformed input")
	ErrMalformedCounts     = errors.New("malformed counts line")
	ErrTruncatedAtomBlock  = errors.New("truncated atom block")
	ErrTruncatedBondBlock  = errors.New("truncated bond block")
	ErrInvalidNumericField = errors.New("invalid numeric field")
	ErrBadAtomRef          = errors.New("bond refers to missing atom")
)

// Block names used in ParseError.
const (
	blkHeader = "header"
	blkCounts = "counts"
	blkAtom   = "atom"
	blkBond   = "bond"
)

// ParseError is what Parse returns when it gives up.
// Line numbers start from 1. Line is 0 if the problem is not
// tied to one line (the file is too short).
type ParseError struct {
	Kind  error  // one of the Err... values above
	Block string // header, counts, atom or bond
	Line  int
	Field string // name of the field, if there is one
	Text  string // the line that provoked the error
	Err   error  // underlying cause, may be nil
}

// firstPart clips a line so error messages stay readable.
func firstPart(s string) string {
	if len(s) > maxMsgLen {
		return s[:maxMsgLen]
	}
	return s
}

func (e *ParseError) Error() string {
	var errmsg string
	if e.Line != 0 {
		errmsg = "line " + strconv.Itoa(e.Line) + ": "
	}
	errmsg += e.Block + " block: " + e.Kind.Error()
	if e.Field != "" {
		errmsg += ", field " + e.Field
	}
	if e.Err != nil {
		errmsg += ": " + e.Err.Error()
	}
	if e.Line != 0 {
		errmsg += "\nline starting with\n" + firstPart(e.Text)
	}
	return errmsg
}

// Is lets errors.Is(err, ErrTruncatedAtomBlock) and friends work.
func (e *ParseError) Is(target error) bool { return target == e.Kind }

func (e *ParseError) Unwrap() error { return e.Err }

// numError says a field should have been a number. It matches
// ErrInvalidNumericField, so a broken count is both malformed counts
// and an invalid numeric field.
type numError struct {
	text string
}

func (n numError) Error() string {
	if n.text == "" {
		return "empty field"
	}
	return strconv.Quote(n.text) + " is not an integer"
}

func (n numError) Is(target error) bool { return target == ErrInvalidNumericField }

// negCount is a count that parsed but is below zero.
type negCount int

func (n negCount) Error() string { return "negative count " + strconv.Itoa(int(n)) }

// shortBy says how many lines a block wanted and how many it got.
type shortBy struct {
	want, got int
}

func (s shortBy) Error() string {
	return "want " + strconv.Itoa(s.want) + " lines, only " + strconv.Itoa(s.got) + " left"
}

// atomRange is a bond end outside 1..n.
type atomRange struct {
	atom, n int
}

func (a atomRange) Error() string {
	return "atom " + strconv.Itoa(a.atom) + " not in 1.." + strconv.Itoa(a.n)
}

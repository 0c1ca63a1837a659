// 8 Oct 2026

// Package molload gets the text of a mol file into memory so it can be
// given to mol.Parse. It knows about stdin, gzipped files and plain
// files. Plain files are memory mapped and copied once into a string.
package molload

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/molfile/pkg/mol"
	"github.com/andrew-torda/molfile/pkg/zwrap"
)

// StdinName is the file name that means read from stdin. An empty name
// means the same.
const StdinName = "-"

// Read takes everything from r, decompressing if it starts like a
// gzip file.
func Read(r io.Reader) (string, error) {
	zr, err := zwrap.WrapMaybe(io.NopCloser(r))
	if err != nil {
		return "", err
	}
	defer zr.Close()
	b, err := io.ReadAll(zr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// byMmap maps the file and copies it out. The mapping is gone when we
// return, so nothing points into it afterwards.
func byMmap(fp *os.File) (string, error) {
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return "", err
	}
	defer mm.Unmap()
	if len(mm) >= 2 && mm[0] == 0x1f && mm[1] == 0x8b {
		return Read(bytes.NewReader(mm))
	}
	return string(mm), nil
}

// Load returns the contents of fname as a string. "" or "-" is stdin.
// Errors carry the file name.
func Load(fname string) (string, error) {
	if fname == "" || fname == StdinName {
		s, err := Read(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return s, nil
	}
	fp, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return "", fmt.Errorf("%s: %w", fname, err)
	}
	var s string
	switch {
	case !fi.Mode().IsRegular():
		s, err = Read(fp) // a pipe or device cannot be mapped
	case fi.Size() == 0:
		return "", nil // mapping an empty file fails
	case zwrap.IsGzName(fname):
		s, err = Read(fp)
	default:
		s, err = byMmap(fp)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// ParseFile loads and parses one file. Parse errors get the file name
// stuck on the front but still match mol.ErrMalformedCounts and friends.
func ParseFile(fname string) (*mol.Document, error) {
	s, err := Load(fname)
	if err != nil {
		return nil, err
	}
	doc, err := mol.Parse(s)
	if err != nil {
		if fname == "" {
			fname = StdinName
		}
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return doc, nil
}

// Package zwrap wraps a mol file source so that gzipped files read
// the same as plain ones. Calling Close shuts the decompressor, then
// the underlying file.
// Unlike the first version, we do not need to Seek. We peek at the
// first two bytes through a bufio.Reader, so stdin and pipes work too.

package zwrap

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"strings"
)

var gzMagic = [2]byte{0x1f, 0x8b}

// Reader is what we return. If zrdr is nil, the data was not compressed.
type Reader struct {
	src  io.ReadCloser
	br   *bufio.Reader
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the source. Both errors are
// kept if both fail.
func (r *Reader) Close() error {
	var ez error
	if r.zrdr != nil {
		ez = r.zrdr.Close()
	}
	return errors.Join(ez, r.src.Close())
}

// Read reads decompressed bytes if the source was gzipped.
func (r *Reader) Read(p []byte) (int, error) {
	if r.zrdr != nil {
		return r.zrdr.Read(p)
	}
	return r.br.Read(p)
}

// Compressed says if we are decompressing.
func (r *Reader) Compressed() bool { return r.zrdr != nil }

// Wrap insists that src is gzipped. On error, src is not closed.
func Wrap(src io.ReadCloser) (*Reader, error) {
	r := &Reader{src: src, br: bufio.NewReader(src)}
	var err error
	if r.zrdr, err = gzip.NewReader(r.br); err != nil {
		return nil, err
	}
	return r, nil
}

// WrapMaybe looks at the first bytes of src and only decompresses if
// they are the gzip magic number. An empty source is fine, it is just
// not compressed.
func WrapMaybe(src io.ReadCloser) (*Reader, error) {
	r := &Reader{src: src, br: bufio.NewReader(src)}
	b, err := r.br.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(b) < len(gzMagic) || b[0] != gzMagic[0] || b[1] != gzMagic[1] {
		return r, nil
	}
	if r.zrdr, err = gzip.NewReader(r.br); err != nil {
		return nil, err
	}
	return r, nil
}

// IsGzName says if a file name looks like a compressed file.
func IsGzName(fname string) bool {
	return strings.HasSuffix(strings.ToLower(fname), ".gz")
}

package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"testing"

	"github.com/andrew-torda/molfile/pkg/zwrap"
)

const molHead = "ethanol\n  zwrap  test\n\n  3  2  0  0  0  0  0  0  0  0999 V2000\n"

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// closeCounter notes if Close was called and can fail on demand.
type closeCounter struct {
	io.Reader
	closed int
	err    error
}

func (c *closeCounter) Close() error { c.closed++; return c.err }

func TestWrapMaybe(t *testing.T) {
	var gztests = []struct {
		name       string
		data       []byte
		compressed bool
		want       string
	}{
		{"plain", []byte(molHead), false, molHead},
		{"gzip", gzipped(t, molHead), true, molHead},
		{"empty", nil, false, ""},
		{"one byte", []byte{0x1f}, false, "\x1f"},
	}
	for _, x := range gztests {
		src := &closeCounter{Reader: bytes.NewReader(x.data)}
		r, err := zwrap.WrapMaybe(src)
		if err != nil {
			t.Fatalf("%s: %v", x.name, err)
		}
		if r.Compressed() != x.compressed {
			t.Errorf("%s: compressed %v, expected %v", x.name, r.Compressed(), x.compressed)
		}
		b, err := io.ReadAll(r)
		if err != nil {
			t.Errorf("%s: reading %v", x.name, err)
		}
		if string(b) != x.want {
			t.Errorf("%s: got %q", x.name, b)
		}
		if err := r.Close(); err != nil {
			t.Errorf("%s: close %v", x.name, err)
		}
		if src.closed != 1 {
			t.Errorf("%s: source closed %d times", x.name, src.closed)
		}
	}
}

func TestWrap(t *testing.T) {
	if _, err := zwrap.Wrap(io.NopCloser(bytes.NewReader([]byte(molHead)))); err == nil {
		t.Error("plain text accepted as gzip")
	}
	r, err := zwrap.Wrap(io.NopCloser(bytes.NewReader(gzipped(t, molHead))))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	b, _ := io.ReadAll(r)
	if string(b) != molHead {
		t.Errorf("got %q", b)
	}
}

// A broken gzip stream after a good magic number should be an error.
func TestWrapMaybeBroken(t *testing.T) {
	src := &closeCounter{Reader: bytes.NewReader([]byte{0x1f, 0x8b, 0x00})}
	if _, err := zwrap.WrapMaybe(src); err == nil {
		t.Error("expected error on broken gzip header")
	}
}

func TestCloseError(t *testing.T) {
	want := errors.New("disk on fire")
	src := &closeCounter{Reader: bytes.NewReader([]byte(molHead)), err: want}
	r, err := zwrap.WrapMaybe(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); !errors.Is(err, want) {
		t.Errorf("close error lost, got %v", err)
	}
}

func TestIsGzName(t *testing.T) {
	for s, want := range map[string]bool{
		"a.mol": false, "a.mol.gz": true, "A.MOL.GZ": true, "gz": false, "": false,
	} {
		if zwrap.IsGzName(s) != want {
			t.Errorf("IsGzName(%q) wrong", s)
		}
	}
}

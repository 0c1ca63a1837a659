package elstat_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/molfile/pkg/elstat"
	"github.com/andrew-torda/molfile/pkg/mol"
)

func testFile(s string) string { return filepath.Join("..", "mol", "testdata", s) }

func TestCollect(t *testing.T) {
	names := []string{testFile("glycine.mol"), testFile("benzene.mol"), testFile("alanine.mol"),
		testFile("glycine.mol.gz")}
	for _, nReader := range []int{0, 1, 2, 7} {
		counts, err := Collect(context.Background(), Feed(context.Background(), names),
			Options{NReader: nReader})
		require.NoError(t, err)
		// 2+2 glycine, 6 benzene, 3 alanine
		assert.Equal(t, Counts{"C": 13, "H": 6, "N": 3, "O": 6}, counts, "readers %d", nReader)
	}
}

func TestCollectBroken(t *testing.T) {
	var buf bytes.Buffer
	lg := zerolog.New(&buf)
	names := []string{testFile("glycine.mol"), testFile("not_there.mol"), testFile("alanine.mol")}
	counts, err := Collect(context.Background(), Feed(context.Background(), names),
		Options{NReader: 1, Log: &lg})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBrokenFiles))
	assert.Equal(t, 5, counts["C"], "good files still counted")
	assert.Contains(t, buf.String(), "not_there.mol")
}

// A reader stops after MaxErr failures, so later files are not read.
func TestMaxErr(t *testing.T) {
	calls := 0
	parse := func(string) (*mol.Document, error) {
		calls++
		return nil, errors.New("bad")
	}
	names := []string{"a", "b", "c", "d", "e"}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err := Collect(ctx, Feed(ctx, names), Options{NReader: 1, MaxErr: 2, Parse: parse})
	assert.True(t, errors.Is(err, ErrBrokenFiles))
	assert.Equal(t, 2, calls)
}

func TestNoSymbol(t *testing.T) {
	parse := func(string) (*mol.Document, error) {
		return &mol.Document{Atoms: []mol.Atom{{Element: "C"}, {Element: ""}, {Element: "O"}}}, nil
	}
	counts, err := Collect(context.Background(), Feed(context.Background(), []string{"a", "b"}),
		Options{NReader: 2, Parse: parse})
	require.NoError(t, err)
	assert.Equal(t, Counts{"C": 2, "O": 2}, counts)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, counts.Sorted()))
	assert.NotContains(t, buf.String(), "\"\",")
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	nmChan := make(chan string) // never closed, nobody sends
	_, err := Collect(ctx, nmChan, Options{NReader: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSorted(t *testing.T) {
	c := Counts{"C": 5, "O": 2, "N": 2, "H": 9}
	want := []Pair{{"H", 9}, {"C", 5}, {"N", 2}, {"O", 2}}
	assert.Equal(t, want, c.Sorted())
	assert.Empty(t, Counts{}.Sorted())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []Pair{{"C", 3}, {"Cl", 1}}))
	assert.Equal(t, "\"name\",\"n\"\n\"C\",3\n\"Cl\",1\n", buf.String())
}

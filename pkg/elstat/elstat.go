// 10 Oct 2026
// Read lots of mol files and count the elements we find.
// Names come down a channel, a few readers each keep their own map and
// at the end we merge the maps into the first one.

package elstat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/andrew-torda/molfile/pkg/mol"
	"github.com/andrew-torda/molfile/pkg/molload"
)

// Counts maps element symbol to number of atoms.
type Counts map[string]int

// Options for Collect. Zero values get something sensible.
type Options struct {
	NReader int             // number of reader goroutines
	MaxErr  int             // a reader gives up after this many broken files
	Log     *zerolog.Logger // per file reports. nil is silent
	Parse   func(fname string) (*mol.Document, error)
}

const (
	defNReader = 3
	defMaxErr  = 10
)

// ErrBrokenFiles is returned, wrapped, if any file could not be read.
// The counts from the good files are still returned.
var ErrBrokenFiles = errors.New("broken files")

// eatMol reads one file and adds its atoms to counts.
func eatMol(fname string, counts Counts, parse func(string) (*mol.Document, error)) (int, error) {
	doc, err := parse(fname)
	if err != nil {
		return 0, err
	}
	for _, a := range doc.Atoms {
		if a.Element != "" { // no symbol, nothing to count
			counts[a.Element]++
		}
	}
	return len(doc.Atoms), nil
}

// molStat is one reader. It takes names from nmChan until it is closed,
// the context is cancelled or it has seen too many errors.
func molStat(ctx context.Context, nmChan <-chan string, counts Counts, o Options,
	wg *sync.WaitGroup, nErr *atomic.Int32) {
	defer wg.Done()
	myErr := 0
	for {
		var fname string
		var ok bool
		select {
		case <-ctx.Done():
			return
		case fname, ok = <-nmChan:
			if !ok {
				return
			}
		}
		n, err := eatMol(fname, counts, o.Parse)
		if err != nil {
			nErr.Add(1)
			o.Log.Warn().Err(err).Str("file", fname).Msg("skipping")
			if myErr++; myErr >= o.MaxErr {
				o.Log.Error().Int("errors", myErr).Msg("reader giving up")
				return
			}
			continue
		}
		o.Log.Debug().Str("file", fname).Int("atoms", n).Msg("read")
	}
}

// Collect reads every file named on names and counts element symbols.
// The caller closes names when there are no more. If every reader gives
// up, nobody is left reading names, so cancel ctx to stop the sender.
func Collect(ctx context.Context, names <-chan string, o Options) (Counts, error) {
	if o.NReader <= 0 {
		o.NReader = defNReader
	}
	if o.MaxErr <= 0 {
		o.MaxErr = defMaxErr
	}
	if o.Parse == nil {
		o.Parse = molload.ParseFile
	}
	if o.Log == nil {
		nop := zerolog.Nop()
		o.Log = &nop
	}
	var wg sync.WaitGroup
	var nErr atomic.Int32
	cmaps := make([]Counts, o.NReader)
	for i := range cmaps {
		cmaps[i] = make(Counts)
		wg.Add(1)
		go molStat(ctx, names, cmaps[i], o, &wg, &nErr)
	}
	wg.Wait()

	dst := cmaps[0]
	for _, c := range cmaps[1:] { // merge into the first map
		for k, v := range c {
			dst[k] += v
		}
	}
	if err := ctx.Err(); err != nil {
		return dst, err
	}
	if n := nErr.Load(); n > 0 {
		return dst, fmt.Errorf("%w: %d", ErrBrokenFiles, n)
	}
	return dst, nil
}

// Feed sends the names down a new channel and closes it when done or
// when ctx is cancelled.
func Feed(ctx context.Context, fnames []string) <-chan string {
	nmChan := make(chan string)
	go func() {
		defer close(nmChan)
		for _, f := range fnames {
			select {
			case nmChan <- f:
			case <-ctx.Done():
				return
			}
		}
	}()
	return nmChan
}

// Pair is one line of output.
type Pair struct {
	Name string
	N    int
}

// Sorted returns the counts, most common first. Ties go alphabetically.
func (c Counts) Sorted() []Pair {
	pairs := make([]Pair, 0, len(c))
	for k, v := range c {
		pairs = append(pairs, Pair{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].N != pairs[j].N {
			return pairs[i].N > pairs[j].N
		}
		return pairs[i].Name < pairs[j].Name
	})
	return pairs
}

// WriteCSV writes a header and one quoted name and count per line.
func WriteCSV(w io.Writer, pairs []Pair) error {
	if _, err := fmt.Fprintln(w, "\"name\",\"n\""); err != nil {
		return err
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%q,%d\n", p.Name, p.N); err != nil {
			return err
		}
	}
	return nil
}

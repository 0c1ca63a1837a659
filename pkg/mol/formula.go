package mol

import (
	"sort"
	"strconv"
	"strings"
)

// Formula returns the molecular formula of the atoms in the file in
// Hill order: C then H then everything else alphabetically. With no
// carbon, everything is alphabetical, hydrogen included.
// Implicit hydrogens are not counted. Atoms with no symbol are skipped.
func (d *Document) Formula() string {
	counts := make(map[string]int)
	for _, a := range d.Atoms {
		if a.Element != "" {
			counts[a.Element]++
		}
	}
	names := make([]string, 0, len(counts))
	for k := range counts {
		names = append(names, k)
	}
	sort.Strings(names)
	if counts["C"] > 0 {
		rest := names[:0:0]
		for _, k := range names {
			if k != "C" && k != "H" {
				rest = append(rest, k)
			}
		}
		head := []string{"C"}
		if counts["H"] > 0 {
			head = append(head, "H")
		}
		names = append(head, rest...)
	}
	var b strings.Builder
	for _, k := range names {
		b.WriteString(k)
		if n := counts[k]; n > 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

// Neighbours returns the atoms bonded to atom n, numbered from 1, in
// the order the bonds appear in the file.
func (d *Document) Neighbours(n int) []int {
	var ret []int
	for _, b := range d.Bonds {
		if o := b.Other(n); o != 0 {
			ret = append(ret, o)
		}
	}
	return ret
}

package molcmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andrew-torda/molfile/pkg/mol"
	"github.com/andrew-torda/molfile/pkg/molload"
)

func newDumpCmd(a *app) *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print a mol file as json, yaml or text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := molload.ParseFile(inName(args))
			if err != nil {
				return err
			}
			a.log.Debug().Str("title", doc.Header.Title).Int("atoms", doc.NAtom()).
				Int("bonds", doc.NBond()).Msg("parsed")
			w, closer, err := outWriter(cmd, outFile)
			if err != nil {
				return err
			}
			if err := writeDoc(w, doc, a.cfg.Format); err != nil {
				closer()
				return err
			}
			return closer()
		},
	}
	cmd.Flags().StringP("format", "f", fmtJSON, "json, yaml or text")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "output file instead of stdout")
	a.v.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

// writeDoc writes doc in one of our formats. The format has been
// checked when the config was read.
func writeDoc(w io.Writer, doc *mol.Document, format string) error {
	switch format {
	case fmtYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case fmtText:
		return writeText(w, doc)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// writeText is for people, not programs. Each atom gets the number
// of atoms bonded to it and their numbers. Each bond gets its length,
// or "-" if the coordinates are not numbers.
func writeText(w io.Writer, doc *mol.Document) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	h, c := doc.Header, doc.Counts
	fmt.Fprintf(tw, "title\t%s\n", h.Title)
	fmt.Fprintf(tw, "program\t%s\n", h.Program)
	fmt.Fprintf(tw, "timestamp\t%s\n", h.Timestamp)
	fmt.Fprintf(tw, "comment\t%s\n", h.Comment)
	fmt.Fprintf(tw, "chiral\t%v\n", c.Chiral)
	fmt.Fprintf(tw, "formula\t%s\n", doc.Formula())
	fmt.Fprintf(tw, "atoms\t%d\n", c.Molecules)
	adj := doc.Adjacency()
	for i, at := range doc.Atoms {
		p := at.Position
		nbond := 0
		for _, v := range adj.Mat[i] {
			if v != 0 {
				nbond++
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n", i+1, at.Element, p.X, p.Y, p.Z,
			nbond, joinInts(doc.Neighbours(i+1)))
	}
	fmt.Fprintf(tw, "bonds\t%d\n", c.Bonds)
	lens, err := doc.BondLengths()
	for i, b := range doc.Bonds {
		l := "-"
		if err == nil {
			l = strconv.FormatFloat(float64(lens[i]), 'f', 3, 32)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\n", i+1, b.Atom1(), b.Atom2(), b.Type(), l)
	}
	return tw.Flush()
}

// joinInts gives "2,5,6", or "-" for nothing.
func joinInts(nn []int) string {
	if len(nn) == 0 {
		return "-"
	}
	ss := make([]string, len(nn))
	for i, n := range nn {
		ss[i] = strconv.Itoa(n)
	}
	return strings.Join(ss, ",")
}

package molcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/molfile/pkg/molload"
)

func newFormulaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formula [files...]",
		Short: "Print the molecular formula of each file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{molload.StdinName}
			}
			var nBad int
			for _, fname := range args {
				doc, err := molload.ParseFile(fname)
				if err != nil {
					logErr(&a.log, err, "skipping")
					nBad++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", fname, doc.Formula())
			}
			if nBad > 0 {
				return fmt.Errorf("%d of %d files could not be read", nBad, len(args))
			}
			return nil
		},
	}
}

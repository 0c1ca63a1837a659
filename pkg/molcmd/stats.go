package molcmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/molfile/pkg/elstat"
)

func newStatsCmd(a *app) *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "stats files...",
		Short: "Count the elements in many mol files, most common first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			counts, err := elstat.Collect(ctx, elstat.Feed(ctx, args),
				elstat.Options{NReader: a.cfg.Readers, Log: &a.log})
			if err != nil && len(counts) == 0 {
				return err
			}
			w, closer, werr := outWriter(cmd, outFile)
			if werr != nil {
				return werr
			}
			if werr := elstat.WriteCSV(w, counts.Sorted()); werr != nil {
				closer()
				return werr
			}
			if werr := closer(); werr != nil {
				return werr
			}
			return err // broken files still mean failure
		},
	}
	cmd.Flags().IntP("readers", "r", 3, "number of reader goroutines")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "csv file instead of stdout")
	a.v.BindPFlag("readers", cmd.Flags().Lookup("readers"))
	return cmd
}

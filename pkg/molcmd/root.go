// 11 Oct 2026

// Package molcmd holds the commands of the molfile program. main only
// calls Execute.
package molcmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// app is what the commands share.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	log     zerolog.Logger
	errOut  io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "molfile",
		Short: "Read MDL mol (V2000) files",
		Long: `molfile reads molecules in MDL mol (V2000) format and prints
them as json, yaml or text, draws them or counts their elements.

A file name of "-", or no name at all, means read from stdin.
Gzipped files are read as they are.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(a.v, a.cfgFile, &a.cfg); err != nil {
				return err
			}
			lg, err := newLogger(a.errOut, a.cfg.LogLevel)
			if err != nil {
				return err
			}
			a.log = lg
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.String("log-level", "info", "debug, info, warn or error")
	a.v.BindPFlag("log_level", pf.Lookup("log-level"))

	root.AddCommand(newDumpCmd(a), newDepictCmd(a), newFormulaCmd(a), newStatsCmd(a))
	return root
}

// Run runs the program with args (not including the program name),
// writing results to out and logging to errOut. It returns the exit
// code.
func Run(args []string, out, errOut io.Writer) int {
	a := &app{v: newViper(), errOut: errOut}
	a.log, _ = newLogger(errOut, "info")
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.Execute(); err != nil {
		logErr(&a.log, err, "molfile failed")
		return ExitFailure
	}
	return ExitSuccess
}

// Execute is for main.
func Execute() int { return Run(os.Args[1:], os.Stdout, os.Stderr) }

// outWriter gives back the file named by fname, or the command's
// output if fname is empty. The close function is always safe to call.
func outWriter(cmd *cobra.Command, fname string) (io.Writer, func() error, error) {
	if fname == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	fp, err := os.Create(fname)
	if err != nil {
		return nil, nil, err
	}
	return fp, fp.Close, nil
}

// inName turns an optional argument into a file name for molload.
func inName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

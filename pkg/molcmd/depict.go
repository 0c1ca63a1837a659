package molcmd

import (
	"github.com/spf13/cobra"

	"github.com/andrew-torda/molfile/pkg/depict"
	"github.com/andrew-torda/molfile/pkg/molload"
)

func newDepictCmd(a *app) *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "depict [file]",
		Short: "Draw the molecule as a png",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := molload.ParseFile(inName(args))
			if err != nil {
				return err
			}
			o := depict.Options{
				Width:        a.cfg.Width,
				Height:       a.cfg.Height,
				Margin:       a.cfg.Margin,
				HideHydrogen: a.cfg.HideH,
			}
			w, closer, err := outWriter(cmd, outFile)
			if err != nil {
				return err
			}
			if err := depict.WritePNG(w, doc, o); err != nil {
				closer()
				return err
			}
			a.log.Info().Str("title", doc.Header.Title).Str("output", outFile).Msg("drawn")
			return closer()
		},
	}
	f := cmd.Flags()
	f.StringVarP(&outFile, "output", "o", "", "png file to write instead of stdout")
	f.Int("width", 400, "image width in pixels")
	f.Int("height", 400, "image height in pixels")
	f.Int("margin", 30, "empty border in pixels")
	f.Bool("hide-h", false, "do not draw hydrogens")
	a.v.BindPFlag("width", f.Lookup("width"))
	a.v.BindPFlag("height", f.Lookup("height"))
	a.v.BindPFlag("margin", f.Lookup("margin"))
	a.v.BindPFlag("hide_h", f.Lookup("hide-h"))
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rgbconv/internal/convert"
	"github.com/ironsheep/rgbconv/internal/imaging"
)

func compareCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare WANT GOT",
		Short: "Compare two rasters pixel by pixel",
		Long:  "Compare two rasters, each an RGB text file or an image. Exits 1 when they differ.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := convert.LoadAny(args[0])
			if err != nil {
				return err
			}
			got, err := convert.LoadAny(args[1])
			if err != nil {
				return err
			}

			res := imaging.Compare(want, got)
			out := cmd.OutOrStdout()
			if res.Identical {
				fmt.Fprintf(out, "identical (%dx%d)\n", res.WantSize.Width, res.WantSize.Height)
				return nil
			}

			if !res.SameSize {
				fmt.Fprintf(out, "size differs: want %dx%d, got %dx%d\n",
					res.WantSize.Width, res.WantSize.Height, res.GotSize.Width, res.GotSize.Height)
			}
			fmt.Fprintln(out, res.FirstDifference)
			fmt.Fprintf(out, "%d of %d pixels differ\n", res.PixelsDifferent, res.TotalPixels)
			return errSilent
		},
	}
}

package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rgbconv/internal/convert"
	"github.com/ironsheep/rgbconv/internal/imaging"
)

type infoResult struct {
	*imaging.ImageInfo
	Stats          *imaging.StatsResult     `json:"stats"`
	DominantColors []imaging.ColorFrequency `json:"dominant_colors"`
}

func infoCmd(_ *app) *cobra.Command {
	var colors int

	c := &cobra.Command{
		Use:   "info FILE",
		Short: "Print dimensions, channel statistics and dominant colors as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := convert.LoadAny(args[0])
			if err != nil {
				return err
			}
			info, err := imaging.LoadImageInfo(g, args[0])
			if err != nil {
				return err
			}
			dom, err := imaging.DominantColors(g, colors, nil)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(infoResult{ImageInfo: info, Stats: imaging.Stats(g), DominantColors: dom.Colors})
		},
	}

	c.Flags().IntVar(&colors, "colors", 5, "Number of dominant colors to report")
	return c
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rgbconv/internal/logger"
	"github.com/ironsheep/rgbconv/internal/rgbfile"
)

func validateCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check RGB text files and report the first violation in each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				g, err := rgbfile.LoadFile(path)
				if err != nil {
					failed++
					logger.L().Debug("validation failed", "path", path, "err", err)
					fmt.Fprintf(out, "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(out, "%s: OK (%dx%d)\n", path, g.Width(), g.Height())
			}
			if failed > 0 {
				return errSilent
			}
			return nil
		},
	}
}

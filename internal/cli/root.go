// Package cli wires the rgbconv commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/rgbconv/internal/config"
	"github.com/ironsheep/rgbconv/internal/convert"
	"github.com/ironsheep/rgbconv/internal/imaging"
	"github.com/ironsheep/rgbconv/internal/logger"
)

// BuildInfo is stamped into the binary by the linker.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// errSilent marks a failure whose details were already printed.
var errSilent = errors.New("silent failure")

// app carries state shared by every command of one invocation.
type app struct {
	info BuildInfo
	v    *viper.Viper
	cfg  config.Config
}

// Execute runs the command line in args and returns the process exit status.
func Execute(ctx context.Context, info BuildInfo, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(info)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errSilent) {
			var ue *convert.UsageError
			if errors.As(err, &ue) {
				fmt.Fprintln(stderr, ue.Msg)
			} else {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
		}
		return 1
	}
	return 0
}

func newRootCmd(info BuildInfo) *cobra.Command {
	a := &app{info: info, v: viper.New()}
	config.SetDefaults(a.v)

	var (
		region string
		scale  float64
	)

	cmd := &cobra.Command{
		Use:   "rgbconv SRC DST",
		Short: "Convert images to and from the RGB text format",
		Long: "rgbconv converts between image files (.png, .jpg, .gif, .bmp, .tiff) and RGB text\n" +
			"files (.txt), one \"(r, g, b)\" pixel per tab-separated cell and one row per line.\n" +
			"Exactly one of SRC and DST must end in .txt.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Setup(logger.Config{Debug: cfg.Debug, Format: cfg.LogFormat, Writer: cmd.ErrOrStderr()})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := convert.ValidateArgs(args); err != nil {
				return err
			}
			opts := convert.Options{
				Src:         args[0],
				Dst:         args[1],
				Scale:       scale,
				JPEGQuality: a.cfg.JPEGQuality,
				Logger:      logger.L(),
			}
			if region != "" {
				r, err := imaging.ParseRegion(region)
				if err != nil {
					return err
				}
				opts.Region = r
			}
			return convert.Run(cmd.Context(), opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.Bool("debug", false, "Debug logging on stderr")
	pf.String("log-format", logger.FormatText, "Log format: text or json")
	pf.Int("jpeg-quality", imaging.DefaultJPEGQuality, "Quality used when writing JPEG files (1-100)")

	_ = a.v.BindPFlag(config.KeyDebug, pf.Lookup("debug"))
	_ = a.v.BindPFlag(config.KeyLogFormat, pf.Lookup("log-format"))
	_ = a.v.BindPFlag(config.KeyJPEGQuality, pf.Lookup("jpeg-quality"))

	cmd.Flags().StringVar(&region, "region", "", "Convert only x1,y1,x2,y2 of the source image")
	cmd.Flags().Float64Var(&scale, "scale", 1.0, "Resize the source image by this factor before converting")

	cmd.AddCommand(
		validateCmd(a),
		compareCmd(a),
		infoCmd(a),
		serveCmd(a),
		versionCmd(a),
	)
	return cmd
}

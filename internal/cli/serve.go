package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/rgbconv/internal/logger"
	"github.com/ironsheep/rgbconv/internal/server"
)

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool server on stdin/stdout",
		Long: "Run the MCP tool server. Requests are read from stdin and responses written to\n" +
			"stdout, one JSON-RPC message per line. Logs go to stderr.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.L().Debug("starting MCP server", "version", a.info.Version,
				"built", a.info.BuildTime, "commit", a.info.GitCommit)

			srv := server.New(
				server.WithLogger(logger.L()),
				server.WithVersion(a.info.Version),
				server.WithJPEGQuality(a.cfg.JPEGQuality),
			)
			return srv.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

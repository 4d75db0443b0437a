package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jroosing/dnsheader/internal/api"
	"github.com/jroosing/dnsheader/internal/stats"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the header inspection HTTP API",
		Long: `Serve the decode and encode endpoints over HTTP until interrupted.

The listen address and API key come from the api section of the config file.
--host and --port override it. Swagger UI is served at /swagger/index.html.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("host") {
				cfg.API.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.API.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.API.APIKey == "" {
				opts.logger.Warn("api key not set; endpoints are unauthenticated")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := api.New(cfg, stats.NewCodecStats(), opts.logger)
			return srv.Run(ctx, shutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host (overrides api.host)")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides api.port)")
	return cmd
}

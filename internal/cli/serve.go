package cli

import (
	"github.com/spf13/cobra"

	"github.com/lunaterra/chartwheel/internal/server"
	"github.com/lunaterra/chartwheel/pkg/cache"
	"github.com/lunaterra/chartwheel/pkg/pipeline"
)

// newServeCmd creates the serve command for running the HTTP wheel API.
func newServeCmd() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP wheel API",
		Long:  `Serve accepts chart documents on POST /v1/wheels and returns rendered wheels. The listen address and cache backend come from the config file unless overridden by flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if addr == "" {
				addr = cfg.Server.Addr
			}

			store, err := openCache(ctx, cfg, noCache)
			if err != nil {
				logger.Warn("cache unavailable, serving uncached", "err", err)
				store = cache.NewNullCache()
			}

			runner := pipeline.NewRunner(store, nil, logger)
			defer runner.Close()

			return server.New(runner, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

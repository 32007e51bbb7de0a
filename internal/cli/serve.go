package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/internal/server"
	"github.com/matzehuels/toplangs/pkg/observability/loghooks"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve top languages cards over HTTP",
		Long: `Serve top languages cards over HTTP.

Routes:
  GET /health          liveness probe
  GET /api/top-langs   card for ?username=...

Configuration comes from the config file, a .env file in the working
directory, and the environment (PORT, PAT_1..PAT_n, TOPLANGS_CACHE, REDIS_ADDR).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			stderr := cmd.ErrOrStderr()
			printKeyValue(stderr, "Address", cfg.Server.Addr)
			printKeyValue(stderr, "Cache", cfg.Cache.Backend)
			printKeyValue(stderr, "Tokens", strconv.Itoa(len(cfg.GitHub.Tokens)))
			if len(cfg.GitHub.Tokens) == 0 {
				printWarning(stderr, "No GitHub tokens configured; set PAT_1 or GITHUB_TOKEN")
			}

			loghooks.Install(logger)
			runner, err := c.newRunner(cfg, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			logger.Info("starting server", "config", cfg.String())
			return server.New(runner, cfg, logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config and PORT)")

	return cmd
}

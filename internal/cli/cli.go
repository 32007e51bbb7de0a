package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/buildinfo"
	"github.com/matzehuels/toplangs/pkg/cache"
	"github.com/matzehuels/toplangs/pkg/config"
	"github.com/matzehuels/toplangs/pkg/integrations/github"
	"github.com/matzehuels/toplangs/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the config file location; empty selects
	// config.Path().
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "toplangs",
		Short:        "Toplangs renders top-language cards for GitHub users",
		Long:         `Toplangs fetches a GitHub user's language usage and renders it as an SVG card in one of five layouts: normal, compact, donut, donut-vertical and pie. It can also serve the cards over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default "+config.Path()+")")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.langsCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadConfig reads the config file, .env and environment.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.ConfigPath)
}

// newRunner creates a pipeline runner backed by the configured cache and a
// GitHub client using the configured tokens.
func (c *CLI) newRunner(cfg config.Config, noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(cfg, noCache)
	if err != nil {
		return nil, err
	}
	gh := github.NewClient(store, cfg.GitHub.Tokens, cfg.GitHub.Endpoint, cfg.Cache.TTL)
	return pipeline.NewRunner(gh, store, nil, c.Logger), nil
}

func newCache(cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	return cfg.Cache.Open()
}

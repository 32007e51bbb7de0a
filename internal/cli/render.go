package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/config"
	"github.com/matzehuels/toplangs/pkg/pipeline"
	"github.com/matzehuels/toplangs/pkg/render/toplangs"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string
	source sourceFlags
	card   cardFlags
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a top languages card to SVG",
		Long: `Render a top languages card from a usage JSON file or a GitHub user.

A file argument is written to <file>.svg next to it; --user renders to
stdout. Use --output to choose the destination ("-" for stdout).`,
		Example: `  toplangs render --user octocat --layout donut -o card.svg
  toplangs render usage.json --theme dark --hide html,css`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout")
	opts.source.register(cmd)
	opts.card.register(cmd)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	req, err := buildRequest(cfg, args, &opts.source, &opts.card)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(cfg, opts.source.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := c.execute(ctx, cmd, runner, req)
	if err != nil {
		return err
	}

	path := outputPath(opts.output, args)
	out, err := openOutput(path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(res.SVG); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %s card", res.Layout))
	stderr := cmd.ErrOrStderr()
	printStats(stderr, res.Stats.LangCount, res.Width, res.Height, res.CacheInfo.CardHit)
	if path != "-" {
		printFile(stderr, path)
	}
	return nil
}

// buildRequest assembles a pipeline request from the source and card
// flags.
func buildRequest(cfg config.Config, args []string, src *sourceFlags, card *cardFlags) (pipeline.Request, error) {
	var req pipeline.Request
	if err := src.request(args, &req); err != nil {
		return req, err
	}
	opts, err := card.options(cfg.Card)
	if err != nil {
		return req, err
	}
	req.Card = opts
	return req, nil
}

// execute runs the pipeline, showing a spinner while a user is fetched.
func (c *CLI) execute(ctx context.Context, cmd *cobra.Command, runner *pipeline.Runner, req pipeline.Request) (*pipeline.Result, error) {
	if req.Usage != nil {
		return runner.Execute(ctx, req)
	}
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Fetching languages for %s...", req.Username))
	spinner.Start()
	res, err := runner.Execute(ctx, req)
	spinner.Stop()
	return res, err
}

// loadUsage returns the request's inline usage or fetches it.
func (c *CLI) loadUsage(ctx context.Context, cmd *cobra.Command, runner *pipeline.Runner, req pipeline.Request) (toplangs.Usage, error) {
	if req.Usage != nil {
		return req.Usage, nil
	}
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Fetching languages for %s...", req.Username))
	spinner.Start()
	usage, cached, err := runner.UsageWithCacheInfo(ctx, req)
	spinner.Stop()
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("usage loaded", "user", req.Username, "langs", len(usage), "cached", cached)
	return usage, nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	tlio "github.com/matzehuels/toplangs/pkg/io"
	"github.com/matzehuels/toplangs/pkg/pipeline"
)

// fetchCommand creates the fetch command, which exports a user's language
// usage as JSON for later offline rendering.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		output string
		source sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a GitHub user's language usage as JSON",
		Example: `  toplangs fetch --user octocat -o octocat.json
  toplangs render octocat.json --layout pie`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source.user == "" {
				return fmt.Errorf("--user is required")
			}
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			var req pipeline.Request
			if err := source.request(nil, &req); err != nil {
				return err
			}
			runner, err := c.newRunner(cfg, source.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(loggerFromContext(ctx))
			usage, err := c.loadUsage(ctx, cmd, runner, req)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				if err := tlio.WriteUsage(usage, cmd.OutOrStdout()); err != nil {
					return err
				}
			} else if err := tlio.ExportUsage(usage, output); err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Fetched %d languages for %s", len(usage), source.user))
			if output != "" && output != "-" {
				stderr := cmd.ErrOrStderr()
				printFile(stderr, output)
				printNextStep(stderr, "Render it", "toplangs render "+output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	source.register(cmd)

	return cmd
}

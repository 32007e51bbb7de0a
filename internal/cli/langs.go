package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/render/toplangs"
	"github.com/matzehuels/toplangs/pkg/theme"
)

// langsCommand creates the langs command, which prints the languages a card
// would show and the card size for every layout.
func (c *CLI) langsCommand() *cobra.Command {
	var (
		source sourceFlags
		card   cardFlags
	)

	cmd := &cobra.Command{
		Use:   "langs [file]",
		Short: "Show the languages a card would display",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			req, err := buildRequest(cfg, args, &source, &card)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cfg, source.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			usage, err := c.loadUsage(ctx, cmd, runner, req)
			if err != nil {
				return err
			}
			printLangs(cmd.OutOrStdout(), runner.Renderer, usage, req.Card)
			return nil
		},
	}

	source.register(cmd)
	card.register(cmd)

	return cmd
}

// printLangs writes the reduced dataset and the per-layout card sizes.
func printLangs(w io.Writer, r *toplangs.Renderer, usage toplangs.Usage, opts toplangs.Options) {
	res := r.Compute(usage, opts)
	data := res.Data

	if data.Empty() {
		printWarning(w, "No languages to show")
	} else {
		rows := make([][]string, 0, len(data.Languages))
		for i, l := range data.Languages {
			pct := data.Percent(l)
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				swatch(l.Color) + " " + l.Name,
				toplangs.HumanBytes(l.Size),
				fmt.Sprintf("%.2f%%", pct),
				toplangs.DisplayValue(l.Size, pct, opts.StatsFormat, nil),
			})
		}
		fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Top %d languages", len(data.Languages))))
		fmt.Fprintln(w, newTable("#", "Language", "Size", "Share", "Value").Rows(rows...).Render())
	}

	rows := make([][]string, 0, len(toplangs.Layouts()))
	for _, l := range toplangs.Layouts() {
		o := opts
		o.Layout = l
		lr := r.Compute(usage, o)
		name := l.String()
		if lr.Layout != l {
			name += " → " + lr.Layout.String()
		}
		rows = append(rows, []string{name, strconv.Itoa(len(lr.Data.Languages)), strconv.Itoa(lr.Width), strconv.Itoa(lr.Height)})
	}
	fmt.Fprintln(w, StyleTitle.Render("Card sizes"))
	fmt.Fprintln(w, newTable("Layout", "Langs", "Width", "Height").Rows(rows...).Render())
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// swatch renders a coloured dot for a language colour.
func swatch(color string) string {
	if !theme.IsColor(color) {
		color = toplangs.DefaultLanguageColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

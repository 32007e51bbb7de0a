package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/render/toplangs"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickCommand creates the pick command, an interactive layout chooser that
// renders the chosen layout.
func (c *CLI) pickCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "pick [file]",
		Short: "Choose a card layout interactively and render it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

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

			usage, err := c.loadUsage(ctx, cmd, runner, req)
			if err != nil {
				return err
			}

			m := newLayoutPicker(runner.Renderer, usage, req.Card)
			p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(cmd.ErrOrStderr()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			fm, ok := final.(layoutPicker)
			if !ok || fm.Selected == nil {
				printDetail(cmd.ErrOrStderr(), "No selection made")
				return nil
			}

			req.Card.Layout = *fm.Selected
			req.Usage = usage
			res, err := runner.Execute(ctx, req)
			if err != nil {
				return err
			}

			path := opts.output
			if path == "" {
				path = "toplangs-" + fm.Selected.String() + ".svg"
			}
			out, err := openOutput(path, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer out.Close()
			if _, err := out.Write(res.SVG); err != nil {
				return err
			}
			printSuccess(cmd.ErrOrStderr(), "Rendered %s card", res.Layout)
			if path != "-" {
				printFile(cmd.ErrOrStderr(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default toplangs-<layout>.svg)")
	opts.source.register(cmd)
	opts.card.register(cmd)

	return cmd
}

// =============================================================================
// layoutPicker - Interactive layout selection
// =============================================================================

// layoutPicker is the bubbletea model listing every layout with the card
// it would produce.
type layoutPicker struct {
	Layouts  []toplangs.Layout
	Results  []toplangs.Result
	Cursor   int
	Selected *toplangs.Layout
}

func newLayoutPicker(r *toplangs.Renderer, usage toplangs.Usage, opts toplangs.Options) layoutPicker {
	m := layoutPicker{Layouts: toplangs.Layouts()}
	for i, l := range m.Layouts {
		o := opts
		o.Layout = l
		m.Results = append(m.Results, r.Compute(usage, o))
		if l == opts.Layout {
			m.Cursor = i
		}
	}
	return m
}

func (m layoutPicker) Init() tea.Cmd {
	return nil
}

func (m layoutPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Layouts)-1 {
				m.Cursor++
			}
		case "enter":
			l := m.Layouts[m.Cursor]
			m.Selected = &l
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m layoutPicker) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layout"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Layouts))
	for i, l := range m.Layouts {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		res := m.Results[i]
		rows[i] = []string{
			cursor,
			l.String(),
			strconv.Itoa(len(res.Data.Languages)),
			fmt.Sprintf("%d×%d", res.Width, res.Height),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("", "Layout", "Langs", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case row == m.Cursor:
				return listSelectedStyle
			case col == 3:
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if res := m.Results[m.Cursor]; len(res.Data.Languages) > 0 {
		names := make([]string, len(res.Data.Languages))
		for i, l := range res.Data.Languages {
			names[i] = swatch(l.Color) + " " + l.Name
		}
		b.WriteString("  " + strings.Join(names, "  "))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Layouts))))

	return b.String()
}

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/theme"
)

// themesCommand creates the themes command.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in card themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printThemes(cmd.OutOrStdout())
			return nil
		},
	}
}

// printThemes writes each theme name with a preview of its title, text and
// background colours.
func printThemes(w io.Writer) {
	nameStyle := lipgloss.NewStyle().Width(24)
	for _, name := range theme.Names() {
		colors := theme.Resolve(name, theme.Overrides{})
		bg := colors.Bg
		if colors.IsGradient() {
			bg = colors.BgGradient[1]
		}
		preview := lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Padding(0, 1).
			Render(
				lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Title)).Render("Title") + " " +
					lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Text)).Render("text"),
			)
		fmt.Fprintln(w, nameStyle.Render(name)+preview)
	}
}

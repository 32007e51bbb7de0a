package cli

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/config"
	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/integrations/github"
	tlio "github.com/matzehuels/toplangs/pkg/io"
	"github.com/matzehuels/toplangs/pkg/pipeline"
	"github.com/matzehuels/toplangs/pkg/render/toplangs"
)

// sourceFlags selects where usage comes from: a JSON file argument or a
// GitHub user.
type sourceFlags struct {
	user        string
	excludeRepo []string
	sizeWeight  float64
	countWeight float64
	refresh     bool
	noCache     bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	d := github.DefaultFetchOptions()
	cmd.Flags().StringVarP(&f.user, "user", "u", "", "GitHub username to fetch")
	cmd.Flags().StringSliceVar(&f.excludeRepo, "exclude-repo", nil, "repositories to leave out (comma-separated)")
	cmd.Flags().Float64Var(&f.sizeWeight, "size-weight", d.SizeWeight, "exponent applied to summed language bytes")
	cmd.Flags().Float64Var(&f.countWeight, "count-weight", d.CountWeight, "exponent applied to repository counts")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached data")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// request fills the usage side of req from a file argument or --user.
func (f *sourceFlags) request(args []string, req *pipeline.Request) error {
	switch {
	case len(args) > 0 && f.user != "":
		return fmt.Errorf("give either a usage file or --user, not both")
	case len(args) > 0:
		usage, err := tlio.ImportUsage(args[0])
		if err != nil {
			return err
		}
		req.Usage = usage
	case f.user != "":
		req.Username = f.user
	default:
		return fmt.Errorf("a usage file or --user is required")
	}
	req.Fetch = github.FetchOptions{
		ExcludeRepo: f.excludeRepo,
		SizeWeight:  f.sizeWeight,
		CountWeight: f.countWeight,
	}
	req.Refresh = f.refresh
	return nil
}

// cardFlags holds the card appearance flags shared by render and pick.
type cardFlags struct {
	layout       string
	count        int
	hide         []string
	statsFormat  string
	width        int
	hideTitle    bool
	hideBorder   bool
	hideProgress bool
	noAnimations bool
	title        string
	theme        string
	locale       string
	radius       float64
	titleColor   string
	textColor    string
	bgColor      string
	borderColor  string
}

func (f *cardFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.layout, "layout", "l", "", "card layout: "+strings.Join(toplangs.LayoutNames(), ", "))
	fs.IntVarP(&f.count, "count", "n", 0, fmt.Sprintf("languages to show, 1-%d (default depends on layout)", toplangs.MaxLanguages))
	fs.StringSliceVar(&f.hide, "hide", nil, "languages to hide (comma-separated)")
	fs.StringVar(&f.statsFormat, "stats-format", "", "value format: "+strings.Join(toplangs.StatsFormatNames(), ", "))
	fs.IntVar(&f.width, "width", 0, "card width in pixels")
	fs.BoolVar(&f.hideTitle, "hide-title", false, "hide the card title")
	fs.BoolVar(&f.hideBorder, "hide-border", false, "hide the card border")
	fs.BoolVar(&f.hideProgress, "hide-progress", false, "hide progress bars and values")
	fs.BoolVar(&f.noAnimations, "disable-animations", false, "disable CSS animations")
	fs.StringVar(&f.title, "title", "", "custom card title")
	fs.StringVar(&f.theme, "theme", "", "theme name (see 'toplangs themes')")
	fs.StringVar(&f.locale, "locale", "", "title locale")
	fs.Float64Var(&f.radius, "border-radius", 0, "card corner radius")
	fs.StringVar(&f.titleColor, "title-color", "", "title colour (hex without #)")
	fs.StringVar(&f.textColor, "text-color", "", "text colour (hex without #)")
	fs.StringVar(&f.bgColor, "bg-color", "", "background colour or gradient angle,hex1,hex2")
	fs.StringVar(&f.borderColor, "border-color", "", "border colour (hex without #)")
}

// options converts the flags to card options, taking unset defaults from
// cfg.
func (f *cardFlags) options(cfg config.CardConfig) (toplangs.Options, error) {
	name := cmp.Or(f.layout, cfg.Layout)
	if err := errors.ValidateEnum("layout", name, toplangs.LayoutNames()); err != nil {
		return toplangs.Options{}, err
	}
	layout, _ := toplangs.ParseLayout(name)

	if f.count < 0 || f.count > toplangs.MaxLanguages {
		return toplangs.Options{}, errors.New(errors.ErrCodeInvalidParam,
			"Invalid count: must be a number between 1 and %d", toplangs.MaxLanguages)
	}

	opts := toplangs.Options{
		Layout:            layout,
		Count:             f.count,
		Hide:              f.hide,
		StatsFormat:       toplangs.StatsFormat(f.statsFormat),
		CardWidth:         f.width,
		HideTitle:         f.hideTitle,
		HideBorder:        f.hideBorder,
		HideProgress:      f.hideProgress,
		DisableAnimations: f.noAnimations,
		CustomTitle:       f.title,
		Theme:             cmp.Or(f.theme, cfg.Theme),
		Locale:            cmp.Or(f.locale, cfg.Locale),
		BorderRadius:      f.radius,
		TitleColor:        f.titleColor,
		TextColor:         f.textColor,
		BgColor:           f.bgColor,
		BorderColor:       f.borderColor,
	}
	return opts, nil
}

// =============================================================================
// Output
// =============================================================================

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout when path is "-".
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

// outputPath picks the destination for a rendered card: an explicit
// --output, <input>.svg for file inputs, or stdout for fetched users.
func outputPath(output string, args []string) string {
	switch {
	case output != "":
		return output
	case len(args) > 0:
		return strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
	default:
		return "-"
	}
}

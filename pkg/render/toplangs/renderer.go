package toplangs

import (
	"fmt"
	"strings"

	"github.com/matzehuels/toplangs/pkg/fonts"
	"github.com/matzehuels/toplangs/pkg/i18n"
	"github.com/matzehuels/toplangs/pkg/render"
	"github.com/matzehuels/toplangs/pkg/render/card"
	"github.com/matzehuels/toplangs/pkg/theme"
)

// Card width bounds, in pixels.
const (
	DefaultCardWidth = 300
	MinCardWidth     = 280
)

// Options controls one rendering. The zero value renders a Normal card
// with the default theme, in English.
type Options struct {
	Layout      Layout
	Count       int      // 0 selects the layout default
	Hide        []string // language names, matched ignoring case
	StatsFormat StatsFormat
	CardWidth   int // 0 selects DefaultCardWidth

	HideProgress      bool
	HideTitle         bool
	HideBorder        bool
	DisableAnimations bool

	CustomTitle  string
	Theme        string
	Locale       string
	BorderRadius float64 // 0 selects card.DefaultBorderRadius

	// Color overrides: hex without '#'. BgColor may also be a gradient
	// "angle,hex1,hex2[,...]".
	TitleColor  string
	TextColor   string
	BgColor     string
	BorderColor string
}

// Result is the computed body of a card.
type Result struct {
	Layout Layout // the layout actually drawn
	Width  int
	Height int
	Markup string
	Data   Dataset
}

// Translator looks up a message for a locale.
type Translator func(key, locale string) string

// Renderer turns language usage into cards. It holds no per-call state and
// is safe for concurrent use.
type Renderer struct {
	fmtBytes  BytesFormatter
	translate Translator
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBytesFormatter sets the formatter used by the bytes stats format.
func WithBytesFormatter(f BytesFormatter) Option {
	return func(r *Renderer) { r.fmtBytes = f }
}

// WithTranslator sets the message lookup for titles and placeholders.
func WithTranslator(t Translator) Option {
	return func(r *Renderer) { r.translate = t }
}

// New creates a Renderer using [HumanBytes] and [i18n.T] unless
// overridden.
func New(opts ...Option) *Renderer {
	r := &Renderer{fmtBytes: HumanBytes, translate: i18n.T}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultCount returns the language count used when opts.Count is zero.
// Hiding progress bars selects the compact default for every layout.
func DefaultCount(opts Options) int {
	if opts.HideProgress {
		return LayoutCompact.DefaultCount()
	}
	return opts.Layout.DefaultCount()
}

// EffectiveLayout returns the layout drawn for opts: hiding progress bars
// turns every list layout into Compact.
func EffectiveLayout(opts Options) Layout {
	switch opts.Layout {
	case LayoutPie, LayoutDonutVertical:
		return opts.Layout
	}
	if opts.HideProgress {
		return LayoutCompact
	}
	return opts.Layout
}

// CardWidth resolves the requested width: 0 selects the default and
// anything narrower than MinCardWidth is widened.
func CardWidth(requested int) int {
	switch {
	case requested <= 0:
		return DefaultCardWidth
	case requested < MinCardWidth:
		return MinCardWidth
	}
	return requested
}

// Compute reduces usage and lays out the card body. It never fails: an
// empty dataset yields a "no data" placeholder.
func (r *Renderer) Compute(usage Usage, opts Options) Result {
	count := opts.Count
	if count == 0 {
		count = DefaultCount(opts)
	}
	data := Reduce(usage, count, opts.Hide)
	colors := theme.Resolve(opts.Theme, overrides(opts))
	layout := EffectiveLayout(opts)
	spec := layout.spec()
	width := float64(CardWidth(opts.CardWidth))

	res := Result{Layout: layout, Data: data}
	var body string
	if data.Empty() {
		res.Height = compactBaseHeight
		x := 0
		if !spec.listStyle {
			x = cardPadding
		}
		body = fmt.Sprintf(`<text x="%d" y="11" class="stat bold" fill="%s">%s</text>`,
			x, colors.Text, render.EscapeXML(r.translate(i18n.KeyLangCardNoData, opts.Locale)))
	} else {
		width += spec.widthExtra
		res.Height = spec.height(len(data.Languages), opts.HideProgress)
		body = spec.render(data, frame{
			width:        width,
			hideProgress: opts.HideProgress,
			statsFormat:  opts.StatsFormat,
			fmtBytes:     r.fmtBytes,
		})
	}
	if spec.listStyle {
		body = fmt.Sprintf(`<svg data-testid="lang-items" x="%d">%s</svg>`, cardPadding, body)
	}
	res.Width = int(width)
	res.Markup = body
	return res
}

// Render computes the card body and wraps it in the card frame, returning
// a complete SVG document.
func (r *Renderer) Render(usage Usage, opts Options) []byte {
	return r.Frame(r.Compute(usage, opts), opts)
}

// Frame wraps a computed body in the card frame. opts must be the options
// res was computed with.
func (r *Renderer) Frame(res Result, opts Options) []byte {
	colors := theme.Resolve(opts.Theme, overrides(opts))

	title := r.translate(i18n.KeyLangCardTitle, opts.Locale)
	c := card.New(float64(res.Width), float64(res.Height), opts.CustomTitle, title, colors)
	if opts.BorderRadius > 0 {
		c.BorderRadius = opts.BorderRadius
	}
	if opts.DisableAnimations {
		c.DisableAnimations()
	}
	c.SetHideBorder(opts.HideBorder)
	c.SetHideTitle(opts.HideTitle)
	c.SetCSS(cardCSS(colors.Text))
	c.SetAccessibilityLabel(title, describe(res.Data))
	return []byte(c.Render(res.Markup))
}

func overrides(opts Options) theme.Overrides {
	return theme.Overrides{
		Title:  opts.TitleColor,
		Text:   opts.TextColor,
		Bg:     opts.BgColor,
		Border: opts.BorderColor,
	}
}

// describe lists the drawn languages with their shares for screen readers.
func describe(d Dataset) string {
	parts := make([]string, len(d.Languages))
	for i, l := range d.Languages {
		parts[i] = l.Name + ": " + render.Fixed(d.Percent(l), 2) + "%"
	}
	return strings.Join(parts, ", ")
}

func cardCSS(textColor string) string {
	return fmt.Sprintf(`
    @keyframes slideInAnimation {
      from {
        width: 0;
      }
      to {
        width: calc(100%%-100px);
      }
    }
    @keyframes growWidthAnimation {
      from {
        width: 0;
      }
      to {
        width: 100%%;
      }
    }
    .stat {
      font: 600 14px 'Segoe UI', Ubuntu, "Helvetica Neue", Sans-Serif; fill: %s;
    }
    @supports(-moz-appearance: auto) {
      /* Selector detects Firefox */
      .stat { font-size:12px; }
    }
    .bold { font-weight: 700 }
    .lang-name {
      font: 400 11px %s;
      fill: %s;
    }
    .stagger {
      opacity: 0;
      animation: fadeInAnimation 0.3s ease-in-out forwards;
    }
    #rect-mask rect{
      animation: slideInAnimation 1s ease-in-out forwards;
    }
    .lang-progress{
      animation: growWidthAnimation 0.6s ease-in-out forwards;
    }
`, textColor, fonts.FontFamily, textColor)
}

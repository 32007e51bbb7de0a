package toplangs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/toplangs/pkg/render"
	"github.com/matzehuels/toplangs/pkg/render/geom"
)

const (
	compactPaddingRight = 50
	compactBarHeight    = 8
	legendRowGap        = 25
	legendMinColumnGap  = 150
	legendFontSize      = 11

	// minSliceWidth is the width below which a bar slice is widened by
	// itself plus minSliceWidth, so tiny languages stay visible.
	minSliceWidth = 10
)

// renderCompact draws one stacked bar for all languages above a two-column
// legend. With hideProgress the bar is dropped and the legend moves up.
func renderCompact(d Dataset, f frame) string {
	var buf bytes.Buffer
	barWidth := f.width - compactPaddingRight

	if !f.hideProgress {
		fmt.Fprintf(&buf, `<mask id="rect-mask"><rect x="0" y="0" width="%s" height="%d" fill="white" rx="5"/></mask>`,
			render.Num(barWidth), compactBarHeight)
		var offset float64
		for _, l := range d.Languages {
			w := geom.Round2(d.share(l) * barWidth)
			drawn := w
			if w < minSliceWidth {
				drawn = w + minSliceWidth
			}
			fmt.Fprintf(&buf, `<rect mask="url(#rect-mask)" data-testid="lang-progress" x="%s" y="0" width="%s" height="%d" fill="%s"/>`,
				render.Num(offset), render.Num(drawn), compactBarHeight, l.color())
			offset += w
		}
	}

	y := 25
	if f.hideProgress {
		y = 0
	}
	fmt.Fprintf(&buf, `<g transform="translate(0, %d)">%s</g>`, y, legendColumns(d, f, f.hideProgress))
	return buf.String()
}

// legendColumns splits the languages into two columns, the first holding
// the larger half. The column gap fits the longest name and its share.
func legendColumns(d Dataset, f frame, hideValues bool) string {
	split := half(len(d.Languages))
	columns := [][]Language{d.Languages[:split]}
	if rest := d.Languages[split:]; len(rest) > 0 {
		columns = append(columns, rest)
	}

	items := make([]string, len(columns))
	for c, langs := range columns {
		nodes := make([]string, len(langs))
		for i, l := range langs {
			nodes[i] = legendNode(l, i, d, hideValues, f)
		}
		items[c] = strings.Join(render.FlexLayout(nodes, legendRowGap, render.Column), "")
	}

	long := longest(d.Languages)
	label := long.Name + " " + render.Fixed(d.Percent(long), 2) + "%"
	gap := max(legendMinColumnGap, 20+render.MeasureText(label, legendFontSize))
	return strings.Join(render.FlexLayout(items, gap, render.Row), "")
}

// legendNode is a colored dot followed by the language name and, unless
// hideValue is set, its display value.
func legendNode(l Language, i int, d Dataset, hideValue bool, f frame) string {
	text := render.EscapeXML(l.Name)
	if !hideValue {
		text += " " + render.EscapeXML(DisplayValue(l.Size, d.Percent(l), f.statsFormat, f.fmtBytes))
	}
	return fmt.Sprintf(`<g class="stagger" style="animation-delay: %dms">`+
		`<circle cx="5" cy="6" r="5" fill="%s" />`+
		`<text data-testid="lang-name" x="15" y="10" class='lang-name'>%s</text></g>`,
		legendStagger.Delay(i), l.color(), text)
}

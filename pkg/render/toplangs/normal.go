package toplangs

import (
	"fmt"
	"strings"

	"github.com/matzehuels/toplangs/pkg/render"
)

const (
	normalRowGap       = 40
	normalPaddingRight = 95
	progressTrackColor = "#ddd"
)

// renderNormal stacks one labelled progress bar per language.
func renderNormal(d Dataset, f frame) string {
	items := make([]string, len(d.Languages))
	for i, l := range d.Languages {
		items[i] = progressRow(l, i, d, f)
	}
	return strings.Join(render.FlexLayout(items, normalRowGap, render.Column), "")
}

func progressRow(l Language, i int, d Dataset, f frame) string {
	pct := d.Percent(l)
	delay := rowStagger.Delay(i)
	bar := render.ProgressNode(render.Progress{
		Y:          25,
		Width:      f.width - normalPaddingRight,
		Color:      l.color(),
		Background: progressTrackColor,
		Percent:    pct,
		Delay:      progressStagger.Delay(i),
	})
	return fmt.Sprintf(`<g class="stagger" style="animation-delay: %dms">`+
		`<text data-testid="lang-name" x="2" y="15" class="lang-name">%s</text>`+
		`<text x="%s" y="34" class="lang-name">%s</text>%s</g>`,
		delay, render.EscapeXML(l.Name),
		render.Num(f.width-normalPaddingRight+10), render.EscapeXML(DisplayValue(l.Size, pct, f.statsFormat, f.fmtBytes)),
		bar)
}

package toplangs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/toplangs/pkg/render"
	"github.com/matzehuels/toplangs/pkg/render/geom"
)

const (
	donutStrokeWidth = 12
	donutLegendGap   = 32
	donutOffsetX     = 125
)

// donutTranslateY moves the ring down as the legend grows past five rows.
func donutTranslateY(n int) int { return -45 + max(n-5, 0)*16 }

// renderDonut draws a legend column next to a stroked ring with one arc
// per language.
func renderDonut(d Dataset, f frame) string {
	cx := f.width / 3
	cy := f.width / 3
	r := cx - 60

	legend := make([]string, len(d.Languages))
	percents := make([]float64, len(d.Languages))
	for i, l := range d.Languages {
		legend[i] = legendNode(l, i, d, false, f)
		percents[i] = geom.Round2(d.Percent(l))
	}

	var ring bytes.Buffer
	if len(d.Languages) == 1 {
		fmt.Fprintf(&ring, `<circle cx="%s" cy="%s" r="%s" stroke="%s" fill="none" stroke-width="%d" data-testid="lang-donut" size="100"/>`,
			render.Num(cx), render.Num(cy), render.Num(r), d.Languages[0].color(), donutStrokeWidth)
	} else {
		for i, seg := range geom.DonutSegments(cx, cy, r, percents) {
			fmt.Fprintf(&ring, `<g class="stagger" style="animation-delay: %dms"><path data-testid="lang-donut" size="%s" d="%s" stroke="%s" fill="none" stroke-width="%d"></path></g>`,
				arcStagger.Delay(i), render.Num(seg.Percent), seg.Path, d.Languages[i].color(), donutStrokeWidth)
		}
	}

	w := render.Num(f.width)
	return fmt.Sprintf(`<g transform="translate(0, 0)"><g transform="translate(0, 0)">%s</g><g transform="translate(%d, %d)"><svg width="%s" height="%s">%s</svg></g></g>`,
		strings.Join(render.FlexLayout(legend, donutLegendGap, render.Column), ""),
		donutOffsetX, donutTranslateY(len(d.Languages)), w, w, ring.String())
}

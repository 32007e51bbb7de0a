package toplangs

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/toplangs/pkg/render"
	"github.com/matzehuels/toplangs/pkg/render/geom"
)

// Chart layouts (donut-vertical and pie) place the chart on top and the
// two-column legend below it.
const (
	chartCenterX    = 150
	chartCenterY    = 100
	chartLegendY    = 220
	cardPadding     = 25
	ringRadius      = 80
	ringStrokeWidth = 25
	pieRadius       = 90
)

func chartWrapper(testID, chart string, d Dataset, f frame) string {
	return fmt.Sprintf(`<svg data-testid="lang-items"><g transform="translate(0, 0)"><svg data-testid="%s">%s</svg></g>`+
		`<g transform="translate(0, %d)"><svg data-testid="lang-names" x="%d">%s</svg></g></svg>`,
		testID, chart, chartLegendY, cardPadding, legendColumns(d, f, false))
}

// renderDonutVertical draws one dashed circle per language; each circle
// is offset along the ring by the shares of the languages before it.
func renderDonutVertical(d Dataset, f frame) string {
	circumference := geom.CircleLength(ringRadius)

	var buf bytes.Buffer
	var indent float64
	for i, l := range d.Languages {
		pct := d.Percent(l)
		fmt.Fprintf(&buf, `<g class="stagger" style="animation-delay: %dms"><circle cx="%d" cy="%d" r="%d" fill="transparent" stroke="%s" stroke-width="%d" stroke-dasharray="%s" stroke-dashoffset="%s" size="%s" data-testid="lang-donut"/></g>`,
			segmentStagger.Delay(i), chartCenterX, chartCenterY, ringRadius, l.color(), ringStrokeWidth,
			render.Num(circumference), render.Num(indent), render.Num(pct))
		indent += circumference * (pct / 100)
	}
	return chartWrapper("donut", buf.String(), d, f)
}

// renderPie draws one wedge per language clockwise from 3 o'clock. A
// single language is a filled circle.
func renderPie(d Dataset, f frame) string {
	var buf bytes.Buffer
	if len(d.Languages) == 1 {
		fmt.Fprintf(&buf, `<circle cx="%d" cy="%d" r="%d" stroke="none" fill="%s" data-testid="lang-pie" size="100"/>`,
			chartCenterX, chartCenterY, pieRadius, d.Languages[0].color())
		return chartWrapper("pie", buf.String(), d, f)
	}

	var start float64
	for i, l := range d.Languages {
		part := d.share(l)
		end := start + part*360
		fmt.Fprintf(&buf, `<g class="stagger" style="animation-delay: %dms"><path data-testid="lang-pie" size="%s" d="%s" fill="%s"/></g>`,
			segmentStagger.Delay(i), render.Num(part*100),
			geom.WedgePath(chartCenterX, chartCenterY, pieRadius, start, end), l.color())
		start = end
	}
	return chartWrapper("pie", buf.String(), d, f)
}

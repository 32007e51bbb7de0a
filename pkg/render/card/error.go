package card

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/toplangs/pkg/fonts"
	"github.com/matzehuels/toplangs/pkg/render"
	"github.com/matzehuels/toplangs/pkg/theme"
)

const (
	errorCardWidth  = 576.5
	errorCardHeight = 120
)

// RenderError renders a fixed-size card showing message and an optional
// secondary hint. Cards are usually embedded as images, so errors are
// reported visually rather than through the HTTP status.
func RenderError(message, secondary string, colors theme.Colors) string {
	bg := colors.Bg
	if colors.IsGradient() || bg == "" {
		bg = "#fffefe"
	}

	var buf bytes.Buffer
	w := render.Num(errorCardWidth)
	fmt.Fprintf(&buf, `<svg width="%s" height="%d" viewBox="0 0 %s %d" fill="%s" xmlns="http://www.w3.org/2000/svg">`+"\n", w, errorCardHeight, w, errorCardHeight, bg)
	buf.WriteString("  <style>\n")
	fmt.Fprintf(&buf, "    .text { font: 600 16px %s; fill: %s }\n", fonts.FontFamily, colors.Title)
	fmt.Fprintf(&buf, "    .small { font: 600 12px %s; fill: %s }\n", fonts.FontFamily, colors.Text)
	buf.WriteString("    .gray { fill: #858585 }\n")
	buf.WriteString("  </style>\n")
	fmt.Fprintf(&buf, `  <rect x="0.5" y="0.5" width="%s" height="99%%" rx="4.5" fill="%s" stroke="%s"/>`+"\n",
		render.Num(errorCardWidth-1), bg, colors.Border)
	fmt.Fprintf(&buf, `  <text x="25" y="45" class="text">%s</text>`+"\n", render.EncodeHTML(message))
	if secondary != "" {
		fmt.Fprintf(&buf, `  <text data-testid="message" x="25" y="55" class="text small"><tspan x="25" dy="18" class="gray">%s</tspan></text>`+"\n",
			render.EncodeHTML(secondary))
	}
	buf.WriteString("</svg>\n")
	return buf.String()
}

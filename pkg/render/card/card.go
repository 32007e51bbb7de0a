// Package card renders the outer frame shared by all cards: the SVG
// document, accessibility labels, style block, background, border and title.
//
// A card body is an opaque markup fragment produced by a card renderer; the
// frame only positions it below the title.
package card

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/toplangs/pkg/fonts"
	"github.com/matzehuels/toplangs/pkg/render"
	"github.com/matzehuels/toplangs/pkg/theme"
)

const (
	paddingX = 25
	paddingY = 35

	// DefaultBorderRadius is the corner radius of the background rect.
	DefaultBorderRadius = 4.5

	// titleHeight is the vertical space reclaimed when the title is hidden.
	titleHeight = 30
)

const animationsCSS = `
    /* Animations */
    @keyframes scaleInAnimation {
      from {
        transform: translate(-5px, 5px) scale(0);
      }
      to {
        transform: translate(-5px, 5px) scale(1);
      }
    }
    @keyframes fadeInAnimation {
      from {
        opacity: 0;
      }
      to {
        opacity: 1;
      }
    }`

const disableAnimationsCSS = `* { animation-duration: 0s !important; animation-delay: 0s !important; }`

// Card is the frame around a card body. Create one with [New], adjust it
// with the setters, then call [Card.Render].
type Card struct {
	Width        float64
	Height       float64
	Title        string
	Colors       theme.Colors
	BorderRadius float64

	hideBorder bool
	hideTitle  bool
	animations bool
	css        string
	a11yTitle  string
	a11yDesc   string
}

// New creates a card of the given size. customTitle wins over
// defaultTitle when non-empty.
func New(width, height float64, customTitle, defaultTitle string, colors theme.Colors) *Card {
	title := defaultTitle
	if customTitle != "" {
		title = customTitle
	}
	return &Card{
		Width:        width,
		Height:       height,
		Title:        render.EncodeHTML(title),
		Colors:       colors,
		BorderRadius: DefaultBorderRadius,
		animations:   true,
	}
}

// DisableAnimations forces every animation to complete instantly.
func (c *Card) DisableAnimations() { c.animations = false }

// SetHideBorder makes the border transparent.
func (c *Card) SetHideBorder(v bool) { c.hideBorder = v }

// SetHideTitle drops the title and shrinks the card accordingly.
func (c *Card) SetHideTitle(v bool) {
	c.hideTitle = v
	if v {
		c.Height -= titleHeight
	}
}

// SetCSS sets card-specific CSS, injected after the header styles.
func (c *Card) SetCSS(css string) { c.css = css }

// SetAccessibilityLabel sets the <title> and <desc> read by screen readers.
func (c *Card) SetAccessibilityLabel(title, desc string) {
	c.a11yTitle = title
	c.a11yDesc = desc
}

// Render wraps body in the card frame and returns the full SVG document.
func (c *Card) Render(body string) string {
	var buf bytes.Buffer
	w, h := render.Num(c.Width), render.Num(c.Height)

	fmt.Fprintf(&buf, `<svg width="%s" height="%s" viewBox="0 0 %s %s" fill="none" xmlns="http://www.w3.org/2000/svg" role="img" aria-labelledby="descId">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <title id="titleId">%s</title>`+"\n", render.EscapeXML(c.a11yTitle))
	fmt.Fprintf(&buf, `  <desc id="descId">%s</desc>`+"\n", render.EscapeXML(c.a11yDesc))

	buf.WriteString("  <style>\n")
	fmt.Fprintf(&buf, "    .header {\n      font: 600 18px %s;\n      fill: %s;\n      animation: fadeInAnimation 0.8s ease-in-out forwards;\n    }\n", fonts.FontFamily, c.Colors.Title)
	buf.WriteString("    @supports(-moz-appearance: auto) {\n      /* Selector detects Firefox */\n      .header { font-size: 15.5px; }\n    }\n")
	buf.WriteString(c.css)
	buf.WriteString(animationsCSS)
	if !c.animations {
		buf.WriteString("\n    " + disableAnimationsCSS)
	}
	buf.WriteString("\n  </style>\n")

	c.renderGradient(&buf)

	borderOpacity := 1
	if c.hideBorder {
		borderOpacity = 0
	}
	fill := c.Colors.Bg
	if c.Colors.IsGradient() {
		fill = "url(#gradient)"
	}
	fmt.Fprintf(&buf, `  <rect data-testid="card-bg" x="0.5" y="0.5" rx="%s" height="99%%" stroke="%s" width="%s" fill="%s" stroke-opacity="%d"/>`+"\n",
		render.Num(c.BorderRadius), c.Colors.Border, render.Num(c.Width-1), fill, borderOpacity)

	if !c.hideTitle {
		c.renderTitle(&buf)
	}

	offset := paddingY + 20
	if c.hideTitle {
		offset = paddingX
	}
	fmt.Fprintf(&buf, `  <g data-testid="main-card-body" transform="translate(0, %d)">`+"\n", offset)
	buf.WriteString(body)
	buf.WriteString("\n  </g>\n</svg>\n")
	return buf.String()
}

func (c *Card) renderTitle(buf *bytes.Buffer) {
	text := fmt.Sprintf(`<text x="0" y="0" class="header" data-testid="header">%s</text>`, c.Title)
	fmt.Fprintf(buf, `  <g data-testid="card-title" transform="translate(%d, %d)">%s</g>`+"\n",
		paddingX, paddingY, strings.Join(render.FlexLayout([]string{text}, 25, render.Row), ""))
}

func (c *Card) renderGradient(buf *bytes.Buffer) {
	if !c.Colors.IsGradient() {
		return
	}
	angle, stops := c.Colors.BgGradient[0], c.Colors.BgGradient[1:]
	fmt.Fprintf(buf, `  <defs><linearGradient id="gradient" gradientTransform="rotate(%s)" gradientUnits="userSpaceOnUse">`, render.EscapeXML(angle))
	for i, stop := range stops {
		offset := float64(i) * 100 / float64(len(stops)-1)
		fmt.Fprintf(buf, `<stop offset="%s%%" stop-color="%s" />`, render.Num(offset), stop)
	}
	buf.WriteString("</linearGradient></defs>\n")
}

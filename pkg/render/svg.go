package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/toplangs/pkg/fonts"
)

// Direction is the main axis of a [FlexLayout].
type Direction int

const (
	Row Direction = iota
	Column
)

// FlexLayout wraps each non-empty item in a translated group, placing items
// one after another along dir. The offset of item i is the sum of the sizes
// of the previous items plus gap per item; sizes may be shorter than items,
// missing sizes count as zero.
func FlexLayout(items []string, gap float64, dir Direction, sizes ...float64) []string {
	out := make([]string, 0, len(items))
	var last float64
	for i, item := range items {
		if item == "" {
			continue
		}
		var size float64
		if i < len(sizes) {
			size = sizes[i]
		}
		transform := fmt.Sprintf("translate(%s, 0)", Num(last))
		if dir == Column {
			transform = fmt.Sprintf("translate(0, %s)", Num(last))
		}
		last += size + gap
		out = append(out, fmt.Sprintf(`<g transform="%s">%s</g>`, transform, item))
	}
	return out
}

// Progress describes a horizontal progress bar.
type Progress struct {
	X, Y       float64
	Width      float64
	Color      string
	Background string
	Percent    float64 // clamped to [2, 100] so tiny shares stay visible
	Delay      int     // animation delay in ms
}

// ProgressNode renders p as a nested canvas holding the track and the bar.
func ProgressNode(p Progress) string {
	pct := math.Max(2, math.Min(100, p.Percent))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%s" x="%s" y="%s">`, Num(p.Width), Num(p.X), Num(p.Y))
	fmt.Fprintf(&buf, `<rect rx="5" ry="5" x="0" y="0" width="%s" height="8" fill="%s"></rect>`, Num(p.Width), p.Background)
	fmt.Fprintf(&buf, `<svg data-testid="lang-progress" width="%s%%">`, Num(pct))
	fmt.Fprintf(&buf, `<rect height="8" fill="%s" rx="5" ry="5" x="0" y="0" class="lang-progress" style="animation-delay: %dms;" />`, p.Color, p.Delay)
	buf.WriteString("</svg></svg>")
	return buf.String()
}

// EscapeXML escapes s for use as SVG text content or attribute value.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// EncodeHTML replaces markup-significant and non-ASCII characters in the
// range U+00A0..U+9999 with numeric character references and strips
// control characters SVG renderers reject. Used for user-provided titles.
func EncodeHTML(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r <= 0x08, r == 0x0b, r == 0x0c, r >= 0x0e && r <= 0x1f:
			continue
		case r == '<', r == '>', r == '&', r == '"', r == '\'', r >= 0xa0 && r <= 0x9999:
			// An ampersand that starts an existing reference is kept.
			if i+1 < len(runes) && runes[i+1] == '#' {
				b.WriteRune(r)
				continue
			}
			b.WriteString("&#")
			b.WriteString(strconv.Itoa(int(r)))
			b.WriteByte(';')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Num formats f with the shortest decimal representation that round-trips,
// so integral values print without a fractional part.
func Num(f float64) string {
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Fixed formats f with exactly digits decimal places.
func Fixed(f float64, digits int) string {
	return strconv.FormatFloat(f, 'f', digits, 64)
}

// MeasureText returns the approximate rendered width of s at the given
// font size in pixels.
func MeasureText(s string, size float64) float64 {
	return fonts.MeasureText(s, size)
}

// Package theme resolves card color palettes from a theme name and optional
// per-request overrides.
//
// Overrides are hex digits without the leading '#' (3, 4, 6 or 8 digits),
// as they arrive in query strings. The background additionally accepts a
// gradient "angle,hex,hex[,hex...]". Invalid overrides are ignored and the
// theme color is used instead, so [Resolve] never fails.
package theme

import (
	"regexp"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultTheme is the theme used for unknown or empty theme names.
const DefaultTheme = "default"

// Overrides are explicit per-request colors. Empty fields use the theme.
type Overrides struct {
	Title  string
	Icon   string
	Text   string
	Bg     string
	Border string
	Ring   string
}

// Colors is a fully resolved palette. Solid colors carry a leading '#'.
type Colors struct {
	Title  string
	Icon   string
	Text   string
	Bg     string // empty when BgGradient is set
	Border string
	Ring   string

	// BgGradient is set when the background is a gradient. The first
	// element is the rotation angle, the rest are '#'-prefixed stops.
	BgGradient []string
}

// IsGradient reports whether the background is a gradient.
func (c Colors) IsGradient() bool { return len(c.BgGradient) > 0 }

var hexRe = regexp.MustCompile(`^([A-Fa-f0-9]{8}|[A-Fa-f0-9]{6}|[A-Fa-f0-9]{3}|[A-Fa-f0-9]{4})$`)

var colorRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// ValidHex reports whether s is 3, 4, 6 or 8 hex digits without a '#'.
func ValidHex(s string) bool { return hexRe.MatchString(s) }

// IsColor reports whether s is a '#'-prefixed 3 or 6 digit hex color, the
// form used for per-language colors.
func IsColor(s string) bool {
	if !colorRe.MatchString(s) {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}

// Exists reports whether name is a built-in theme.
func Exists(name string) bool {
	_, ok := themes[name]
	return ok
}

// Names returns all built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get returns the palette of a built-in theme.
func Get(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Resolve returns the palette for theme name with overrides applied.
// Unknown names resolve to [DefaultTheme].
func Resolve(name string, o Overrides) Colors {
	def := themes[DefaultTheme]
	sel, ok := themes[name]
	if !ok {
		sel = def
	}
	pick := func(v, fallback string) string {
		if v != "" {
			return v
		}
		return fallback
	}

	titleDef := pick(sel.Title, def.Title)
	borderDef := pick(sel.Border, def.Border)

	c := Colors{
		Title:  solid(pick(o.Title, titleDef), "#"+titleDef),
		Icon:   solid(pick(o.Icon, sel.Icon), "#"+pick(sel.Icon, def.Icon)),
		Text:   solid(pick(o.Text, sel.Text), "#"+pick(sel.Text, def.Text)),
		Border: solid(pick(o.Border, borderDef), "#"+borderDef),
	}
	c.Ring = solid(o.Ring, c.Title)

	bgDef := pick(sel.Bg, def.Bg)
	bg := pick(o.Bg, bgDef)
	if g, ok := gradient(bg); ok {
		c.BgGradient = g
	} else if ValidHex(bg) {
		c.Bg = "#" + bg
	} else if g, ok := gradient(bgDef); ok {
		c.BgGradient = g
	} else {
		c.Bg = "#" + bgDef
	}
	return c
}

// solid returns "#"+v when v is valid hex, else fallback.
func solid(v, fallback string) string {
	if ValidHex(v) {
		return "#" + v
	}
	return fallback
}

// gradient parses "angle,hex,hex[,...]". At least two color stops are
// required and every stop must be valid hex.
func gradient(v string) ([]string, bool) {
	parts := strings.Split(v, ",")
	if len(parts) < 3 {
		return nil, false
	}
	out := []string{parts[0]}
	for _, p := range parts[1:] {
		if !ValidHex(p) {
			return nil, false
		}
		out = append(out, "#"+p)
	}
	return out, true
}

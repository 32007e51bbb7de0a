// Package fonts provides font metrics for laying out card text.
//
// Cards are rendered with the CSS stack in [FontFamily], which the server
// never sees. Text widths are approximated with the Go Regular face that
// ships with golang.org/x/image, which has metrics close to the sans-serif
// fonts browsers fall back to.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font stack used for card text.
const FontFamily = `"Segoe UI", Ubuntu, Sans-Serif`

// charWidth is the average advance per character relative to the font
// size, used when the embedded face cannot be loaded.
const charWidth = 0.6

// Parsed font (computed once on first access).
var (
	regular     *opentype.Font
	regularErr  error
	regularOnce sync.Once
)

// Regular returns the parsed Go Regular font. The result is cached after
// the first call; the returned font is safe for concurrent use.
func Regular() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// MeasureText returns the advance width of s in pixels at the given font
// size.
func MeasureText(s string, size float64) float64 {
	f, err := Regular()
	if err != nil {
		return approximate(s, size)
	}
	// Faces cache glyph data internally and must not be shared.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return approximate(s, size)
	}
	defer face.Close()

	return float64(font.MeasureString(face, s)) / 64
}

func approximate(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * charWidth
}

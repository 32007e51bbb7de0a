package toplangs

import (
	"cmp"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/toplangs/pkg/render"
	"github.com/matzehuels/toplangs/pkg/theme"
)

// MaxLanguages is the upper bound on languages shown on one card.
const MaxLanguages = 20

// DefaultLanguageColor is used for languages without a valid color.
const DefaultLanguageColor = "#858585"

// Language is the usage of one programming language.
type Language struct {
	Name  string `json:"name"`
	Size  int64  `json:"size"`            // bytes attributed to the language
	Color string `json:"color,omitempty"` // '#'-prefixed hex, optional
}

// color returns the language color or [DefaultLanguageColor].
func (l Language) color() string {
	if theme.IsColor(l.Color) {
		return l.Color
	}
	return DefaultLanguageColor
}

// Usage maps language names to their usage.
type Usage map[string]Language

// Dataset is the reduced, ordered list of languages to draw.
type Dataset struct {
	Languages []Language
	TotalSize int64 // sum of Size over Languages
}

// Empty reports whether there is nothing to draw.
func (d Dataset) Empty() bool { return len(d.Languages) == 0 }

// Percent returns the share of l in the dataset, in percent.
func (d Dataset) Percent(l Language) float64 {
	return d.share(l) * 100
}

// share is l's fraction of TotalSize, or 0 when every size is 0.
func (d Dataset) share(l Language) float64 {
	if d.TotalSize == 0 {
		return 0
	}
	return float64(l.Size) / float64(d.TotalSize)
}

// Reduce drops hidden languages, orders the rest by size (largest first)
// and keeps at most count of them. count is clamped to [1, MaxLanguages].
//
// Hide entries match language names ignoring case and surrounding
// whitespace. Equal sizes are ordered by name so the result does not
// depend on map iteration order.
func Reduce(usage Usage, count int, hide []string) Dataset {
	hidden := make(map[string]bool, len(hide))
	for _, h := range hide {
		hidden[normalizeName(h)] = true
	}
	count = max(1, min(count, MaxLanguages))

	langs := make([]Language, 0, len(usage))
	for _, key := range slices.Sorted(maps.Keys(usage)) {
		l := usage[key]
		if l.Name == "" {
			l.Name = key
		}
		if hidden[normalizeName(l.Name)] {
			continue
		}
		langs = append(langs, l)
	}
	slices.SortStableFunc(langs, func(a, b Language) int {
		return cmp.Compare(b.Size, a.Size)
	})
	if len(langs) > count {
		langs = langs[:count]
	}

	var total int64
	for _, l := range langs {
		total += l.Size
	}
	return Dataset{Languages: langs, TotalSize: total}
}

func normalizeName(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// StatsFormat selects how a language's share is printed.
type StatsFormat string

const (
	FormatPercentages StatsFormat = "percentages"
	FormatBytes       StatsFormat = "bytes"
)

// ValidStatsFormats is the set of supported stats formats.
var ValidStatsFormats = map[StatsFormat]bool{
	FormatPercentages: true,
	FormatBytes:       true,
}

// StatsFormatNames returns the stats format names in the order they are
// documented.
func StatsFormatNames() []string {
	return []string{string(FormatBytes), string(FormatPercentages)}
}

// BytesFormatter renders a byte count for humans.
type BytesFormatter func(size int64) string

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// HumanBytes is the default [BytesFormatter]: powers of 1024 with one
// decimal, e.g. "1.5 KB".
func HumanBytes(size int64) string {
	if size == 0 {
		return "0 B"
	}
	sign, v := "", float64(size)
	if v < 0 {
		sign, v = "-", -v
	}
	i := min(int(math.Floor(math.Log(v)/math.Log(1024))), len(byteUnits)-1)
	return sign + strconv.FormatFloat(v/math.Pow(1024, float64(i)), 'f', 1, 64) + " " + byteUnits[i]
}

// DisplayValue returns the label shown next to a language: either the
// percentage with two decimals or the formatted byte size.
func DisplayValue(size int64, percentage float64, format StatsFormat, fmtBytes BytesFormatter) string {
	if format == FormatBytes {
		if fmtBytes == nil {
			fmtBytes = HumanBytes
		}
		return fmtBytes(size)
	}
	return render.Fixed(percentage, 2) + "%"
}

// longest returns the language with the longest name; the first one wins
// on ties.
func longest(langs []Language) Language {
	var out Language
	for _, l := range langs {
		if utf8.RuneCountInString(l.Name) > utf8.RuneCountInString(out.Name) {
			out = l
		}
	}
	return out
}

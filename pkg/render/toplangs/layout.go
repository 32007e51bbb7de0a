package toplangs

import (
	"strings"
)

// Layout selects one of the card layouts.
type Layout int

const (
	LayoutNormal Layout = iota
	LayoutCompact
	LayoutDonut
	LayoutDonutVertical
	LayoutPie
)

// Layout names as accepted by [ParseLayout].
const (
	NameNormal        = "normal"
	NameCompact       = "compact"
	NameDonut         = "donut"
	NameDonutVertical = "donut-vertical"
	NamePie           = "pie"
)

// Stagger computes the animation delay of item i as (i+Offset)*Step+Extra
// milliseconds.
type Stagger struct {
	Offset int
	Step   int
	Extra  int
}

// Delay returns the delay in milliseconds for item i.
func (s Stagger) Delay(i int) int { return (i+s.Offset)*s.Step + s.Extra }

// Stagger tables. The legend is shared by every layout that lists
// languages as colored dots.
var (
	rowStagger      = Stagger{Offset: 3, Step: 150}
	progressStagger = Stagger{Offset: 3, Step: 150, Extra: 300}
	legendStagger   = Stagger{Offset: 3, Step: 150}
	arcStagger      = Stagger{Offset: 3, Step: 100, Extra: 300}
	segmentStagger  = Stagger{Offset: 1, Step: 100}
)

type layoutSpec struct {
	name         string
	defaultCount int
	stagger      Stagger
	height       func(n int, hideProgress bool) int
	render       func(d Dataset, f frame) string
	listStyle    bool // wrapped in the lang-items canvas
	widthExtra   float64
}

// frame carries the per-call values a layout needs besides the dataset.
type frame struct {
	width        float64
	hideProgress bool
	statsFormat  StatsFormat
	fmtBytes     BytesFormatter
}

const (
	compactBaseHeight = 90
	rowHeight         = 25
)

// half is n/2 rounded half up.
func half(n int) int { return (n + 1) / 2 }

var layouts = map[Layout]layoutSpec{
	LayoutNormal: {
		name:         NameNormal,
		defaultCount: 5,
		stagger:      rowStagger,
		height:       func(n int, _ bool) int { return 45 + (n+1)*40 },
		render:       renderNormal,
		listStyle:    true,
	},
	LayoutCompact: {
		name:         NameCompact,
		defaultCount: 6,
		stagger:      legendStagger,
		height: func(n int, hideProgress bool) int {
			h := compactBaseHeight + half(n)*rowHeight
			if hideProgress {
				h -= rowHeight
			}
			return h
		},
		render:    renderCompact,
		listStyle: true,
	},
	LayoutDonut: {
		name:         NameDonut,
		defaultCount: 5,
		stagger:      arcStagger,
		height:       func(n int, _ bool) int { return 215 + max(n-5, 0)*32 },
		render:       renderDonut,
		listStyle:    true,
		widthExtra:   50,
	},
	LayoutDonutVertical: {
		name:         NameDonutVertical,
		defaultCount: 6,
		stagger:      segmentStagger,
		height:       func(n int, _ bool) int { return 300 + half(n)*rowHeight },
		render:       renderDonutVertical,
	},
	LayoutPie: {
		name:         NamePie,
		defaultCount: 6,
		stagger:      segmentStagger,
		height:       func(n int, _ bool) int { return 300 + half(n)*rowHeight },
		render:       renderPie,
	},
}

// Layouts returns every layout in declaration order.
func Layouts() []Layout {
	return []Layout{LayoutNormal, LayoutCompact, LayoutDonut, LayoutDonutVertical, LayoutPie}
}

// LayoutNames returns the accepted layout names in declaration order.
func LayoutNames() []string {
	out := make([]string, 0, len(layouts))
	for _, l := range Layouts() {
		out = append(out, l.String())
	}
	return out
}

// ParseLayout maps a layout name to a Layout. Unknown names yield
// LayoutNormal and false.
func ParseLayout(s string) (Layout, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range Layouts() {
		if layouts[l].name == s {
			return l, true
		}
	}
	return LayoutNormal, false
}

func (l Layout) spec() layoutSpec {
	if s, ok := layouts[l]; ok {
		return s
	}
	return layouts[LayoutNormal]
}

// String returns the layout name.
func (l Layout) String() string { return l.spec().name }

// DefaultCount is the number of languages shown when no count is requested.
func (l Layout) DefaultCount() int { return l.spec().defaultCount }

// Stagger returns the animation stagger of the layout's primary items.
func (l Layout) Stagger() Stagger { return l.spec().stagger }

// Height returns the body height for n languages.
func (l Layout) Height(n int, hideProgress bool) int { return l.spec().height(n, hideProgress) }

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode
// to LayoutNormal.
func (l *Layout) UnmarshalText(b []byte) error {
	*l, _ = ParseLayout(string(b))
	return nil
}

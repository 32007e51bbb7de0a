package toplangs

import "testing"

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in   string
		want Layout
		ok   bool
	}{
		{"normal", LayoutNormal, true},
		{"compact", LayoutCompact, true},
		{"Donut", LayoutDonut, true},
		{" donut-vertical ", LayoutDonutVertical, true},
		{"pie", LayoutPie, true},
		{"", LayoutNormal, false},
		{"bar", LayoutNormal, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLayout(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseLayout(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	for _, l := range Layouts() {
		b, err := l.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Layout
		if err := back.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if back != l {
			t.Errorf("%s round-tripped to %s", l, back)
		}
	}
	if got := Layout(42).String(); got != NameNormal {
		t.Errorf("unknown layout String() = %q, want %q", got, NameNormal)
	}
}

func TestLayoutNames(t *testing.T) {
	want := []string{"normal", "compact", "donut", "donut-vertical", "pie"}
	got := LayoutNames()
	if len(got) != len(want) {
		t.Fatalf("LayoutNames() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LayoutNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultCount(t *testing.T) {
	tests := []struct {
		layout Layout
		want   int
	}{
		{LayoutNormal, 5},
		{LayoutCompact, 6},
		{LayoutDonut, 5},
		{LayoutDonutVertical, 6},
		{LayoutPie, 6},
	}
	for _, tt := range tests {
		if got := tt.layout.DefaultCount(); got != tt.want {
			t.Errorf("%s.DefaultCount() = %d, want %d", tt.layout, got, tt.want)
		}
	}
	if got := DefaultCount(Options{Layout: LayoutDonut, HideProgress: true}); got != 6 {
		t.Errorf("hidden progress should use the compact default, got %d", got)
	}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		layout Layout
		hide   bool
		want   map[int]int // n -> height
	}{
		{LayoutNormal, false, map[int]int{0: 85, 1: 125, 5: 285, 6: 325, 20: 885}},
		{LayoutCompact, false, map[int]int{0: 90, 1: 115, 5: 165, 6: 165, 20: 340}},
		{LayoutCompact, true, map[int]int{0: 65, 1: 90, 5: 140, 6: 140, 20: 315}},
		{LayoutDonut, false, map[int]int{0: 215, 1: 215, 5: 215, 6: 247, 20: 695}},
		{LayoutDonutVertical, false, map[int]int{0: 300, 1: 325, 5: 375, 6: 375, 20: 550}},
		{LayoutPie, false, map[int]int{0: 300, 1: 325, 5: 375, 6: 375, 20: 550}},
	}
	for _, tt := range tests {
		for n, want := range tt.want {
			if got := tt.layout.Height(n, tt.hide); got != want {
				t.Errorf("%s.Height(%d, %v) = %d, want %d", tt.layout, n, tt.hide, got, want)
			}
		}
	}
}

func TestStagger(t *testing.T) {
	tests := []struct {
		name string
		s    Stagger
		i    int
		want int
	}{
		{"normal row", LayoutNormal.Stagger(), 0, 450},
		{"normal row 2", LayoutNormal.Stagger(), 2, 750},
		{"progress bar", progressStagger, 0, 750},
		{"legend", legendStagger, 1, 600},
		{"donut arc", LayoutDonut.Stagger(), 0, 600},
		{"pie wedge", LayoutPie.Stagger(), 0, 100},
		{"ring segment", LayoutDonutVertical.Stagger(), 3, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Delay(tt.i); got != tt.want {
				t.Errorf("Delay(%d) = %d, want %d", tt.i, got, tt.want)
			}
		})
	}
}

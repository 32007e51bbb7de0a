package geom

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestPolarToCartesian(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want Point
	}{
		{"zero", 0, Point{110, 50}},
		{"quarter", 90, Point{100, 60}},
		{"half", 180, Point{90, 50}},
		{"three quarters", 270, Point{100, 40}},
		{"negative", -90, Point{100, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolarToCartesian(100, 50, 10, tt.deg)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("PolarToCartesian(100, 50, 10, %v) = %+v, want %+v", tt.deg, got, tt.want)
			}
		})
	}
}

func TestCartesianToPolarRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 30, 135, 200, 359} {
		p := PolarToCartesian(150, 100, 80, deg)
		got := CartesianToPolar(150, 100, p.X, p.Y)
		if math.Abs(got.Radius-80) > 1e-6 || math.Abs(got.Angle-deg) > 1e-6 {
			t.Errorf("round trip %v: got %+v", deg, got)
		}
	}
}

func TestCartesianToPolarNormalizesNegative(t *testing.T) {
	got := CartesianToPolar(0, 0, 0, -1)
	if !near(got.Angle, 270) {
		t.Errorf("angle = %v, want 270", got.Angle)
	}
}

func TestCircleLength(t *testing.T) {
	if got := CircleLength(80); !near(got, 160*math.Pi) {
		t.Errorf("CircleLength(80) = %v", got)
	}
}

func TestLargeArcFlag(t *testing.T) {
	tests := []struct {
		sweep float64
		want  int
	}{
		{0, 0},
		{90, 0},
		{180, 0},
		{180.01, 1},
		{270, 1},
	}
	for _, tt := range tests {
		if got := LargeArcFlag(tt.sweep); got != tt.want {
			t.Errorf("LargeArcFlag(%v) = %d, want %d", tt.sweep, got, tt.want)
		}
	}
}

func TestWedgePath(t *testing.T) {
	got := WedgePath(150, 100, 90, 0, 270)
	if !strings.HasPrefix(got, "M 150 100 L 240 100 A 90 90 0 1 1 ") {
		t.Errorf("WedgePath major = %q", got)
	}
	if !strings.HasSuffix(got, " Z") {
		t.Errorf("WedgePath should close the path: %q", got)
	}

	minor := WedgePath(150, 100, 90, 0, 90)
	if !strings.Contains(minor, "A 90 90 0 0 1 ") {
		t.Errorf("WedgePath minor = %q", minor)
	}
}

func TestDonutSegmentsAccumulate(t *testing.T) {
	segs := DonutSegments(100, 100, 40, []float64{50, 30, 20})
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].StartAngle != segs[i-1].EndAngle {
			t.Errorf("segment %d starts at %v, previous ends at %v", i, segs[i].StartAngle, segs[i-1].EndAngle)
		}
	}
	if !near(segs[2].EndAngle, 360) {
		t.Errorf("last segment ends at %v, want 360", segs[2].EndAngle)
	}
	// First segment ends at 180° (+ -90° rotation = 90°, straight down).
	if !strings.HasPrefix(segs[0].Path, "M 100 140 A 40 40 0 0 0 ") {
		t.Errorf("first path = %q", segs[0].Path)
	}
}

func TestDonutSegmentsNormalize(t *testing.T) {
	segs := DonutSegments(0, 0, 10, []float64{1, 1, 2})
	want := []float64{25, 25, 50}
	for i, s := range segs {
		if s.Percent != want[i] {
			t.Errorf("segment %d percent = %v, want %v", i, s.Percent, want[i])
		}
	}
}

func TestDonutSegmentsLargeArc(t *testing.T) {
	segs := DonutSegments(0, 0, 10, []float64{75, 25})
	if !strings.Contains(segs[0].Path, " 0 1 0 ") {
		t.Errorf("75%% segment should use the large arc: %q", segs[0].Path)
	}
	if !strings.Contains(segs[1].Path, " 0 0 0 ") {
		t.Errorf("25%% segment should use the small arc: %q", segs[1].Path)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{33.333333, 33.33},
		{66.666666, 66.67},
		{100, 100},
		{0.004, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func ExampleArcPath() {
	fmt.Println(ArcPath(Point{100, 60}, Point{100, 140}, 40, 0, 0))
	// Output: M 100 60 A 40 40 0 0 0 100 140
}

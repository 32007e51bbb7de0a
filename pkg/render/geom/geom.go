// Package geom provides the circle math behind the ring and wedge charts:
// polar/cartesian conversion, circumference and SVG arc path construction.
//
// All functions are pure and work in SVG user units with angles in degrees,
// measured clockwise from the positive x-axis (SVG's y-axis points down).
package geom

import (
	"fmt"
	"math"
	"strconv"
)

// Point is a cartesian coordinate.
type Point struct {
	X, Y float64
}

// Polar is a radius/angle pair relative to some center.
type Polar struct {
	Radius float64
	Angle  float64 // degrees in [0, 360)
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(deg float64) float64 { return deg * (math.Pi / 180.0) }

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(rad float64) float64 { return rad / (math.Pi / 180.0) }

// PolarToCartesian returns the point at angle deg on the circle of radius r
// centered on (cx, cy).
func PolarToCartesian(cx, cy, r, deg float64) Point {
	rad := DegreesToRadians(deg)
	return Point{
		X: cx + r*math.Cos(rad),
		Y: cy + r*math.Sin(rad),
	}
}

// CartesianToPolar is the inverse of [PolarToCartesian]. Negative angles
// are normalized into [0, 360).
func CartesianToPolar(cx, cy, x, y float64) Polar {
	radius := math.Hypot(x-cx, y-cy)
	angle := RadiansToDegrees(math.Atan2(y-cy, x-cx))
	if angle < 0 {
		angle += 360
	}
	return Polar{Radius: radius, Angle: angle}
}

// CircleLength returns the circumference 2πr.
func CircleLength(r float64) float64 { return 2 * math.Pi * r }

// LargeArcFlag returns the SVG large-arc flag for an arc subtending sweep
// degrees: 1 selects the major arc and is required once sweep exceeds 180.
func LargeArcFlag(sweep float64) int {
	if sweep > 180 {
		return 1
	}
	return 0
}

// ArcPath returns an SVG path moving to from and drawing an elliptical arc
// of radius r to to. sweep is the SVG sweep flag (1 = clockwise).
func ArcPath(from, to Point, r float64, largeArc, sweep int) string {
	rs := num(r)
	return fmt.Sprintf("M %s %s A %s %s 0 %d %d %s %s",
		num(from.X), num(from.Y), rs, rs, largeArc, sweep, num(to.X), num(to.Y))
}

// WedgePath returns a closed pie wedge: center, line to the start angle,
// clockwise arc to the end angle, close.
func WedgePath(cx, cy, r, startDeg, endDeg float64) string {
	start := PolarToCartesian(cx, cy, r, startDeg)
	end := PolarToCartesian(cx, cy, r, endDeg)
	rs := num(r)
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
		num(cx), num(cy), num(start.X), num(start.Y), rs, rs,
		LargeArcFlag(endDeg-startDeg), num(end.X), num(end.Y))
}

// Segment is one slice of a ring chart.
type Segment struct {
	Percent    float64 // share of the ring, rounded to two decimals
	StartAngle float64
	EndAngle   float64
	Path       string
}

// DonutSegments splits a ring of radius r into consecutive arcs sized by
// percentages. Each value is first normalized against the sum of all values
// and rounded to two decimals; segment i starts where segment i-1 ends.
//
// The ring is rotated 90° counter-clockwise so the first segment starts at
// 12 o'clock. Arcs are drawn from their end point back to their start point
// (sweep 0), so consecutive paths share endpoints exactly.
func DonutSegments(cx, cy, r float64, percentages []float64) []Segment {
	var total float64
	for _, p := range percentages {
		total += p
	}

	segments := make([]Segment, 0, len(percentages))
	start := 0.0
	for _, p := range percentages {
		var percent float64
		if total > 0 {
			percent = Round2(p / total * 100)
		}
		end := 3.6*percent + start

		from := PolarToCartesian(cx, cy, r, end-90)
		to := PolarToCartesian(cx, cy, r, start-90)
		segments = append(segments, Segment{
			Percent:    percent,
			StartAngle: start,
			EndAngle:   end,
			Path:       ArcPath(from, to, r, LargeArcFlag(end-start), 0),
		})
		start = end
	}
	return segments
}

// Round2 rounds f to two decimal places the way a fixed-point formatter
// does, returning the parsed result.
func Round2(f float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	return v
}

// num formats f with the shortest representation that round-trips,
// switching to exponent notation only for very small or very large
// magnitudes.
func num(f float64) string {
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

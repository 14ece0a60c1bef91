package roughen

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// sampleLine returns n points evenly spaced from a to b. n = 1 degrades
// to the start point alone.
func sampleLine(a, b orb.Point, n int) []orb.Point {
	if n == 1 {
		return []orb.Point{a}
	}
	pts := make([]orb.Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts = append(pts, lerpPoint(a, b, t))
	}
	return pts
}

// resample walks a point list at n evenly spaced arc-length targets,
// interpolating within whichever segment contains each target. Targets
// increase monotonically, so the segment search resumes from the previous
// hit instead of rescanning from the start. A list with zero total length
// is returned unchanged.
func resample(pts []orb.Point, n int) []orb.Point {
	if n == 1 {
		return []orb.Point{pts[0]}
	}

	segs := make([]float64, len(pts)-1)
	total := 0.0
	for i := range segs {
		segs[i] = planar.Distance(pts[i], pts[i+1])
		total += segs[i]
	}
	if total == 0 {
		return pts
	}

	out := make([]orb.Point, 0, n)
	seg := 0
	walked := 0.0
	for i := 0; i < n; i++ {
		target := total * float64(i) / float64(n-1)
		for seg < len(segs)-1 && walked+segs[seg] < target {
			walked += segs[seg]
			seg++
		}
		t := 0.0
		if segs[seg] > 0 {
			t = (target - walked) / segs[seg]
			if t > 1 {
				t = 1
			}
		}
		out = append(out, lerpPoint(pts[seg], pts[seg+1], t))
	}
	return out
}

// sampleEllipseAngles places n points at uniform angles over [0, 2pi) on
// the ellipse outline, with no duplicate endpoint. A circle passes the
// same radius for both axes.
func sampleEllipseAngles(center orb.Point, rx, ry float64, n int) []orb.Point {
	pts := make([]orb.Point, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, orb.Point{
			center[0] + rx*math.Cos(theta),
			center[1] + ry*math.Sin(theta),
		})
	}
	return pts
}

// closeRing returns the points with the first one appended at the end.
// The input is never mutated.
func closeRing(pts []orb.Point) []orb.Point {
	ring := make([]orb.Point, 0, len(pts)+1)
	ring = append(ring, pts...)
	ring = append(ring, pts[0])
	return ring
}

func lerpPoint(a, b orb.Point, t float64) orb.Point {
	return orb.Point{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
	}
}

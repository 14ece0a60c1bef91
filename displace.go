package roughen

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/MeKo-Tech/roughen/noise"
)

// sampleNoise evaluates the field at (x, y) honoring the octave settings:
// a single octave uses plain gradient noise, more octaves use the
// normalized fractal sum with lacunarity 2.
func sampleNoise(f *noise.Field, x, y float64, cfg Config) float64 {
	if cfg.Octaves <= 1 {
		return f.Perlin2(x, y)
	}
	return f.Fractal2(x, y, cfg.Octaves, cfg.Persistence, 2.0)
}

// displaceCartesian pushes each point along its local normal by a noise
// value scaled with the amplitude. The tangent at a point is the
// difference of its neighbors, clamped at the two ends so the first and
// last point use their single neighbor; a zero tangent falls back to the
// (0, 1) normal.
func displaceCartesian(pts []orb.Point, f *noise.Field, cfg Config) []orb.Point {
	out := make([]orb.Point, len(pts))
	for i, p := range pts {
		prev := pts[clampIndex(i-1, len(pts))]
		next := pts[clampIndex(i+1, len(pts))]

		tx := next[0] - prev[0]
		ty := next[1] - prev[1]
		nx, ny := -ty, tx
		if l := math.Hypot(nx, ny); l > 0 {
			nx /= l
			ny /= l
		} else {
			nx, ny = 0, 1
		}

		v := sampleNoise(f, p[0]*cfg.Frequency, p[1]*cfg.Frequency, cfg)
		out[i] = orb.Point{
			p[0] + nx*v*cfg.Amplitude,
			p[1] + ny*v*cfg.Amplitude,
		}
	}
	return out
}

// displacePolarCircle returns cfg.Samples points around the circle with
// the radius perturbed per angle. Noise is sampled at (cos t, sin t)
// scaled by the frequency, a circle in noise space, so the field wraps
// seamlessly at 0/2pi regardless of the circle's size.
func displacePolarCircle(c Circle, f *noise.Field, cfg Config) []orb.Point {
	n := cfg.Samples
	out := make([]orb.Point, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		cos, sin := math.Cos(theta), math.Sin(theta)
		v := sampleNoise(f, cos*cfg.Frequency, sin*cfg.Frequency, cfg)
		r := c.R + v*cfg.Amplitude
		out = append(out, orb.Point{
			c.Center[0] + r*cos,
			c.Center[1] + r*sin,
		})
	}
	return out
}

// displacePolarEllipse is the circle case with per-axis radii. The same
// absolute offset is added to both radii, so noise is not proportional to
// each axis; elongated ellipses wobble more, relatively, on their short
// axis.
func displacePolarEllipse(e Ellipse, f *noise.Field, cfg Config) []orb.Point {
	n := cfg.Samples
	out := make([]orb.Point, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		cos, sin := math.Cos(theta), math.Sin(theta)
		v := sampleNoise(f, cos*cfg.Frequency, sin*cfg.Frequency, cfg)
		rx := e.RX + v*cfg.Amplitude
		ry := e.RY + v*cfg.Amplitude
		out = append(out, orb.Point{
			e.Center[0] + rx*cos,
			e.Center[1] + ry*sin,
		})
	}
	return out
}

// displacePolarRing treats the points as a ring around their centroid:
// for each of cfg.Samples uniform angles the base radius comes from
// casting a ray from the centroid through the ring's edges, then the
// radius is perturbed like the circle case.
func displacePolarRing(pts []orb.Point, f *noise.Field, cfg Config) []orb.Point {
	center := ringCentroid(pts)
	ring := closeRing(pts)

	n := cfg.Samples
	out := make([]orb.Point, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		cos, sin := math.Cos(theta), math.Sin(theta)
		base := rayRadius(center, cos, sin, ring)
		v := sampleNoise(f, cos*cfg.Frequency, sin*cfg.Frequency, cfg)
		r := base + v*cfg.Amplitude
		out = append(out, orb.Point{
			center[0] + r*cos,
			center[1] + r*sin,
		})
	}
	return out
}

// ringCentroid is the area centroid of the ring the points describe,
// falling back to the vertex mean when the ring encloses no area.
func ringCentroid(pts []orb.Point) orb.Point {
	ring := make(orb.Ring, 0, len(pts)+1)
	ring = append(ring, pts...)
	ring = append(ring, pts[0])
	if c, area := planar.CentroidArea(ring); area != 0 {
		return c
	}

	var sx, sy float64
	for _, p := range pts {
		sx += p[0]
		sy += p[1]
	}
	n := float64(len(pts))
	return orb.Point{sx / n, sy / n}
}

// rayRadius intersects the ray from origin along (dx, dy) with the closed
// ring's edges, solving ray = edge parametrically, and returns the
// distance to the first edge hit strictly in front of the origin within
// the edge's span. No qualifying edge yields radius 0.
func rayRadius(origin orb.Point, dx, dy float64, ring []orb.Point) float64 {
	for i := 0; i < len(ring)-1; i++ {
		a := ring[i]
		b := ring[i+1]
		ex := b[0] - a[0]
		ey := b[1] - a[1]

		den := dx*ey - dy*ex
		if den == 0 {
			continue
		}

		wx := a[0] - origin[0]
		wy := a[1] - origin[1]
		t := (wx*ey - wy*ex) / den
		u := (wx*dy - wy*dx) / den
		if t > 0 && u >= 0 && u <= 1 {
			return t
		}
	}
	return 0
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

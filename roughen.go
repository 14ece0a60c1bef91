// Package roughen converts clean geometric primitives into organic,
// hand-drawn-looking path data for plotters. Shapes are sampled into
// point sequences, displaced through a seeded gradient-noise field, and
// emitted as move/line command paths that keep the source shape's style
// attributes and closed-ness.
//
// Every operation is total over its documented domain: degenerate inputs
// produce degenerate but defined outputs (an empty path, a single-point
// path, an identity path), never an error.
package roughen

import (
	"github.com/paulmach/orb"

	"github.com/MeKo-Tech/roughen/noise"
)

// Mode selects the displacement strategy.
type Mode int

const (
	// ModeAuto picks polar for closed shapes and cartesian for open ones.
	ModeAuto Mode = iota
	// ModeCartesian displaces sampled points along their local normals.
	ModeCartesian
	// ModePolar varies the radius around the shape's center at uniform
	// angles.
	ModePolar
)

// Config tunes a perturbation. Amplitude is the maximum displacement in
// coordinate units, Frequency the spatial scale of the noise field, and
// Samples the number of points generated along the shape. Octaves beyond
// one layer fractal detail, with Persistence controlling the falloff per
// octave. The same Seed always reproduces the same output. Out-of-domain
// values (negative samples, zero octaves) are not validated; behavior is
// defined for the documented domain only.
type Config struct {
	Amplitude   float64
	Frequency   float64
	Octaves     int
	Persistence float64
	Seed        float64
	Samples     int
	Mode        Mode
}

// DefaultConfig returns the baseline tuning: gentle single-octave
// displacement with enough samples for smooth curves.
func DefaultConfig() Config {
	return Config{
		Amplitude:   1,
		Frequency:   0.3,
		Octaves:     1,
		Persistence: 0.5,
		Seed:        0,
		Samples:     100,
		Mode:        ModeAuto,
	}
}

// SubtleConfig returns a barely-there wobble: half the default amplitude
// at a lower sample count.
func SubtleConfig() Config {
	cfg := DefaultConfig()
	cfg.Amplitude = 0.5
	cfg.Samples = 50
	return cfg
}

// SketchyConfig returns a rough, hand-sketched look: larger displacement
// with four octaves of detail.
func SketchyConfig() Config {
	cfg := DefaultConfig()
	cfg.Amplitude = 2.5
	cfg.Octaves = 4
	return cfg
}

// Perturb runs the full pipeline on one shape: sample its outline,
// displace the samples through a noise field seeded from cfg.Seed, and
// emit the result as a path carrying the shape's attributes.
func Perturb(s Shape, cfg Config) Path {
	return perturbWith(noise.New(cfg.Seed), s, cfg)
}

// perturbWith is the seam batch perturbation uses to share one noise
// field across many shapes.
func perturbWith(f *noise.Field, s Shape, cfg Config) Path {
	mode := resolveMode(s, cfg.Mode)

	switch sh := s.(type) {
	case Line:
		if mode == ModePolar {
			pts := displacePolarRing([]orb.Point{sh.P1, sh.P2}, f, cfg)
			return emitPath(pts, false, sh.Attrs)
		}
		pts := displaceCartesian(sampleLine(sh.P1, sh.P2, cfg.Samples), f, cfg)
		return emitPath(pts, false, sh.Attrs)

	case Polyline:
		return perturbPointList(f, sh.Points, false, sh.Attrs, mode, cfg)

	case Polygon:
		return perturbPointList(f, sh.Points, true, sh.Attrs, mode, cfg)

	case Rect:
		return perturbPointList(f, sh.corners(), true, sh.Attrs, mode, cfg)

	case Circle:
		if mode == ModeCartesian {
			pts := displaceCartesian(sampleEllipseAngles(sh.Center, sh.R, sh.R, cfg.Samples), f, cfg)
			return emitPath(pts, true, sh.Attrs)
		}
		return emitPath(displacePolarCircle(sh, f, cfg), true, sh.Attrs)

	case Ellipse:
		if mode == ModeCartesian {
			pts := displaceCartesian(sampleEllipseAngles(sh.Center, sh.RX, sh.RY, cfg.Samples), f, cfg)
			return emitPath(pts, true, sh.Attrs)
		}
		return emitPath(displacePolarEllipse(sh, f, cfg), true, sh.Attrs)

	case Path:
		pts := sh.points()
		if len(pts) < 2 {
			// Not enough recovered geometry to perturb; the original
			// path data passes through verbatim.
			return sh
		}
		return perturbPointList(f, pts, sh.Close, sh.Attrs, mode, cfg)
	}

	// Shape is sealed; no further variant exists.
	return Path{}
}

// perturbPointList handles every shape that reduces to a point list:
// polylines, polygons, rectangle corners and recovered path points. Open
// lists below 2 points and closed lists below 3 emit an empty path with
// the attributes preserved.
func perturbPointList(f *noise.Field, pts []orb.Point, closed bool, attrs Attributes, mode Mode, cfg Config) Path {
	if (closed && len(pts) < 3) || (!closed && len(pts) < 2) {
		return Path{Close: closed, Attrs: attrs}
	}

	if mode == ModePolar {
		return emitPath(displacePolarRing(pts, f, cfg), closed, attrs)
	}

	walk := pts
	if closed {
		walk = closeRing(pts)
	}
	return emitPath(displaceCartesian(resample(walk, cfg.Samples), f, cfg), closed, attrs)
}

// resolveMode maps ModeAuto onto the shape's natural strategy; explicit
// modes are honored even against the shape's openness.
func resolveMode(s Shape, m Mode) Mode {
	if m != ModeAuto {
		return m
	}
	if s.Closed() {
		return ModePolar
	}
	return ModeCartesian
}

package roughen

import "github.com/paulmach/orb"

// Attributes is an opaque style-attribute bag. The engine forwards it to
// the output path untouched; keys and values mean whatever the caller's
// drawing layer wants them to mean.
type Attributes map[string]interface{}

// Shape is the closed set of geometric inputs the engine perturbs: Line,
// Polyline, Polygon, Rect, Circle, Ellipse and Path. Shapes are read-only
// inputs and are never mutated.
type Shape interface {
	// Closed reports whether the shape outlines a closed region. Closed
	// shapes default to polar displacement and emit a closing command.
	Closed() bool

	isShape()
}

// Line is a straight segment between two endpoints.
type Line struct {
	P1, P2 orb.Point
	Attrs  Attributes
}

func (Line) isShape() {}

func (Line) Closed() bool { return false }

// Polyline is an open chain of points connected by straight segments.
type Polyline struct {
	Points []orb.Point
	Attrs  Attributes
}

func (Polyline) isShape() {}

func (Polyline) Closed() bool { return false }

// Polygon is a closed ring of vertices. The closing edge back to the
// first vertex is implicit; the point list does not repeat it.
type Polygon struct {
	Points []orb.Point
	Attrs  Attributes
}

func (Polygon) isShape() {}

func (Polygon) Closed() bool { return true }

// Rect is an axis-aligned rectangle anchored at its (X, Y) corner. It is
// normalized to a 4-point polygon before sampling or displacement; no
// rectangle-specific handling exists downstream.
type Rect struct {
	X, Y, W, H float64
	Attrs      Attributes
}

func (Rect) isShape() {}

func (Rect) Closed() bool { return true }

// corners returns the rectangle outline as a 4-point ring starting at
// (X, Y).
func (r Rect) corners() []orb.Point {
	return []orb.Point{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}

// Circle is a circle described by its center and radius.
type Circle struct {
	Center orb.Point
	R      float64
	Attrs  Attributes
}

func (Circle) isShape() {}

func (Circle) Closed() bool { return true }

// Ellipse is an axis-aligned ellipse with independent x and y radii.
type Ellipse struct {
	Center orb.Point
	RX, RY float64
	Attrs  Attributes
}

func (Ellipse) isShape() {}

func (Ellipse) Closed() bool { return true }

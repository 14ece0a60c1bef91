package roughen

import "github.com/paulmach/orb"

// FromOrb converts an orb geometry into perturbable shapes, attaching
// attrs to each. Line strings become polylines, rings become polygons
// with their duplicated closing point dropped, polygon interior rings
// become their own outlines, bounds become rectangles, and multi
// geometries and collections are flattened. Point geometries carry no
// outline and convert to nothing.
func FromOrb(g orb.Geometry, attrs Attributes) []Shape {
	switch g := g.(type) {
	case orb.LineString:
		if len(g) == 0 {
			return nil
		}
		return []Shape{Polyline{Points: clonePoints(g), Attrs: attrs}}

	case orb.Ring:
		pts := ringPoints(g)
		if len(pts) == 0 {
			return nil
		}
		return []Shape{Polygon{Points: pts, Attrs: attrs}}

	case orb.Polygon:
		var shapes []Shape
		for _, ring := range g {
			shapes = append(shapes, FromOrb(ring, attrs)...)
		}
		return shapes

	case orb.MultiLineString:
		var shapes []Shape
		for _, ls := range g {
			shapes = append(shapes, FromOrb(ls, attrs)...)
		}
		return shapes

	case orb.MultiPolygon:
		var shapes []Shape
		for _, poly := range g {
			shapes = append(shapes, FromOrb(poly, attrs)...)
		}
		return shapes

	case orb.Bound:
		return []Shape{Rect{
			X:     g.Min[0],
			Y:     g.Min[1],
			W:     g.Max[0] - g.Min[0],
			H:     g.Max[1] - g.Min[1],
			Attrs: attrs,
		}}

	case orb.Collection:
		var shapes []Shape
		for _, sub := range g {
			shapes = append(shapes, FromOrb(sub, attrs)...)
		}
		return shapes
	}

	return nil
}

// ringPoints copies a ring's vertices without the duplicated closing
// point orb rings conventionally carry.
func ringPoints(r orb.Ring) []orb.Point {
	pts := []orb.Point(r)
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return clonePoints(pts)
}

func clonePoints(pts []orb.Point) []orb.Point {
	out := make([]orb.Point, len(pts))
	copy(out, pts)
	return out
}

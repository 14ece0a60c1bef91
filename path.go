package roughen

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Op identifies a path drawing command.
type Op uint8

const (
	// MoveTo starts the path at the command's point.
	MoveTo Op = iota
	// LineTo draws a straight segment to the command's point.
	LineTo
	// ClosePath closes the path back to its start. It carries no point.
	ClosePath
)

// Command is one step of a path: an operation plus, for MoveTo and
// LineTo, its target coordinates.
type Command struct {
	Op   Op
	X, Y float64
}

// Path is an ordered command list plus the style attributes carried over
// from the source shape. It is both the engine's output and a valid input
// Shape, so perturbed geometry can be perturbed again.
type Path struct {
	Commands []Command
	Close    bool
	Attrs    Attributes
}

func (Path) isShape() {}

func (p Path) Closed() bool { return p.Close }

// String renders the commands as compact SVG-style path data, e.g.
// "M 0 0 L 10.5 3.25 Z". Coordinates are printed with at most four
// decimals and trailing zeros trimmed, so output stays stable and
// diffable.
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p.Commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case MoveTo:
			b.WriteString("M ")
			writeCoord(&b, c.X)
			b.WriteByte(' ')
			writeCoord(&b, c.Y)
		case LineTo:
			b.WriteString("L ")
			writeCoord(&b, c.X)
			b.WriteByte(' ')
			writeCoord(&b, c.Y)
		case ClosePath:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// writeCoord prints v with four-decimal precision, trimming trailing
// zeros and folding negative zero to plain 0.
func writeCoord(b *strings.Builder, v float64) {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	b.WriteString(s)
}

// points recovers the coordinate sequence from move and line commands.
// Every other operation is skipped, so curved segments from foreign path
// data are silently dropped.
func (p Path) points() []orb.Point {
	pts := make([]orb.Point, 0, len(p.Commands))
	for _, c := range p.Commands {
		switch c.Op {
		case MoveTo, LineTo:
			pts = append(pts, orb.Point{c.X, c.Y})
		}
	}
	return pts
}

// emitPath serializes a displaced point sequence: one MoveTo, a LineTo
// per further point, and a ClosePath iff the source shape was closed. The
// closed flag is inherited from the shape, never inferred from the
// points. An empty sequence produces a path with no commands at all.
func emitPath(pts []orb.Point, closed bool, attrs Attributes) Path {
	p := Path{Close: closed, Attrs: attrs}
	if len(pts) == 0 {
		return p
	}
	p.Commands = make([]Command, 0, len(pts)+1)
	p.Commands = append(p.Commands, Command{Op: MoveTo, X: pts[0][0], Y: pts[0][1]})
	for _, pt := range pts[1:] {
		p.Commands = append(p.Commands, Command{Op: LineTo, X: pt[0], Y: pt[1]})
	}
	if closed {
		p.Commands = append(p.Commands, Command{Op: ClosePath})
	}
	return p
}

package roughen

import (
	"testing"

	"github.com/paulmach/orb"
)

// TestPathString tests the compact SVG-style formatting of command lists
func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{
			name: "empty",
			path: Path{},
			want: "",
		},
		{
			name: "open segment",
			path: Path{Commands: []Command{
				{Op: MoveTo, X: 0, Y: 0},
				{Op: LineTo, X: 10.5, Y: 3.25},
			}},
			want: "M 0 0 L 10.5 3.25",
		},
		{
			name: "closed triangle",
			path: Path{Commands: []Command{
				{Op: MoveTo, X: 0, Y: 0},
				{Op: LineTo, X: 4, Y: 0},
				{Op: LineTo, X: 4, Y: 3},
				{Op: ClosePath},
			}},
			want: "M 0 0 L 4 0 L 4 3 Z",
		},
		{
			name: "trailing zeros trimmed",
			path: Path{Commands: []Command{
				{Op: MoveTo, X: 1.5000, Y: 2.0000},
			}},
			want: "M 1.5 2",
		},
		{
			name: "rounds to four decimals",
			path: Path{Commands: []Command{
				{Op: MoveTo, X: 1.23456, Y: 0.00009},
			}},
			want: "M 1.2346 0.0001",
		},
		{
			name: "negative zero folded",
			path: Path{Commands: []Command{
				{Op: MoveTo, X: -0.00001, Y: -2},
			}},
			want: "M 0 -2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestEmitPath tests command emission from displaced point sequences
func TestEmitPath(t *testing.T) {
	attrs := Attributes{"stroke": "black"}

	// Open sequence: one MoveTo then LineTo per point, no close
	open := emitPath([]orb.Point{{0, 0}, {1, 1}, {2, 0}}, false, attrs)
	if len(open.Commands) != 3 {
		t.Fatalf("open path has %d commands, want 3", len(open.Commands))
	}
	if open.Commands[0].Op != MoveTo {
		t.Errorf("first command is %v, want MoveTo", open.Commands[0].Op)
	}
	for i, c := range open.Commands[1:] {
		if c.Op != LineTo {
			t.Errorf("command %d is %v, want LineTo", i+1, c.Op)
		}
	}
	if open.Close {
		t.Error("open path should not carry the close flag")
	}

	// Closed sequence gains a trailing ClosePath
	closed := emitPath([]orb.Point{{0, 0}, {1, 0}, {0, 1}}, true, nil)
	last := closed.Commands[len(closed.Commands)-1]
	if last.Op != ClosePath {
		t.Errorf("closed path ends with %v, want ClosePath", last.Op)
	}
	if !closed.Close {
		t.Error("closed path should carry the close flag")
	}

	// Empty sequence keeps flag and attributes but emits nothing
	empty := emitPath(nil, true, attrs)
	if len(empty.Commands) != 0 {
		t.Errorf("empty sequence emitted %d commands, want 0", len(empty.Commands))
	}
	if !empty.Close {
		t.Error("empty closed path should keep its close flag")
	}
	if empty.Attrs["stroke"] != "black" {
		t.Error("empty path should keep its attributes")
	}

	// Single point: MoveTo only when open, MoveTo plus ClosePath when closed
	single := emitPath([]orb.Point{{5, 5}}, false, nil)
	if len(single.Commands) != 1 || single.Commands[0].Op != MoveTo {
		t.Errorf("single open point emitted %v, want one MoveTo", single.Commands)
	}
	singleClosed := emitPath([]orb.Point{{5, 5}}, true, nil)
	if len(singleClosed.Commands) != 2 || singleClosed.Commands[1].Op != ClosePath {
		t.Errorf("single closed point emitted %v, want MoveTo then ClosePath", singleClosed.Commands)
	}
}

// TestPathPoints tests coordinate recovery from existing path data
func TestPathPoints(t *testing.T) {
	p := Path{Commands: []Command{
		{Op: MoveTo, X: 1, Y: 2},
		{Op: LineTo, X: 3, Y: 4},
		{Op: ClosePath},
		{Op: LineTo, X: 5, Y: 6},
	}}

	pts := p.points()
	want := []orb.Point{{1, 2}, {3, 4}, {5, 6}}
	if len(pts) != len(want) {
		t.Fatalf("recovered %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

// TestPathClosed tests that a path reports its own closing flag
func TestPathClosed(t *testing.T) {
	if (Path{Close: false}).Closed() {
		t.Error("open path reported closed")
	}
	if !(Path{Close: true}).Closed() {
		t.Error("closed path reported open")
	}
}

// Package stroke defines the node lists produced by the glyph decoders:
// sequences of absolute move, line and close operations on a font's
// own coordinate grid.
package stroke

import (
	"errors"
	"fmt"
	"math"
)

type Op uint8

const (
	// MoveTo starts a new subpath at the node's point.
	MoveTo Op = iota
	// LineTo draws a straight line from the current point.
	LineTo
	// Close terminates the current subpath.
	Close
)

func (o Op) String() string {
	switch o {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case Close:
		return "Close"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Node is a single drawing operation. P is unused for Close.
type Node struct {
	Op Op
	P  Point
}

func (n Node) String() string {
	if n.Op == Close {
		return "Close"
	}
	return fmt.Sprintf("%s%v", n.Op, n.P)
}

// Sequence is the geometry of one glyph. A nil or empty Sequence is
// a blank glyph.
type Sequence []Node

// Validate reports whether s starts with a MoveTo and never closes a
// subpath without drawing a line first.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return nil
	}
	if s[0].Op != MoveTo {
		return fmt.Errorf("sequence starts with %v", s[0].Op)
	}
	lines := 0
	for i, n := range s {
		switch n.Op {
		case MoveTo:
			lines = 0
		case LineTo:
			lines++
		case Close:
			if lines == 0 {
				return fmt.Errorf("node %d: close without a line", i)
			}
			lines = 0
		default:
			return fmt.Errorf("node %d: invalid op %v", i, n.Op)
		}
		if math.IsNaN(n.P.X) || math.IsNaN(n.P.Y) {
			return fmt.Errorf("node %d: NaN coordinate", i)
		}
	}
	return nil
}

// Subpaths splits s at every MoveTo.
func (s Sequence) Subpaths() []Sequence {
	var subs []Sequence
	start := 0
	for i, n := range s {
		if n.Op == MoveTo && i > start {
			subs = append(subs, s[start:i:i])
			start = i
		}
	}
	if start < len(s) {
		subs = append(subs, s[start:len(s):len(s)])
	}
	return subs
}

// Map returns a copy of s with f applied to every point.
func (s Sequence) Map(f func(Point) Point) Sequence {
	if s == nil {
		return nil
	}
	res := make(Sequence, len(s))
	for i, n := range s {
		if n.Op != Close {
			n.P = f(n.P)
		}
		res[i] = n
	}
	return res
}

func (s Sequence) Offset(dx, dy float64) Sequence {
	return s.Map(func(p Point) Point {
		return Point{p.X + dx, p.Y + dy}
	})
}

func (s Sequence) Scale(sx, sy float64) Sequence {
	return s.Map(func(p Point) Point {
		return Point{p.X * sx, p.Y * sy}
	})
}

var errEmpty = errors.New("empty sequence")

// Bounds returns the smallest rectangle containing every point of s.
func (s Sequence) Bounds() (min, max Point, err error) {
	first := true
	for _, n := range s {
		if n.Op == Close {
			continue
		}
		if first {
			min, max = n.P, n.P
			first = false
			continue
		}
		min.X = math.Min(min.X, n.P.X)
		min.Y = math.Min(min.Y, n.P.Y)
		max.X = math.Max(max.X, n.P.X)
		max.Y = math.Max(max.Y, n.P.Y)
	}
	if first {
		return Point{}, Point{}, errEmpty
	}
	return min, max, nil
}

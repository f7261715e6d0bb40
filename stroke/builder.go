package stroke

import "math"

// Builder accumulates a Sequence. The zero value is ready to use and a
// Builder is meant to live in a single call; it is never shared.
//
// The builder keeps the sequence invariants:
//
//   - relative lines with a zero delta are dropped;
//   - a line ending on the subpath start right before Close is
//     dropped, since Close draws it;
//   - Close is only emitted for subpaths with at least two lines.
//     A subpath with a single line is an open stroke.
type Builder struct {
	// Shear, if set, maps every emitted point. The pen position
	// used by LineBy is tracked before the mapping.
	Shear func(Point) Point

	nodes Sequence
	start Point
	pen   Point
	lines int
}

func (b *Builder) MoveTo(p Point) {
	b.start, b.pen = p, p
	b.lines = 0
	b.emit(MoveTo, p)
}

func (b *Builder) LineTo(p Point) {
	if len(b.nodes) == 0 {
		panic("LineTo without a MoveTo")
	}
	b.pen = p
	b.lines++
	b.emit(LineTo, p)
}

// LineBy draws a line relative to the pen position. A zero delta
// is ignored.
func (b *Builder) LineBy(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	b.LineTo(Point{b.pen.X + dx, b.pen.Y + dy})
}

func (b *Builder) Close() {
	if b.lines > 0 && near(b.pen, b.start) {
		b.nodes = b.nodes[:len(b.nodes)-1]
		b.lines--
	}
	if b.lines >= 2 {
		b.nodes = append(b.nodes, Node{Op: Close})
	}
	b.pen = b.start
	b.lines = 0
}

// Append adds the nodes of s, which must satisfy the sequence
// invariants on its own.
func (b *Builder) Append(s Sequence) {
	for _, n := range s {
		switch n.Op {
		case MoveTo:
			b.MoveTo(n.P)
		case LineTo:
			b.LineTo(n.P)
		case Close:
			b.Close()
		}
	}
}

// Sequence returns the accumulated nodes. The builder must not be
// used afterwards.
func (b *Builder) Sequence() Sequence {
	s := b.nodes
	b.nodes = nil
	return s
}

func (b *Builder) emit(op Op, p Point) {
	if b.Shear != nil {
		p = b.Shear(p)
	}
	b.nodes = append(b.nodes, Node{Op: op, P: p})
}

// near reports whether p and q coincide up to rounding error.
func near(p, q Point) bool {
	const eps = 1e-9
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

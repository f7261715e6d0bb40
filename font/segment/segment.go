// Package segment draws 7, 14 and 16 segment "LED" glyphs as mitered
// outlines of constant thickness.
//
// Segments are defined on a 2×2 grid scaled to the glyph's width and
// height. Each lit segment becomes one closed subpath: a hexagon with
// 45° bevels for horizontal and vertical segments, a rectangle for
// vertical segments with square ends, and a parallelogram for diagonal
// segments. A thickness of zero turns every segment into a single open
// line.
//
// Parameters are not validated. Gap plus thickness must stay below
// half of the shortest segment span and thickness must not be
// negative, otherwise the outlines fold over themselves.
package segment

import (
	"math"
	"strings"

	"inksnek.org/stroke"
)

// Font is a segment font with fixed geometry. Its methods don't
// modify it and are safe for concurrent use.
type Font struct {
	// Segments is 7, 14 or 16.
	Segments int
	// Width and Height are the dimensions of a whole glyph.
	Width, Height float64
	// Skew is the distance the top of a glyph is shifted to the right.
	Skew float64
	// Gap is how far short of the grid corners a segment ends.
	Gap float64
	// Thick is the half width of a segment.
	Thick float64
}

func (f Font) definitions() []def {
	switch f.Segments {
	case 16:
		return defs16
	case 14:
		return defs14
	case 7:
		return defs7
	}
	return nil
}

func (f Font) table() []glyph {
	switch f.Segments {
	case 16:
		return font16
	case 14:
		return font14
	case 7:
		return font7
	}
	return nil
}

// Glyph returns the outline of ch with its grid origin at origin.
// Characters below 0x10 select an entry of custom, a list of segment
// name strings. Characters missing from the font, custom entries out of
// range and unsupported segment counts result in an empty sequence.
func (f Font) Glyph(ch rune, origin stroke.Point, custom []string) stroke.Sequence {
	table := f.table()
	if table == nil {
		return nil
	}
	if 0 <= ch && ch < 0x10 {
		if int(ch) >= len(custom) {
			return nil
		}
		return f.Named(custom[ch], origin)
	}
	for _, g := range table {
		if g.ch == ch {
			return f.Named(g.segs, origin)
		}
	}
	return nil
}

// Named returns the outlines of the segments whose letter, 'A' for the
// first, appear in names. The name "*" lights every segment.
func (f Font) Named(names string, origin stroke.Point) stroke.Sequence {
	b := f.builder(origin)
	for i := range f.definitions() {
		if names == "*" || strings.ContainsRune(names, rune('A'+i)) {
			f.segment(b, i, origin)
		}
	}
	return b.Sequence()
}

// Segment returns the outline of the i'th segment.
func (f Font) Segment(i int, origin stroke.Point) stroke.Sequence {
	b := f.builder(origin)
	f.segment(b, i, origin)
	return b.Sequence()
}

func (f Font) builder(origin stroke.Point) *stroke.Builder {
	b := new(stroke.Builder)
	if f.Skew != 0 {
		b.Shear = func(p stroke.Point) stroke.Point {
			p.X += f.Skew * (p.Y - origin.Y) / f.Height
			return p
		}
	}
	return b
}

func (f Font) segment(b *stroke.Builder, i int, origin stroke.Point) {
	defs := f.definitions()
	if i < 0 || i >= len(defs) {
		return
	}
	d := defs[i]
	gap, thick := f.Gap, f.Thick
	lenx := f.Width/2*math.Abs(d.dx) - 2*(gap+thick)
	leny := f.Height/2*math.Abs(d.dy) - 2*(gap+thick)
	sx, sy := sign(d.dx), sign(d.dy)
	org := stroke.Point{
		X: origin.X + d.x0/2*f.Width + sx*gap,
		Y: origin.Y + d.y0/2*f.Height + sy*gap,
	}
	switch {
	case sx == 0 && sy != 0:
		// Vertical:  ^  or  _
		//           | |    | |
		//            v      v
		b.MoveTo(org)
		b.LineBy(-sy*thick, sy*thick)
		b.LineBy(0, sy*leny)
		if d.square {
			b.LineBy(2*sy*thick, 0)
		} else {
			b.LineBy(sy*thick, sy*thick)
			b.LineBy(sy*thick, -sy*thick)
		}
		b.LineBy(0, -sy*leny)
	case sx != 0 && sy == 0:
		// Horizontal: /----\
		//             \----/
		b.MoveTo(org)
		b.LineBy(sx*thick, sx*thick)
		b.LineBy(sx*lenx, 0)
		b.LineBy(sx*thick, -sx*thick)
		b.LineBy(-sx*thick, -sx*thick)
		b.LineBy(-sx*lenx, 0)
	default:
		// Diagonal, outwards:  _
		//                     / |
		//                    |_/
		b.MoveTo(stroke.Point{X: org.X + sx*thick, Y: org.Y + sy*thick})
		t := DiagonalThickness(thick, lenx, leny)
		lenx -= t
		leny -= t
		b.LineBy(0, sy*t)
		b.LineBy(sx*lenx, sy*leny)
		b.LineBy(sx*t, 0)
		b.LineBy(0, -sy*t)
		b.LineBy(-sx*lenx, -sy*leny)
	}
	b.Close()
}

// DiagonalThickness returns the axis aligned thickness of a diagonal
// segment spanning lenx by leny that keeps its visual stroke width
// equal to that of the horizontal and vertical segments.
func DiagonalThickness(thick, lenx, leny float64) float64 {
	return thick * math.Sqrt2 / math.Sin(math.Pi/4+math.Atan2(leny, lenx))
}

// Advance is the horizontal distance between consecutive glyphs.
func (f Font) Advance() float64 {
	return f.Width + 3*f.Gap + 2*f.Thick
}

// LineHeight is the vertical distance between lines of text.
func (f Font) LineHeight() float64 {
	return f.Height + 3*f.Gap + 2*f.Thick
}

// Text lays out s from origin, one glyph per rune. A newline starts a
// new line below the current one.
func (f Font) Text(s string, origin stroke.Point) stroke.Sequence {
	var b stroke.Builder
	pos := origin
	for _, r := range s {
		if r == '\n' {
			pos.X = origin.X
			pos.Y -= f.LineHeight()
			continue
		}
		b.Append(f.Glyph(r, pos, nil))
		pos.X += f.Advance()
	}
	return b.Sequence()
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

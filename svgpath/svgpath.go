// Package svgpath builds and formats the subset of SVG path data used
// for laser cut and etch drawings: absolute and relative moves and lines,
// horizontal and vertical lines and close.
//
// Paths are built in design coordinates, with y pointing up. Format
// converts them to SVG user units through a Frame.
package svgpath

import (
	"fmt"
	"math"
	"strconv"

	"inksnek.org/stroke"
)

// Op is an SVG path command letter.
type Op byte

const (
	MoveTo Op = 'M'
	LineTo Op = 'L'
	MoveBy Op = 'm'
	LineBy Op = 'l'
	HorzTo Op = 'H'
	VertTo Op = 'V'
	HorzBy Op = 'h'
	VertBy Op = 'v'
	Close  Op = 'z'
)

func (o Op) String() string {
	return string(rune(o))
}

// Cmd is a single path command. H and h use X only, V and v use Y only.
type Cmd struct {
	Op   Op
	X, Y float64
}

// Path is a list of commands. The zero value is an empty path.
type Path []Cmd

func (p *Path) MoveTo(x, y float64) { *p = append(*p, Cmd{MoveTo, x, y}) }
func (p *Path) LineTo(x, y float64) { *p = append(*p, Cmd{LineTo, x, y}) }
func (p *Path) MoveBy(dx, dy float64) { *p = append(*p, Cmd{MoveBy, dx, dy}) }
func (p *Path) LineBy(dx, dy float64) { *p = append(*p, Cmd{LineBy, dx, dy}) }
func (p *Path) HorzTo(x float64)      { *p = append(*p, Cmd{Op: HorzTo, X: x}) }
func (p *Path) VertTo(y float64)      { *p = append(*p, Cmd{Op: VertTo, Y: y}) }
func (p *Path) HorzBy(dx float64)     { *p = append(*p, Cmd{Op: HorzBy, X: dx}) }
func (p *Path) VertBy(dy float64)     { *p = append(*p, Cmd{Op: VertBy, Y: dy}) }
func (p *Path) Close()                { *p = append(*p, Cmd{Op: Close}) }

// AppendShape appends seq with every point scaled by (sx, sy) and
// offset by (x, y), as absolute moves and lines.
func (p *Path) AppendShape(x, y, sx, sy float64, seq stroke.Sequence) {
	for _, n := range seq {
		px, py := x+n.P.X*sx, y+n.P.Y*sy
		switch n.Op {
		case stroke.MoveTo:
			p.MoveTo(px, py)
		case stroke.LineTo:
			p.LineTo(px, py)
		case stroke.Close:
			p.Close()
		}
	}
}

// Frame maps design coordinates to SVG user units.
type Frame struct {
	// Scale is the number of user units per design unit.
	Scale float64
	// FlipY negates y coordinates, for SVG's downward y axis.
	FlipY bool
}

// Identity formats coordinates unchanged.
var Identity = Frame{Scale: 1}

// String formats p in design coordinates.
func (p Path) String() string {
	return p.Format(Identity)
}

// Format returns the path data of p mapped through f, with every
// number printed with 3 decimals and no separator between commands.
func (p Path) Format(f Frame) string {
	var buf []byte
	for _, c := range p {
		x, y := f.x(c.X), f.y(c.Y)
		buf = append(buf, byte(c.Op))
		switch c.Op {
		case MoveTo, LineTo, MoveBy, LineBy:
			buf = appendNum(buf, x)
			buf = append(buf, ',')
			buf = appendNum(buf, y)
		case HorzTo, HorzBy:
			buf = appendNum(buf, x)
		case VertTo, VertBy:
			buf = appendNum(buf, y)
		}
	}
	return string(buf)
}

func (f Frame) x(v float64) float64 {
	return v * f.Scale
}

func (f Frame) y(v float64) float64 {
	v *= f.Scale
	if f.FlipY {
		v = -v
	}
	return v
}

func appendNum(buf []byte, v float64) []byte {
	// Adding zero turns -0 into 0.
	return strconv.AppendFloat(buf, v+0, 'f', 3, 64)
}

// Absolute returns p with every command converted to an absolute
// MoveTo, LineTo or Close.
func (p Path) Absolute() Path {
	res := make(Path, 0, len(p))
	var pen, start stroke.Point
	for _, c := range p {
		switch c.Op {
		case MoveTo:
			pen = stroke.Pt(c.X, c.Y)
		case LineTo:
			pen = stroke.Pt(c.X, c.Y)
		case MoveBy, LineBy:
			pen = pen.Add(stroke.Pt(c.X, c.Y))
		case HorzTo:
			pen.X = c.X
		case VertTo:
			pen.Y = c.Y
		case HorzBy:
			pen.X += c.X
		case VertBy:
			pen.Y += c.Y
		case Close:
			res = append(res, Cmd{Op: Close})
			pen = start
			continue
		}
		op := LineTo
		if c.Op == MoveTo || c.Op == MoveBy {
			op = MoveTo
			start = pen
		}
		res = append(res, Cmd{op, pen.X, pen.Y})
	}
	return res
}

// Sequence converts p to a node sequence.
func (p Path) Sequence() stroke.Sequence {
	abs := p.Absolute()
	if len(abs) == 0 {
		return nil
	}
	seq := make(stroke.Sequence, 0, len(abs))
	for _, c := range abs {
		n := stroke.Node{P: stroke.Pt(c.X, c.Y)}
		switch c.Op {
		case MoveTo:
			n.Op = stroke.MoveTo
		case LineTo:
			n.Op = stroke.LineTo
		case Close:
			n = stroke.Node{Op: stroke.Close}
		}
		seq = append(seq, n)
	}
	return seq
}

// Bounds returns the extent of every point visited by p.
func (p Path) Bounds() (min, max stroke.Point, ok bool) {
	abs := p.Absolute()
	min = stroke.Pt(math.Inf(1), math.Inf(1))
	max = stroke.Pt(math.Inf(-1), math.Inf(-1))
	for _, c := range abs {
		if c.Op == Close {
			continue
		}
		ok = true
		min.X, min.Y = math.Min(min.X, c.X), math.Min(min.Y, c.Y)
		max.X, max.Y = math.Max(max.X, c.X), math.Max(max.Y, c.Y)
	}
	if !ok {
		return stroke.Point{}, stroke.Point{}, false
	}
	return min, max, true
}

// Unit returns the number of SVG user units in one of the named unit,
// at 96 user units per inch.
func Unit(name string) (float64, error) {
	switch name {
	case "px", "":
		return 1, nil
	case "mm":
		return 96 / 25.4, nil
	case "cm":
		return 96 / 2.54, nil
	case "in":
		return 96, nil
	case "pt":
		return 96.0 / 72, nil
	case "pc":
		return 16, nil
	}
	return 0, fmt.Errorf("svgpath: unknown unit %q", name)
}

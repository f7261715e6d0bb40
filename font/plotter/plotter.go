// Package plotter implements a monospaced stroke font derived from the
// character coordinates of the Commodore 1520 plotter.
//
// Glyphs are drawn on an 8×8 grid. The baseline is row 1 and
// descenders use row 0.
package plotter

import (
	"inksnek.org/stroke"
)

const (
	// Size is the top row of the grid.
	Size = 7
	// StdHeight is the nominal height used to scale text to a size.
	StdHeight = 5
	// StdWidth is the advance of every glyph.
	StdWidth = 5
)

// Cmd is a single stroke command, written in octal as 0QXY:
// Q is 1 for a move, 2 for the last command of a glyph (3 for both),
// X and Y are grid coordinates in 0-7.
type Cmd uint16

const (
	move = 0o100
	last = 0o200
)

func (c Cmd) X() int { return int(c>>3) & 0o7 }
func (c Cmd) Y() int { return int(c) & 0o7 }

// Move reports whether the pen is lifted on the way to the point.
func (c Cmd) Move() bool { return c&move != 0 }

// Last reports whether c is marked as the end of its glyph. The mark
// is informational; a glyph ends with its command list.
func (c Cmd) Last() bool { return c&last != 0 }

// Decode converts a command list to a sequence of open strokes. The
// first command always moves. A non-zero slant shifts every point
// right by slant times its height.
func Decode(cmds []Cmd, slant float64) stroke.Sequence {
	if len(cmds) == 0 {
		return nil
	}
	seq := make(stroke.Sequence, 0, len(cmds))
	for i, c := range cmds {
		y := float64(c.Y())
		p := stroke.Pt(float64(c.X())+slant*y, y)
		op := stroke.LineTo
		if i == 0 || c.Move() {
			op = stroke.MoveTo
		}
		seq = append(seq, stroke.Node{Op: op, P: p})
	}
	return seq
}

// Glyph returns the strokes of ch, or an empty sequence if the font
// has no glyph for it. The font covers ' ' through DEL and the
// graphics characters 0x80 through 0x89.
func Glyph(ch rune, slant float64) stroke.Sequence {
	cmds, ok := Lookup(ch)
	if !ok {
		return nil
	}
	return Decode(cmds, slant)
}

// Lookup returns the raw command list for ch.
func Lookup(ch rune) ([]Cmd, bool) {
	idx := int(ch) - ' '
	if idx < 0 || idx >= len(strokes) {
		return nil, false
	}
	return strokes[idx], true
}

// Text lays out s in grid units with the first line's grid at y=0. The
// control characters 1 through 6 widen the gap to the next glyph by as
// many units; a newline returns to x=0 one line below.
func Text(s string, slant float64) stroke.Sequence {
	var b stroke.Builder
	var x, y float64
	for _, r := range s {
		switch {
		case r == '\n':
			x = 0
			y -= Size + 1
		case r >= 0 && r < 7:
			x += float64(r)
		default:
			b.Append(Glyph(r, slant).Offset(x, y))
			x += StdWidth
		}
	}
	return b.Sequence()
}

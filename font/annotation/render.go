package annotation

import (
	"inksnek.org/svgpath"
)

// Align selects the anchor of rendered text. Combine one horizontal and
// one vertical flag with |.
type Align uint8

const (
	AlignLeft   Align = 0x00
	AlignCentre Align = 0x02
	AlignRight  Align = 0x04
	AlignBase   Align = 0x00
	AlignTop    Align = 0x08
	AlignMid    Align = 0x10
)

// Kind is the type of an instruction of the text stream.
type Kind uint8

const (
	KindGlyph Kind = iota
	KindNewline
	KindLower
	KindRaise
	KindNarrow
	KindWiden
	KindShorter
	KindTaller
	KindBackspace
	KindUnderline
	KindItalic
)

// Control characters recognized in text.
const (
	Newline   = '\n'
	Lower     = '\x11'
	Raise     = '\x10'
	Narrow    = '\x0f'
	Widen     = '\x0e'
	Shorter   = '\x1f'
	Taller    = '\x1e'
	Backspace = '\x08'
	Underline = '\x1b'
	// Italic0 through Italic0+15 set the slant from upright to
	// maximal, where the top of a glyph leans over by its height.
	Italic0 = '\u00f0'
)

// Instr is a single instruction of a text stream.
type Instr struct {
	Kind Kind
	// Rune is the character of a glyph instruction.
	Rune rune
	// Level is the italic level, 0-15.
	Level int
}

// Parse splits text into glyph and render state instructions.
// Characters without a glyph render as '?'.
func Parse(text string) []Instr {
	instrs := make([]Instr, 0, len(text))
	for _, r := range text {
		in := Instr{Kind: KindGlyph, Rune: r}
		switch {
		case r == Newline:
			in.Kind = KindNewline
		case r == Lower:
			in.Kind = KindLower
		case r == Raise:
			in.Kind = KindRaise
		case r == Narrow:
			in.Kind = KindNarrow
		case r == Widen:
			in.Kind = KindWiden
		case r == Shorter:
			in.Kind = KindShorter
		case r == Taller:
			in.Kind = KindTaller
		case r == Backspace:
			in.Kind = KindBackspace
		case r == Underline:
			in.Kind = KindUnderline
		case r >= Italic0 && r <= Italic0+15:
			in.Kind = KindItalic
			in.Level = int(r - Italic0)
		}
		if in.Kind != KindGlyph {
			in.Rune = 0
		}
		instrs = append(instrs, in)
	}
	return instrs
}

// state is the render state of a single Render call.
type state struct {
	x0, y0     float64
	xs, ys     float64
	italic     float64
	underline  bool
	lineStartX float64
}

// Render returns the outline of text with its anchor at (x, y). Glyphs
// are size tall and size/2 wide with a pitch of 3/4 size; lines are
// 3/2 size apart.
func Render(x, y float64, text string, size float64, align Align) svgpath.Path {
	instrs := Parse(text)
	if len(instrs) == 0 {
		return nil
	}
	longest, lines := measure(instrs)
	s := state{x0: x, y0: y, xs: size / 4, ys: size / 2}
	switch {
	case align&AlignCentre != 0:
		s.x0 -= (float64(longest)*3*s.xs - s.xs) / 2
	case align&AlignRight != 0:
		s.x0 -= float64(longest)*3*s.xs - s.xs
	}
	switch {
	case align&AlignTop != 0:
		s.y0 -= 2 * s.ys
	case align&AlignMid != 0:
		s.y0 -= s.ys - s.ys*3*float64(lines-1)/2
	}
	s.lineStartX = s.x0
	var p svgpath.Path
	for _, in := range instrs {
		switch in.Kind {
		case KindNewline:
			s.x0 = s.lineStartX
			s.y0 -= 3 * s.ys
		case KindLower:
			s.y0 -= 0.25 * s.ys
		case KindRaise:
			s.y0 += 0.25 * s.ys
		case KindNarrow:
			s.xs *= 0.75
		case KindWiden:
			s.xs /= 0.75
		case KindShorter:
			s.ys *= 0.75
		case KindTaller:
			s.ys /= 0.75
		case KindBackspace:
			s.x0 -= 3 * s.xs
		case KindUnderline:
			s.underline = !s.underline
		case KindItalic:
			s.italic = float64(in.Level) / 15
		case KindGlyph:
			s.glyph(&p, Decode(Lookup(in.Rune)))
		}
	}
	return p
}

// PathString is Render formatted as SVG path data in design
// coordinates.
func PathString(x, y float64, text string, size float64, align Align) string {
	return Render(x, y, text, size, align).String()
}

// measure returns the count of defined glyphs on the longest line and
// the number of lines. Fallback glyphs don't count.
func measure(instrs []Instr) (longest, lines int) {
	n := 0
	lines = 1
	for _, in := range instrs {
		switch in.Kind {
		case KindNewline:
			longest = max(longest, n)
			n = 0
			lines++
		case KindGlyph:
			if Defined(in.Rune) {
				n++
			}
		}
	}
	return max(longest, n), lines
}

func (s *state) glyph(p *svgpath.Path, g Glyph) {
	scaleY, shiftY := 1.0, 0.0
	switch g.Transform {
	case HalfHeight:
		scaleY = 0.5
	case DropHalf:
		shiftY = -s.ys
	case DropQuarter:
		shiftY = -s.ys / 2
	}
	if g.MidDot {
		p.MoveTo(s.x0+s.xs+(s.ys+s.xs/2)*s.italic, s.y0+s.ys+s.xs/2)
		s.dot(p)
	}
	for _, op := range g.Ops {
		gx, gy := op.V.Grid()
		yOrd := float64(gy)*s.ys*scaleY + shiftY
		x := s.x0 + float64(gx)*s.xs + yOrd*s.italic
		y := s.y0 + yOrd
		switch op.Kind {
		case OpMove:
			p.MoveTo(x, y)
		case OpLine:
			p.LineTo(x, y)
		case OpDot:
			p.LineTo(x, y)
			s.dot(p)
		}
	}
	if s.underline {
		p.MoveTo(s.x0, s.y0-s.ys/2)
		p.LineBy(3*s.xs, 0)
	}
	s.x0 += 3 * s.xs
}

// dot draws a small box from the current point.
func (s *state) dot(p *svgpath.Path) {
	d := s.xs / 2
	p.HorzBy(d)
	p.VertBy(d)
	p.HorzBy(-d)
	p.VertBy(-d)
}

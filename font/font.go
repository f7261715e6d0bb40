// package font defines the interface shared by the stroke fonts and
// lays out text with them.
package font

import (
	"strings"
	"unicode"

	"inksnek.org/font/annotation"
	"inksnek.org/font/plotter"
	"inksnek.org/font/segment"
	"inksnek.org/stroke"
)

// Face is a stroke font measured in its own grid units, with y
// pointing up and the origin at the left end of the baseline.
type Face interface {
	// Decode returns the advance and strokes of ch. The advance is
	// valid even when found is false.
	Decode(ch rune) (adv float64, seq stroke.Sequence, found bool)
	Metrics() Metrics
}

// Typesetter is implemented by faces that lay out whole strings
// themselves, for spacing codes or escape characters that change the
// rendering of the glyphs after them.
type Typesetter interface {
	// Text lays out txt from the origin, lines one Metrics().Height
	// apart.
	Text(txt string) stroke.Sequence
}

type Metrics struct {
	// Ascent is the height of the glyphs above the origin.
	Ascent float64
	// Height is the distance between baselines.
	Height float64
}

// Segment is a segment font face.
type Segment struct {
	Font segment.Font
}

func (s Segment) Decode(ch rune) (float64, stroke.Sequence, bool) {
	seq := s.Font.Glyph(ch, stroke.Point{}, nil)
	return s.Font.Advance(), seq, len(seq) > 0 || unicode.IsSpace(ch)
}

func (s Segment) Text(txt string) stroke.Sequence {
	return s.Font.Text(txt, stroke.Point{})
}

func (s Segment) Metrics() Metrics {
	return Metrics{
		Ascent: s.Font.Height + s.Font.Thick,
		Height: s.Font.LineHeight(),
	}
}

// Plotter is the plotter stroke font face.
type Plotter struct {
	Slant float64
}

func (p Plotter) Decode(ch rune) (float64, stroke.Sequence, bool) {
	if 0 <= ch && ch < 7 {
		// Spacing code.
		return float64(ch), nil, false
	}
	_, found := plotter.Lookup(ch)
	return plotter.StdWidth, plotter.Glyph(ch, p.Slant), found
}

func (p Plotter) Text(txt string) stroke.Sequence {
	return plotter.Text(txt, p.Slant)
}

func (p Plotter) Metrics() Metrics {
	return Metrics{
		Ascent: plotter.Size,
		Height: plotter.Size + 1,
	}
}

// annotationSize makes a grid unit of the annotation font equal to one
// column of its glyph grid.
const annotationSize = 4

// Annotation is the annotation font face. Characters without a glyph
// decode to '?'. Escape characters only take effect through Text and
// have no advance of their own.
type Annotation struct {
	// Align anchors the text at the origin.
	Align annotation.Align
}

func (Annotation) Decode(ch rune) (float64, stroke.Sequence, bool) {
	if in := annotation.Parse(string(ch)); in[0].Kind != annotation.KindGlyph {
		return 0, nil, false
	}
	p := annotation.Render(0, 0, string(ch), annotationSize, annotation.AlignLeft)
	return 3 * annotationSize / 4, p.Sequence(), annotation.Defined(ch)
}

func (a Annotation) Text(txt string) stroke.Sequence {
	return annotation.Render(0, 0, txt, annotationSize, a.Align).Sequence()
}

func (Annotation) Metrics() Metrics {
	return Metrics{
		Ascent: annotationSize,
		Height: 3 * annotationSize / 2,
	}
}

// Layout places the glyphs of txt from the origin, starting a new line
// below the previous one for every newline. Characters missing from
// the face are blank. Faces implementing Typesetter lay out txt
// themselves.
func Layout(f Face, txt string) stroke.Sequence {
	if t, ok := f.(Typesetter); ok {
		return t.Text(txt)
	}
	var b stroke.Builder
	m := f.Metrics()
	var x, y float64
	for _, r := range txt {
		if r == '\n' {
			x = 0
			y -= m.Height
			continue
		}
		adv, seq, found := f.Decode(r)
		if found {
			b.Append(seq.Offset(x, y))
		}
		x += adv
	}
	return b.Sequence()
}

// Measure returns the width of the longest line of txt and the number
// of lines.
func Measure(f Face, txt string) (width float64, lines int) {
	var x float64
	lines = 1
	for _, r := range txt {
		if r == '\n' {
			width = max(width, x)
			x = 0
			lines++
			continue
		}
		adv, _, _ := f.Decode(r)
		x += adv
	}
	return max(width, x), lines
}

// LayoutLines is Layout with the distance between lines scaled by
// lineHeight.
func LayoutLines(f Face, txt string, lineHeight float64) stroke.Sequence {
	if lineHeight == 1 {
		return Layout(f, txt)
	}
	var b stroke.Builder
	dy := f.Metrics().Height * lineHeight
	for i, line := range strings.Split(txt, "\n") {
		b.Append(Layout(f, line).Offset(0, -float64(i)*dy))
	}
	return b.Sequence()
}

// Package svgdoc writes laser cutter drawings as SVG documents in
// millimeters. Every element has a class, such as a cut or an etch,
// and the document mode decides how each class is drawn.
package svgdoc

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"inksnek.org/stroke"
	"inksnek.org/svgpath"
)

// Mode selects the colors and line widths of a document.
type Mode int

const (
	// Devel uses the cutter colors with thick lines and translucent
	// fills.
	Devel Mode = iota
	// Final is ready for the laser cutter: hairlines, Ignore elements
	// left out.
	Final
	// Real approximates the finished part: black cuts, gray etches.
	Real
	// Print draws every line black and leaves out fills.
	Print
	// Proto is like Print without Ignore elements, for cutting by hand.
	Proto
)

var modeNames = [...]string{"devel", "final", "real", "print", "proto"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(s, n) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("svgdoc: unknown mode %q", s)
}

// Class is the purpose of an element.
type Class int

const (
	Cut Class = iota
	LightEtch
	MediumEtch
	HeavyEtch
	LightFill
	MediumFill
	HeavyFill
	// Ignore marks guides that must not reach the cutter.
	Ignore
)

func (c Class) fill() bool {
	return LightFill <= c && c <= HeavyFill
}

// Style is the presentation of a class.
type Style struct {
	Stroke  string
	Fill    string
	Width   float64
	Opacity float64
}

func (s Style) String() string {
	var b strings.Builder
	if s.Fill == "" {
		b.WriteString("fill:none")
	} else {
		fmt.Fprintf(&b, "fill:%s;fill-opacity:%s", s.Fill, strconv.FormatFloat(s.Opacity, 'f', -1, 64))
	}
	if s.Stroke == "" {
		b.WriteString(";stroke:none")
	} else {
		fmt.Fprintf(&b, ";stroke:%s;stroke-width:%s", s.Stroke, strconv.FormatFloat(s.Width, 'f', -1, 64))
	}
	return b.String()
}

const ignoreColor = "#F6921E"

// Style returns the style of c in mode m, and false if m leaves out
// elements of c.
func (m Mode) Style(c Class) (Style, bool) {
	width := 0.1
	lines := [...]string{"#0000FF", "#FF00FF", "#00FF00", "#FF0000"}
	fills := [...]string{"#000000", "#000000", "#000000"}
	opacity := [...]float64{0.25, 0.5, 0.75}
	switch m {
	case Final:
		width = 0.01
		fills = [...]string{"#E6E6E6", "#808080", "#000000"}
		opacity = [...]float64{1, 1, 1}
	case Real:
		width = 0.2
		lines = [...]string{"#000000", "#AAAAAA", "#555555", "#000000"}
	case Print, Proto:
		lines = [...]string{"#000000", "#000000", "#000000", "#000000"}
	}
	switch {
	case c == Ignore:
		switch m {
		case Final, Real, Proto:
			return Style{}, false
		case Print:
			return Style{Stroke: "#000000", Width: width}, true
		}
		return Style{Stroke: ignoreColor, Width: width}, true
	case c.fill():
		if m == Print || m == Proto {
			return Style{}, false
		}
		i := c - LightFill
		return Style{Fill: fills[i], Opacity: opacity[i]}, true
	case Cut <= c && c <= HeavyEtch:
		return Style{Stroke: lines[c], Width: width}, true
	}
	return Style{}, false
}

type element struct {
	class   Class
	path    svgpath.Path
	circle  bool
	x, y, r float64
}

// Document is a drawing in millimeters with y pointing up.
type Document struct {
	Mode Mode
	// Margin surrounds the drawing.
	Margin float64
	// Unit is the unit of the width and height attributes, mm if
	// empty. The view box stays in millimeters.
	Unit string

	elems []element
}

// Path adds p. Empty paths are skipped.
func (d *Document) Path(c Class, p svgpath.Path) {
	if len(p) == 0 {
		return
	}
	d.elems = append(d.elems, element{class: c, path: p})
}

func (d *Document) Circle(c Class, x, y, r float64) {
	d.elems = append(d.elems, element{class: c, circle: true, x: x, y: y, r: r})
}

// Bounds returns the extent of every element, drawn or not.
func (d *Document) Bounds() (min, max stroke.Point, ok bool) {
	min = stroke.Pt(math.Inf(1), math.Inf(1))
	max = stroke.Pt(math.Inf(-1), math.Inf(-1))
	add := func(lo, hi stroke.Point) {
		ok = true
		min.X, min.Y = math.Min(min.X, lo.X), math.Min(min.Y, lo.Y)
		max.X, max.Y = math.Max(max.X, hi.X), math.Max(max.Y, hi.Y)
	}
	for _, e := range d.elems {
		if e.circle {
			add(stroke.Pt(e.x-e.r, e.y-e.r), stroke.Pt(e.x+e.r, e.y+e.r))
			continue
		}
		if lo, hi, found := e.path.Bounds(); found {
			add(lo, hi)
		}
	}
	if !ok {
		return stroke.Point{}, stroke.Point{}, false
	}
	return min, max, true
}

var flip = svgpath.Frame{Scale: 1, FlipY: true}

func num(v float64) string {
	return strconv.FormatFloat(v+0, 'f', 3, 64)
}

// WriteTo writes the document as a standalone SVG file.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	unit := d.Unit
	if unit == "" {
		unit = "mm"
	}
	u, err := svgpath.Unit(unit)
	if err != nil {
		return 0, err
	}
	mm, _ := svgpath.Unit("mm")
	k := mm / u
	out := new(bytes.Buffer)
	min, max, _ := d.Bounds()
	width, height := max.X-min.X+2*d.Margin, max.Y-min.Y+2*d.Margin
	fmt.Fprintf(out, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s%s\" height=\"%s%s\" viewBox=\"%s %s %s %s\">\n",
		num(width*k), unit, num(height*k), unit, num(min.X-d.Margin), num(-max.Y-d.Margin), num(width), num(height))
	for _, e := range d.elems {
		s, ok := d.Mode.Style(e.class)
		if !ok {
			continue
		}
		if e.circle {
			fmt.Fprintf(out, "<circle style=\"%s\" cx=\"%s\" cy=\"%s\" r=\"%s\"/>\n", s, num(e.x), num(-e.y), num(e.r))
			continue
		}
		fmt.Fprintf(out, "<path style=\"%s\" d=\"%s\"/>\n", s, e.path.Format(flip))
	}
	fmt.Fprintln(out, "</svg>")
	return out.WriteTo(w)
}

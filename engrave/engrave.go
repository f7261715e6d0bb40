// package engrave transforms shapes such as glyph strokes, path data,
// text and QR codes into line and move commands for use with a pen
// plotter or cutter.
//
// Coordinates are integer machine units with y pointing up.
package engrave

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/kortschak/qr"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
	"inksnek.org/affine"
	"inksnek.org/font"
	"inksnek.org/stroke"
	"inksnek.org/svgpath"
)

type Command interface {
	Engrave(p Program)
}

type Commands []Command

func (c Commands) Engrave(p Program) {
	for _, c := range c {
		c.Engrave(p)
	}
}

// Program is an interface to output an engraving.
type Program interface {
	Move(p image.Point)
	Line(p image.Point)
}

type transformedProgram struct {
	prog  Program
	trans f32.Aff3
}

func (t *transformedProgram) Move(p image.Point) {
	t.prog.Move(t.transform(p))
}

func (t *transformedProgram) Line(p image.Point) {
	t.prog.Line(t.transform(p))
}

func (t *transformedProgram) transform(p image.Point) image.Point {
	return roundCoord(affine.Transform(t.trans, affine.Pointf(p)))
}

func roundCoord(p f32.Vec2) image.Point {
	return image.Point{
		X: int(math.Round(float64(p[0]))),
		Y: int(math.Round(float64(p[1]))),
	}
}

type transformCmd struct {
	t   f32.Aff3
	cmd Command
}

func (t transformCmd) Engrave(p Program) {
	// Collapse nested transforms.
	if tp, ok := p.(*transformedProgram); ok {
		p = &transformedProgram{
			prog:  tp.prog,
			trans: affine.Mul(tp.trans, t.t),
		}
	} else {
		p = &transformedProgram{
			prog:  p,
			trans: t.t,
		}
	}
	t.cmd.Engrave(p)
}

// Transform applies m to every point of cmd.
func Transform(m f32.Aff3, cmd Command) Command {
	return transformCmd{t: m, cmd: cmd}
}

func Offset(x, y int, cmd Command) Command {
	return Transform(affine.Offsetting(f32.Vec2{float32(x), float32(y)}), cmd)
}

// Rotate rotates cmd counter-clockwise around the origin.
func Rotate(radians float32, cmd Command) Command {
	return Transform(affine.Rotating(radians), cmd)
}

func Scale(sx, sy float32, cmd Command) Command {
	return Transform(affine.Scaling(f32.Vec2{sx, sy}), cmd)
}

// Strokes engraves a node sequence with every grid unit scaled to unit
// machine units. A closed subpath ends with a line back to its start.
func Strokes(seq stroke.Sequence, unit float32) Command {
	return strokesCmd{seq: seq, unit: unit}
}

type strokesCmd struct {
	seq  stroke.Sequence
	unit float32
}

func (s strokesCmd) Engrave(p Program) {
	engraveSequence(p, s.seq, image.Point{}, s.unit)
}

func engraveSequence(p Program, seq stroke.Sequence, off image.Point, unit float32) {
	var start image.Point
	scale := func(sp stroke.Point) image.Point {
		v := affine.Scale(f32.Vec2{float32(sp.X), float32(sp.Y)}, unit)
		return roundCoord(v).Add(off)
	}
	for _, n := range seq {
		switch n.Op {
		case stroke.MoveTo:
			start = scale(n.P)
			p.Move(start)
		case stroke.LineTo:
			p.Line(scale(n.P))
		case stroke.Close:
			p.Line(start)
		}
	}
}

// Path engraves path data with every design unit scaled to unit
// machine units.
func Path(d svgpath.Path, unit float32) Command {
	return Strokes(d.Sequence(), unit)
}

type Rect image.Rectangle

func (r Rect) Engrave(p Program) {
	p.Move(r.Min)
	p.Line(image.Pt(r.Max.X, r.Min.Y))
	p.Line(r.Max)
	p.Line(image.Pt(r.Min.X, r.Max.Y))
	p.Line(r.Min)
}

// String engraves txt in face with em machine units per grid unit.
// The origin is the left end of the first baseline.
func String(face font.Face, em float32, txt string) *StringCmd {
	return &StringCmd{
		LineHeight: 1,
		face:       face,
		em:         em,
		txt:        txt,
	}
}

type StringCmd struct {
	// LineHeight scales the distance between lines.
	LineHeight float32

	face font.Face
	em   float32
	txt  string
}

func (s *StringCmd) Engrave(p Program) {
	seq := font.LayoutLines(s.face, s.txt, float64(s.LineHeight))
	engraveSequence(p, seq, image.Point{}, s.em)
}

// Measure returns the width of the longest line and the height from
// the top of the first line to the last baseline, for text anchored
// at its left end.
func (s *StringCmd) Measure() image.Point {
	width, lines := font.Measure(s.face, s.txt)
	m := s.face.Metrics()
	h := m.Ascent + float64(lines-1)*m.Height*float64(s.LineHeight)
	return image.Pt(
		int(math.Ceil(width*float64(s.em))),
		int(math.Ceil(h*float64(s.em))),
	)
}

// QR engraves the dark modules of code as horizontal lines of
// strokeWidth, scale lines per module row. Every other line runs
// backwards to shorten pen moves.
func QR(strokeWidth, scale int, code *qr.Code) Command {
	return qrCmd{
		strokeWidth: strokeWidth,
		scale:       scale,
		code:        code,
	}
}

type qrCmd struct {
	strokeWidth int
	scale       int
	code        *qr.Code
}

func (q qrCmd) Engrave(p Program) {
	dim := q.code.Size
	lines := dim * q.scale
	for y := range dim {
		for i := range q.scale {
			drawing := false
			var firstx int
			line := y*q.scale + i
			// Module rows count from the top.
			ly := (lines - 1 - line) * q.strokeWidth
			// Swap direction every other line.
			rev := line%2 != 0
			radius := q.strokeWidth / 2
			if rev {
				radius = -radius
			}
			drawLine := func(endx int) {
				start := image.Pt(firstx*q.scale*q.strokeWidth+radius, ly)
				end := image.Pt(endx*q.scale*q.strokeWidth-radius, ly)
				p.Move(start)
				p.Line(end)
				drawing = false
			}
			for x := -1; x <= dim; x++ {
				xl := x
				px := x
				if rev {
					xl = dim - 1 - x
					px = xl - 1
				}
				on := 0 <= px && px < dim && q.code.Black(px, y)
				switch {
				case !drawing && on:
					drawing = true
					firstx = xl
				case drawing && !on:
					drawLine(xl)
				}
			}
		}
	}
}

type boundsProgram struct {
	bounds image.Rectangle
	empty  bool
}

func (b *boundsProgram) Move(p image.Point) { b.add(p) }
func (b *boundsProgram) Line(p image.Point) { b.add(p) }

func (b *boundsProgram) add(p image.Point) {
	if b.empty {
		b.bounds = image.Rectangle{Min: p, Max: p}
		b.empty = false
		return
	}
	b.bounds.Min.X = min(b.bounds.Min.X, p.X)
	b.bounds.Min.Y = min(b.bounds.Min.Y, p.Y)
	b.bounds.Max.X = max(b.bounds.Max.X, p.X)
	b.bounds.Max.Y = max(b.bounds.Max.Y, p.Y)
}

// Bounds returns the smallest rectangle containing every point of c,
// including its moves. The maximum is inclusive.
func Bounds(c Command) image.Rectangle {
	b := &boundsProgram{empty: true}
	c.Engrave(b)
	return b.bounds
}

type Rasterizer struct {
	p       f32.Vec2
	started bool
	dasher  *rasterx.Dasher
	img     image.Image
	scale   float32
}

func (r *Rasterizer) Line(p image.Point) {
	pf := r.point(p)
	if !r.started {
		r.dasher.Start(rasterx.ToFixedP(float64(r.p[0]), float64(r.p[1])))
		r.started = true
	}
	r.dasher.Line(rasterx.ToFixedP(float64(pf[0]), float64(pf[1])))
}

func (r *Rasterizer) Move(p image.Point) {
	if r.started {
		r.dasher.Stop(false)
		r.started = false
	}
	r.p = r.point(p)
}

func (r *Rasterizer) point(p image.Point) f32.Vec2 {
	return f32.Vec2{
		float32(p.X)*r.scale - float32(r.img.Bounds().Min.X),
		float32(p.Y)*r.scale - float32(r.img.Bounds().Min.Y),
	}
}

func NewRasterizer(img draw.Image, dr image.Rectangle, scale, strokeWidth float32) *Rasterizer {
	width, height := dr.Dx(), dr.Dy()
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	r := &Rasterizer{
		dasher: rasterx.NewDasher(width, height, scanner),
		img:    img,
		scale:  scale,
	}
	sw := strokeWidth * 64
	r.dasher.SetStroke(fixed.Int26_6(sw), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	r.dasher.SetColor(color.Black)
	return r
}

func (r *Rasterizer) Rasterize() {
	if r.started {
		r.dasher.Stop(false)
	}
	r.dasher.Draw()
}

// Preview rasterizes c onto a white image, scale pixels per machine
// unit, with a margin around the drawing. The image is flipped so that
// machine y points up.
func Preview(c Command, scale, strokeWidth float32) *image.Gray {
	b := Bounds(c)
	off := int(math.Ceil(float64(strokeWidth / scale)))
	dims := b.Size().Add(image.Pt(2*off, 2*off))
	w := int(math.Ceil(float64(dims.X)*float64(scale))) + 1
	h := int(math.Ceil(float64(dims.Y)*float64(scale))) + 1
	img := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	r := NewRasterizer(img, img.Bounds(), scale, strokeWidth)
	flip := affine.Mul(
		affine.Offsetting(f32.Vec2{float32(off - b.Min.X), float32(off + b.Max.Y)}),
		affine.Scaling(f32.Vec2{1, -1}),
	)
	Transform(flip, c).Engrave(r)
	r.Rasterize()
	return img
}

package engrave

import (
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kortschak/qr"
	"inksnek.org/font"
	"inksnek.org/font/plotter"
	"inksnek.org/stroke"
	"inksnek.org/svgpath"
)

type step struct {
	Line bool
	P    image.Point
}

type recorder struct {
	steps []step
}

func (r *recorder) Move(p image.Point) { r.steps = append(r.steps, step{false, p}) }
func (r *recorder) Line(p image.Point) { r.steps = append(r.steps, step{true, p}) }

func record(c Command) []step {
	r := new(recorder)
	c.Engrave(r)
	return r.steps
}

func TestStrokes(t *testing.T) {
	seq := stroke.Sequence{
		{Op: stroke.MoveTo, P: stroke.Pt(0, 0)},
		{Op: stroke.LineTo, P: stroke.Pt(1, 0)},
		{Op: stroke.LineTo, P: stroke.Pt(1, 0.5)},
		{Op: stroke.Close},
		{Op: stroke.MoveTo, P: stroke.Pt(2, 2)},
		{Op: stroke.LineTo, P: stroke.Pt(3, 2)},
	}
	got := record(Strokes(seq, 10))
	want := []step{
		{false, image.Pt(0, 0)},
		{true, image.Pt(10, 0)},
		{true, image.Pt(10, 5)},
		{true, image.Pt(0, 0)},
		{false, image.Pt(20, 20)},
		{true, image.Pt(30, 20)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("strokes mismatch (-want +got):\n%s", d)
	}
}

func TestPath(t *testing.T) {
	var p svgpath.Path
	p.MoveTo(1, 1)
	p.HorzBy(2)
	p.VertBy(1)
	p.Close()
	got := record(Path(p, 4))
	want := []step{
		{false, image.Pt(4, 4)},
		{true, image.Pt(12, 4)},
		{true, image.Pt(12, 8)},
		{true, image.Pt(4, 4)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("path mismatch (-want +got):\n%s", d)
	}
}

func TestTransforms(t *testing.T) {
	r := Rect(image.Rect(0, 0, 10, 5))
	tests := []struct {
		name string
		cmd  Command
		want image.Rectangle
	}{
		{"offset", Offset(3, -2, r), image.Rect(3, -2, 13, 3)},
		{"scale", Scale(2, -1, r), image.Rect(0, -5, 20, 0)},
		{"rotate", Rotate(math.Pi/2, r), image.Rect(-5, 0, 0, 10)},
		{"nested", Offset(100, 0, Scale(2, 2, r)), image.Rect(100, 0, 120, 10)},
	}
	for _, test := range tests {
		if got := Bounds(test.cmd); got != test.want {
			t.Errorf("%s: bounds %v, want %v", test.name, got, test.want)
		}
	}
}

func TestString(t *testing.T) {
	const em = 10
	s := String(font.Plotter{}, em, "L\nL")
	got := record(s)
	l := plotter.Glyph('L', 0)
	var want []step
	for _, off := range []image.Point{{}, {0, -(plotter.Size + 1) * em}} {
		want = append(want, record(Offset(off.X, off.Y, Strokes(l, em)))...)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("string mismatch (-want +got):\n%s", d)
	}
	if got, want := s.Measure(), image.Pt(plotter.StdWidth*em, (2*plotter.Size+1)*em); got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
}

func TestQR(t *testing.T) {
	code, err := qr.Encode("HELLO, PLOTTER", qr.M)
	if err != nil {
		t.Fatal(err)
	}
	dim := code.Size
	steps := record(QR(1, 1, code))
	got := make([][]bool, dim)
	for i := range got {
		got[i] = make([]bool, dim)
	}
	for i := 0; i+1 < len(steps); i += 2 {
		start, end := steps[i], steps[i+1]
		if start.Line || !end.Line || start.P.Y != end.P.Y {
			t.Fatalf("step %d: not a horizontal move and line: %v, %v", i, start, end)
		}
		row := dim - 1 - start.P.Y
		for x := min(start.P.X, end.P.X); x < max(start.P.X, end.P.X); x++ {
			got[row][x] = true
		}
	}
	for y := range dim {
		for x := range dim {
			if got[y][x] != code.Black(x, y) {
				t.Fatalf("module (%d,%d): engraved %v, want %v", x, y, got[y][x], code.Black(x, y))
			}
		}
	}
}

func TestPreview(t *testing.T) {
	img := Preview(Rect(image.Rect(0, 0, 40, 20)), 0.5, 2)
	b := img.Bounds()
	if b.Dx() < 20 || b.Dy() < 10 {
		t.Fatalf("preview too small: %v", b)
	}
	dark := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("preview is blank")
	}
	if c := img.GrayAt(b.Dx()/2, b.Dy()/2); c.Y != 0xff {
		t.Errorf("rectangle interior is %v, want white", c)
	}
}

func TestBoundsEmpty(t *testing.T) {
	if got := Bounds(Commands{}); got != (image.Rectangle{}) {
		t.Errorf("empty bounds %v", got)
	}
}

package svgpath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"inksnek.org/stroke"
)

func TestFormat(t *testing.T) {
	var p Path
	p.MoveTo(1, 2)
	p.LineBy(0.5, -0.25)
	p.HorzBy(3)
	p.VertBy(-1)
	p.HorzTo(0)
	p.VertTo(0)
	p.Close()
	if got, want := p.String(), "M1.000,2.000l0.500,-0.250h3.000v-1.000H0.000V0.000z"; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
	f := Frame{Scale: 2, FlipY: true}
	if got, want := p.Format(f), "M2.000,-4.000l1.000,0.500h6.000v2.000H0.000V0.000z"; got != want {
		t.Errorf("Format(%+v) = %s, want %s", f, got, want)
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("M 1,2 3 4 l.5-1 h2 V -1e1 Z m0 0")
	if err != nil {
		t.Fatal(err)
	}
	want := Path{
		{MoveTo, 1, 2},
		{LineTo, 3, 4},
		{LineBy, 0.5, -1},
		{Op: HorzBy, X: 2},
		{Op: VertTo, Y: -10},
		{Op: Close},
		{MoveBy, 0, 0},
	}
	if d := cmp.Diff(want, p); d != "" {
		t.Errorf("parse mismatch (-want +got):\n%s", d)
	}
	var built Path
	built.MoveTo(-1.5, 2)
	built.LineTo(3, 0.125)
	built.VertBy(2)
	built.Close()
	back, err := Parse(built.String())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(built, back); d != "" {
		t.Errorf("formatted path parsed differently (-want +got):\n%s", d)
	}
}

func TestParseErrors(t *testing.T) {
	for _, d := range []string{
		"1,2",
		"M1",
		"M1,x",
		"L1,2 z 3",
		"Q1,2",
	} {
		if _, err := Parse(d); err == nil {
			t.Errorf("%q: parsed without error", d)
		}
	}
}

func TestAbsolute(t *testing.T) {
	var p Path
	p.MoveTo(1, 1)
	p.HorzBy(2)
	p.VertBy(3)
	p.Close()
	p.MoveBy(1, 0)
	p.LineBy(0, -1)
	got := p.Absolute()
	want := Path{
		{MoveTo, 1, 1},
		{LineTo, 3, 1},
		{LineTo, 3, 4},
		{Op: Close},
		{MoveTo, 2, 1},
		{LineTo, 2, 0},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("absolute path mismatch (-want +got):\n%s", d)
	}
	min, max, ok := p.Bounds()
	if !ok || min != stroke.Pt(1, 0) || max != stroke.Pt(3, 4) {
		t.Errorf("Bounds() = %v, %v, %v", min, max, ok)
	}
	if _, _, ok := Path(nil).Bounds(); ok {
		t.Error("empty path has bounds")
	}
}

func TestAppendShape(t *testing.T) {
	seq := stroke.Sequence{
		{Op: stroke.MoveTo, P: stroke.Pt(0, 1)},
		{Op: stroke.LineTo, P: stroke.Pt(2, 1)},
		{Op: stroke.LineTo, P: stroke.Pt(2, 0)},
		{Op: stroke.Close},
	}
	var p Path
	p.AppendShape(10, 20, 0.5, 2, seq)
	if got, want := p.String(), "M10.000,22.000L11.000,22.000L11.000,20.000z"; got != want {
		t.Errorf("AppendShape = %s, want %s", got, want)
	}
}

func TestUnit(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"px", 1},
		{"in", 96},
		{"mm", 3.7795275590551},
		{"cm", 37.795275590551},
		{"pt", 1.3333333333333},
		{"pc", 16},
	}
	for _, test := range tests {
		got, err := Unit(test.name)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("Unit(%q) = %g, want %g", test.name, got, test.want)
		}
	}
	if _, err := Unit("furlong"); err == nil {
		t.Error("unknown unit accepted")
	}
}

func FuzzParse(f *testing.F) {
	f.Add("M1,2L3,4z")
	f.Add("m-1 2h3v4H5V6")
	f.Fuzz(func(t *testing.T, d string) {
		p, err := Parse(d)
		if err != nil {
			return
		}
		if _, err := Parse(p.String()); err != nil {
			t.Fatalf("formatted path %q failed to parse: %v", p.String(), err)
		}
	})
}

package segment

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"inksnek.org/stroke"
)

var sample = Font{Segments: 16, Width: 4, Height: 8, Skew: 0, Gap: 0.25, Thick: 0.5}

func countOps(s stroke.Sequence) (moves, lines, closes int) {
	for _, n := range s {
		switch n.Op {
		case stroke.MoveTo:
			moves++
		case stroke.LineTo:
			lines++
		case stroke.Close:
			closes++
		}
	}
	return
}

func TestEight(t *testing.T) {
	seq := sample.Glyph('8', stroke.Pt(0, 0), nil)
	if err := seq.Validate(); err != nil {
		t.Fatal(err)
	}
	subs := seq.Subpaths()
	if len(subs) != len("ABCGHIJNOP") {
		t.Fatalf("got %d subpaths, want %d", len(subs), len("ABCGHIJNOP"))
	}
	for i, s := range subs {
		if len(s) < 3 {
			t.Errorf("subpath %d is empty: %v", i, s)
		}
		if s[len(s)-1].Op != stroke.Close {
			t.Errorf("subpath %d is not closed: %v", i, s)
		}
	}
}

func TestAllGlyphsValid(t *testing.T) {
	for _, segs := range []int{7, 14, 16} {
		f := Font{Segments: segs, Width: 4, Height: 8, Skew: 1, Gap: 0.25, Thick: 0.5}
		for _, g := range f.table() {
			s1 := f.Glyph(g.ch, stroke.Pt(3, -2), nil)
			if err := s1.Validate(); err != nil {
				t.Errorf("%d segments, %q: %v", segs, g.ch, err)
			}
			s2 := f.Glyph(g.ch, stroke.Pt(3, -2), nil)
			if d := cmp.Diff(s1, s2); d != "" {
				t.Errorf("%d segments, %q: glyph not deterministic:\n%s", segs, g.ch, d)
			}
			_, _, closes := countOps(s1)
			if want := len(g.segs); closes != want {
				t.Errorf("%d segments, %q: %d closed outlines, want %d", segs, g.ch, closes, want)
			}
		}
	}
}

func TestZeroThickness(t *testing.T) {
	for _, segs := range []int{7, 14, 16} {
		f := Font{Segments: segs, Width: 4, Height: 8, Skew: 0.5, Gap: 0.25}
		for i := range f.definitions() {
			s := f.Segment(i, stroke.Pt(0, 0))
			if len(s) != 2 || s[0].Op != stroke.MoveTo || s[1].Op != stroke.LineTo {
				t.Errorf("%d segments, segment %c: got %v, want a single line", segs, 'A'+i, s)
			}
		}
	}
}

func TestVerticalCaps(t *testing.T) {
	f := Font{Segments: 14, Width: 4, Height: 8, Gap: 0.25, Thick: 0.5}
	tests := []struct {
		seg   int
		lines int
	}{
		{1, 5}, // B, beveled ends
		{3, 4}, // D, square end
		{10, 4},
		{12, 5},
	}
	for _, test := range tests {
		s := f.Segment(test.seg, stroke.Pt(0, 0))
		moves, lines, closes := countOps(s)
		if moves != 1 || lines != test.lines || closes != 1 {
			t.Errorf("segment %c: %d moves, %d lines, %d closes, want 1, %d, 1",
				'A'+test.seg, moves, lines, closes, test.lines)
		}
	}
}

func TestHorizontalThickness(t *testing.T) {
	f := Font{Segments: 7, Width: 4, Height: 8, Gap: 0.25, Thick: 0.4}
	min, max, err := f.Segment(0, stroke.Pt(0, 0)).Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if h := max.Y - min.Y; math.Abs(h-2*f.Thick) > 1e-9 {
		t.Errorf("horizontal segment height %g, want %g", h, 2*f.Thick)
	}
	if w, want := max.X-min.X, f.Width-2*f.Gap; math.Abs(w-want) > 1e-9 {
		t.Errorf("horizontal segment width %g, want %g", w, want)
	}
}

func TestDiagonalWidth(t *testing.T) {
	tests := []struct {
		size, gap, thick float64
	}{
		{8, 0.25, 0.5},
		{10, 0.2, 0.3},
		{6, 0.1, 0.25},
	}
	for _, test := range tests {
		// Square glyphs make the diagonal D segment run at 45°.
		f := Font{Segments: 16, Width: test.size, Height: test.size, Gap: test.gap, Thick: test.thick}
		s := f.Segment(3, stroke.Pt(0, 0))
		if len(s) != 7 {
			t.Fatalf("size %g: got %d nodes, want 7: %v", test.size, len(s), s)
		}
		p1, p2, p4 := s[1].P, s[2].P, s[4].P
		edge := p2.Sub(p1)
		off := p4.Sub(p1)
		width := math.Abs(edge.X*off.Y-edge.Y*off.X) / math.Hypot(edge.X, edge.Y)
		if math.Abs(width/2-test.thick) > 1e-6 {
			t.Errorf("size %g: diagonal half width %g, want %g", test.size, width/2, test.thick)
		}
	}
}

func TestDiagonalThickness(t *testing.T) {
	const thick = 0.5
	if got, want := DiagonalThickness(thick, 1, 1), thick*math.Sqrt2; math.Abs(got-want) > 1e-12 {
		t.Errorf("45° thickness %g, want %g", got, want)
	}
	if got := DiagonalThickness(thick, 1, 0); math.Abs(got-2*thick) > 1e-12 {
		t.Errorf("flat thickness %g, want %g", got, 2*thick)
	}
}

func TestSkew(t *testing.T) {
	origin := stroke.Pt(1, 2)
	straight := sample
	skewed := sample
	skewed.Skew = 1.5
	s1 := straight.Glyph('W', origin, nil)
	s2 := skewed.Glyph('W', origin, nil)
	want := s1.Map(func(p stroke.Point) stroke.Point {
		p.X += skewed.Skew * (p.Y - origin.Y) / skewed.Height
		return p
	})
	opt := cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-9 })
	if d := cmp.Diff(want, s2, opt); d != "" {
		t.Errorf("skewed glyph mismatch (-want +got):\n%s", d)
	}
}

func TestBlankGlyphs(t *testing.T) {
	if s := sample.Glyph('~', stroke.Pt(0, 0), nil); len(s) != 0 {
		t.Errorf("unmapped character produced %v", s)
	}
	if s := sample.Glyph('a', stroke.Pt(0, 0), nil); len(s) != 0 {
		t.Errorf("lookup is not case sensitive: %v", s)
	}
	bad := sample
	bad.Segments = 9
	if s := bad.Glyph('8', stroke.Pt(0, 0), nil); len(s) != 0 {
		t.Errorf("9 segment font produced %v", s)
	}
	if s := sample.Glyph('\x02', stroke.Pt(0, 0), []string{"A"}); len(s) != 0 {
		t.Errorf("custom index out of range produced %v", s)
	}
}

func TestCustom(t *testing.T) {
	custom := []string{"AB", "*"}
	got := sample.Glyph('\x00', stroke.Pt(0, 0), custom)
	want := sample.Named("AB", stroke.Pt(0, 0))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("custom glyph mismatch (-want +got):\n%s", d)
	}
	all := sample.Glyph('\x01', stroke.Pt(0, 0), custom)
	if _, _, closes := countOps(all); closes != 16 {
		t.Errorf("\"*\" lit %d segments, want 16", closes)
	}
}

func TestText(t *testing.T) {
	s := sample.Text("18", stroke.Pt(0, 0))
	want := append(sample.Glyph('1', stroke.Pt(0, 0), nil),
		sample.Glyph('8', stroke.Pt(sample.Advance(), 0), nil)...)
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("text mismatch (-want +got):\n%s", d)
	}
}

func TestConcurrentGlyphs(t *testing.T) {
	want := sample.Glyph('Q', stroke.Pt(0, 0), nil)
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if d := cmp.Diff(want, sample.Glyph('Q', stroke.Pt(0, 0), nil)); d != "" {
					errs <- d
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for d := range errs {
		t.Error(d)
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"inksnek.org/font/plotter"
	"inksnek.org/internal/config"
	"inksnek.org/stroke"
)

func TestDesign(t *testing.T) {
	cfg := config.Default()
	cfg.Font = "plotter"
	cfg.Text = "L\x02L"
	cfg.Paths = []string{"M0 -2 H20"}
	face, err := cfg.Face()
	if err != nil {
		t.Fatal(err)
	}
	got, err := design(cfg, face)
	if err != nil {
		t.Fatal(err)
	}
	l := plotter.Glyph('L', 0)
	var want stroke.Sequence
	want = append(want, l...)
	// The spacing code widens the gap by two units.
	want = append(want, l.Offset(plotter.StdWidth+2, 0)...)
	want = append(want,
		stroke.Node{Op: stroke.MoveTo, P: stroke.Pt(0, -2)},
		stroke.Node{Op: stroke.LineTo, P: stroke.Pt(20, -2)},
	)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("design mismatch (-want +got):\n%s", d)
	}
}

func TestDesignAnnotation(t *testing.T) {
	cfg := config.Default()
	cfg.Font = "annotation"
	cfg.Text = "\x1b-"
	face, err := cfg.Face()
	if err != nil {
		t.Fatal(err)
	}
	got, err := design(cfg, face)
	if err != nil {
		t.Fatal(err)
	}
	// The escape underlines the dash without moving it.
	want := stroke.Sequence{
		{Op: stroke.MoveTo, P: stroke.Pt(0, 2)},
		{Op: stroke.LineTo, P: stroke.Pt(2, 2)},
		{Op: stroke.MoveTo, P: stroke.Pt(0, -1)},
		{Op: stroke.LineTo, P: stroke.Pt(3, -1)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("design mismatch (-want +got):\n%s", d)
	}
}

func TestDocument(t *testing.T) {
	cfg := config.Default()
	cfg.Font = "seg7"
	cfg.Output.Size = 2
	cfg.Output.Class = "heavy-etch"
	face, err := cfg.Face()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Text = "7"
	seq, err := design(cfg, face)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := document(cfg, seq)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	svg := buf.String()
	if n := strings.Count(svg, "<path "); n != 1 {
		t.Errorf("%d paths, want 1:\n%s", n, svg)
	}
	if !strings.Contains(svg, "stroke:#FF0000") {
		t.Errorf("heavy etch color missing:\n%s", svg)
	}
	min, max, ok := doc.Bounds()
	if !ok || max.X-min.X > 2*cfg.Segment.Width+1e-9 || max.Y-min.Y > 2*(cfg.Segment.Height+2*cfg.Segment.Thick)+1e-9 {
		t.Errorf("glyph not scaled to size: %v, %v", min, max)
	}
}

package hpgl

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func design(p *Program) {
	for i := 0; i < 2000; i++ {
		p.Line(image.Pt(i, i*2))
		p.Line(image.Pt(-i*4, i*3))
		p.Move(image.Pt(i, -i))
	}
}

func TestEndToEnd(t *testing.T) {
	s := NewSimulator()
	defer s.Close()

	prog := new(Program)
	design(prog)
	progress := make(chan float32, 1)
	if err := Plot(s, prog, progress, nil); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(prog.Cmds(), s.Cmds); d != "" {
		t.Errorf("plotted commands mismatch (-want +got):\n%s", d)
	}
	if s.Pen != 0 {
		t.Errorf("pen %d left selected", s.Pen)
	}
	if p := <-progress; p != 1 {
		t.Errorf("final progress %g, want 1", p)
	}
}

func TestCancel(t *testing.T) {
	s := NewSimulator()
	defer s.Close()

	quit := make(chan struct{})
	s.OnPosition = func(n int) {
		if n == 2 {
			close(quit)
		}
	}
	prog := new(Program)
	design(prog)
	err := Plot(s, prog, nil, quit)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Plot returned %v, want %v", err, ErrCancelled)
	}
	if got, want := len(s.Cmds), 2*progBatchSize; got != want {
		t.Errorf("plotted %d commands before cancel, want %d", got, want)
	}
	if s.Pen != 0 {
		t.Errorf("pen %d left selected", s.Pen)
	}
}

func TestCancelBeforeStart(t *testing.T) {
	s := NewSimulator()
	defer s.Close()

	quit := make(chan struct{})
	close(quit)
	prog := new(Program)
	design(prog)
	if err := Plot(s, prog, nil, quit); !errors.Is(err, ErrCancelled) {
		t.Fatalf("Plot returned %v, want %v", err, ErrCancelled)
	}
	if len(s.Cmds) != 0 {
		t.Errorf("plotted %d commands after cancel", len(s.Cmds))
	}
}

func TestEmptyProgram(t *testing.T) {
	s := NewSimulator()
	defer s.Close()

	if err := Plot(s, new(Program), nil, nil); err != nil {
		t.Fatal(err)
	}
	if len(s.Cmds) != 0 {
		t.Errorf("empty program plotted %v", s.Cmds)
	}
}

func TestDryRun(t *testing.T) {
	p := &Program{DryRun: true}
	p.Move(image.Pt(1, 1))
	p.Line(image.Pt(2, 2))
	for _, c := range p.Cmds() {
		if c.Down {
			t.Errorf("%v lowers the pen in a dry run", c)
		}
	}
}

func TestWriteTo(t *testing.T) {
	p := &Program{Pen: 2}
	p.Move(image.Pt(0, 0))
	p.Line(image.Pt(Millimeter, 0))
	p.Line(image.Pt(Millimeter, -Millimeter))
	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	want := "IN;SP2;PU0,0;PD40,0;PD40,-40;PU;SP0;\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteTo wrote %q, want %q", got, want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo returned %d, want %d", n, len(want))
	}
}

func TestOutOfRange(t *testing.T) {
	p := new(Program)
	p.Move(image.Pt(0, MaxCoord+1))
	if err := Plot(nil, p, nil, nil); err == nil {
		t.Error("Plot accepted an out of range coordinate")
	}
	if _, err := p.WriteTo(new(bytes.Buffer)); err == nil {
		t.Error("WriteTo accepted an out of range coordinate")
	}
}

func TestTravel(t *testing.T) {
	p := new(Program)
	p.Move(image.Pt(3*Millimeter, 4*Millimeter))
	p.Line(image.Pt(3*Millimeter, 0))
	p.Line(image.Pt(0, 0))
	up, down := p.Travel()
	if math.Abs(up-5) > 1e-6 || math.Abs(down-7) > 1e-6 {
		t.Errorf("Travel() = %g, %g, want 5, 7", up, down)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		reply string
		want  image.Point
		ok    bool
	}{
		{"10,-20,1", image.Pt(10, -20), true},
		{" 0, 0, 0", image.Pt(0, 0), true},
		{"10,20", image.Point{}, false},
		{"x,1,0", image.Point{}, false},
		{"", image.Point{}, false},
	}
	for _, test := range tests {
		got, err := parsePosition(test.reply)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("parsePosition(%q) = %v, %v", test.reply, got, err)
		}
	}
}

func TestSimulatorAbort(t *testing.T) {
	s := NewSimulator()
	defer s.Close()

	// The abort sequence may split an instruction.
	for _, w := range []string{"IN;PD1", "\x1b.K", "2,34;"} {
		if _, err := s.Write([]byte(w)); err != nil {
			t.Fatal(err)
		}
	}
	want := []Cmd{{Down: true, P: image.Pt(12, 34)}}
	if d := cmp.Diff(want, s.Cmds); d != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", d)
	}
	if s.Aborts != 1 {
		t.Errorf("%d aborts, want 1", s.Aborts)
	}
}

func TestLogger(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	s := NewSimulator()
	defer s.Close()
	p := new(Program)
	p.Line(image.Pt(1, 1))
	if err := Plot(s, p, nil, nil); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"id=7475A", "msg=batch", "msg=position"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log is missing %q:\n%s", want, buf.String())
		}
	}
}

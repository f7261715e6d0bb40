// package hpgl drives pen plotters that speak HP-GL, such as the HP
// 7475A and the many vinyl cutters that emulate it.
//
// A Program records pen moves in plotter units. Plot streams it to a
// device in batches, waiting for the plotter to report its position
// after every batch.
package hpgl

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"inksnek.org/affine"
)

const (
	// Millimeter is plotter units per millimeter.
	Millimeter = 40
	// MaxCoord is the largest coordinate magnitude a plotter accepts.
	MaxCoord = 1<<23 - 1
)

// Cmd is a single pen move.
type Cmd struct {
	Down bool
	P    image.Point
}

func (c Cmd) String() string {
	return string(c.append(nil))
}

func (c Cmd) append(buf []byte) []byte {
	if c.Down {
		buf = append(buf, "PD"...)
	} else {
		buf = append(buf, "PU"...)
	}
	buf = strconv.AppendInt(buf, int64(c.P.X), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(c.P.Y), 10)
	return append(buf, ';')
}

// Program implements engrave.Program.
type Program struct {
	// DryRun keeps the pen up for every line.
	DryRun bool
	// Pen selects the pen, or 1 if zero.
	Pen int

	cmds []Cmd
}

func (p *Program) Move(to image.Point) {
	p.cmds = append(p.cmds, Cmd{P: to})
}

func (p *Program) Line(to image.Point) {
	p.cmds = append(p.cmds, Cmd{Down: !p.DryRun, P: to})
}

// Cmds returns the recorded moves.
func (p *Program) Cmds() []Cmd {
	return p.cmds
}

// Travel returns the pen up and pen down distances in millimeters,
// starting from the origin.
func (p *Program) Travel() (up, down float64) {
	var pos image.Point
	for _, c := range p.cmds {
		d := float64(affine.Dist(pos, c.P))
		if c.Down {
			down += d
		} else {
			up += d
		}
		pos = c.P
	}
	return up / Millimeter, down / Millimeter
}

func (p *Program) pen() int {
	if p.Pen == 0 {
		return 1
	}
	return p.Pen
}

func (p *Program) validate() error {
	for i, c := range p.cmds {
		if abs(c.P.X) > MaxCoord || abs(c.P.Y) > MaxCoord {
			return fmt.Errorf("hpgl: command %d: %v out of range", i, c.P)
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (p *Program) selectPen() string {
	return "SP" + strconv.Itoa(p.pen()) + ";"
}

const (
	initCmd = "IN;"
	trailer = "PU;SP0;"
)

// WriteTo writes the complete program as a plot file.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(w)
	var n int64
	wr := func(s []byte) {
		m, _ := bw.Write(s)
		n += int64(m)
	}
	wr([]byte(initCmd + p.selectPen()))
	var buf []byte
	for _, c := range p.cmds {
		buf = c.append(buf[:0])
		wr(buf)
	}
	wr([]byte(trailer + "\n"))
	return n, bw.Flush()
}

// The plotter is asked for its position after every batch.
const progBatchSize = 80

// cmdSize is the longest encoded Cmd.
const cmdSize = len("PD-8388607,-8388607;")

var (
	// abortCmd is the device control sequence that discards the
	// plotter buffer.
	abortCmd = []byte("\x1b.K")
	posCmd   = []byte("OA;")
	idCmd    = []byte("OI;")
)

var ErrCancelled = errors.New("hpgl: cancelled")

// Plot sends prog to dev, reporting the completed fraction on progress
// if it is not nil. Progress must be buffered; a stale value is
// replaced by the newest. Closing quit aborts the plot, lifts the pen and
// makes Plot return ErrCancelled.
func Plot(dev io.ReadWriter, prog *Program, progress chan float32, quit <-chan struct{}) (perr error) {
	if err := prog.validate(); err != nil {
		return err
	}
	log := Logger()
	bufw := bufio.NewWriterSize(dev, progBatchSize*cmdSize+len(posCmd))
	writeMut := make(chan struct{}, 1)
	writeMut <- struct{}{}
	flush := func() {
		<-writeMut
		defer func() { writeMut <- struct{}{} }()
		if perr != nil && perr != ErrCancelled {
			return
		}
		if err := bufw.Flush(); err != nil {
			perr = err
		}
	}
	defer flush()
	wr := func(data []byte) {
		<-writeMut
		defer func() { writeMut <- struct{}{} }()
		if perr != nil && perr != ErrCancelled {
			return
		}
		if _, err := bufw.Write(data); err != nil {
			perr = err
		}
	}
	done := make(chan struct{})
	exited := make(chan struct{})
	defer func() {
		close(done)
		<-exited
	}()
	go func() {
		defer close(exited)
		select {
		case <-quit:
			select {
			case <-writeMut:
			case <-done:
				return
			}
			// Discard whatever the plotter has buffered.
			dev.Write(abortCmd)
			writeMut <- struct{}{}
			<-done
		case <-done:
		}
	}()
	bufr := bufio.NewReaderSize(dev, 100)
	readLine := func() string {
		flush()
		if perr != nil && perr != ErrCancelled {
			return ""
		}
		line, err := bufr.ReadString('\r')
		if err != nil {
			perr = err
			return ""
		}
		return strings.TrimSpace(line)
	}
	position := func() (image.Point, bool) {
		wr(posCmd)
		reply := readLine()
		if perr != nil && perr != ErrCancelled {
			return image.Point{}, false
		}
		pos, err := parsePosition(reply)
		if err != nil {
			perr = err
			return image.Point{}, false
		}
		log.Debug("position", "x", pos.X, "y", pos.Y)
		return pos, true
	}
	cancelled := func() bool {
		select {
		case <-quit:
			return true
		default:
			return false
		}
	}

	wr([]byte(initCmd))
	wr(idCmd)
	id := readLine()
	if perr != nil {
		return perr
	}
	log.Info("plotter", "id", id)
	wr([]byte(prog.selectPen()))

	cmds := prog.cmds
	var buf []byte
	for sent := 0; sent < len(cmds); {
		if cancelled() {
			log.Info("plot cancelled", "sent", sent, "total", len(cmds))
			perr = ErrCancelled
			break
		}
		n := min(progBatchSize, len(cmds)-sent)
		batch := cmds[sent : sent+n]
		for _, c := range batch {
			buf = c.append(buf[:0])
			wr(buf)
		}
		sent += n
		log.Debug("batch", "commands", n, "sent", sent)
		pos, ok := position()
		if !ok {
			return perr
		}
		if want := batch[n-1].P; pos != want {
			return fmt.Errorf("hpgl: plotter at %v after batch, want %v", pos, want)
		}
		if progress != nil {
			select {
			case <-progress:
			default:
			}
			progress <- float32(sent) / float32(len(cmds))
		}
	}
	// Park the pen, also after a cancel.
	wr([]byte(trailer))
	position()
	return perr
}

// parsePosition parses an "x,y,pen" reply to OA.
func parsePosition(reply string) (image.Point, error) {
	fields := strings.Split(reply, ",")
	if len(fields) != 3 {
		return image.Point{}, fmt.Errorf("hpgl: invalid position reply %q", reply)
	}
	var coords [2]int
	for i := range coords {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return image.Point{}, fmt.Errorf("hpgl: invalid position reply %q: %w", reply, err)
		}
		coords[i] = v
	}
	return image.Pt(coords[0], coords[1]), nil
}

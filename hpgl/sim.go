package hpgl

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Simulator is an in-memory plotter for testing Plot.
type Simulator struct {
	// Model is the reply to OI.
	Model string
	// OnPosition, if set, is called with the number of position
	// queries so far before each reply.
	OnPosition func(n int)

	Cmds   []Cmd
	Pen    int
	Aborts int

	pos       image.Point
	down      bool
	queries   int
	pending   []byte
	output    []byte
	closeChan chan struct{}
	in        chan ioRequest
	out       chan ioResult
}

func NewSimulator() *Simulator {
	sim := &Simulator{
		Model:     "7475A",
		closeChan: make(chan struct{}),
		in:        make(chan ioRequest),
		out:       make(chan ioResult),
	}
	go sim.run()
	return sim
}

type ioRequest struct {
	write bool
	data  []byte
}

type ioResult struct {
	bytes int
	err   error
}

func (s *Simulator) run() {
	for {
		select {
		case <-s.closeChan:
			s.closeChan <- struct{}{}
			return
		case r := <-s.in:
			var n int
			var err error
			if r.write {
				n, err = s.doWrite(r.data)
			} else {
				n, err = s.doRead(r.data)
			}
			s.out <- ioResult{n, err}
		}
	}
}

func (s *Simulator) doRead(data []byte) (int, error) {
	if len(s.output) == 0 {
		return 0, errors.New("sim: read with no pending reply")
	}
	n := copy(data, s.output)
	s.output = s.output[n:]
	return n, nil
}

func (s *Simulator) doWrite(data []byte) (int, error) {
	n := len(data)
	// Device control sequences are handled out of band, even in the
	// middle of an instruction.
	for {
		i := bytes.IndexByte(data, 0x1b)
		if i == -1 {
			break
		}
		if i+2 >= len(data) || data[i+1] != '.' {
			return 0, errors.New("sim: truncated device control sequence")
		}
		switch data[i+2] {
		case 'K':
			s.Aborts++
		default:
			return 0, fmt.Errorf("sim: unknown device control %q", data[i+2])
		}
		data = append(data[:i:i], data[i+3:]...)
	}
	s.pending = append(s.pending, data...)
	for {
		end := bytes.IndexByte(s.pending, ';')
		if end == -1 {
			break
		}
		inst := strings.TrimSpace(string(s.pending[:end]))
		s.pending = s.pending[end+1:]
		if err := s.execute(inst); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (s *Simulator) execute(inst string) error {
	if len(inst) < 2 {
		return fmt.Errorf("sim: invalid instruction %q", inst)
	}
	mnemonic, args := inst[:2], inst[2:]
	switch mnemonic {
	case "IN":
		s.pos = image.Point{}
		s.down = false
		s.Pen = 0
	case "OI":
		s.output = append(s.output, s.Model+"\r"...)
	case "OA":
		s.queries++
		if s.OnPosition != nil {
			s.OnPosition(s.queries)
		}
		pen := 0
		if s.down {
			pen = 1
		}
		s.output = fmt.Appendf(s.output, "%d,%d,%d\r", s.pos.X, s.pos.Y, pen)
	case "SP":
		pen := 0
		if args != "" {
			v, err := strconv.Atoi(args)
			if err != nil {
				return fmt.Errorf("sim: invalid pen %q", inst)
			}
			pen = v
		}
		s.Pen = pen
	case "PU", "PD":
		s.down = mnemonic == "PD"
		if args == "" {
			break
		}
		coords := strings.Split(args, ",")
		if len(coords)%2 != 0 {
			return fmt.Errorf("sim: odd coordinate count in %q", inst)
		}
		for i := 0; i < len(coords); i += 2 {
			x, errx := strconv.Atoi(coords[i])
			y, erry := strconv.Atoi(coords[i+1])
			if errx != nil || erry != nil {
				return fmt.Errorf("sim: invalid coordinates in %q", inst)
			}
			s.pos = image.Pt(x, y)
			s.Cmds = append(s.Cmds, Cmd{Down: s.down, P: s.pos})
		}
	default:
		return fmt.Errorf("sim: unknown instruction %q", inst)
	}
	return nil
}

func (s *Simulator) Read(data []byte) (int, error) {
	s.in <- ioRequest{false, data}
	r := <-s.out
	return r.bytes, r.err
}

func (s *Simulator) Write(data []byte) (int, error) {
	// The caller may reuse data.
	s.in <- ioRequest{true, append([]byte(nil), data...)}
	r := <-s.out
	return r.bytes, r.err
}

func (s *Simulator) Close() error {
	s.closeChan <- struct{}{}
	<-s.closeChan
	return nil
}

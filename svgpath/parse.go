package svgpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse parses path data using the commands of this package. Numbers
// may be separated by commas or white space, and coordinates repeated
// after a command repeat it, with moves continuing as lines.
func Parse(d string) (Path, error) {
	s := &scanner{src: d}
	var p Path
	var op Op
	for {
		s.skipSpace()
		if s.eof() {
			break
		}
		if c := s.src[s.pos]; isCommand(c) {
			op = Op(c)
			s.pos++
			if op == Close || op == 'Z' {
				p.Close()
				op = 0
				continue
			}
		} else if op == 0 {
			return nil, fmt.Errorf("svgpath: offset %d: expected command, got %q", s.pos, c)
		}
		switch op {
		case MoveTo, LineTo, MoveBy, LineBy:
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			p = append(p, Cmd{op, x, y})
			switch op {
			case MoveTo:
				op = LineTo
			case MoveBy:
				op = LineBy
			}
		case HorzTo, HorzBy:
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			p = append(p, Cmd{Op: op, X: x})
		case VertTo, VertBy:
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			p = append(p, Cmd{Op: op, Y: y})
		}
	}
	return p, nil
}

func isCommand(c byte) bool {
	switch Op(c) {
	case MoveTo, LineTo, MoveBy, LineBy, HorzTo, VertTo, HorzBy, VertBy, Close, 'Z':
		return true
	}
	return false
}

type scanner struct {
	src string
	pos int
}

var errEOF = errors.New("svgpath: unexpected end of path data")

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) skipSpace() {
	for !s.eof() && strings.IndexByte(" \t\r\n,", s.src[s.pos]) != -1 {
		s.pos++
	}
}

func (s *scanner) number() (float64, error) {
	s.skipSpace()
	if s.eof() {
		return 0, errEOF
	}
	start := s.pos
	if c := s.src[s.pos]; c == '-' || c == '+' {
		s.pos++
	}
	dot := false
	for !s.eof() {
		c := s.src[s.pos]
		if c == '.' && !dot {
			dot = true
		} else if c < '0' || c > '9' {
			break
		}
		s.pos++
	}
	// Exponent.
	if !s.eof() && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		s.pos++
		if !s.eof() && (s.src[s.pos] == '-' || s.src[s.pos] == '+') {
			s.pos++
		}
		for !s.eof() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
			s.pos++
		}
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("svgpath: offset %d: invalid number %q", start, s.src[start:s.pos])
	}
	return v, nil
}

package stroke

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON encodes s in the node list form understood by the
// drawing layer: [[x,y]] is a move, [x,y] a line and [] a close.
func (s Sequence) MarshalJSON() ([]byte, error) {
	buf := []byte{'['}
	for i, n := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		switch n.Op {
		case MoveTo:
			buf = append(buf, '[')
			buf = appendPair(buf, n.P)
			buf = append(buf, ']')
		case LineTo:
			buf = appendPair(buf, n.P)
		case Close:
			buf = append(buf, '[', ']')
		default:
			return nil, fmt.Errorf("stroke: invalid op %v", n.Op)
		}
	}
	return append(buf, ']'), nil
}

func appendPair(buf []byte, p Point) []byte {
	buf = append(buf, '[')
	buf = strconv.AppendFloat(buf, p.X, 'g', -1, 64)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
	return append(buf, ']')
}

func (s *Sequence) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	seq := make(Sequence, 0, len(raw))
	for i, r := range raw {
		var elems []json.RawMessage
		if err := json.Unmarshal(r, &elems); err != nil {
			return fmt.Errorf("stroke: node %d: %w", i, err)
		}
		switch len(elems) {
		case 0:
			seq = append(seq, Node{Op: Close})
		case 1:
			p, err := unmarshalPoint(elems[0])
			if err != nil {
				return fmt.Errorf("stroke: node %d: %w", i, err)
			}
			seq = append(seq, Node{Op: MoveTo, P: p})
		case 2:
			p, err := unmarshalPoint(r)
			if err != nil {
				return fmt.Errorf("stroke: node %d: %w", i, err)
			}
			seq = append(seq, Node{Op: LineTo, P: p})
		default:
			return fmt.Errorf("stroke: node %d: %d elements", i, len(elems))
		}
	}
	*s = seq
	return nil
}

// unmarshalPoint decodes an [x,y] pair, rejecting any other number of
// coordinates.
func unmarshalPoint(data []byte) (Point, error) {
	var xy []float64
	if err := json.Unmarshal(data, &xy); err != nil {
		return Point{}, err
	}
	if len(xy) != 2 {
		return Point{}, fmt.Errorf("point has %d coordinates", len(xy))
	}
	return Point{xy[0], xy[1]}, nil
}

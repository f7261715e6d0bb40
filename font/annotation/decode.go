// Package annotation implements a compact stroke font for labelling
// drawings, together with an escape layer that changes the size,
// position and style of the text as it is rendered.
//
// Every glyph is packed into a 32-bit word of eight 4-bit commands,
// most significant first. The low three bits of a command select a
// vertex of a 3×3 grid and the high bit selects drawing over moving:
//
//	move:    draw:
//	5 6 7    D E F
//	3 X 4    B   C
//	0 1 2    8 9 A
//
// A glyph starting with a draw starts from vertex 0. Two consecutive
// moves to vertex 0 are a move to the centre X. A draw to the vertex
// the previous command ended at marks a dot. Trailing moves to vertex 0
// are ignored. If the last command is a move, it is not drawn but
// selects a transform: 1 halves the height, 2 and 3 lower the glyph by
// a half and a quarter of its height, and bit 2 adds a dot above the
// centre.
package annotation

import "fmt"

// Vertex is a node of the glyph grid.
type Vertex uint8

const (
	BottomLeft Vertex = iota
	Bottom
	BottomRight
	Left
	Right
	TopLeft
	Top
	TopRight
	Centre
)

// Grid returns the grid position of v, with (0, 0) at the bottom left
// and (2, 2) at the top right.
func (v Vertex) Grid() (x, y int) {
	if v == Centre {
		return 1, 1
	}
	x = int(0x21020210>>(v*4)) & 0xf
	y = int(0x22211000>>(v*4)) & 0xf
	return x, y
}

type OpKind uint8

const (
	OpMove OpKind = iota
	OpLine
	// OpDot is a zero length line marked by a small box.
	OpDot
)

type Op struct {
	Kind OpKind
	V    Vertex
}

func (o Op) String() string {
	switch o.Kind {
	case OpMove:
		return fmt.Sprintf("Move(%d)", o.V)
	case OpLine:
		return fmt.Sprintf("Line(%d)", o.V)
	case OpDot:
		return fmt.Sprintf("Dot(%d)", o.V)
	}
	return fmt.Sprintf("Op(%d, %d)", o.Kind, o.V)
}

// Transform adjusts the vertical placement of a glyph.
type Transform uint8

const (
	TransformNone Transform = iota
	// HalfHeight squeezes the glyph into the lower half of the grid.
	HalfHeight
	// DropHalf lowers the glyph by half its height.
	DropHalf
	// DropQuarter lowers the glyph by a quarter of its height.
	DropQuarter
)

// Glyph is a decoded glyph.
type Glyph struct {
	Ops       []Op
	Transform Transform
	// MidDot adds a dot above the centre.
	MidDot bool
}

const (
	drawBit    = 0x8
	vertexMask = 0x7
)

// Decode unpacks a glyph word.
func Decode(packed uint32) Glyph {
	var g Glyph
	if packed&0xf <= 0x7 {
		g.Transform = Transform(packed & 0x3)
		g.MidDot = packed&0x4 != 0
		packed &^= 0xf
	}
	prev := -1
	for i := range 8 {
		nibble := int(packed >> 28)
		packed <<= 4
		v := Vertex(nibble & vertexMask)
		if nibble&drawBit != 0 {
			if i == 0 {
				g.Ops = append(g.Ops, Op{OpMove, BottomLeft})
			}
			kind := OpLine
			if prev != -1 && v == Vertex(prev&vertexMask) {
				kind = OpDot
			}
			g.Ops = append(g.Ops, Op{kind, v})
		} else {
			if nibble == 0 && prev == 0 {
				v = Centre
			}
			if packed == 0 {
				break
			}
			g.Ops = append(g.Ops, Op{OpMove, v})
		}
		prev = nibble
	}
	return g
}

const fallback = '?'

// Lookup returns the packed glyph for r, or the glyph for '?' if the
// font has none.
func Lookup(r rune) uint32 {
	if idx := int(r) - ' '; idx >= 0 && idx < len(glyphs) {
		return glyphs[idx]
	}
	return glyphs[fallback-' ']
}

// Defined reports whether r has a glyph of its own.
func Defined(r rune) bool {
	return r >= ' ' && int(r)-' ' < len(glyphs)
}

// package fontpack compiles a stroke font into a compact CBOR file of
// node lists, for firmware and other tools that cannot run the glyph
// generators. A decoded Pack is itself a font.Face.
package fontpack

import (
	"errors"
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"inksnek.org/font"
	"inksnek.org/stroke"
)

// Version is the current pack format.
const Version = 1

type Pack struct {
	Version int     `cbor:"1,keyasint"`
	Name    string  `cbor:"2,keyasint,omitempty"`
	Ascent  float64 `cbor:"3,keyasint"`
	Height  float64 `cbor:"4,keyasint"`
	// Glyphs are sorted by rune.
	Glyphs []Glyph `cbor:"5,keyasint"`
}

type Glyph struct {
	_       struct{} `cbor:",toarray"`
	Rune    rune
	Advance float64
	Nodes   []Node
}

// Node is the wire form of a stroke.Node.
type Node struct {
	_  struct{} `cbor:",toarray"`
	Op stroke.Op
	X  float64
	Y  float64
}

// Build compiles the glyphs of f for every rune in runes. Runes
// missing from f are left out.
func Build(name string, f font.Face, runes []rune) *Pack {
	m := f.Metrics()
	p := &Pack{
		Version: Version,
		Name:    name,
		Ascent:  m.Ascent,
		Height:  m.Height,
	}
	runes = slices.Clone(runes)
	slices.Sort(runes)
	runes = slices.Compact(runes)
	for _, r := range runes {
		adv, seq, found := f.Decode(r)
		if !found {
			continue
		}
		g := Glyph{Rune: r, Advance: adv}
		for _, n := range seq {
			g.Nodes = append(g.Nodes, Node{Op: n.Op, X: n.P.X, Y: n.P.Y})
		}
		p.Glyphs = append(p.Glyphs, g)
	}
	return p
}

// Range returns the runes from first to last inclusive.
func Range(first, last rune) []rune {
	var runes []rune
	for r := first; r <= last; r++ {
		runes = append(runes, r)
	}
	return runes
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	encMode = em
	dm, err := cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	decMode = dm
}

// Encode returns the deterministic CBOR encoding of p.
func (p *Pack) Encode() ([]byte, error) {
	return encMode.Marshal(p)
}

// Decode parses and validates an encoded pack.
func Decode(data []byte) (*Pack, error) {
	p := new(Pack)
	if err := decMode.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("fontpack: %w", err)
	}
	if p.Version != Version {
		return nil, fmt.Errorf("fontpack: unsupported version %d", p.Version)
	}
	for i, g := range p.Glyphs {
		if i > 0 && p.Glyphs[i-1].Rune >= g.Rune {
			return nil, fmt.Errorf("fontpack: glyph %q out of order", g.Rune)
		}
		if err := g.Sequence().Validate(); err != nil {
			return nil, fmt.Errorf("fontpack: glyph %q: %w", g.Rune, err)
		}
	}
	return p, nil
}

var errNoGlyph = errors.New("fontpack: no such glyph")

// Sequence converts the nodes of g.
func (g Glyph) Sequence() stroke.Sequence {
	if len(g.Nodes) == 0 {
		return nil
	}
	seq := make(stroke.Sequence, len(g.Nodes))
	for i, n := range g.Nodes {
		seq[i] = stroke.Node{Op: n.Op, P: stroke.Pt(n.X, n.Y)}
		if n.Op == stroke.Close {
			seq[i].P = stroke.Point{}
		}
	}
	return seq
}

// Glyph returns the glyph for r.
func (p *Pack) Glyph(r rune) (Glyph, error) {
	i, ok := slices.BinarySearchFunc(p.Glyphs, r, func(g Glyph, r rune) int {
		return int(g.Rune - r)
	})
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q", errNoGlyph, r)
	}
	return p.Glyphs[i], nil
}

// Decode implements font.Face. Missing glyphs advance by the width of
// the space glyph, if any.
func (p *Pack) Decode(ch rune) (float64, stroke.Sequence, bool) {
	g, err := p.Glyph(ch)
	if err != nil {
		if sp, err := p.Glyph(' '); err == nil {
			return sp.Advance, nil, false
		}
		return 0, nil, false
	}
	return g.Advance, g.Sequence(), true
}

func (p *Pack) Metrics() font.Metrics {
	return font.Metrics{Ascent: p.Ascent, Height: p.Height}
}

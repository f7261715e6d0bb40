// Package config loads design files: TOML documents that choose a
// font, its parameters and the output settings of the commands.
//
//	font = "seg14"
//	text = "INKSNEK"
//
//	[segment]
//	width = 4
//	height = 8
//	thick = 0.5
//
//	[output]
//	size = 1.5
//	mode = "final"
//	class = "heavy-etch"
//
// Paths adds outlines in SVG path data to the text, in the same grid
// units with y pointing up:
//
//	paths = ["M-2 -2 H30 V10 H-2 z"]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"inksnek.org/font"
	"inksnek.org/font/annotation"
	"inksnek.org/font/segment"
	"inksnek.org/internal/svgdoc"
	"inksnek.org/svgpath"
)

type Config struct {
	// Font is one of seg7, seg14, seg16, plotter or annotation.
	Font       string     `toml:"font"`
	Text       string     `toml:"text"`
	Paths      []string   `toml:"paths,omitempty"`
	Segment    Segment    `toml:"segment"`
	Plotter    Plotter    `toml:"plotter"`
	Annotation Annotation `toml:"annotation"`
	Output     Output     `toml:"output"`
	Plot       Plot       `toml:"plot"`
}

// Segment parameters are in grid units.
type Segment struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Skew   float64 `toml:"skew"`
	Gap    float64 `toml:"gap"`
	Thick  float64 `toml:"thick"`
}

type Plotter struct {
	Slant float64 `toml:"slant"`
}

// Annotation anchors annotation text at the origin.
type Annotation struct {
	// Align is left, centre or right.
	Align  string `toml:"align"`
	// Anchor is base, top or mid.
	Anchor string `toml:"anchor"`
}

type Output struct {
	// Size is millimeters per grid unit.
	Size       float64 `toml:"size"`
	LineHeight float64 `toml:"line_height"`
	Margin     float64 `toml:"margin"`
	Mode       string  `toml:"mode"`
	Class      string  `toml:"class"`
	// Unit is the unit of the SVG width and height, such as mm or in.
	Unit       string  `toml:"unit"`
}

type Plot struct {
	Device string `toml:"device"`
	Pen    int    `toml:"pen"`
}

// Default returns the settings used for anything a design file leaves
// out.
func Default() Config {
	return Config{
		Font: "seg14",
		Segment: Segment{
			Width:  4,
			Height: 8,
			Gap:    0.25,
			Thick:  0.5,
		},
		Annotation: Annotation{
			Align:  "left",
			Anchor: "base",
		},
		Output: Output{
			Size:       1,
			LineHeight: 1,
			Margin:     2,
			Mode:       "final",
			Class:      "cut",
			Unit:       "mm",
		},
		Plot: Plot{Pen: 1},
	}
}

// Load reads a design file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a design. Unknown keys are errors.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return Config{}, fmt.Errorf("config: %s", serr.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("config: %d:%d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func (c Config) Validate() error {
	if _, err := c.Face(); err != nil {
		return err
	}
	if _, err := svgdoc.ParseMode(c.Output.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Class(); err != nil {
		return err
	}
	if _, err := c.Align(); err != nil {
		return err
	}
	if c.Output.Size <= 0 {
		return fmt.Errorf("config: output size %g is not positive", c.Output.Size)
	}
	if c.Output.LineHeight <= 0 {
		return fmt.Errorf("config: line height %g is not positive", c.Output.LineHeight)
	}
	if _, err := svgpath.Unit(c.Output.Unit); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Outlines(); err != nil {
		return err
	}
	return nil
}

// Outlines parses the extra paths of the design.
func (c Config) Outlines() ([]svgpath.Path, error) {
	var paths []svgpath.Path
	for i, d := range c.Paths {
		p, err := svgpath.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("config: path %d: %w", i, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

var (
	alignments = map[string]annotation.Align{
		"left":   annotation.AlignLeft,
		"centre": annotation.AlignCentre,
		"right":  annotation.AlignRight,
	}
	anchors = map[string]annotation.Align{
		"base": annotation.AlignBase,
		"top":  annotation.AlignTop,
		"mid":  annotation.AlignMid,
	}
)

// Align returns the anchor of annotation text.
func (c Config) Align() (annotation.Align, error) {
	h, ok := alignments[c.Annotation.Align]
	if !ok {
		return 0, fmt.Errorf("config: unknown alignment %q", c.Annotation.Align)
	}
	v, ok := anchors[c.Annotation.Anchor]
	if !ok {
		return 0, fmt.Errorf("config: unknown anchor %q", c.Annotation.Anchor)
	}
	return h | v, nil
}

// Face returns the configured font.
func (c Config) Face() (font.Face, error) {
	s := c.Segment
	seg := func(n int) (font.Face, error) {
		if s.Width <= 0 || s.Height <= 0 || s.Thick < 0 || s.Gap < 0 {
			return nil, fmt.Errorf("config: invalid segment parameters %+v", s)
		}
		return font.Segment{Font: segment.Font{
			Segments: n,
			Width:    s.Width,
			Height:   s.Height,
			Skew:     s.Skew,
			Gap:      s.Gap,
			Thick:    s.Thick,
		}}, nil
	}
	switch c.Font {
	case "seg7":
		return seg(7)
	case "seg14":
		return seg(14)
	case "seg16":
		return seg(16)
	case "plotter":
		return font.Plotter{Slant: c.Plotter.Slant}, nil
	case "annotation":
		a, err := c.Align()
		if err != nil {
			return nil, err
		}
		return font.Annotation{Align: a}, nil
	}
	return nil, fmt.Errorf("config: unknown font %q", c.Font)
}

var classes = map[string]svgdoc.Class{
	"cut":         svgdoc.Cut,
	"light-etch":  svgdoc.LightEtch,
	"medium-etch": svgdoc.MediumEtch,
	"heavy-etch":  svgdoc.HeavyEtch,
	"light-fill":  svgdoc.LightFill,
	"medium-fill": svgdoc.MediumFill,
	"heavy-fill":  svgdoc.HeavyFill,
	"ignore":      svgdoc.Ignore,
}

// Class returns the configured element class.
func (c Config) Class() (svgdoc.Class, error) {
	cl, ok := classes[c.Output.Class]
	if !ok {
		return 0, fmt.Errorf("config: unknown class %q", c.Output.Class)
	}
	return cl, nil
}

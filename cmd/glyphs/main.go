// Command glyphs renders text in one of the stroke fonts as a laser
// cutter SVG, a PNG preview, JSON node lists or a compiled font pack.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"inksnek.org/engrave"
	"inksnek.org/font"
	"inksnek.org/fontpack"
	"inksnek.org/internal/config"
	"inksnek.org/internal/svgdoc"
	"inksnek.org/stroke"
	"inksnek.org/svgpath"
)

var (
	configFile = flag.String("config", "", "design file")
	fontName   = flag.String("font", "", "font: seg7, seg14, seg16, plotter or annotation")
	loadPack   = flag.String("load", "", "use a compiled font pack instead of -font")
	size       = flag.Float64("size", 0, "millimeters per grid unit")
	mode       = flag.String("mode", "", "svg mode: devel, final, real, print or proto")
	class      = flag.String("class", "", "svg element class, such as cut or heavy-etch")
	output     = flag.String("o", "", "write svg to file instead of standard output")
	pngOut     = flag.String("png", "", "write a png preview to file")
	jsonOut    = flag.String("json", "", "write the node list as json to file")
	packOut    = flag.String("pack", "", "compile the font from ' ' to '~' into a font pack file")
	pathData   = flag.String("path", "", "add an outline in svg path data, in grid units with y up")
	verbose    = flag.Bool("v", false, "verbose output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: glyphs [flags] [text]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "glyphs: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the design file and applies the flags that were
// set on top of it.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		c, err := config.Load(*configFile)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "font":
			cfg.Font = *fontName
		case "size":
			cfg.Output.Size = *size
		case "mode":
			cfg.Output.Mode = *mode
		case "class":
			cfg.Output.Class = *class
		case "path":
			cfg.Paths = append(cfg.Paths, *pathData)
		}
	})
	if flag.NArg() > 0 {
		cfg.Text = strings.Join(flag.Args(), " ")
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	face, err := cfg.Face()
	if err != nil {
		return err
	}
	name := cfg.Font
	if *loadPack != "" {
		data, err := os.ReadFile(*loadPack)
		if err != nil {
			return err
		}
		p, err := fontpack.Decode(data)
		if err != nil {
			return fmt.Errorf("%s: %w", *loadPack, err)
		}
		face, name = p, p.Name
	}
	slog.Debug("font", "name", name, "text", cfg.Text)
	seq, err := design(cfg, face)
	if err != nil {
		return err
	}

	if *packOut != "" {
		enc, err := fontpack.Build(name, face, fontpack.Range(' ', '~')).Encode()
		if err != nil {
			return err
		}
		if err := os.WriteFile(*packOut, enc, 0o644); err != nil {
			return err
		}
		slog.Debug("wrote font pack", "file", *packOut, "bytes", len(enc))
	}
	if *jsonOut != "" {
		enc, err := json.Marshal(seq)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*jsonOut, append(enc, '\n'), 0o644); err != nil {
			return err
		}
	}
	if *pngOut != "" {
		if err := writePNG(*pngOut, seq, cfg.Output.Size); err != nil {
			return err
		}
	}
	// Write svg unless another output was asked for.
	if *output == "" && (*packOut != "" || *jsonOut != "" || *pngOut != "") {
		return nil
	}
	doc, err := document(cfg, seq)
	if err != nil {
		return err
	}
	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err = doc.WriteTo(w)
	return err
}

// design lays out the text and adds the outlines of the design, all
// in grid units.
func design(cfg config.Config, face font.Face) (stroke.Sequence, error) {
	var b stroke.Builder
	b.Append(font.LayoutLines(face, cfg.Text, cfg.Output.LineHeight))
	outlines, err := cfg.Outlines()
	if err != nil {
		return nil, err
	}
	for _, p := range outlines {
		b.Append(p.Sequence())
	}
	return b.Sequence(), nil
}

func document(cfg config.Config, seq stroke.Sequence) (*svgdoc.Document, error) {
	m, err := svgdoc.ParseMode(cfg.Output.Mode)
	if err != nil {
		return nil, err
	}
	cl, err := cfg.Class()
	if err != nil {
		return nil, err
	}
	doc := &svgdoc.Document{Mode: m, Margin: cfg.Output.Margin, Unit: cfg.Output.Unit}
	var p svgpath.Path
	s := cfg.Output.Size
	p.AppendShape(0, 0, s, s, seq)
	doc.Path(cl, p)
	return doc, nil
}

func writePNG(name string, seq stroke.Sequence, size float64) error {
	const (
		// Pixels per millimeter.
		ppmm = 10
		// Machine units per millimeter.
		unitsPerMM = 100
		// Pen width in millimeters.
		penWidth = 0.3
	)
	cmd := engrave.Strokes(seq, float32(size*unitsPerMM))
	img := engrave.Preview(cmd, float32(ppmm)/unitsPerMM, penWidth*ppmm)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return err
	}
	return os.WriteFile(name, buf.Bytes(), 0o644)
}

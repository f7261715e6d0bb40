// Command drill reads the holes of Excellon drill files, or of the
// drill files in fabrication zip archives, and lists them or writes
// them as circles to cut.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"inksnek.org/drill"
	"inksnek.org/internal/svgdoc"
)

var (
	output    = flag.String("o", "", "write an svg of the holes to file")
	mode      = flag.String("mode", "final", "svg mode: devel, final, real, print or proto")
	margin    = flag.Float64("margin", 2, "svg margin in millimeters")
	clearance = flag.Float64("clearance", 0, "enlarge every hole diameter by this many millimeters")
	unit      = flag.String("unit", "mm", "unit of the svg width and height: mm, cm, in, pt, pc or px")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: drill [flags] file.drl|file.zip...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	var holes []drill.Hole
	for _, name := range flag.Args() {
		h, err := drill.Read(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		holes = append(holes, h...)
	}
	for i := range holes {
		holes[i].D += *clearance
	}
	if *output == "" {
		list(os.Stdout, holes)
		return
	}
	if err := writeSVG(*output, holes); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func list(w io.Writer, holes []drill.Hole) {
	for _, h := range holes {
		fmt.Fprintf(w, "%.3f\t%.3f\t%.3f\n", h.X, h.Y, h.D)
	}
}

func writeSVG(name string, holes []drill.Hole) error {
	m, err := svgdoc.ParseMode(*mode)
	if err != nil {
		return err
	}
	doc := &svgdoc.Document{Mode: m, Margin: *margin, Unit: *unit}
	for _, h := range holes {
		doc.Circle(svgdoc.Cut, h.X, h.Y, h.D/2)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

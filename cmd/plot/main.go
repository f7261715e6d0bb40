// Command plot draws text, and optionally a QR code, with an HP-GL
// pen plotter on a serial port.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kortschak/qr"
	"inksnek.org/engrave"
	"inksnek.org/hpgl"
	"inksnek.org/internal/config"
)

var (
	configFile = flag.String("config", "", "design file")
	serialDev  = flag.String("device", "", "serial device")
	dryrun     = flag.Bool("n", false, "dry run: write HP-GL to standard output")
	penUp      = flag.Bool("up", false, "keep the pen up")
	fontName   = flag.String("font", "", "font: seg7, seg14, seg16, plotter or annotation")
	size       = flag.Float64("size", 0, "millimeters per grid unit")
	pen        = flag.Int("pen", 0, "pen number")
	qrText     = flag.String("qr", "", "plot a QR code of this text below the text")
	qrModule   = flag.Float64("qrmodule", 1, "QR module size in millimeters")
	pathData   = flag.String("path", "", "add an outline in svg path data, in grid units with y up")
	verbose    = flag.Bool("v", false, "verbose output")
)

// penWidth is the width of a plotter pen in millimeters.
const penWidth = 0.3

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: plot [flags] [text]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *verbose {
		hpgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	cfg := config.Default()
	if *configFile != "" {
		c, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		cfg = c
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "font":
			cfg.Font = *fontName
		case "size":
			cfg.Output.Size = *size
		case "device":
			cfg.Plot.Device = *serialDev
		case "pen":
			cfg.Plot.Pen = *pen
		case "path":
			cfg.Paths = append(cfg.Paths, *pathData)
		}
	})
	if flag.NArg() > 0 {
		cfg.Text = strings.Join(flag.Args(), " ")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	design, err := genDesign(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	prog := &hpgl.Program{
		DryRun: *penUp,
		Pen:    cfg.Plot.Pen,
	}
	design.Engrave(prog)
	up, down := prog.Travel()
	fmt.Fprintf(os.Stderr, "%d commands, %.0f mm pen up, %.0f mm pen down\n", len(prog.Cmds()), up, down)
	if *dryrun {
		if _, err := prog.WriteTo(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := plot(cfg.Plot.Device, prog); err != nil {
		fmt.Fprintf(os.Stderr, "failed to plot: %v\n", err)
		os.Exit(1)
	}
}

// genDesign lays out the text with its top left corner at the origin,
// adds the outlines and puts the QR code below everything, then moves
// the drawing into the positive quadrant.
func genDesign(cfg config.Config) (engrave.Command, error) {
	face, err := cfg.Face()
	if err != nil {
		return nil, err
	}
	em := float32(cfg.Output.Size * hpgl.Millimeter)
	txt := engrave.String(face, em, cfg.Text)
	txt.LineHeight = float32(cfg.Output.LineHeight)
	ascent := int(face.Metrics().Ascent * float64(em))
	cmds := engrave.Commands{engrave.Offset(0, -ascent, txt)}
	outlines, err := cfg.Outlines()
	if err != nil {
		return nil, err
	}
	for _, p := range outlines {
		cmds = append(cmds, engrave.Offset(0, -ascent, engrave.Path(p, em)))
	}
	if *qrText != "" {
		code, err := qr.Encode(*qrText, qr.M)
		if err != nil {
			return nil, fmt.Errorf("qr: %w", err)
		}
		strokeWidth := int(penWidth * hpgl.Millimeter)
		scale := max(1, int(*qrModule/penWidth))
		gap := int(2 * hpgl.Millimeter)
		top := engrave.Bounds(cmds).Min.Y - gap
		side := code.Size * scale * strokeWidth
		cmds = append(cmds, engrave.Offset(0, top-side, engrave.QR(strokeWidth, scale, code)))
	}
	b := engrave.Bounds(cmds)
	return engrave.Offset(-b.Min.X, -b.Min.Y, cmds), nil
}

func plot(dev string, prog *hpgl.Program) error {
	s, err := hpgl.Open(dev)
	if err != nil {
		return err
	}
	defer s.Close()

	quit := make(chan os.Signal, 1)
	cancel := make(chan struct{})
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	plotErr := make(chan error, 1)
	go func() {
		<-quit
		signal.Reset(os.Interrupt)
		close(cancel)
	}()
	progress := make(chan float32, 1)
	go func() {
		plotErr <- hpgl.Plot(s, prog, progress, cancel)
		close(progress)
	}()
	for p := range progress {
		fmt.Fprintf(os.Stderr, "\r%3.0f%%", p*100)
	}
	fmt.Fprintln(os.Stderr)
	return <-plotErr
}

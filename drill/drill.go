// package drill reads the holes of metric Excellon drill files, as
// written by PCB tools such as EasyEDA, for cutting mounting holes and
// connector openings in enclosures.
package drill

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path"
	"strconv"
	"strings"
)

// Unit is the size in millimeters of one coordinate step.
const Unit = 0.001

// Hole is a drilled hole in millimeters.
type Hole struct {
	X, Y float64
	// D is the diameter.
	D float64
}

// Parse reads the holes of a drill file. Tool definitions (TnnCd.ddd)
// give diameters in millimeters, tool selections (Tnn) apply to the
// following coordinates (XnnnYnnn). A coordinate may omit an axis to
// keep its previous value. Header and control lines are ignored.
func Parse(r io.Reader) ([]Hole, error) {
	s := bufio.NewScanner(r)
	diameters := make(map[int]float64)
	tool := -1
	var x, y int
	var holes []Hole
	lineno := 0
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == ';' {
			continue
		}
		errorf := func(format string, args ...any) error {
			return fmt.Errorf("drill: line %d: %s", lineno, fmt.Sprintf(format, args...))
		}
		switch line[0] {
		case 'T':
			num, rest := splitInt(line[1:])
			if num == "" {
				return nil, errorf("invalid tool %q", line)
			}
			t, err := strconv.Atoi(num)
			if err != nil {
				return nil, errorf("invalid tool %q", line)
			}
			if rest == "" {
				if _, ok := diameters[t]; !ok && t != 0 {
					return nil, errorf("undefined tool %d", t)
				}
				tool = t
				if t == 0 {
					tool = -1
				}
				continue
			}
			if rest[0] != 'C' {
				// Feeds and speeds (TnnFnnSnn) without a diameter.
				continue
			}
			d, err := strconv.ParseFloat(rest[1:], 64)
			if err != nil || !(d > 0) || math.IsInf(d, 1) {
				return nil, errorf("invalid diameter %q", rest[1:])
			}
			diameters[t] = d
		case 'X', 'Y':
			if tool == -1 {
				return nil, errorf("hole without a tool")
			}
			rest := line
			for rest != "" {
				axis := rest[0]
				num, tail := splitInt(rest[1:])
				v, err := strconv.Atoi(num)
				if err != nil || (axis != 'X' && axis != 'Y') {
					return nil, errorf("invalid coordinate %q", line)
				}
				if axis == 'X' {
					x = v
				} else {
					y = v
				}
				rest = tail
			}
			holes = append(holes, Hole{
				X: float64(x) * Unit,
				Y: float64(y) * Unit,
				D: diameters[tool],
			})
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("drill: %w", err)
	}
	return holes, nil
}

// splitInt splits s after its leading optionally signed integer.
func splitInt(s string) (num, rest string) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// ReadFile reads the holes of a single drill file.
func ReadFile(name string) ([]Hole, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	holes, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return holes, nil
}

// ReadZip reads the holes of every .drl member of a zip archive, such
// as a fabrication output bundle.
func ReadZip(name string) ([]Hole, error) {
	z, err := zip.OpenReader(name)
	if err != nil {
		return nil, err
	}
	defer z.Close()
	var holes []Hole
	for _, f := range z.File {
		if !strings.EqualFold(path.Ext(f.Name), ".drl") {
			continue
		}
		r, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		h, err := Parse(r)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", name, f.Name, err)
		}
		holes = append(holes, h...)
	}
	return holes, nil
}

// Read reads a drill file or, if name ends in .zip, the drill files of
// an archive.
func Read(name string) ([]Hole, error) {
	if strings.EqualFold(path.Ext(name), ".zip") {
		return ReadZip(name)
	}
	return ReadFile(name)
}

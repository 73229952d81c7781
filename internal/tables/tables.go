// Package tables holds the static calibration data behind the interpolated
// relations (tabulated SMHM fits, the Diemer-Joyce concentration grid) and
// the parsers for the whitespace-delimited formats they are stored in.
//
// The tables are compiled into the binary and parsed once at init; malformed
// embedded data is a build defect and panics.
package tables

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed data
var dataFS embed.FS

// Columns is a two-column table of (x, y) samples, e.g. halo mass vs stellar
// mass, sorted by x.
type Columns struct {
	X []float64
	Y []float64
}

// Grid is a rectangular table of values sampled on an (X, Z) grid, e.g.
// concentration over log-mass and redshift. Rows index X, columns index Z.
type Grid struct {
	X      []float64 // row coordinates, ascending
	Z      []float64 // column coordinates, ascending
	Values [][]float64
}

// LoadColumns parses a whitespace-delimited two-column table. Lines starting
// with '#' and blank lines are skipped.
func LoadColumns(r io.Reader) (*Columns, error) {
	c := &Columns{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields, skip := splitDataLine(sc.Text())
		if skip {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("tables: line %d: want 2 columns, got %d", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("tables: line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("tables: line %d: %w", line, err)
		}
		c.X = append(c.X, x)
		c.Y = append(c.Y, y)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tables: %w", err)
	}
	if len(c.X) < 2 {
		return nil, fmt.Errorf("tables: need at least 2 rows, got %d", len(c.X))
	}
	for i := 1; i < len(c.X); i++ {
		if c.X[i] <= c.X[i-1] {
			return nil, fmt.Errorf("tables: x values not strictly increasing at row %d", i)
		}
	}
	return c, nil
}

// LoadGrid parses a grid table: the first data line holds the column (Z)
// coordinates, each following line holds an X coordinate and one value per
// column.
func LoadGrid(r io.Reader) (*Grid, error) {
	g := &Grid{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields, skip := splitDataLine(sc.Text())
		if skip {
			continue
		}
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("tables: line %d: %w", line, err)
			}
			vals[i] = v
		}
		if g.Z == nil {
			g.Z = vals
			continue
		}
		if len(vals) != len(g.Z)+1 {
			return nil, fmt.Errorf("tables: line %d: want %d columns, got %d", line, len(g.Z)+1, len(vals))
		}
		g.X = append(g.X, vals[0])
		g.Values = append(g.Values, vals[1:])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tables: %w", err)
	}
	if len(g.X) < 2 || len(g.Z) < 2 {
		return nil, fmt.Errorf("tables: grid needs at least 2x2 samples")
	}
	return g, nil
}

// Embedded returns an embedded table file by path, e.g. "data/smhm/dooley.dat".
func Embedded(path string) (io.Reader, error) {
	b, err := dataFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tables: %w", err)
	}
	return strings.NewReader(string(b)), nil
}

// MustColumns loads an embedded two-column table, panicking on failure.
func MustColumns(path string) *Columns {
	r, err := Embedded(path)
	if err != nil {
		panic(err)
	}
	c, err := LoadColumns(r)
	if err != nil {
		panic(fmt.Sprintf("tables: embedded %s: %v", path, err))
	}
	return c
}

// MustGrid loads an embedded grid table, panicking on failure.
func MustGrid(path string) *Grid {
	r, err := Embedded(path)
	if err != nil {
		panic(err)
	}
	g, err := LoadGrid(r)
	if err != nil {
		panic(fmt.Sprintf("tables: embedded %s: %v", path, err))
	}
	return g
}

func splitDataLine(s string) (fields []string, skip bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") {
		return nil, true
	}
	return strings.Fields(s), false
}

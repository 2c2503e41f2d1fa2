// Package save reads and writes saved games: a ten-line text record kept
// in a file or a SQLite database.
package save

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/world"
)

var (
	// ErrMalformed is returned for a record that cannot be decoded.
	ErrMalformed = errors.New("malformed save record")
	// ErrNotFound is returned for a slot with nothing saved in it.
	ErrNotFound = errors.New("save not found")
)

// Mode names as stored in a record.
const (
	ModeSolarSystem     = "solar_system"
	ModePlanetarySystem = "planetary_system"
	ModeHyperSpace      = "hyperspace"
)

const (
	fieldSep = ";;"
	countSep = ".."
	pointSep = "&&"
	numLines = 10
)

// Record is everything needed to rebuild the player and the current mode.
type Record struct {
	Ship    string
	Loadout []world.LoadoutEntry
	Damp    float64
	AngDamp float64
	Pos     geom.Vec2
	Vel     geom.Vec2
	Angle   float64
	AngVel  float64
	Time    float64

	Mode      string
	System    string    // solar and planetary modes
	Planet    int       // planetary mode: planet number in System
	PlanetPos geom.Vec2 // planetary mode: the planet's place on the solar map

	Visited []string
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatPair(a, b float64, sep string) string {
	return formatFloat(a) + sep + formatFloat(b)
}

// Encode writes r as newline-separated fields.
func Encode(w io.Writer, r *Record) error {
	entries := make([]string, len(r.Loadout))
	for i, e := range r.Loadout {
		entries[i] = strconv.Itoa(e.Count) + countSep + e.Name
	}

	mode := r.Mode
	switch r.Mode {
	case ModeSolarSystem:
		mode += fieldSep + r.System
	case ModePlanetarySystem:
		mode += fieldSep + r.System + fieldSep + strconv.Itoa(r.Planet) +
			fieldSep + formatPair(r.PlanetPos.X, r.PlanetPos.Y, pointSep)
	case ModeHyperSpace:
	default:
		return fmt.Errorf("encode mode %q: %w", r.Mode, ErrMalformed)
	}

	lines := []string{
		r.Ship,
		strings.Join(entries, fieldSep),
		formatPair(r.Damp, r.AngDamp, fieldSep),
		formatPair(r.Pos.X, r.Pos.Y, fieldSep),
		formatPair(r.Vel.X, r.Vel.Y, fieldSep),
		formatFloat(r.Angle),
		formatFloat(r.AngVel),
		formatFloat(r.Time),
		mode,
		strings.Join(r.Visited, fieldSep),
	}
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// decoder reads fields, remembering the first error.
type decoder struct {
	line int
	err  error
}

func (d *decoder) fail(format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("line %d: %s: %w", d.line+1, fmt.Sprintf(format, args...), ErrMalformed)
	}
}

func (d *decoder) float(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		d.fail("bad number %q", s)
	}
	return f
}

func (d *decoder) pair(s, sep string) (float64, float64) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		d.fail("want two values in %q", s)
		return 0, 0
	}
	return d.float(a), d.float(b)
}

func (d *decoder) loadout(s string) []world.LoadoutEntry {
	var out []world.LoadoutEntry
	for _, part := range strings.Split(s, fieldSep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		count, name, ok := strings.Cut(part, countSep)
		n, err := strconv.Atoi(count)
		if !ok || err != nil || n < 0 || name == "" {
			d.fail("bad loadout entry %q", part)
			continue
		}
		out = append(out, world.LoadoutEntry{Count: n, Name: name})
	}
	return out
}

func (d *decoder) mode(s string, r *Record) {
	fields := strings.Split(s, fieldSep)
	r.Mode = fields[0]
	switch {
	case r.Mode == ModeSolarSystem && len(fields) == 2:
		r.System = fields[1]
	case r.Mode == ModePlanetarySystem && len(fields) == 4:
		r.System = fields[1]
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			d.fail("bad planet number %q", fields[2])
		}
		r.Planet = n
		r.PlanetPos.X, r.PlanetPos.Y = d.pair(fields[3], pointSep)
	case r.Mode == ModeHyperSpace && len(fields) == 1:
	default:
		d.fail("bad mode %q", s)
	}
}

// Decode reads a record written by Encode. Any bad field fails the whole
// record with ErrMalformed.
func Decode(rd io.Reader) (*Record, error) {
	var lines []string
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) < numLines {
		return nil, fmt.Errorf("%d lines, want %d: %w", len(lines), numLines, ErrMalformed)
	}

	r := &Record{}
	d := &decoder{}
	for i, line := range lines[:numLines] {
		d.line = i
		switch i {
		case 0:
			r.Ship = line
			if line == "" {
				d.fail("no ship")
			}
		case 1:
			r.Loadout = d.loadout(line)
		case 2:
			r.Damp, r.AngDamp = d.pair(line, fieldSep)
		case 3:
			r.Pos.X, r.Pos.Y = d.pair(line, fieldSep)
		case 4:
			r.Vel.X, r.Vel.Y = d.pair(line, fieldSep)
		case 5:
			r.Angle = d.float(line)
		case 6:
			r.AngVel = d.float(line)
		case 7:
			r.Time = d.float(line)
		case 8:
			d.mode(line, r)
		case 9:
			if line != "" {
				r.Visited = strings.Split(line, fieldSep)
			}
		}
	}
	if d.err != nil {
		return nil, d.err
	}
	return r, nil
}

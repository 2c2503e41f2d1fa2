package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/spacehole-rogue/starlanes/internal/geom"
)

// Record separators.
const (
	fieldSep    = "&&"
	planetSep   = "||"
	planetField = "??"
	moonSep     = "^^"
	moonField   = "::"
	listSep     = ";;"
	mineralSep  = ","
	crewSep     = "??"
)

// Data file names inside the catalog filesystem.
const (
	SystemsFile   = "systems.txt"
	RacesFile     = "races.txt"
	ShipsFile     = "ships.txt"
	ThrustersFile = "thrusters.txt"
)

// ErrFieldCount is wrapped when a record has too few fields.
var ErrFieldCount = errors.New("wrong field count")

// ParseError locates a bad record.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads all four data files from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	c := NewCatalog()
	steps := []struct {
		name string
		read func(io.Reader) error
	}{
		{SystemsFile, c.ReadSystems},
		{RacesFile, c.ReadRaces},
		{ShipsFile, c.ReadShips},
		{ThrustersFile, c.ReadThrusters},
	}
	for _, s := range steps {
		f, err := fsys.Open(s.name)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		err = s.read(f)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// eachRecord calls fn with the fields of every non-blank line.
func eachRecord(r io.Reader, file string, fn func(fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" {
			continue
		}
		if err := fn(strings.Split(text, fieldSep)); err != nil {
			return &ParseError{File: file, Line: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	return nil
}

// fieldReader converts positional fields, keeping the first error.
type fieldReader struct {
	fields []string
	err    error
}

func (f *fieldReader) float(i int) float64 {
	if f.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(f.fields[i]), 64)
	if err != nil {
		f.err = fmt.Errorf("field %d: %w", i, err)
	}
	return v
}

func (f *fieldReader) integer(i int) int {
	if f.err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(f.fields[i]))
	if err != nil {
		f.err = fmt.Errorf("field %d: %w", i, err)
	}
	return v
}

func need(fields []string, n int) error {
	if len(fields) < n {
		return fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), n)
	}
	return nil
}

// parsedBody is a planet or moon before it is placed in the arena.
type parsedBody struct {
	Planet
	moons []parsedBody
}

// ReadSystems parses system records:
// name&&lon&&lat&&color&&temp&&size&&radius&&lum&&mass&&planets.
func (c *Catalog) ReadSystems(r io.Reader) error {
	type parsedSystem struct {
		System
		planets []parsedBody
	}
	var parsed []parsedSystem
	seen := make(map[string]bool)
	err := eachRecord(r, SystemsFile, func(fields []string) error {
		if err := need(fields, 10); err != nil {
			return err
		}
		f := &fieldReader{fields: fields}
		s := parsedSystem{System: System{
			Name:        fields[0],
			Coords:      geom.V(f.float(1), f.float(2)),
			Color:       fields[3],
			Temperature: f.float(4),
			Size:        fields[5],
			Radius:      f.float(6),
			Luminosity:  f.float(7),
			Mass:        f.float(8),
		}}
		if f.err != nil {
			return f.err
		}
		s.PlanetOrbit.Update(0.025 * math.Sqrt(s.Radius))
		s.PlanetRadius.Update(0.16)
		if fields[9] != "" {
			for _, data := range strings.Split(fields[9], planetSep) {
				p, err := parseBody(data, s.Name, false)
				if err != nil {
					return fmt.Errorf("system %s: %w", s.Name, err)
				}
				s.planets = append(s.planets, p)
				s.PlanetOrbit.Update(p.Orbit)
				s.PlanetRadius.Update(p.Radius)
			}
		}
		if _, dup := c.bySystem[s.Name]; dup || seen[s.Name] {
			return fmt.Errorf("duplicate system %q", s.Name)
		}
		seen[s.Name] = true
		parsed = append(parsed, s)
		return nil
	})
	if err != nil {
		return err
	}

	// Second pass: place bodies in the arena and wire back-references.
	for _, ps := range parsed {
		sys := ps.System
		sys.ID = SystemID(len(c.systems))
		for _, pp := range ps.planets {
			sys.Planets = append(sys.Planets, c.addBody(pp, sys.ID, NoPlanet))
		}
		c.systems = append(c.systems, sys)
		c.bySystem[sys.Name] = sys.ID
		c.byUpper[strings.ToUpper(sys.Name)] = sys.ID
	}
	return nil
}

func (c *Catalog) addBody(pb parsedBody, sys SystemID, parent PlanetID) PlanetID {
	p := pb.Planet
	p.ID = PlanetID(len(c.planets))
	p.System = sys
	p.Parent = parent
	c.planets = append(c.planets, p)
	moons := make([]PlanetID, 0, len(pb.moons))
	for _, m := range pb.moons {
		moons = append(moons, c.addBody(m, sys, p.ID))
	}
	c.planets[p.ID].Moons = moons
	return p.ID
}

// parseBody parses the 19 fields of a planet ("??") or moon ("::").
func parseBody(data, parentName string, isMoon bool) (parsedBody, error) {
	sep := planetField
	if isMoon {
		sep = moonField
	}
	fields := strings.Split(data, sep)
	if err := need(fields, 19); err != nil {
		return parsedBody{}, err
	}
	f := &fieldReader{fields: fields}
	number := f.integer(0)
	if f.err != nil {
		return parsedBody{}, f.err
	}
	var name string
	if isMoon {
		name = MoonName(parentName, number)
	} else {
		r, ok := RomanNumeral(number)
		if !ok {
			return parsedBody{}, fmt.Errorf("planet number %d out of range", number)
		}
		name = parentName + " " + r
	}
	pb := parsedBody{Planet: Planet{
		Name:         name,
		IsMoon:       isMoon,
		Number:       number,
		Type:         fields[1],
		Surface:      fields[2],
		Orbit:        f.float(3),
		Atmosphere:   f.float(4),
		Temperature:  f.float(5),
		Weather:      f.integer(6),
		Tectonics:    f.integer(7),
		Mass:         f.float(8),
		Radius:       f.float(9),
		Gravity:      f.float(10),
		Day:          f.float(11),
		Tilt:         f.integer(12),
		FuelUse:      f.float(13),
		Direction:    f.integer(17),
		InitialAngle: f.float(18),
	}}
	if f.err != nil {
		return parsedBody{}, fmt.Errorf("%s: %w", name, f.err)
	}

	if fields[14] != "" {
		for _, part := range strings.Split(fields[14], listSep) {
			info := strings.Split(part, mineralSep)
			if err := need(info, 4); err != nil {
				return parsedBody{}, fmt.Errorf("%s mineral: %w", name, err)
			}
			mf := &fieldReader{fields: info}
			m := MineralDeposit{Name: info[0], Quality: mf.integer(1), Latitude: mf.integer(2), Longitude: mf.integer(3)}
			if mf.err != nil {
				return parsedBody{}, fmt.Errorf("%s mineral: %w", name, mf.err)
			}
			pb.Minerals = append(pb.Minerals, m)
		}
	}
	if fields[15] != "" {
		for _, part := range strings.Split(fields[15], listSep) {
			pb.Lifeforms = append(pb.Lifeforms, Lifeform{Name: part})
		}
	}
	if !isMoon {
		pb.MoonOrbit.Update(15 * math.Pow(pb.Radius, 0.125))
		pb.MoonRadius.Update(0.08 * pb.Radius)
		if fields[16] != "" {
			for _, part := range strings.Split(fields[16], moonSep) {
				m, err := parseBody(part, name, true)
				if err != nil {
					return parsedBody{}, err
				}
				pb.moons = append(pb.moons, m)
				pb.MoonOrbit.Update(m.Orbit)
				pb.MoonRadius.Update(m.Radius)
			}
		}
	}
	return pb, nil
}

// ReadRaces parses race records: name&&side&&ship&&lon&&lat&&soi.
func (c *Catalog) ReadRaces(r io.Reader) error {
	return eachRecord(r, RacesFile, func(fields []string) error {
		if err := need(fields, 6); err != nil {
			return err
		}
		f := &fieldReader{fields: fields}
		race := NewRace(fields[0], Side(fields[1]), fields[2], geom.V(f.float(3), f.float(4)), f.float(5))
		if f.err != nil {
			return f.err
		}
		c.races = append(c.races, race)
		return nil
	})
}

// ReadShips parses hull records:
// name&&crew(9 ints, "??")&&mass&&moi&&area&&thrust&&ang_thrust&&battery&&regen.
func (c *Catalog) ReadShips(r io.Reader) error {
	return eachRecord(r, ShipsFile, func(fields []string) error {
		if err := need(fields, 9); err != nil {
			return err
		}
		crew := strings.Split(fields[1], crewSep)
		if err := need(crew, 9); err != nil {
			return fmt.Errorf("crew: %w", err)
		}
		cf := &fieldReader{fields: crew}
		f := &fieldReader{fields: fields}
		s := &ShipSpec{
			Name: fields[0],
			Crew: Crew{
				Captains:             cf.integer(0),
				FirstOfficers:        cf.integer(1),
				HelmOfficers:         cf.integer(2),
				WeaponsOfficers:      cf.integer(3),
				MedicalOfficers:      cf.integer(4),
				SecurityOfficers:     cf.integer(5),
				XenotechExperts:      cf.integer(6),
				SystemsEngineers:     cf.integer(7),
				MaintenanceEngineers: cf.integer(8),
			},
			Mass:         f.float(2),
			MOI:          f.float(3),
			Area:         f.float(4),
			Thrust:       f.float(5),
			AngThrust:    f.float(6),
			Battery:      f.float(7),
			BatteryRegen: f.float(8),
		}
		if cf.err != nil {
			return fmt.Errorf("crew: %w", cf.err)
		}
		if f.err != nil {
			return f.err
		}
		c.ships[s.Name] = s
		return nil
	})
}

// ReadThrusters parses thruster records: name&&fwd&&retro&&side&&ang.
func (c *Catalog) ReadThrusters(r io.Reader) error {
	return eachRecord(r, ThrustersFile, func(fields []string) error {
		if err := need(fields, 5); err != nil {
			return err
		}
		f := &fieldReader{fields: fields}
		t := &ThrusterSpec{Name: fields[0]}
		t.Forward = f.float(1)
		t.Retro = f.float(2)
		t.Side = f.float(3)
		t.Angular = f.float(4)
		if f.err != nil {
			return f.err
		}
		c.thrusters[t.Name] = t
		return nil
	})
}

// Package world holds the celestial catalog: systems, planets, moons,
// races, ship hulls and thrusters, loaded once from text records.
package world

import (
	"sort"
	"strings"

	"github.com/spacehole-rogue/starlanes/internal/geom"
)

// SystemID indexes Catalog systems.
type SystemID int

// PlanetID indexes Catalog bodies. Planets and moons share the arena.
type PlanetID int

// NoPlanet marks a missing parent.
const NoPlanet PlanetID = -1

// MinMax tracks the range of a series of values.
type MinMax struct {
	Min, Max float64
	set      bool
}

// Update widens the range to include v.
func (m *MinMax) Update(v float64) {
	if !m.set || v < m.Min {
		m.Min = v
	}
	if !m.set || v > m.Max {
		m.Max = v
	}
	m.set = true
}

// System is a star and its planets.
type System struct {
	ID          SystemID
	Name        string
	Coords      geom.Vec2 // galactic longitude, latitude
	Color       string    // r o y g w b
	Temperature float64
	Size        string // s m l
	Radius      float64
	Luminosity  float64
	Mass        float64
	Planets     []PlanetID

	// Layout normalisation ranges, seeded so an empty system still has a scale.
	PlanetOrbit  MinMax
	PlanetRadius MinMax
}

// MineralDeposit is a surface deposit.
type MineralDeposit struct {
	Name      string
	Quality   int
	Latitude  int
	Longitude int
}

// Lifeform is a species found on a body.
type Lifeform struct {
	Name string
}

// Planet is a planet or, with IsMoon set, a moon.
type Planet struct {
	ID           PlanetID
	Name         string
	IsMoon       bool
	Number       int
	Type         string
	Surface      string
	Orbit        float64
	Atmosphere   float64
	Temperature  float64
	Weather      int
	Tectonics    int
	Mass         float64
	Radius       float64
	Gravity      float64
	Day          float64
	Tilt         int
	FuelUse      float64
	Minerals     []MineralDeposit
	Lifeforms    []Lifeform
	Moons        []PlanetID
	Direction    int
	InitialAngle float64

	MoonOrbit  MinMax
	MoonRadius MinMax

	System SystemID // star system, for moons too
	Parent PlanetID // orbited planet for moons, NoPlanet otherwise
}

// Catalog is the immutable celestial and equipment database.
type Catalog struct {
	systems   []System
	planets   []Planet
	bySystem  map[string]SystemID
	byUpper   map[string]SystemID
	races     []Race
	ships     map[string]*ShipSpec
	thrusters map[string]*ThrusterSpec
}

// NewCatalog returns an empty catalog ready for the Read* methods.
func NewCatalog() *Catalog {
	return &Catalog{
		bySystem:  make(map[string]SystemID),
		byUpper:   make(map[string]SystemID),
		ships:     make(map[string]*ShipSpec),
		thrusters: make(map[string]*ThrusterSpec),
	}
}

// Systems returns every system in load order.
func (c *Catalog) Systems() []System { return c.systems }

// System returns the system with id.
func (c *Catalog) System(id SystemID) *System { return &c.systems[id] }

// Planet returns the planet or moon with id.
func (c *Catalog) Planet(id PlanetID) *Planet { return &c.planets[id] }

// SystemByName finds a system by exact name.
func (c *Catalog) SystemByName(name string) (*System, bool) {
	id, ok := c.bySystem[name]
	if !ok {
		return nil, false
	}
	return &c.systems[id], true
}

// LookupSystem finds a system ignoring case.
func (c *Catalog) LookupSystem(name string) (*System, bool) {
	id, ok := c.byUpper[strings.ToUpper(name)]
	if !ok {
		return nil, false
	}
	return &c.systems[id], true
}

// SystemNames returns system names sorted.
func (c *Catalog) SystemNames() []string {
	names := make([]string, 0, len(c.systems))
	for i := range c.systems {
		names = append(names, c.systems[i].Name)
	}
	sort.Strings(names)
	return names
}

// SearchNames returns upper-case system names sorted.
func (c *Catalog) SearchNames() []string {
	names := make([]string, 0, len(c.byUpper))
	for n := range c.byUpper {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PlanetOf returns the planet of s whose designation number is n.
func (c *Catalog) PlanetOf(s *System, n int) (*Planet, bool) {
	return c.numbered(s.Planets, n)
}

// MoonOf returns the moon of p whose designation number is n.
func (c *Catalog) MoonOf(p *Planet, n int) (*Planet, bool) {
	return c.numbered(p.Moons, n)
}

func (c *Catalog) numbered(ids []PlanetID, n int) (*Planet, bool) {
	for _, id := range ids {
		if c.planets[id].Number == n {
			return &c.planets[id], true
		}
	}
	return nil, false
}

// SystemOf returns the star system a body belongs to.
func (c *Catalog) SystemOf(p *Planet) *System { return &c.systems[p.System] }

// ParentOf returns the planet a moon orbits.
func (c *Catalog) ParentOf(moon *Planet) (*Planet, bool) {
	if moon.Parent == NoPlanet {
		return nil, false
	}
	return &c.planets[moon.Parent], true
}

// Races returns the races in load order.
func (c *Catalog) Races() []Race { return c.races }

// Ship returns the hull spec called name.
func (c *Catalog) Ship(name string) (*ShipSpec, bool) {
	s, ok := c.ships[name]
	return s, ok
}

// Thruster returns the thruster spec called name.
func (c *Catalog) Thruster(name string) (*ThrusterSpec, bool) {
	t, ok := c.thrusters[name]
	return t, ok
}

package world

import (
	"fmt"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/orbit"
	"github.com/spacehole-rogue/starlanes/internal/physics"
)

// Side is a race's allegiance.
type Side string

const (
	SideAlly    Side = "Ally"
	SideHostile Side = "Hostile"
)

// Race is a faction with a sphere of influence in hyperspace.
type Race struct {
	Name      string
	Side      Side
	Ship      string
	SOIPos    geom.Vec2
	SOIRadius float64
}

// IsAlly reports whether the race is friendly.
func (r *Race) IsAlly() bool { return r.Side == SideAlly }

// InfluenceAt reports whether pos lies within the race's sphere of influence.
func (r *Race) InfluenceAt(pos geom.Vec2) bool {
	return pos.Dist(r.SOIPos) < r.SOIRadius
}

// NewRace builds a race whose sphere is given in galactic coordinates.
func NewRace(name string, side Side, ship string, coords geom.Vec2, soi float64) Race {
	return Race{
		Name:      name,
		Side:      side,
		Ship:      ship,
		SOIPos:    orbit.CoordsToPos(coords),
		SOIRadius: orbit.GalacticScale * soi,
	}
}

// Crew counts the officers a hull carries.
type Crew struct {
	Captains             int
	FirstOfficers        int
	HelmOfficers         int
	WeaponsOfficers      int
	MedicalOfficers      int
	SecurityOfficers     int
	XenotechExperts      int
	SystemsEngineers     int
	MaintenanceEngineers int
}

// ShipSpec is a hull template.
type ShipSpec struct {
	Name         string
	Crew         Crew
	Mass         float64
	MOI          float64
	Area         float64
	Thrust       float64
	AngThrust    float64
	Battery      float64
	BatteryRegen float64
}

// ThrusterSpec is a fittable thruster.
type ThrusterSpec struct {
	Name string
	physics.Thrust
}

// LoadoutEntry is a run of identical thrusters.
type LoadoutEntry struct {
	Count int
	Name  string
}

// Loadout is the thrusters fitted to the player's ship.
type Loadout []*ThrusterSpec

// Thrusts returns the thrust contributions in fitting order.
func (l Loadout) Thrusts() []physics.Thrust {
	out := make([]physics.Thrust, len(l))
	for i, t := range l {
		out[i] = t.Thrust
	}
	return out
}

// Entries groups the loadout into runs, ordered by first appearance.
func (l Loadout) Entries() []LoadoutEntry {
	var out []LoadoutEntry
	index := make(map[string]int)
	for _, t := range l {
		i, ok := index[t.Name]
		if !ok {
			i = len(out)
			index[t.Name] = i
			out = append(out, LoadoutEntry{Name: t.Name})
		}
		out[i].Count++
	}
	return out
}

// Loadout expands entries against the thruster table.
func (c *Catalog) Loadout(entries []LoadoutEntry) (Loadout, error) {
	var out Loadout
	for _, e := range entries {
		t, ok := c.thrusters[e.Name]
		if !ok {
			return nil, fmt.Errorf("unknown thruster %q", e.Name)
		}
		if e.Count < 0 {
			return nil, fmt.Errorf("thruster %q: negative count %d", e.Name, e.Count)
		}
		for range e.Count {
			out = append(out, t)
		}
	}
	return out, nil
}

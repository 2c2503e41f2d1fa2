package game

import (
	"strings"

	"github.com/spacehole-rogue/starlanes/internal/starmap"
	"github.com/spacehole-rogue/starlanes/internal/world"
)

// TargetKind identifies what the autopilot is steering for.
type TargetKind uint8

const (
	TargetSystem TargetKind = iota // a star system
	TargetBody                     // a planet or moon on the current map
	TargetDummy                    // a named body that is not on the current map
)

// Target is a resolved autopilot destination.
type Target struct {
	Kind    TargetKind
	Name    string
	System  *world.System    // TargetSystem only
	Element *starmap.Element // TargetBody only
}

// Orbiting reports whether the target is a body moving on an orbit.
func (t *Target) Orbiting() bool {
	return t != nil && t.Kind == TargetBody && t.Element.HasOrbit()
}

// Is reports whether the target is the element e.
func (t *Target) Is(e *starmap.Element) bool {
	return t != nil && t.Kind == TargetBody && t.Element == e
}

// planetPin is the autopilot text that targets the orbited planet.
const planetPin = "#p"

// TargetKindName returns a label for a target kind.
func TargetKindName(k TargetKind) string {
	switch k {
	case TargetSystem:
		return "System"
	case TargetBody:
		return "Body"
	case TargetDummy:
		return "Dummy"
	default:
		return "Unknown"
	}
}

// resolveSystem finds the system whose name is the longest prefix of text.
func resolveSystem(cat *world.Catalog, text string) *Target {
	sys, ok := cat.SystemByName(ContainedPrefix(text, cat.SystemNames()))
	if !ok {
		return nil
	}
	return &Target{Kind: TargetSystem, Name: sys.Name, System: sys}
}

// resolveTarget parses a designation against the catalog, descending to
// planets and, when moons is set, to moons. Bodies are looked up on m.
// Unknown planet or moon numbers fall back to the enclosing match.
func resolveTarget(cat *world.Catalog, m *starmap.Map, text string, moons bool) *Target {
	t := resolveSystem(cat, text)
	if t == nil {
		return nil
	}
	sys := t.System
	planetName := ContainedPrefix(text, cat.PlanetNames(sys))
	if planetName == "" {
		return t
	}
	n, _ := world.PlanetNumber(sys.Name, planetName)
	planet, ok := cat.PlanetOf(sys, n)
	if !ok {
		return t
	}
	if moons {
		if moonName := ContainedPrefix(text, cat.MoonNames(planet)); moonName != "" {
			if moon, ok := cat.MoonOf(planet, world.MoonNumber(moonName[len(moonName)-1])); ok {
				return bodyTarget(m, moon.Name)
			}
		}
	}
	return bodyTarget(m, planet.Name)
}

// bodyTarget is the element called name, or a dummy when it is not on m.
// A planetary map's primary is a body target without an orbit.
func bodyTarget(m *starmap.Map, name string) *Target {
	if e, ok := m.FindNatural(name); ok {
		return &Target{Kind: TargetBody, Name: name, Element: e}
	}
	return &Target{Kind: TargetDummy, Name: name}
}

// searchComplete completes search text against system names, then the
// planets and moons of visited systems.
func searchComplete(cat *world.Catalog, visited []string, text string) string {
	if auto := AutoComplete(text, cat.SearchNames()); auto != "" {
		return auto
	}
	sysName := ContainedPrefix(text, visited)
	sys, ok := cat.LookupSystem(sysName)
	if sysName == "" || !ok {
		return ""
	}
	planetNames := cat.PlanetSearchNames(sys)
	if auto := AutoComplete(text, planetNames); auto != "" {
		return auto
	}
	planetName := ContainedPrefix(text, planetNames)
	if planetName == "" {
		return ""
	}
	n, _ := world.PlanetNumber(sysName, planetName)
	planet, ok := cat.PlanetOf(sys, n)
	if !ok {
		return ""
	}
	return AutoComplete(text, cat.MoonSearchNames(planet))
}

// localComplete completes designations relative to the system the player
// is in: "3" becomes "SOL 3", "3-" becomes "SOL 3-A". Inside a planetary
// system (current non-nil) bare moon letters complete to current's moons.
func localComplete(cat *world.Catalog, sys *world.System, current *world.Planet, text string) string {
	prefix := strings.ToUpper(sys.Name) + " "
	suffixes := cat.PlanetSearchSuffixes(sys)
	auto := AutoComplete(text, suffixes)
	if auto == "" {
		if suffix := ContainedPrefix(text, suffixes); suffix != "" {
			n, _ := world.PlanetNumber("", suffix)
			if planet, ok := cat.PlanetOf(sys, n); ok {
				auto = AutoComplete(text, cat.MoonSearchSuffixes(planet))
			}
		}
	}
	if auto == "" && current != nil {
		if r, ok := world.RomanNumeral(current.Number); ok {
			if auto = AutoComplete(text, cat.MoonLetters(current)); auto != "" {
				prefix += r + "-"
			}
		}
	}
	if auto == "" {
		return ""
	}
	return prefix + auto
}

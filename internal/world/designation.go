package world

import (
	"strconv"
	"strings"
)

var romanNumerals = [...]string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}

// MaxPlanets is the highest planet number with a designation.
const MaxPlanets = len(romanNumerals)

// RomanNumeral returns the numeral for 1..9.
func RomanNumeral(n int) (string, bool) {
	if n < 1 || n > len(romanNumerals) {
		return "", false
	}
	return romanNumerals[n-1], true
}

// RomanValue parses a numeral produced by RomanNumeral.
func RomanValue(s string) (int, bool) {
	for i, r := range romanNumerals {
		if r == s {
			return i + 1, true
		}
	}
	return 0, false
}

// MoonLetter maps 1 to "A", 2 to "B" and so on.
func MoonLetter(n int) string {
	return string(rune('A' - 1 + n))
}

// MoonNumber is the inverse of MoonLetter.
func MoonNumber(letter byte) int {
	return int(letter) - ('A' - 1)
}

// PlanetName is the designation of planet n of system, e.g. "Sol III".
func PlanetName(system string, n int) string {
	r, ok := RomanNumeral(n)
	if !ok {
		return ""
	}
	return system + " " + r
}

// MoonName is the designation of moon n of planet, e.g. "Sol III-A".
func MoonName(planet string, n int) string {
	return planet + "-" + MoonLetter(n)
}

// PlanetSuffixes returns the numerals of s's planets, e.g. "III", "IV".
func (c *Catalog) PlanetSuffixes(s *System) []string {
	out := make([]string, 0, len(s.Planets))
	for _, id := range s.Planets {
		if r, ok := RomanNumeral(c.planets[id].Number); ok {
			out = append(out, r)
		}
	}
	return out
}

// PlanetSearchSuffixes adds the Arabic forms "3", "4", ... to PlanetSuffixes.
func (c *Catalog) PlanetSearchSuffixes(s *System) []string {
	out := c.PlanetSuffixes(s)
	for _, id := range s.Planets {
		out = append(out, strconv.Itoa(c.planets[id].Number))
	}
	return out
}

// MoonLetters returns the letters of p's moons, e.g. "A", "B".
func (c *Catalog) MoonLetters(p *Planet) []string {
	out := make([]string, len(p.Moons))
	for i, id := range p.Moons {
		out[i] = MoonLetter(c.planets[id].Number)
	}
	return out
}

// MoonSuffixes returns "III-A", "III-B", ... for the moons of p.
func (c *Catalog) MoonSuffixes(p *Planet) []string {
	r, _ := RomanNumeral(p.Number)
	return prefixed(r+"-", c.MoonLetters(p))
}

// MoonSearchSuffixes adds the Arabic forms "3-A", ... to MoonSuffixes.
func (c *Catalog) MoonSearchSuffixes(p *Planet) []string {
	return append(c.MoonSuffixes(p), prefixed(strconv.Itoa(p.Number)+"-", c.MoonLetters(p))...)
}

// PlanetNames returns full planet designations of s.
func (c *Catalog) PlanetNames(s *System) []string {
	return prefixed(s.Name+" ", c.PlanetSuffixes(s))
}

// PlanetSearchNames returns upper-case search names of s's planets.
func (c *Catalog) PlanetSearchNames(s *System) []string {
	return prefixed(strings.ToUpper(s.Name)+" ", c.PlanetSearchSuffixes(s))
}

// MoonNames returns full moon designations of p within its system.
func (c *Catalog) MoonNames(p *Planet) []string {
	return prefixed(c.SystemOf(p).Name+" ", c.MoonSuffixes(p))
}

// MoonSearchNames returns upper-case search names of p's moons.
func (c *Catalog) MoonSearchNames(p *Planet) []string {
	return prefixed(strings.ToUpper(c.SystemOf(p).Name)+" ", c.MoonSearchSuffixes(p))
}

// PlanetNumber parses the planet part of a designation that starts with
// system, accepting Roman or Arabic numbers: "Sol III-A" and "SOL 3" give 3.
func PlanetNumber(system, name string) (int, bool) {
	if len(name) < len(system) {
		return 0, false
	}
	suffix := strings.TrimSpace(name[len(system):])
	suffix, _, _ = strings.Cut(suffix, "-")
	if n, ok := RomanValue(suffix); ok {
		return n, true
	}
	if suffix == "" || suffix[0] < '0' || suffix[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

func prefixed(prefix string, names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = prefix + n
	}
	return out
}

// Package orbit maps physical radii, orbits and masses onto render scale.
// The same numbers drive collision geometry and layout.
package orbit

import (
	"math"

	"github.com/spacehole-rogue/starlanes/internal/geom"
)

const (
	// SolarRate converts sqrt(M/a^3) into radians per game day for planets.
	SolarRate = 0.0172017
	// MoonRate is the empirical equivalent for moons around a planet.
	MoonRate = 971.903
	// GalacticScale converts galactic coordinates into hyperspace pixels.
	GalacticScale = 500.0
)

// StarScale is the sprite scale of a star of the given radius.
func StarScale(starRadius float64) float64 {
	return 2 * math.Cbrt(starRadius)
}

// OrbitScale is the orbit distance of a planet, relative to the display.
func OrbitScale(starRadius, orbit float64) float64 {
	return 4 * math.Pow(starRadius, 0.125) * math.Cbrt(orbit)
}

// PlanetRadiusScale is the sprite scale of a planet inside a solar system.
func PlanetRadiusScale(planetRadius float64) float64 {
	return (7.16 + planetRadius) / 43.92
}

// SolarExtent is the half extent of a solar system map before zoom.
// orbitMult is the display dimension the orbit is measured against.
func SolarExtent(starRadius, maxOrbit, maxPlanetRadius, orbitMult float64) float64 {
	return orbitMult*OrbitScale(starRadius, maxOrbit) + 2*PlanetRadiusScale(maxPlanetRadius)
}

// SolarMinimapScale maps solar system positions into minimap space.
func SolarMinimapScale(starRadius, maxOrbit, maxPlanetRadius float64) float64 {
	return 1 / SolarExtent(starRadius, maxOrbit, maxPlanetRadius, 1)
}

// PlanetaryPlanetScale is the sprite scale of the orbited planet.
func PlanetaryPlanetScale(planetRadius float64) float64 {
	return (7.16 + planetRadius) / 32.94
}

// PlanetaryOrbitScale is the orbit distance of a moon.
func PlanetaryOrbitScale(planetRadius, moonOrbit float64) float64 {
	return 0.275 * PlanetaryPlanetScale(planetRadius) * math.Sqrt(moonOrbit)
}

// MoonRadiusScale is the sprite scale of a moon.
func MoonRadiusScale(planetRadius, moonRadius float64) float64 {
	return (7.16 + planetRadius) * (0.56 + moonRadius/planetRadius) / 72
}

// PlanetaryExtent is the half extent of a planetary system map before zoom.
func PlanetaryExtent(planetRadius, maxMoonOrbit, maxMoonRadius, orbitMult float64) float64 {
	return orbitMult * (PlanetaryOrbitScale(planetRadius, maxMoonOrbit) + MoonRadiusScale(planetRadius, maxMoonRadius))
}

// AngularRate is the Keplerian angular speed k*sqrt(mass/orbit^3).
func AngularRate(k, mass, orbit float64) float64 {
	return k * math.Sqrt(mass/(orbit*orbit*orbit))
}

// OrbitAngle is the angle of a body after time days.
func OrbitAngle(initial, k, mass, orbit, time float64) float64 {
	if time == 0 {
		return initial
	}
	rate := AngularRate(k, mass, orbit)
	return initial + rate*time
}

// CoordsToPos converts galactic (lon, lat) into hyperspace position.
// Latitude grows upward, screen y grows downward.
func CoordsToPos(c geom.Vec2) geom.Vec2 {
	return geom.Vec2{X: GalacticScale * c.X, Y: -GalacticScale * c.Y}
}

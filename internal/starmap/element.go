// Package starmap lays out the bodies of each navigation scale: the stars
// of hyperspace, a star system's planets, and a planet's moons.
package starmap

import (
	"image/color"
	"math"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/orbit"
	"github.com/spacehole-rogue/starlanes/internal/world"
)

// ElementKind identifies what a map element is.
type ElementKind uint8

const (
	ElemStar    ElementKind = iota // the star of a solar system map
	ElemPlanet                     // a planet orbiting the star
	ElemPrimary                    // the planet at the centre of a planetary map
	ElemMoon                       // a moon orbiting the primary
	ElemSystem                     // a star system in hyperspace
)

// Element is one body on a map. Positions are world units of the map.
type Element struct {
	Kind   ElementKind
	Name   string
	Pos    geom.Vec2
	Size   float64 // unrotated sprite side in pixels
	Tilt   float64
	Number int // designation number, selects the highlight hotkey

	System world.SystemID
	Body   world.PlanetID // planet or moon, NoPlanet for stars

	// Look.
	StarColor string
	StarSize  string
	BodyType  string
	Color     color.RGBA // orbit, axis and highlight colour

	// Orbital motion. Orbit is nil for bodies that do not orbit.
	Orbit      *Orbit
	OrbitAngle float64
	PulseFreq  float64

	// Axis is one end of the primary's axis line; the other end is -Axis.
	Axis geom.Vec2

	// Minimap placement, in screen pixels. Zero size means not shown.
	MinimapPos  geom.Vec2
	MinimapSize float64
}

// Orbit parameterises a body's motion around its centre.
type Orbit struct {
	Size     geom.Vec2 // ellipse semi-axes
	Initial  float64
	Rate     float64 // orbit.SolarRate or orbit.MoonRate
	Mass     float64 // mass of the orbited body
	Distance float64

	// Minimap ellipse around MinimapCenter, zero when not drawn.
	MinimapCenter geom.Vec2
	MinimapSize   geom.Vec2
}

// Angle returns the orbital angle at time.
func (o *Orbit) Angle(time float64) float64 {
	return orbit.OrbitAngle(o.Initial, o.Rate, o.Mass, o.Distance, time)
}

// Ellipse returns the orbit path's bounding box.
func (o *Orbit) Ellipse() geom.Rect {
	return geom.Rect{X: -o.Size.X, Y: -o.Size.Y, W: 2 * o.Size.X, H: 2 * o.Size.Y}
}

// Natural reports whether the element is a planet or moon that can be
// landed on or targeted by designation.
func (e *Element) Natural() bool {
	return e.Kind == ElemPlanet || e.Kind == ElemPrimary || e.Kind == ElemMoon
}

// HasOrbit reports whether the element moves around its map centre.
func (e *Element) HasOrbit() bool { return e.Orbit != nil }

// Bounds is the axis-aligned box of the tilted sprite.
func (e *Element) Bounds() geom.Rect {
	side := geom.RotatedExtent(e.Size, e.Tilt)
	return geom.RectAround(e.Pos, side, side)
}

// Radius is the collision radius, half the sprite's inscribed radius.
func (e *Element) Radius() float64 {
	b := e.Bounds()
	return 0.5 * 0.5 * math.Max(b.W, b.H)
}

// Touches reports whether a circle at c with radius r overlaps the element.
func (e *Element) Touches(c geom.Vec2, r float64) bool {
	rr := r + e.Radius()
	d := c.Sub(e.Pos)
	return d.Dot(d) < rr*rr
}

// update places the element on its orbit at time.
func (e *Element) update(time float64) {
	if e.Orbit == nil {
		return
	}
	e.OrbitAngle = e.Orbit.Angle(time)
	dir := geom.FromAngle(e.OrbitAngle)
	e.Pos = e.Orbit.Size.Mul(dir)
	if !e.Orbit.MinimapSize.IsZero() {
		e.MinimapPos = e.Orbit.MinimapCenter.Add(e.Orbit.MinimapSize.Mul(dir))
	}
}

// ElementKindName returns a label for an element kind.
func ElementKindName(k ElementKind) string {
	switch k {
	case ElemStar:
		return "Star"
	case ElemPlanet:
		return "Planet"
	case ElemPrimary:
		return "Planet"
	case ElemMoon:
		return "Moon"
	case ElemSystem:
		return "Star system"
	default:
		return "Unknown"
	}
}

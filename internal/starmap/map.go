package starmap

import (
	"math"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/orbit"
	"github.com/spacehole-rogue/starlanes/internal/world"
)

// MapKind identifies the navigation scale a map belongs to.
type MapKind uint8

const (
	MapSolarSystem MapKind = iota
	MapPlanetarySystem
	MapHyperSpace
)

// Map holds the elements of one navigation scale.
type Map struct {
	Kind     MapKind
	Elements []Element
	// HalfSize is the boundary of the map; leaving it changes scale.
	// Hyperspace is unbounded and leaves it zero.
	HalfSize     geom.Vec2
	Scale        float64 // ship sprite and motion scale
	MinimapScale float64

	System world.SystemID
	Planet world.PlanetID
}

// Hyperspace star sprite sides by size class.
var hyperStarSizes = map[string]float64{"s": 16, "m": 24, "l": 32}

// NewSolarSystem lays out sys: its star at the origin and each planet on
// its orbit at time.
func NewSolarSystem(cat *world.Catalog, sys *world.System, view geom.Viewport, time float64) *Map {
	starF := math.Cbrt(orbit.StarScale(sys.Radius))
	scale := 1 / (starF * starF)
	maxOrbit, maxRadius := sys.PlanetOrbit.Max, sys.PlanetRadius.Max
	minimap := orbit.SolarMinimapScale(sys.Radius, maxOrbit, maxRadius)
	m := &Map{
		Kind: MapSolarSystem,
		HalfSize: geom.V(
			scale*orbit.SolarExtent(sys.Radius, maxOrbit, maxRadius, view.Width),
			scale*orbit.SolarExtent(sys.Radius, maxOrbit, maxRadius, view.Height),
		),
		Scale:        scale,
		MinimapScale: minimap / scale,
		System:       sys.ID,
		Planet:       world.NoPlanet,
	}

	m.Elements = append(m.Elements, Element{
		Kind:        ElemStar,
		Name:        sys.Name,
		Size:        starF * view.MinDim(),
		System:      sys.ID,
		Body:        world.NoPlanet,
		StarColor:   sys.Color,
		StarSize:    sys.Size,
		Color:       orbit.TemperatureColor(sys.Temperature),
		MinimapPos:  view.MinimapCenter(),
		MinimapSize: minimap * starF * view.MinDim(),
	})

	for _, id := range sys.Planets {
		p := cat.Planet(id)
		radiusF := orbit.PlanetRadiusScale(p.Radius)
		spriteScale := scale * radiusF
		orbitSize := view.Size().Scale(scale * orbit.OrbitScale(sys.Radius, p.Orbit))
		m.Elements = append(m.Elements, Element{
			Kind:     ElemPlanet,
			Name:     p.Name,
			Size:     spriteScale * view.MinDim(),
			Tilt:     float64(p.Tilt),
			Number:   p.Number,
			System:   sys.ID,
			Body:     p.ID,
			BodyType: p.Type,
			Color:    orbit.TemperatureColor(p.Temperature),
			Orbit: &Orbit{
				Size:          orbitSize,
				Initial:       p.InitialAngle,
				Rate:          orbit.SolarRate,
				Mass:          sys.Mass,
				Distance:      p.Orbit,
				MinimapCenter: view.MinimapCenter(),
				MinimapSize:   orbitSize.Scale(geom.MinimapSizeMult * m.MinimapScale),
			},
			PulseFreq:   0.25 / math.Sqrt(radiusF),
			MinimapSize: m.MinimapScale * spriteScale * view.MinDim(),
		})
	}
	m.Update(time)
	return m
}

// NewPlanetarySystem lays out planet p at the origin with its moons on
// their orbits at time.
func NewPlanetarySystem(cat *world.Catalog, p *world.Planet, view geom.Viewport, time float64) *Map {
	sys := cat.SystemOf(p)
	maxOrbit, maxRadius := p.MoonOrbit.Max, p.MoonRadius.Max
	half := geom.V(
		orbit.PlanetaryExtent(p.Radius, maxOrbit, maxRadius, view.Width),
		orbit.PlanetaryExtent(p.Radius, maxOrbit, maxRadius, view.Height),
	)
	scale := 0.5 * math.Min(view.Width/half.X, view.Height/half.Y)
	m := &Map{
		Kind:     MapPlanetarySystem,
		HalfSize: half.Scale(scale),
		Scale:    scale,
		System:   sys.ID,
		Planet:   p.ID,
	}

	// The axis line shows the direction of the star.
	sunward := orbit.OrbitAngle(p.InitialAngle, orbit.SolarRate, sys.Mass, p.Orbit, time)
	displayMult := view.MaxDim() / view.MinDim()
	m.Elements = append(m.Elements, Element{
		Kind:     ElemPrimary,
		Name:     p.Name,
		Size:     scale * orbit.PlanetaryPlanetScale(p.Radius) * view.MinDim(),
		Tilt:     float64(p.Tilt),
		Number:   p.Number,
		System:   sys.ID,
		Body:     p.ID,
		BodyType: p.Type,
		Color:    orbit.TemperatureColor(p.Temperature),
		Axis: geom.V(
			displayMult*view.Width*math.Sin(sunward),
			-displayMult*view.Height*math.Cos(sunward),
		),
	})

	for _, id := range p.Moons {
		moon := cat.Planet(id)
		radiusF := orbit.MoonRadiusScale(p.Radius, moon.Radius)
		m.Elements = append(m.Elements, Element{
			Kind:     ElemMoon,
			Name:     moon.Name,
			Size:     scale * radiusF * view.MinDim(),
			Tilt:     float64(p.Tilt),
			Number:   moon.Number,
			System:   sys.ID,
			Body:     moon.ID,
			BodyType: moon.Type,
			Color:    orbit.TemperatureColor(moon.Temperature),
			Orbit: &Orbit{
				Size:      view.Size().Scale(scale * orbit.PlanetaryOrbitScale(p.Radius, moon.Orbit)),
				Initial:   moon.InitialAngle,
				Rate:      orbit.MoonRate,
				Mass:      p.Mass,
				Distance:  moon.Orbit,
			},
			PulseFreq: 0.25 / math.Sqrt(radiusF),
		})
	}
	m.Update(time)
	return m
}

// NewHyperSpace places one element per star system at its galactic
// coordinates.
func NewHyperSpace(cat *world.Catalog) *Map {
	m := &Map{
		Kind:   MapHyperSpace,
		Scale:  1,
		System: -1,
		Planet: world.NoPlanet,
	}
	for _, sys := range cat.Systems() {
		size, ok := hyperStarSizes[sys.Size]
		if !ok {
			size = hyperStarSizes["m"]
		}
		m.Elements = append(m.Elements, Element{
			Kind:      ElemSystem,
			Name:      sys.Name,
			Pos:       orbit.CoordsToPos(sys.Coords),
			Size:      size,
			System:    sys.ID,
			Body:      world.NoPlanet,
			StarColor: sys.Color,
			StarSize:  sys.Size,
			Color:     orbit.TemperatureColor(sys.Temperature),
		})
	}
	return m
}

// Update moves orbiting elements to their positions at time.
func (m *Map) Update(time float64) {
	for i := range m.Elements {
		m.Elements[i].update(time)
	}
}

// Find returns the element called name.
func (m *Map) Find(name string) (*Element, bool) {
	for i := range m.Elements {
		if m.Elements[i].Name == name {
			return &m.Elements[i], true
		}
	}
	return nil, false
}

// FindNatural returns the planet or moon element called name.
func (m *Map) FindNatural(name string) (*Element, bool) {
	e, ok := m.Find(name)
	if !ok || !e.Natural() {
		return nil, false
	}
	return e, true
}

// Touching returns the elements a circle at c with radius r overlaps.
func (m *Map) Touching(c geom.Vec2, r float64) []*Element {
	var out []*Element
	for i := range m.Elements {
		if m.Elements[i].Touches(c, r) {
			out = append(out, &m.Elements[i])
		}
	}
	return out
}

// Bounded reports whether the map has an edge.
func (m *Map) Bounded() bool { return m.Kind != MapHyperSpace }

// MinimapPoint maps a world position into minimap screen space.
func (m *Map) MinimapPoint(view geom.Viewport, pos geom.Vec2) geom.Vec2 {
	return view.MinimapCenter().Add(pos.Scale(geom.MinimapSizeMult * m.MinimapScale))
}

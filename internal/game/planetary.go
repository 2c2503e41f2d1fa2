package game

import (
	"math"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/physics"
	"github.com/spacehole-rogue/starlanes/internal/starmap"
	"github.com/spacehole-rogue/starlanes/internal/world"
)

const planetaryExitReach = 1e3

// PlanetarySystemMode flies the player around a planet and its moons.
// It keeps the solar system mode it was entered from and returns to it
// when the ship leaves.
type PlanetarySystemMode struct {
	spaceMode
	Solar  *SolarSystemMode
	System *world.System
	Planet *world.Planet
	// PlanetPos is where the planet stood on the solar map at entry; the
	// ship reappears there on leaving.
	PlanetPos geom.Vec2
}

// NewPlanetarySystemMode enters planet's system directly, e.g. when
// restoring a saved game, building the parent solar mode on the way.
func NewPlanetarySystemMode(ctx *Context, planet *world.Planet, planetPos geom.Vec2, autopilot string) *PlanetarySystemMode {
	solar := NewSolarSystemMode(ctx, ctx.Catalog.SystemOf(planet), autopilot)
	pm := starmap.NewPlanetarySystem(ctx.Catalog, planet, ctx.View, ctx.Time)
	return newPlanetarySystemMode(solar, pm, planetPos, autopilot)
}

func newPlanetarySystemMode(solar *SolarSystemMode, pm *starmap.Map, planetPos geom.Vec2, autopilot string) *PlanetarySystemMode {
	ctx := solar.ctx
	mode := &PlanetarySystemMode{
		spaceMode: newSpaceMode(ctx, physics.Truespace, pm, autopilot),
		Solar:     solar,
		System:    solar.System,
		Planet:    ctx.Catalog.Planet(pm.Planet),
		PlanetPos: planetPos,
	}
	mode.stars = solar.stars
	mode.fade = NewFade(physics.Truespace.Color, 1)
	mode.retarget()
	return mode
}

func (m *PlanetarySystemMode) Kind() ModeKind { return ModePlanetarySystem }

func (m *PlanetarySystemMode) Status() Status { return m.status(ModePlanetarySystem, m.Planet.Name) }

func (m *PlanetarySystemMode) retarget() {
	if m.autopilotText == planetPin {
		m.target = &Target{Kind: TargetDummy, Name: m.Planet.Name}
		return
	}
	m.target = resolveTarget(m.ctx.Catalog, m.smap, m.autopilotText, true)
}

func (m *PlanetarySystemMode) complete(text string) string {
	if auto := searchComplete(m.ctx.Catalog, m.ctx.Player.VisitedNames(), text); auto != "" {
		return auto
	}
	return localComplete(m.ctx.Catalog, m.System, m.Planet, text)
}

func (m *PlanetarySystemMode) HandleEvent(ev Event) Mode {
	m.handleEvent(ev, m)
	return m
}

func (m *PlanetarySystemMode) Update(in Input, dt float64) Mode {
	if t := m.target; t != nil {
		if t.Name == m.System.Name || (t.Name == m.Planet.Name && t.Kind != TargetDummy) {
			m.clearAutopilot()
		}
	}
	m.tick(in, dt)

	half := m.smap.HalfSize
	var border geom.Vec2
	if !m.paused {
		sh := m.shipHalfSize()
		border = half.Add(geom.V(sh, sh))
		goal, seek := m.goal(border)
		m.fly(in, goal, seek, dt)
	}

	// The planetary map always fits the screen.
	m.camera = m.ctx.View.HalfSize().Neg()
	m.stars.Scroll(m.camera)

	if !m.paused {
		if math.Abs(m.ship.Pos.X) > border.X || math.Abs(m.ship.Pos.Y) > border.Y {
			return m.leave()
		}
		m.land()
	}
	m.fade.Update(dt)
	m.ctx.tracePose("planetary")
	return m
}

// goal is a targeted moon, the planet itself, or out of the system for
// anything elsewhere.
func (m *PlanetarySystemMode) goal(border geom.Vec2) (geom.Vec2, bool) {
	switch {
	case m.target == nil:
		return geom.Vec2{}, false
	case m.target.Kind == TargetBody:
		return m.target.Element.Pos, true
	case m.target.Name == m.Planet.Name:
		return geom.Vec2{}, true
	default:
		return exitPoint(m.ship.Pos, border, planetaryExitReach), true
	}
}

// land sets the ship down on the body it touches and pauses.
func (m *PlanetarySystemMode) land() {
	hit := false
	for _, e := range m.smap.Touching(m.ship.Pos, m.ship.Radius()) {
		hit = true
		if !e.Natural() {
			continue
		}
		if !m.armed(m.target != nil && m.target.Name == e.Name) {
			continue
		}
		m.paused = true
		m.clearAutopilot()
		m.canCollide = false
		pose := physics.Pose{Pos: e.Pos, Angle: m.ship.Angle}
		m.ship.SetPose(pose)
		m.ctx.Player.RecordPose(pose)
		m.ctx.Log.Info("landed", "body", e.Name, "kind", starmap.ElementKindName(e.Kind))
		m.ctx.Comms.Add(m.ctx.Time, "Landed on "+e.Name+".", MsgLanding)
		m.survey(e.Body)
		break
	}
	if !hit {
		m.canCollide = true
	}
}

// survey reports a body the first time the player lands on it.
func (m *PlanetarySystemMode) survey(id world.PlanetID) {
	if id == world.NoPlanet {
		return
	}
	s, first := m.ctx.Surveys.Record(m.ctx.Catalog.Planet(id))
	if !first {
		return
	}
	m.ctx.Log.Info("body surveyed", "body", s.Body, "minerals", len(s.Minerals), "lifeforms", len(s.Lifeforms))
	for _, line := range s.Lines() {
		m.ctx.Comms.Add(m.ctx.Time, line, MsgInfo)
	}
}

// leave returns to the parent solar system at the planet's old place.
func (m *PlanetarySystemMode) leave() Mode {
	m.ctx.Player.SetPose(m.PlanetPos, geom.Vec2{}, m.ship.Angle, 0)
	solar := m.Solar
	solar.resetPlayer()
	solar.autopilotText = m.autopilotText
	solar.retarget()
	solar.fade.Skip()
	m.ctx.Log.Info("mode transition",
		"from", ModeKindName(ModePlanetarySystem), "to", ModeKindName(ModeSolarSystem),
		"system", m.System.Name)
	m.ctx.Comms.Add(m.ctx.Time, "Leaving orbit of "+m.Planet.Name+".", MsgNav)
	return solar
}

func (m *PlanetarySystemMode) Draw(r Renderer) {
	r.Clear(m.space.Color)
	m.stars.Draw(r)
	m.drawElements(r, m.camera)
	m.drawShip(r, m.camera)
	m.drawFrame(r, m.Planet.Name)
}

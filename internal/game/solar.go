package game

import (
	"math"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/orbit"
	"github.com/spacehole-rogue/starlanes/internal/physics"
	"github.com/spacehole-rogue/starlanes/internal/starmap"
	"github.com/spacehole-rogue/starlanes/internal/world"
)

// solarExitReach scales the border to put the exit goal far enough out
// that the ship never arrives at it.
const solarExitReach = 1e6

// SolarSystemMode flies the player around a star and its planets.
type SolarSystemMode struct {
	spaceMode
	System *world.System

	minimapStars *Starfield
	visited      bool
}

// NewSolarSystemMode enters sys with the player at its recorded pose.
func NewSolarSystemMode(ctx *Context, sys *world.System, autopilot string) *SolarSystemMode {
	return newSolarSystemMode(ctx, starmap.NewSolarSystem(ctx.Catalog, sys, ctx.View, ctx.Time), autopilot)
}

func newSolarSystemMode(ctx *Context, m *starmap.Map, autopilot string) *SolarSystemMode {
	mode := &SolarSystemMode{
		spaceMode: newSpaceMode(ctx, physics.Truespace, m, autopilot),
		System:    ctx.Catalog.System(m.System),
	}
	mode.stars, mode.minimapStars = SolarStarfield(mode.System.Name, m.Scale, ctx.View)
	mode.fade = NewFade(physics.Truespace.Color, 1/math.Sqrt(m.Scale))
	mode.retarget()
	return mode
}

func (m *SolarSystemMode) Kind() ModeKind { return ModeSolarSystem }

func (m *SolarSystemMode) Status() Status { return m.status(ModeSolarSystem, m.System.Name) }

func (m *SolarSystemMode) retarget() {
	m.target = resolveTarget(m.ctx.Catalog, m.smap, m.autopilotText, false)
}

func (m *SolarSystemMode) complete(text string) string {
	if auto := searchComplete(m.ctx.Catalog, m.ctx.Player.VisitedNames(), text); auto != "" {
		return auto
	}
	return localComplete(m.ctx.Catalog, m.System, nil, text)
}

func (m *SolarSystemMode) HandleEvent(ev Event) Mode {
	m.handleEvent(ev, m)
	return m
}

func (m *SolarSystemMode) Update(in Input, dt float64) Mode {
	if !m.visited {
		m.ctx.Player.Visit(m.System.Name)
		m.visited = true
	}
	if m.target != nil && m.target.Name == m.System.Name {
		m.clearAutopilot()
	}
	m.tick(in, dt)

	view := m.ctx.View
	half := m.smap.HalfSize
	var border geom.Vec2
	if !m.paused {
		sh := m.shipHalfSize()
		border = half.Add(view.HalfSize()).Add(geom.V(sh, sh))
		goal, seek := m.goal(border)
		m.fly(in, goal, seek, dt)
	}

	m.camera = m.ship.Pos.Clamp(half.Neg(), half).Sub(view.HalfSize())
	m.stars.Scroll(m.camera)
	m.minimapStars.Scroll(m.camera)

	if !m.paused {
		if math.Abs(m.ship.Pos.X) > border.X || math.Abs(m.ship.Pos.Y) > border.Y {
			return m.leave()
		}
		if next, ok := m.collide(); ok {
			return next
		}
	}
	m.fade.Update(dt)
	m.ctx.tracePose("solar")
	return m
}

// goal is where the autopilot flies: a targeted planet, or out of the
// system for anything elsewhere.
func (m *SolarSystemMode) goal(border geom.Vec2) (geom.Vec2, bool) {
	switch {
	case m.target == nil:
		return geom.Vec2{}, false
	case m.target.Kind == TargetBody:
		return m.target.Element.Pos, true
	default:
		return exitPoint(m.ship.Pos, border, solarExitReach), true
	}
}

func (m *SolarSystemMode) collide() (Mode, bool) {
	hit := false
	for _, e := range m.smap.Touching(m.ship.Pos, m.ship.Radius()) {
		hit = true
		if e.Natural() && e.HasOrbit() && m.armed(m.target.Is(e)) {
			return m.enter(e), true
		}
	}
	if !hit {
		m.canCollide = true
	}
	return nil, false
}

// leave drops the ship into hyperspace at the system's galactic position.
func (m *SolarSystemMode) leave() Mode {
	m.ctx.Player.SetPose(orbit.CoordsToPos(m.System.Coords), geom.Vec2{}, m.ship.Angle, 0)
	m.ctx.Log.Info("mode transition",
		"from", ModeKindName(ModeSolarSystem), "to", ModeKindName(ModeHyperSpace),
		"system", m.System.Name)
	m.ctx.Comms.Add(m.ctx.Time, "Leaving "+m.System.Name+" for hyperspace.", MsgNav)
	return NewHyperSpaceMode(m.ctx, m.autopilotText)
}

// enter moves into the planetary system of planet element e, placing the
// ship on the edge behind its heading.
func (m *SolarSystemMode) enter(e *starmap.Element) Mode {
	cat := m.ctx.Catalog
	planet := cat.Planet(e.Body)
	pm := starmap.NewPlanetarySystem(cat, planet, m.ctx.View, m.ctx.Time)
	angle := m.ship.Angle
	m.ctx.Player.SetPose(entryPoint(pm.HalfSize, angle), geom.Vec2{}, angle, 0)

	next := newPlanetarySystemMode(m, pm, e.Pos, m.autopilotText)
	next.snapNearSide(pm.HalfSize)
	m.ctx.Log.Info("mode transition",
		"from", ModeKindName(ModeSolarSystem), "to", ModeKindName(ModePlanetarySystem),
		"planet", planet.Name)
	m.ctx.Comms.Add(m.ctx.Time, "Entering orbit of "+planet.Name+".", MsgNav)
	return next
}

func (m *SolarSystemMode) Draw(r Renderer) {
	r.Clear(m.space.Color)
	m.stars.Draw(r)
	m.drawElements(r, m.camera)
	m.drawShip(r, m.camera)
	if m.minimap {
		m.drawMinimap(r, m.minimapStars)
	}
	m.drawFrame(r, m.System.Name)
}

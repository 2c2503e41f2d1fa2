package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/orbit"
	"github.com/spacehole-rogue/starlanes/internal/physics"
	"github.com/spacehole-rogue/starlanes/internal/starmap"
)

// spawnRate is the chance per second of a contact inside a sphere of
// influence.
const spawnRate = 0.1

// HyperSpaceMode flies the player between star systems.
type HyperSpaceMode struct {
	spaceMode
	Fleet *Fleet
	mask  *geom.Mask
}

// NewHyperSpaceMode enters hyperspace with the player at its recorded pose.
func NewHyperSpaceMode(ctx *Context, autopilot string) *HyperSpaceMode {
	m := &HyperSpaceMode{
		spaceMode: newSpaceMode(ctx, physics.Hyperspace, starmap.NewHyperSpace(ctx.Catalog), autopilot),
		Fleet:     NewFleet(),
	}
	m.stars = HyperStarfield(ctx.rng.Uint64(), ctx.View)
	m.fade = NewFade(physics.Hyperspace.Color, 0)
	m.mask = hullMask(m.ship.Size)
	m.retarget()
	return m
}

func (m *HyperSpaceMode) Kind() ModeKind { return ModeHyperSpace }

func (m *HyperSpaceMode) Status() Status { return m.status(ModeHyperSpace, "Hyperspace") }

func (m *HyperSpaceMode) retarget() {
	m.target = resolveSystem(m.ctx.Catalog, m.autopilotText)
}

func (m *HyperSpaceMode) complete(text string) string {
	return searchComplete(m.ctx.Catalog, m.ctx.Player.VisitedNames(), text)
}

func (m *HyperSpaceMode) HandleEvent(ev Event) Mode {
	m.handleEvent(ev, m)
	return m
}

func (m *HyperSpaceMode) Update(in Input, dt float64) Mode {
	m.tick(in, dt)
	view := m.ctx.View
	if !m.paused {
		var goal geom.Vec2
		if m.target != nil {
			goal = orbit.CoordsToPos(m.target.System.Coords)
		}
		m.fly(in, goal, m.target != nil, dt)
	}

	m.camera = m.ship.Pos.Sub(view.HalfSize())
	m.stars.Scroll(m.camera)

	if !m.paused {
		if m.ctx.Spawning && m.ctx.rng.Float64() < spawnRate*dt {
			m.spawn()
		}
		if lost := m.Fleet.Steer(m.ship.Pos, dt, 2*view.MaxDim()); lost > 0 {
			m.ctx.Log.Debug("contacts lost", "count", lost)
		}
		m.Fleet.Sweep()
		if next, ok := m.collide(); ok {
			return next
		}
	}
	m.ctx.tracePose("hyperspace")
	return m
}

func (m *HyperSpaceMode) collide() (Mode, bool) {
	hit := false
	for _, e := range m.smap.Touching(m.ship.Pos, m.ship.Radius()) {
		hit = true
		if e.Kind == starmap.ElemSystem && m.armed(m.target != nil && m.target.Name == e.Name) {
			return m.arrive(e), true
		}
	}
	if npc, ok := m.Fleet.Collide(m.ship, m.mask); ok {
		hit = true
		if m.canCollide {
			m.intercept(npc)
		}
	}
	if !hit {
		m.canCollide = true
	}
	return nil, false
}

// arrive enters the system of element e a quarter screen beyond its edge,
// behind the ship's heading.
func (m *HyperSpaceMode) arrive(e *starmap.Element) Mode {
	cat := m.ctx.Catalog
	sys := cat.System(e.System)
	sm := starmap.NewSolarSystem(cat, sys, m.ctx.View, m.ctx.Time)
	half := sm.HalfSize.Add(m.ctx.View.Size().Scale(0.25))
	angle := m.ship.Angle
	m.ctx.Player.SetPose(entryPoint(half, angle), geom.Vec2{}, angle, 0)

	next := newSolarSystemMode(m.ctx, sm, m.autopilotText)
	next.snapNearSide(half)
	m.ctx.Log.Info("mode transition",
		"from", ModeKindName(ModeHyperSpace), "to", ModeKindName(ModeSolarSystem),
		"system", sys.Name)
	m.ctx.Comms.Add(m.ctx.Time, "Arrived at "+sys.Name+".", MsgNav)
	return next
}

// spawn launches a ship of the first race, from a random starting point in
// the race list, whose sphere of influence holds the player.
func (m *HyperSpaceMode) spawn() {
	races := m.ctx.Catalog.Races()
	if len(races) == 0 {
		return
	}
	rng := m.ctx.rng
	start := rng.IntN(len(races))
	for i := range races {
		race := &races[(start+i)%len(races)]
		if !race.InfluenceAt(m.ship.Pos) {
			continue
		}
		spec, ok := m.ctx.Catalog.Ship(race.Ship)
		if !ok {
			m.ctx.Log.Warn("race ship not in catalog", "race", race.Name, "ship", race.Ship)
			return
		}
		offset := geom.FromAngle(rng.Float64() * geom.TwoPi).Scale(m.ctx.View.MaxDim())
		pose := physics.Pose{Pos: m.ship.Pos.Add(offset), Angle: rng.Float64() * geom.TwoPi}
		s := physics.NewShip(m.space, physics.NewNPCEngine(spec.Thrust, spec.AngThrust), spec.Mass, spec.MOI, spec.Area, pose)
		s.Size = shipSprite
		m.Fleet.Launch(Hull{Ship: s, Mask: hullMask(s.Size), Race: race.Name, Class: spec.Name, Rotate: race.IsAlly()})
		m.ctx.Log.Debug("contact spawned", "race", race.Name, "ship", spec.Name)
		m.ctx.Comms.Add(m.ctx.Time, "Contact: "+race.Name+" "+spec.Name+".", MsgWarning)
		return
	}
}

// intercept stops the player dead against an NPC ship, which leaves on
// the next tick.
func (m *HyperSpaceMode) intercept(npc ecs.Entity) {
	m.paused = true
	m.canCollide = false
	pose := m.ship.Pose
	pose.Vel, pose.AngVel = geom.Vec2{}, 0
	m.ship.SetPose(pose)
	m.ctx.Player.RecordPose(pose)
	h := m.Fleet.Hull(npc)
	m.ctx.Log.Info("intercepted", "race", h.Race, "ship", h.Class)
	m.ctx.Comms.Add(m.ctx.Time, "Intercepted by "+h.Race+" "+h.Class+".", MsgContact)
	m.Fleet.Doom(npc)
}

func (m *HyperSpaceMode) Draw(r Renderer) {
	r.Clear(m.space.Color)
	m.stars.Draw(r)
	m.drawElements(r, m.camera)
	m.Fleet.Each(func(_ ecs.Entity, h *Hull) {
		angle := 0.0
		if h.Rotate {
			angle = h.Ship.Angle
		}
		pos := h.Ship.Pos.Sub(m.camera)
		if onScreen(m.ctx.View, pos, h.Ship.Size) {
			r.Sprite(Sprite{Kind: SpriteShip, Name: h.Class, Pos: pos, Size: h.Ship.Size, Angle: angle, Color: colorWhite})
		}
	})
	m.drawShip(r, m.camera)
	m.drawFrame(r, "Hyperspace")
}

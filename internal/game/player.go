package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/physics"
	"github.com/spacehole-rogue/starlanes/internal/world"
)

// shipSprite is the unscaled size of a ship sprite in pixels.
var shipSprite = geom.V(40, 24)

// Player is the persistent record of the player's ship. Every mode builds
// its live ship from it and the ship's engine writes the pose back after
// each step.
type Player struct {
	ShipName string
	Spec     *world.ShipSpec
	Loadout  world.Loadout
	Engine   *physics.PlayerEngine
	Pose     physics.Pose
	Visited  map[string]bool
}

// NewPlayer fits ship shipName with the thrusters in entries.
func NewPlayer(cat *world.Catalog, shipName string, entries []world.LoadoutEntry, damp, angDamp float64) (*Player, error) {
	spec, ok := cat.Ship(shipName)
	if !ok {
		return nil, fmt.Errorf("unknown ship %q", shipName)
	}
	loadout, err := cat.Loadout(entries)
	if err != nil {
		return nil, fmt.Errorf("fit %s: %w", shipName, err)
	}
	p := &Player{
		ShipName: shipName,
		Spec:     spec,
		Loadout:  loadout,
		Visited:  make(map[string]bool),
	}
	p.Engine = physics.NewPlayerEngine(loadout.Thrusts(), damp, angDamp, p)
	return p, nil
}

// RecordPose implements physics.PoseRecorder.
func (p *Player) RecordPose(pose physics.Pose) { p.Pose = pose }

// SetPose places the player, e.g. on entering a new frame.
func (p *Player) SetPose(pos, vel geom.Vec2, angle, angVel float64) {
	p.Pose = physics.Pose{Pos: pos, Vel: vel, Angle: angle, AngVel: angVel}
}

// Refit replaces the thruster loadout.
func (p *Player) Refit(loadout world.Loadout) {
	p.Loadout = loadout
	p.Engine.SetLoadout(loadout.Thrusts())
}

// Visit records a star system as visited.
func (p *Player) Visit(system string) { p.Visited[strings.ToUpper(system)] = true }

// VisitedNames returns the upper-case names of visited systems, sorted.
func (p *Player) VisitedNames() []string {
	names := make([]string, 0, len(p.Visited))
	for n := range p.Visited {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Ship builds a live ship at the recorded pose for a map drawn at scale.
func (p *Player) Ship(space *physics.Space, scale float64) *physics.Ship {
	s := physics.NewShip(space, p.Engine, p.Spec.Mass, p.Spec.MOI, p.Spec.Area, p.Pose)
	s.Scale = scale
	s.Size = shipSprite.Scale(scale)
	return s
}

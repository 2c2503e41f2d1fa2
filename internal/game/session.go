package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/save"
	"github.com/spacehole-rogue/starlanes/internal/world"
)

// New games start in a Cruiser at the centre of Sol.
const (
	DefaultShip   = "Cruiser"
	DefaultSystem = "Sol"
	defaultDamp   = 0.05
)

// DefaultLoadout is the thruster fit of a new game's ship.
var DefaultLoadout = []world.LoadoutEntry{
	{Count: 16, Name: "Thermonuclear Thruster"},
	{Count: 2, Name: "Thermonuclear Retro-Thruster"},
	{Count: 2, Name: "Thermonuclear Lateral Stabiliser"},
	{Count: 12, Name: "Thermonuclear Turning Jet"},
}

// Session is a running game: the shared context and the current mode.
type Session struct {
	Ctx  *Context
	Mode Mode
}

// NewGame starts the default game, paused.
func NewGame(cat *world.Catalog, opts Options) (*Session, error) {
	player, err := NewPlayer(cat, DefaultShip, DefaultLoadout, defaultDamp, defaultDamp)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	sys, ok := cat.SystemByName(DefaultSystem)
	if !ok {
		return nil, fmt.Errorf("new game: no system %q", DefaultSystem)
	}
	player.Visit(sys.Name)
	ctx := NewContext(cat, player, opts)
	mode := NewSolarSystemMode(ctx, sys, "")
	mode.Pause()
	ctx.Comms.Add(ctx.Time, "Systems online. Press F1 to launch.", MsgInfo)
	return &Session{Ctx: ctx, Mode: mode}, nil
}

// Restore rebuilds a game from a saved record, paused. It fails when the
// record names a ship, thruster, system or planet the catalog lacks.
func Restore(cat *world.Catalog, rec *save.Record, opts Options) (*Session, error) {
	player, err := NewPlayer(cat, rec.Ship, rec.Loadout, rec.Damp, rec.AngDamp)
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	player.SetPose(rec.Pos, rec.Vel, rec.Angle, rec.AngVel)
	for _, name := range rec.Visited {
		player.Visit(name)
	}
	ctx := NewContext(cat, player, opts)
	ctx.Time = rec.Time

	var mode Mode
	switch rec.Mode {
	case save.ModeSolarSystem:
		sys, ok := cat.SystemByName(rec.System)
		if !ok {
			return nil, fmt.Errorf("restore: no system %q", rec.System)
		}
		mode = NewSolarSystemMode(ctx, sys, "")
	case save.ModePlanetarySystem:
		sys, ok := cat.SystemByName(rec.System)
		if !ok {
			return nil, fmt.Errorf("restore: no system %q", rec.System)
		}
		planet, ok := cat.PlanetOf(sys, rec.Planet)
		if !ok {
			return nil, fmt.Errorf("restore: %s has no planet %d", sys.Name, rec.Planet)
		}
		mode = NewPlanetarySystemMode(ctx, planet, rec.PlanetPos, "")
	case save.ModeHyperSpace:
		mode = NewHyperSpaceMode(ctx, "")
	default:
		return nil, fmt.Errorf("restore: unknown mode %q", rec.Mode)
	}
	mode.base().Pause()
	ctx.Comms.Add(ctx.Time, "Welcome back. Press F1 to resume.", MsgInfo)
	return &Session{Ctx: ctx, Mode: mode}, nil
}

// LoadOrNew restores slot name from store, falling back to a new game on
// any failure. Only a failure to start the new game is returned.
func LoadOrNew(ctx context.Context, store save.Store, name string, cat *world.Catalog, opts Options) (*Session, error) {
	log := opts.logger().With("component", "save", "slot", name)
	rec, err := store.Load(ctx, name)
	if err == nil {
		s, rerr := Restore(cat, rec, opts)
		if rerr == nil {
			log.Info("game restored", "mode", rec.Mode, "system", rec.System)
			return s, nil
		}
		err = rerr
	}
	if errors.Is(err, save.ErrNotFound) {
		log.Info("no saved game, starting new game")
	} else {
		log.Warn("saved game unusable, starting new game", "error", err)
	}
	return NewGame(cat, opts)
}

// Snapshot captures the session as a save record.
func (s *Session) Snapshot() *save.Record {
	p := s.Ctx.Player
	rec := &save.Record{
		Ship:    p.ShipName,
		Loadout: p.Loadout.Entries(),
		Damp:    p.Engine.DampFactor,
		AngDamp: p.Engine.AngDampFactor,
		Pos:     p.Pose.Pos,
		Vel:     p.Pose.Vel,
		Angle:   p.Pose.Angle,
		AngVel:  p.Pose.AngVel,
		Time:    s.Ctx.Time,
		Visited: p.VisitedNames(),
	}
	switch m := s.Mode.(type) {
	case *SolarSystemMode:
		rec.Mode, rec.System = save.ModeSolarSystem, m.System.Name
	case *PlanetarySystemMode:
		rec.Mode, rec.System = save.ModePlanetarySystem, m.System.Name
		rec.Planet, rec.PlanetPos = m.Planet.Number, m.PlanetPos
	case *HyperSpaceMode:
		rec.Mode = save.ModeHyperSpace
	default:
		panic(fmt.Sprintf("snapshot: unknown mode %T", s.Mode))
	}
	return rec
}

// Save writes the session to slot name.
func (s *Session) Save(ctx context.Context, store save.Store, name string) error {
	if err := store.Save(ctx, name, s.Snapshot()); err != nil {
		return err
	}
	s.Ctx.Log.Info("game saved", "slot", name, "mode", ModeKindName(s.Mode.Kind()))
	return nil
}

// HandleEvent passes a key event to the current mode.
func (s *Session) HandleEvent(ev Event) {
	s.Mode = s.Mode.HandleEvent(ev)
}

// Update runs one tick of the current mode, switching mode when it says so.
func (s *Session) Update(in Input, dt float64) {
	next := s.Mode.Update(in, dt)
	if next == nil {
		panic("mode update returned no mode")
	}
	s.Mode = next
}

// Draw renders the current mode.
func (s *Session) Draw(r Renderer) {
	s.Mode.Draw(r)
}

// View is the display size the session lays out for.
func (s *Session) View() geom.Viewport { return s.Ctx.View }

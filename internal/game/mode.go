package game

import (
	"math"
	"strings"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/physics"
	"github.com/spacehole-rogue/starlanes/internal/starmap"
)

// ModeKind identifies a navigation mode.
type ModeKind uint8

const (
	ModeSolarSystem ModeKind = iota
	ModePlanetarySystem
	ModeHyperSpace
)

// ModeKindName returns a label for a mode kind.
func ModeKindName(k ModeKind) string {
	switch k {
	case ModeSolarSystem:
		return "Solar system"
	case ModePlanetarySystem:
		return "Planetary system"
	case ModeHyperSpace:
		return "Hyperspace"
	default:
		return "Unknown"
	}
}

// Mode is one navigation scale. Exactly one mode is current at a time;
// HandleEvent and Update return the mode that is current afterwards,
// which is the receiver unless the ship crossed into another frame.
type Mode interface {
	Kind() ModeKind
	HandleEvent(ev Event) Mode
	Update(in Input, dt float64) Mode
	Draw(r Renderer)
	Status() Status
	base() *spaceMode
}

// Status is a snapshot of a mode for the HUD and for logging.
type Status struct {
	Kind        ModeKind
	Location    string
	Paused      bool
	Searching   bool
	SearchText  string
	SearchValid bool
	Autopilot   string
	Target      *Target
	Minimap     bool
	Pose        physics.Pose
}

// navigator is the part of search and targeting that differs per mode.
type navigator interface {
	complete(text string) string
	retarget()
}

// spaceMode is the state and behaviour every mode shares: the live ship,
// the map, the overlays and the autopilot.
type spaceMode struct {
	ctx    *Context
	space  *physics.Space
	smap   *starmap.Map
	scale  float64
	ship   *physics.Ship
	stars  *Starfield
	fade   *Fade
	camera geom.Vec2

	minimap    bool
	paused     bool
	canCollide bool

	autopilotText string
	target        *Target

	searching   bool
	searchText  string
	searchValid bool

	digits [10]bool
}

func newSpaceMode(ctx *Context, space *physics.Space, m *starmap.Map, autopilot string) spaceMode {
	s := spaceMode{
		ctx:           ctx,
		space:         space,
		smap:          m,
		scale:         m.Scale,
		autopilotText: autopilot,
		searchValid:   true,
	}
	s.resetPlayer()
	return s
}

func (s *spaceMode) base() *spaceMode { return s }

// resetPlayer rebuilds the live ship from the player record and disarms
// collisions.
func (s *spaceMode) resetPlayer() {
	s.ship = s.ctx.Player.Ship(s.space, s.scale)
	s.canCollide = false
}

// Pause stops the simulation until unpaused by F1.
func (s *spaceMode) Pause() { s.paused = true }

// Ship returns the live player ship.
func (s *spaceMode) Ship() *physics.Ship { return s.ship }

// Map returns the mode's map.
func (s *spaceMode) Map() *starmap.Map { return s.smap }

func (s *spaceMode) status(kind ModeKind, location string) Status {
	return Status{
		Kind:        kind,
		Location:    location,
		Paused:      s.paused,
		Searching:   s.searching,
		SearchText:  s.searchText,
		SearchValid: s.searchValid,
		Autopilot:   s.autopilotText,
		Target:      s.target,
		Minimap:     s.minimap,
		Pose:        s.ship.Pose,
	}
}

func (s *spaceMode) clearAutopilot() {
	s.autopilotText = ""
	s.target = nil
}

// handleEvent runs the overlay toggles, the search box and the autopilot
// hotkeys.
func (s *spaceMode) handleEvent(ev Event, nav navigator) {
	switch {
	case ev.Key == KeyPause:
		if !s.searching {
			s.paused = !s.paused
		}
	case ev.Key == KeySearch:
		if !s.paused || s.searching {
			s.searching = !s.searching
			s.paused = s.searching
			s.searchText = ""
			s.searchValid = true
		}
	case ev.Key == KeyMinimap:
		if !s.paused && !s.searching {
			s.minimap = !s.minimap
		}
	case s.searching:
		s.searchEvent(ev, nav)
	case s.paused || ev.IsText():
	case ev.Key == KeyPlanet:
		s.autopilotText = planetPin
		nav.retarget()
	default:
		s.clearAutopilot()
	}
}

// searchEvent edits the search text. Enter engages the autopilot only
// when the text is already its own completion.
func (s *spaceMode) searchEvent(ev Event, nav navigator) {
	if ev.Key == KeyEnter {
		auto := nav.complete(s.searchText)
		s.autopilotText = SearchConvert(auto)
		if s.autopilotText != SearchConvert(s.searchText) {
			s.searchText = strings.ToUpper(auto)
			return
		}
		nav.retarget()
		if s.target != nil {
			s.paused, s.searching = false, false
			s.ctx.Log.Info("autopilot engaged", "target", s.target.Name, "kind", TargetKindName(s.target.Kind))
			s.ctx.Comms.Add(s.ctx.Time, "Course laid in for "+s.target.Name+".", MsgNav)
		}
		return
	}

	accept := false
	switch {
	case ev.Key == KeyEscape:
		s.paused, s.searching = false, false
	case ev.Key == KeyBackspace:
		if s.searchText != "" {
			s.searchText = s.searchText[:len(s.searchText)-1]
		}
	case ev.Key == KeyDelete:
		s.searchText = ""
	case ev.Key == KeyTab:
		accept = true
	case ev.IsText() && isText(ev.Text):
		s.searchText += strings.ToUpper(string(ev.Text))
	}
	s.searchText = SingleSpaces(s.searchText, false, true)
	auto := nav.complete(s.searchText)
	s.searchValid = auto != ""
	if s.searchValid && accept {
		s.searchText = strings.ToUpper(auto)
	}
}

// tick advances the clocks and the orbits, and samples the highlight keys.
func (s *spaceMode) tick(in Input, dt float64) {
	if s.paused {
		s.ctx.Clock += dt
	} else {
		s.ctx.advance(dt)
		s.smap.Update(s.ctx.Time)
	}
	for n := range s.digits {
		s.digits[n] = in.Held(DigitKey(n))
	}
}

// fly moves the ship under manual control, or toward goal when seek is set.
func (s *spaceMode) fly(in Input, goal geom.Vec2, seek bool, dt float64) {
	c := ManualControl(in)
	if seek {
		c = Autopilot(s.ship, goal)
	}
	s.ship.Update(c, dt)
}

// shipHalfSize is half the larger side of the rotated ship box.
func (s *spaceMode) shipHalfSize() float64 {
	b := s.ship.Bounds()
	return 0.5 * math.Max(b.W, b.H)
}

// armed reports whether touching e should trigger: with no target once the
// ship has been clear of everything for a tick, otherwise only for the
// target.
func (s *spaceMode) armed(matches bool) bool {
	if s.target == nil {
		return s.canCollide
	}
	return matches
}

// snapNearSide puts a ship arriving for an orbiting target on the edge
// facing the target's side of the map, heading inward.
func (s *spaceMode) snapNearSide(half geom.Vec2) {
	if !s.target.Orbiting() {
		return
	}
	angle := geom.PositiveFmod(math.Pi+s.target.Element.OrbitAngle, geom.TwoPi)
	p := &s.ctx.Player.Pose
	p.Pos = entryPoint(half, angle)
	p.Angle = angle
	s.ship.SetPose(*p)
}

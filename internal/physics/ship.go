package physics

import (
	"math"

	"github.com/spacehole-rogue/starlanes/internal/geom"
)

// Pose is the kinematic state carried across mode transitions.
type Pose struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Angle  float64
	AngVel float64
}

// Ship is a live ship in one space. Scale ties world units to the active
// map's zoom; Size is the sprite size in screen pixels before rotation.
type Ship struct {
	Pose
	Dir   geom.Vec2
	Mass  float64
	MOI   float64
	Area  float64
	Scale float64
	Size  geom.Vec2
	Space *Space
	Drive Driver
}

// NewShip creates a ship at pose p.
func NewShip(space *Space, drive Driver, mass, moi, area float64, p Pose) *Ship {
	return &Ship{
		Pose:  p,
		Dir:   geom.FromAngle(p.Angle),
		Mass:  mass,
		MOI:   moi,
		Area:  area,
		Scale: 1,
		Space: space,
		Drive: drive,
	}
}

// Update advances the ship one tick with its own driver.
func (s *Ship) Update(c Control, dt float64) {
	s.Drive.Step(s, c, dt)
}

// SetPose overwrites the kinematic state and re-derives the heading.
func (s *Ship) SetPose(p Pose) {
	s.Pose = p
	s.Dir = geom.FromAngle(p.Angle)
}

// Bounds is the axis-aligned box of the rotated sprite around Pos.
func (s *Ship) Bounds() geom.Rect {
	sz := geom.RotatedSize(s.Size.X, s.Size.Y, s.Angle)
	return geom.RectAround(s.Pos, sz.X, sz.Y)
}

// Radius is the collision radius: the inscribed circle of the rotated box.
func (s *Ship) Radius() float64 {
	b := s.Bounds()
	return geom.InvSqrt2 * 0.5 * math.Max(b.W, b.H)
}

// HalfSize is half the rotated sprite box.
func (s *Ship) HalfSize() geom.Vec2 {
	return s.Bounds().Size().Scale(0.5)
}

package game

import (
	"math"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/physics"
)

// seekSharpness is the exponent of the heading-seek thrust curve. Thrust
// falls off steeply as soon as the ship stops facing its goal.
const seekSharpness = 24

// Autopilot returns the control that turns s toward goal and thrusts
// once it faces it, braking all the while.
func Autopilot(s *physics.Ship, goal geom.Vec2) physics.Control {
	dir := goal.Sub(s.Pos).Unit()
	mult := math.Pow(0.5+0.5*dir.Dot(geom.FromAngle(s.Angle)), seekSharpness)
	goalAngle := geom.PositiveFmod(dir.Angle(), geom.TwoPi)
	diff := math.Mod(geom.TwoPi+goalAngle-s.Angle, geom.TwoPi)
	lat := mult - 1
	if diff < math.Pi {
		lat = 1 - mult
	}
	return physics.Control{Lateral: lat, Longitudinal: mult, Brake: true}
}

// ManualControl reads the flight keys.
func ManualControl(in Input) physics.Control {
	var c physics.Control
	if in.Held(KeyUp) {
		c.Longitudinal++
	}
	if in.Held(KeyLeft) {
		c.Lateral--
	}
	if in.Held(KeyDown) {
		c.Longitudinal--
	}
	if in.Held(KeyRight) {
		c.Lateral++
	}
	c.Strafe = in.Held(KeyStrafe)
	c.Brake = in.Held(KeyBrake)
	return c
}

// headingMult projects a heading onto its dominant axis: the dominant
// component becomes its sign, the other keeps its value.
func headingMult(angle float64) geom.Vec2 {
	c, s := math.Cos(angle), math.Sin(angle)
	if math.Abs(c) > math.Abs(s) {
		return geom.V(geom.Sign(c), s)
	}
	return geom.V(c, geom.Sign(s))
}

// entryPoint is where a ship flying along angle enters a frame bounded by
// half: on the edge behind it.
func entryPoint(half geom.Vec2, angle float64) geom.Vec2 {
	return half.Mul(headingMult(angle)).Neg()
}

// exitPoint is a goal far beyond the nearest edge of a frame bounded by
// border, used to fly out toward a target elsewhere.
func exitPoint(pos, border geom.Vec2, far float64) geom.Vec2 {
	t := border.Scale(far)
	if border.X-math.Abs(pos.X) > border.Y-math.Abs(pos.Y) {
		y := -t.Y
		if pos.Y > 0 {
			y = t.Y
		}
		return geom.V(pos.X, y)
	}
	x := -t.X
	if pos.X > 0 {
		x = t.X
	}
	return geom.V(x, pos.Y)
}

package physics

import (
	"math"

	"github.com/spacehole-rogue/starlanes/internal/geom"
)

// Control is the per-tick command fed to an engine.
type Control struct {
	Lateral      float64 // -1..1, turn (or strafe) to port/starboard
	Longitudinal float64 // -1..1, forward (positive) or retro thrust
	Strafe       bool    // lateral input drives side thrusters instead of turning
	Brake        bool    // apply damping toward rest
}

// Driver advances a ship by one physics step.
type Driver interface {
	Step(s *Ship, c Control, dt float64)
}

// Engine holds thrust magnitudes and the damping derived from them.
type Engine struct {
	ForwardThrust float64
	RetroThrust   float64
	SideThrust    float64
	AngThrust     float64
	DampFactor    float64
	AngDampFactor float64

	forwardDamping float64
	retroDamping   float64
	sideDamping    float64
	angDamping     float64
}

// NewEngine creates an engine and derives its damping.
func NewEngine(forward, retro, side, ang, damp, angDamp float64) *Engine {
	e := &Engine{
		ForwardThrust: forward,
		RetroThrust:   retro,
		SideThrust:    side,
		AngThrust:     ang,
		DampFactor:    damp,
		AngDampFactor: angDamp,
	}
	e.setDamping()
	return e
}

// setDamping derives per-axis damping. Angular damping scales with
// DampFactor, AngDampFactor only switches it on.
func (e *Engine) setDamping() {
	e.forwardDamping = e.DampFactor * e.ForwardThrust
	e.retroDamping = e.DampFactor * e.RetroThrust
	e.sideDamping = e.DampFactor * e.SideThrust
	e.angDamping = e.DampFactor * e.AngThrust
}

// Step implements Driver.
func (e *Engine) Step(s *Ship, c Control, dt float64) {
	space := s.Space
	sideways := c.Strafe && e.SideThrust > 0
	maxFrictionMult := s.Mass / dt
	maxAngFrictionMult := s.MOI / dt

	// Linear drag, capped so one step can at most halve the speed.
	sqrtArea := math.Sqrt(s.Area)
	velDir, speed := s.Vel.Norm()
	friction := (space.LinMu1*sqrtArea + space.LinMu2*s.Area*speed) * speed
	if maxFriction := 0.5 * maxFrictionMult * speed; friction > maxFriction {
		friction = maxFriction
	}
	var latThrust geom.Vec2
	if sideways {
		latThrust = s.Dir.Perp().Scale(c.Lateral * e.SideThrust)
	}
	longThrust := c.Longitudinal * e.RetroThrust
	if c.Longitudinal > 0 {
		longThrust = c.Longitudinal * e.ForwardThrust
	}
	acc := latThrust.Add(s.Dir.Scale(longThrust)).Sub(velDir.Scale(friction)).Scale(1 / s.Mass)
	s.Vel = s.Vel.Add(acc.Scale(dt))

	// Angular drag, same cap, scaled by area^1.5.
	area32 := sqrtArea * s.Area
	angSpeed, angSign := math.Abs(s.AngVel), angularSign(s.AngVel)
	angFriction := (space.RotMu1*area32 + space.RotMu2*area32*s.Area*angSpeed) * angSpeed
	if maxAngFriction := 0.5 * maxAngFrictionMult * angSpeed; angFriction > maxAngFriction {
		angFriction = maxAngFriction
	}
	angThrust := c.Lateral * e.AngThrust
	if sideways {
		angThrust = 0
	}
	s.AngVel += dt * (angThrust - angSign*angFriction) / s.MOI

	if c.Brake {
		e.damp(s, dt, maxFrictionMult, maxAngFrictionMult)
	}

	s.Pos = s.Pos.Add(s.Vel.Scale(s.Scale * dt))
	s.Angle = geom.PositiveFmod(s.Angle+dt*s.AngVel, geom.TwoPi)
	s.Dir = geom.FromAngle(s.Angle)
}

// damp pushes velocity and angular velocity toward rest. When the damping
// available in one step exceeds the momentum left, motion stops exactly.
func (e *Engine) damp(s *Ship, dt, maxFrictionMult, maxAngFrictionMult float64) {
	if e.DampFactor > 0 {
		velDir, speed := s.Vel.Norm()
		cos := s.Dir.Dot(velDir)
		damping := e.forwardDamping
		if cos > 0 {
			damping = e.retroDamping
		}
		if sinSq := 1 - cos*cos; sinSq > 0 {
			damping += math.Sqrt(sinSq) * e.sideDamping
		}
		if damping > maxFrictionMult*speed {
			s.Vel = geom.Vec2{}
		} else {
			s.Vel = s.Vel.Sub(velDir.Scale(dt * damping / s.Mass))
		}
	}

	if e.AngDampFactor > 0 {
		angSpeed, angSign := math.Abs(s.AngVel), angularSign(s.AngVel)
		if e.angDamping > maxAngFrictionMult*angSpeed {
			s.AngVel = 0
		} else {
			s.AngVel -= dt * angSign * e.angDamping / s.MOI
		}
	}
}

func angularSign(w float64) float64 {
	if w > 0 {
		return 1
	}
	return -1
}

package physics

import (
	"math"
	"testing"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShip(space *Space, drive Driver, p Pose) *Ship {
	return NewShip(space, drive, 1000, 400, 4, p)
}

func TestStepAtRestStaysPut(t *testing.T) {
	e := NewEngine(100, 20, 10, 50, 0.05, 0.05)
	s := testShip(Truespace, e, Pose{Pos: geom.V(3, -7)})

	s.Update(Control{}, 0.016)

	assert.Equal(t, geom.V(3, -7), s.Pos)
	assert.True(t, s.Vel.IsZero())
	assert.Equal(t, 0.0, s.AngVel)
	assert.Equal(t, 0.0, s.Angle)
}

func TestCoastingSpeedDecaysMonotonically(t *testing.T) {
	for _, space := range []*Space{Truespace, Hyperspace, Quasispace} {
		t.Run(space.Name, func(t *testing.T) {
			e := NewEngine(100, 20, 10, 50, 0, 0)
			s := testShip(space, e, Pose{Vel: geom.V(30, 40)})
			prev := s.Vel.Len()
			for i := 0; i < 2000; i++ {
				s.Update(Control{}, 0.016)
				speed := s.Vel.Len()
				require.LessOrEqual(t, speed, prev)
				// Drag never reverses the velocity.
				require.GreaterOrEqual(t, s.Vel.Dot(geom.V(3, 4)), 0.0)
				prev = speed
			}
		})
	}
}

func TestDragCapHalvesSpeedAtMost(t *testing.T) {
	// Huge area makes the raw drag far larger than the cap.
	e := NewEngine(0, 0, 0, 0, 0, 0)
	s := NewShip(Hyperspace, e, 1, 1, 1e6, Pose{Vel: geom.V(10, 0)})

	s.Update(Control{}, 0.1)

	assert.InDelta(t, 5.0, s.Vel.X, 1e-9)
}

func TestBrakeSnapsToExactZero(t *testing.T) {
	e := NewEngine(1000, 1000, 1000, 1000, 1, 1)
	s := testShip(Truespace, e, Pose{Vel: geom.V(0.001, -0.002), AngVel: 0.0005})

	s.Update(Control{Brake: true}, 0.016)

	assert.Equal(t, geom.Vec2{}, s.Vel)
	assert.Equal(t, 0.0, s.AngVel)
}

func TestBrakeWithoutDampingDoesNothing(t *testing.T) {
	e := NewEngine(1000, 1000, 1000, 1000, 0, 0)
	s := testShip(Truespace, e, Pose{Vel: geom.V(0.001, 0)})

	s.Update(Control{Brake: true}, 0.016)

	assert.Greater(t, s.Vel.X, 0.0)
}

func TestBrakeDecaysAngularVelocityToZero(t *testing.T) {
	e := NewEngine(100, 100, 100, 100, 1, 1)
	s := testShip(Truespace, e, Pose{AngVel: -0.5})
	for i := 0; i < 1000 && s.AngVel != 0; i++ {
		s.Update(Control{Brake: true}, 0.016)
		require.LessOrEqual(t, s.AngVel, 0.0, "angular damping overshot at tick %d", i)
	}
	assert.Equal(t, 0.0, s.AngVel)
}

func TestAngleStaysNormalised(t *testing.T) {
	e := NewEngine(100, 20, 10, 500, 0, 0)
	for _, lat := range []float64{-1, 1} {
		s := testShip(Hyperspace, e, Pose{Angle: 0.1})
		for i := 0; i < 500; i++ {
			s.Update(Control{Lateral: lat}, 0.05)
			require.GreaterOrEqual(t, s.Angle, 0.0)
			require.Less(t, s.Angle, geom.TwoPi)
			require.InDelta(t, 1.0, s.Dir.Len(), 1e-12)
		}
	}
}

func TestLongitudinalThrustUsesForwardOrRetro(t *testing.T) {
	e := NewEngine(100, 10, 0, 0, 0, 0)
	fwd := testShip(Truespace, e, Pose{})
	back := testShip(Truespace, e, Pose{})

	fwd.Update(Control{Longitudinal: 1}, 0.01)
	back.Update(Control{Longitudinal: -1}, 0.01)

	assert.InDelta(t, 100*0.01/1000, fwd.Vel.X, 1e-12)
	assert.InDelta(t, -10*0.01/1000, back.Vel.X, 1e-12)
}

func TestStrafeReplacesTurning(t *testing.T) {
	e := NewEngine(0, 0, 50, 80, 0, 0)
	s := testShip(Truespace, e, Pose{})

	s.Update(Control{Lateral: 1, Strafe: true}, 0.01)

	assert.Equal(t, 0.0, s.AngVel)
	assert.InDelta(t, 50*0.01/1000, s.Vel.Y, 1e-12)

	noSide := NewEngine(0, 0, 0, 80, 0, 0)
	s = testShip(Truespace, noSide, Pose{})
	s.Update(Control{Lateral: 1, Strafe: true}, 0.01)
	assert.Greater(t, s.AngVel, 0.0)
}

func TestPositionScalesWithMapScale(t *testing.T) {
	e := NewEngine(0, 0, 0, 0, 0, 0)
	a := testShip(Truespace, e, Pose{Vel: geom.V(1, 0)})
	b := testShip(Truespace, e, Pose{Vel: geom.V(1, 0)})
	b.Scale = 3

	a.Update(Control{}, 0.1)
	b.Update(Control{}, 0.1)

	assert.InDelta(t, 3*a.Pos.X, b.Pos.X, 1e-12)
}

type poseLog []Pose

func (l *poseLog) RecordPose(p Pose) { *l = append(*l, p) }

func TestPlayerEngineSumsLoadoutAndRecords(t *testing.T) {
	var log poseLog
	e := NewPlayerEngine([]Thrust{
		{Forward: 10, Angular: 1},
		{Forward: 10, Angular: 1},
		{Retro: 4, Side: 2},
	}, 0.5, 0.5, &log)

	assert.Equal(t, 20.0, e.ForwardThrust)
	assert.Equal(t, 4.0, e.RetroThrust)
	assert.Equal(t, 2.0, e.SideThrust)
	assert.Equal(t, 2.0, e.AngThrust)
	assert.Equal(t, 10.0, e.forwardDamping)
	assert.Equal(t, 1.0, e.angDamping)

	s := testShip(Truespace, e, Pose{})
	s.Update(Control{Longitudinal: 1}, 0.016)
	s.Update(Control{Longitudinal: 1}, 0.016)
	require.Len(t, log, 2)
	assert.Equal(t, s.Pose, log[1])

	e.SetLoadout(nil)
	assert.Zero(t, e.ForwardThrust)
	assert.Zero(t, e.forwardDamping)

	e.SetDampFactors(0, 0)
	assert.Zero(t, e.DampFactor)
}

func TestNPCEngineProfile(t *testing.T) {
	e := NewNPCEngine(1000, 30)
	assert.InDelta(t, 800, e.ForwardThrust, 1e-9)
	assert.InDelta(t, 100, e.RetroThrust, 1e-9)
	assert.InDelta(t, 100, e.SideThrust, 1e-9)
	assert.Equal(t, 30.0, e.AngThrust)
}

func TestShipRadiusIsRotationAware(t *testing.T) {
	s := testShip(Truespace, NewEngine(0, 0, 0, 0, 0, 0), Pose{})
	s.Size = geom.V(40, 40)
	flat := s.Radius()
	s.SetPose(Pose{Angle: math.Pi / 4})
	assert.InDelta(t, geom.InvSqrt2*20, flat, 1e-9)
	assert.InDelta(t, 20, s.Radius(), 1e-9)
}

package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/physics"
)

func TestAutopilot(t *testing.T) {
	s := physics.NewShip(physics.Truespace, nil, 1, 1, 1, physics.Pose{})

	ahead := Autopilot(s, geom.V(10, 0))
	assert.InDelta(t, 1, ahead.Longitudinal, 1e-9)
	assert.InDelta(t, 0, ahead.Lateral, 1e-9)
	assert.True(t, ahead.Brake)

	behind := Autopilot(s, geom.V(-10, 0))
	assert.InDelta(t, 0, behind.Longitudinal, 1e-9)
	assert.InDelta(t, -1, behind.Lateral, 1e-9)

	left := Autopilot(s, geom.V(0, 10))
	assert.InDelta(t, 1, left.Lateral, 1e-6)
	right := Autopilot(s, geom.V(0, -10))
	assert.InDelta(t, -1, right.Lateral, 1e-6)
}

func TestManualControl(t *testing.T) {
	c := ManualControl(KeySet{KeyUp: true, KeyRight: true, KeyBrake: true})
	assert.Equal(t, physics.Control{Longitudinal: 1, Lateral: 1, Brake: true}, c)

	c = ManualControl(KeySet{KeyUp: true, KeyDown: true, KeyLeft: true, KeyStrafe: true})
	assert.Equal(t, physics.Control{Longitudinal: 0, Lateral: -1, Strafe: true}, c)
}

func TestEntryPoint(t *testing.T) {
	half := geom.V(100, 50)
	tests := []struct {
		angle float64
		want  geom.Vec2
	}{
		{0, geom.V(-100, 0)},
		{math.Pi / 2, geom.V(0, -50)},
		{math.Pi, geom.V(100, 0)},
		{3 * math.Pi / 2, geom.V(0, 50)},
	}
	for _, tt := range tests {
		got := entryPoint(half, tt.angle)
		assert.InDelta(t, tt.want.X, got.X, 1e-6, "angle %v", tt.angle)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-6, "angle %v", tt.angle)
	}
}

func TestExitPoint(t *testing.T) {
	border := geom.V(100, 50)
	// The nearer edge wins: y for a ship in the middle, x near the side.
	assert.Equal(t, geom.V(10, -100), exitPoint(geom.V(10, 0), border, 2))
	assert.Equal(t, geom.V(10, 100), exitPoint(geom.V(10, 5), border, 2))
	assert.Equal(t, geom.V(200, 0), exitPoint(geom.V(90, 0), border, 2))
	assert.Equal(t, geom.V(-200, 1), exitPoint(geom.V(-90, 1), border, 2))
}

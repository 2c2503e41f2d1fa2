package orbit

import (
	"math"
	"testing"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestOrbitAngleAtEpochIsInitial(t *testing.T) {
	for _, mass := range []float64{0, 1, 1e6} {
		assert.Equal(t, 0.0, OrbitAngle(0, SolarRate, mass, 1, 0))
		assert.Equal(t, 1.25, OrbitAngle(1.25, MoonRate, mass, 0, 0))
	}
}

func TestOrbitAngleAdvancesForward(t *testing.T) {
	assert.InDelta(t, 0.5+0.172017, OrbitAngle(0.5, SolarRate, 1, 1, 10), 1e-12)
	assert.InDelta(t, 0.5+AngularRate(MoonRate, 2, 9)*3, OrbitAngle(0.5, MoonRate, 2, 9, 3), 1e-12)
}

func TestAngularRateIsKeplerian(t *testing.T) {
	inner := AngularRate(SolarRate, 1, 1)
	outer := AngularRate(SolarRate, 1, 4)
	assert.InDelta(t, 8.0, inner/outer, 1e-12)
}

func TestScaleConstants(t *testing.T) {
	assert.InDelta(t, 2.0, StarScale(1), 1e-12)
	assert.InDelta(t, 4.0, OrbitScale(1, 1), 1e-12)
	assert.InDelta(t, 8.16/43.92, PlanetRadiusScale(1), 1e-12)
	assert.InDelta(t, 8.16/32.94, PlanetaryPlanetScale(1), 1e-12)
	assert.InDelta(t, 0.275*8.16/32.94*2, PlanetaryOrbitScale(1, 4), 1e-12)
	assert.InDelta(t, 8.16*0.81/72, MoonRadiusScale(1, 0.25), 1e-12)
	assert.InDelta(t, 100*4+2*8.16/43.92, SolarExtent(1, 1, 1, 100), 1e-9)
	assert.InDelta(t, 1/(4+2*8.16/43.92), SolarMinimapScale(1, 1, 1), 1e-12)
}

func TestScalesAreMonotonic(t *testing.T) {
	prev := 0.0
	for _, r := range []float64{0.01, 0.1, 1, 10, 1000} {
		s := StarScale(r)
		assert.Greater(t, s, prev)
		prev = s
	}
	assert.Less(t, OrbitScale(1, 0.4), OrbitScale(1, 30))
	assert.Less(t, PlanetRadiusScale(0.3), PlanetRadiusScale(11))
}

func TestCoordsToPosFlipsLatitude(t *testing.T) {
	assert.Equal(t, geom.V(500, -1000), CoordsToPos(geom.V(1, 2)))
}

func TestTemperatureColorBands(t *testing.T) {
	assert.NotEqual(t, TemperatureColor(50), TemperatureColor(5000))
	assert.Equal(t, TemperatureColor(288), TemperatureColor(300))
	c := TemperatureColor(math.Inf(1))
	assert.Equal(t, uint8(0xff), c.R)
}

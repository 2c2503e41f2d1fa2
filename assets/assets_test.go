package assets_test

import (
	"testing"

	"github.com/spacehole-rogue/starlanes/assets"
	"github.com/spacehole-rogue/starlanes/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	c, err := world.Load(assets.Data)
	require.NoError(t, err)

	sol, ok := c.SystemByName("Sol")
	require.True(t, ok)
	assert.Len(t, sol.Planets, 9)

	earth, ok := c.PlanetOf(sol, 3)
	require.True(t, ok)
	assert.Equal(t, "Sol III", earth.Name)
	luna, ok := c.MoonOf(earth, 1)
	require.True(t, ok)
	assert.Equal(t, "Sol III-A", luna.Name)

	_, ok = c.Ship("Cruiser")
	assert.True(t, ok)
	for _, name := range []string{
		"Thermonuclear Thruster",
		"Thermonuclear Retro-Thruster",
		"Thermonuclear Lateral Stabiliser",
		"Thermonuclear Turning Jet",
	} {
		_, ok := c.Thruster(name)
		assert.True(t, ok, name)
	}
	for _, r := range c.Races() {
		_, ok := c.Ship(r.Ship)
		assert.True(t, ok, "race %s flies unknown ship %s", r.Name, r.Ship)
	}
}

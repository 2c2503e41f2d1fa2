package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehole-rogue/starlanes/internal/world"
)

func TestRefitRecomputesThrust(t *testing.T) {
	cat := testCatalog(t)
	p, err := NewPlayer(cat, DefaultShip, DefaultLoadout, 0.05, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 16*14000.0, p.Engine.ForwardThrust)
	assert.Equal(t, 2*20000.0, p.Engine.RetroThrust)
	assert.Equal(t, 2*15000.0, p.Engine.SideThrust)
	assert.Equal(t, 12*2000.0, p.Engine.AngThrust)

	fit := []world.LoadoutEntry{
		{Count: 2, Name: "Fusion Thruster"},
		{Count: 1, Name: "Fusion Turning Jet"},
	}
	loadout, err := cat.Loadout(fit)
	require.NoError(t, err)
	p.Refit(loadout)

	assert.Equal(t, 44000.0, p.Engine.ForwardThrust)
	assert.Zero(t, p.Engine.RetroThrust)
	assert.Zero(t, p.Engine.SideThrust)
	assert.Equal(t, 3200.0, p.Engine.AngThrust)
	assert.Equal(t, fit, p.Loadout.Entries())
}

func TestVisitedNamesSorted(t *testing.T) {
	p, err := NewPlayer(testCatalog(t), DefaultShip, DefaultLoadout, 0.05, 0.05)
	require.NoError(t, err)
	p.Visit("Sol")
	p.Visit("alpha centauri")
	p.Visit("SOL")
	assert.Equal(t, []string{"ALPHA CENTAURI", "SOL"}, p.VisitedNames())
}

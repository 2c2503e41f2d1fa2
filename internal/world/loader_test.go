package world

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	moonA   = "1::Rocky::Cratered::384.4::0::250::0::0::0.0123::0.273::0.165::27.3::0::1::::::::1::0.5"
	earth   = "3??Water??Oceanic??1.0??1??288??2??3??1.0??1.0??1.0??1.0??0??1??Iron,3,10,20;;Gold,1,-5,40??Humans;;Whales??" + moonA + "??1??0.25"
	mars    = "4??Rocky??Desert??1.52??0.01??210??1??0??0.107??0.53??0.38??1.03??0??1????????-1??2.0"
	solLine = "Sol&&0&&0&&y&&5778&&m&&1&&1&&1&&" + earth + "||" + mars
)

func mustCatalog(t *testing.T, systems string) *Catalog {
	t.Helper()
	c := NewCatalog()
	require.NoError(t, c.ReadSystems(strings.NewReader(systems)))
	return c
}

func TestReadSystemsBuildsHierarchy(t *testing.T) {
	c := mustCatalog(t, solLine+"\n\nAlpha Centauri&&1.5&&-2&&o&&5260&&s&&1.2&&1.5&&1.1&&\n")

	require.Len(t, c.Systems(), 2)
	sol, ok := c.SystemByName("Sol")
	require.True(t, ok)
	assert.Equal(t, "y", sol.Color)
	require.Len(t, sol.Planets, 2)

	p3, ok := c.PlanetOf(sol, 3)
	require.True(t, ok)
	assert.Equal(t, "Sol III", p3.Name)
	assert.Equal(t, 3, p3.Number)
	assert.Equal(t, 288.0, p3.Temperature)
	assert.Equal(t, []MineralDeposit{{"Iron", 3, 10, 20}, {"Gold", 1, -5, 40}}, p3.Minerals)
	assert.Equal(t, []Lifeform{{"Humans"}, {"Whales"}}, p3.Lifeforms)
	assert.Equal(t, 0.25, p3.InitialAngle)
	assert.Same(t, sol, c.SystemOf(p3))
	_, hasParent := c.ParentOf(p3)
	assert.False(t, hasParent)

	moon, ok := c.MoonOf(p3, 1)
	require.True(t, ok)
	assert.Equal(t, "Sol III-A", moon.Name)
	assert.True(t, moon.IsMoon)
	parent, ok := c.ParentOf(moon)
	require.True(t, ok)
	assert.Same(t, p3, parent)
	assert.Same(t, sol, c.SystemOf(moon))

	mars, _ := c.PlanetOf(sol, 4)
	assert.Equal(t, -1, mars.Direction)
	assert.Empty(t, mars.Moons)

	_, ok = c.PlanetOf(sol, 1)
	assert.False(t, ok)
	_, ok = c.MoonOf(p3, 0)
	assert.False(t, ok)

	ac, ok := c.LookupSystem("alpha centauri")
	require.True(t, ok)
	assert.Empty(t, ac.Planets)
	assert.Equal(t, geom.V(1.5, -2), ac.Coords)
	assert.Equal(t, []string{"ALPHA CENTAURI", "SOL"}, c.SearchNames())
}

func TestMinMaxSeeds(t *testing.T) {
	c := mustCatalog(t, "Empty&&0&&0&&r&&3000&&s&&4&&0.1&&0.2&&\n"+solLine+"\n")

	empty, _ := c.SystemByName("Empty")
	assert.Equal(t, 0.05, empty.PlanetOrbit.Min)
	assert.Equal(t, 0.05, empty.PlanetOrbit.Max)
	assert.Equal(t, 0.16, empty.PlanetRadius.Max)

	sol, _ := c.SystemByName("Sol")
	assert.Equal(t, 0.025, sol.PlanetOrbit.Min)
	assert.Equal(t, 1.52, sol.PlanetOrbit.Max)
	assert.Equal(t, 0.16, sol.PlanetRadius.Min)
	assert.Equal(t, 1.0, sol.PlanetRadius.Max)

	earth, _ := c.PlanetOf(sol, 3)
	assert.Equal(t, 15.0, earth.MoonOrbit.Min)
	assert.Equal(t, 384.4, earth.MoonOrbit.Max)
	assert.Equal(t, 0.08, earth.MoonRadius.Min)
	assert.Equal(t, 0.273, earth.MoonRadius.Max)
}

func TestReadSystemsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		line int
	}{
		{"short record", "Sol&&0&&0\n", 1},
		{"bad number", "\nSol&&zero&&0&&y&&5778&&m&&1&&1&&1&&\n", 2},
		{"short planet", "Sol&&0&&0&&y&&5778&&m&&1&&1&&1&&3??Water\n", 1},
		{"bad mineral", "Sol&&0&&0&&y&&5778&&m&&1&&1&&1&&" + strings.Replace(earth, "Iron,3,10,20", "Iron,3", 1) + "\n", 1},
		{"planet out of range", "Sol&&0&&0&&y&&5778&&m&&1&&1&&1&&" + strings.Replace(mars, "4??", "12??", 1) + "\n", 1},
		{"duplicate", solLine + "\n" + solLine + "\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCatalog().ReadSystems(strings.NewReader(tt.data))
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, SystemsFile, pe.File)
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestReadSystemsFieldCount(t *testing.T) {
	err := NewCatalog().ReadSystems(strings.NewReader("Sol&&0\n"))
	assert.ErrorIs(t, err, ErrFieldCount)
}

func TestLoadAllFiles(t *testing.T) {
	fsys := fstest.MapFS{
		SystemsFile:   {Data: []byte(solLine + "\n")},
		RacesFile:     {Data: []byte("Humans&&Ally&&Cruiser&&0&&0&&2\nSpathi&&Hostile&&Eluder&&10&&5&&1.5\n")},
		ShipsFile:     {Data: []byte("Cruiser&&1??1??1??1??1??2??0??1??2&&5000&&2000&&12&&0&&0&&100&&1\n")},
		ThrustersFile: {Data: []byte("Thermonuclear Thruster&&500&&0&&0&&0\nThermonuclear Turning Jet&&0&&0&&0&&250\n")},
	}

	c, err := Load(fsys)
	require.NoError(t, err)

	races := c.Races()
	require.Len(t, races, 2)
	assert.True(t, races[0].IsAlly())
	assert.False(t, races[1].IsAlly())
	assert.Equal(t, geom.V(5000, -2500), races[1].SOIPos)
	assert.Equal(t, 750.0, races[1].SOIRadius)
	assert.True(t, races[1].InfluenceAt(geom.V(5000, -2000)))
	assert.False(t, races[1].InfluenceAt(geom.V(5000, -1700)))

	ship, ok := c.Ship("Cruiser")
	require.True(t, ok)
	assert.Equal(t, 2, ship.Crew.SecurityOfficers)
	assert.Equal(t, 2, ship.Crew.MaintenanceEngineers)
	assert.Equal(t, 5000.0, ship.Mass)
	assert.Equal(t, 12.0, ship.Area)

	jet, ok := c.Thruster("Thermonuclear Turning Jet")
	require.True(t, ok)
	assert.Equal(t, 250.0, jet.Angular)
	_, ok = c.Thruster("Fusion Drive")
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{SystemsFile: {Data: []byte(solLine)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open catalog")
}

func TestLoadoutExpandAndGroup(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.ReadThrusters(strings.NewReader("Main&&10&&0&&0&&0\nJet&&0&&0&&0&&3\n")))

	l, err := c.Loadout([]LoadoutEntry{{2, "Main"}, {3, "Jet"}, {1, "Main"}})
	require.NoError(t, err)
	require.Len(t, l, 6)
	assert.Equal(t, []LoadoutEntry{{3, "Main"}, {3, "Jet"}}, l.Entries())
	assert.Equal(t, 10.0, l.Thrusts()[0].Forward)

	_, err = c.Loadout([]LoadoutEntry{{1, "Warp Core"}})
	assert.Error(t, err)
}

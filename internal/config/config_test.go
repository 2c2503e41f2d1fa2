package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"STARLANES_DATA_DIR", "SAVE_BACKEND", "SAVE_DIR", "SAVE_DB", "SAVE_NAME",
	"SCREEN_WIDTH", "SCREEN_HEIGHT", "ORBIT_DAYS_PER_SECOND", "NPC_SPAWNING",
	"LOG_LEVEL", "LOG_FORMAT", "TRACE_INTERVAL",
}

// clearEnv blanks every variable the package reads; GetEnv treats empty
// as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	c := load()
	require.NoError(t, c.validate())

	assert.Equal(t, "", c.Data.Dir)
	assert.Equal(t, SaveConfig{Backend: BackendFile, Dir: "saves", DB: "saves/starlanes.db", Name: "game"}, c.Save)
	assert.Equal(t, ScreenConfig{Width: 1280, Height: 720}, c.Screen)
	assert.Equal(t, 0.05, c.Game.DaysPerSecond)
	assert.False(t, c.Game.NPCSpawning)
	assert.Equal(t, LoggingConfig{Level: "info", Format: "auto", TraceInterval: time.Second}, c.Logging)
}

func TestOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SAVE_BACKEND", "sqlite")
	t.Setenv("SCREEN_WIDTH", "800")
	t.Setenv("SCREEN_HEIGHT", "600")
	t.Setenv("ORBIT_DAYS_PER_SECOND", "2.5")
	t.Setenv("NPC_SPAWNING", "true")
	t.Setenv("TRACE_INTERVAL", "250ms")

	c := load()
	require.NoError(t, c.validate())
	assert.Equal(t, BackendSQLite, c.Save.Backend)
	assert.Equal(t, ScreenConfig{Width: 800, Height: 600}, c.Screen)
	assert.Equal(t, 2.5, c.Game.DaysPerSecond)
	assert.True(t, c.Game.NPCSpawning)
	assert.Equal(t, 250*time.Millisecond, c.Logging.TraceInterval)
}

func TestBadTraceIntervalFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRACE_INTERVAL", "often")
	assert.Equal(t, time.Second, load().Logging.TraceInterval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"zero width", map[string]string{"SCREEN_WIDTH": "0"}},
		{"unparsable height", map[string]string{"SCREEN_HEIGHT": "tall"}},
		{"negative time rate", map[string]string{"ORBIT_DAYS_PER_SECOND": "-1"}},
		{"unknown backend", map[string]string{"SAVE_BACKEND": "redis"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Error(t, load().validate())
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SCREEN_WIDTH")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SCREEN_WIDTH=640\n"), 0o644))
	t.Chdir(dir)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 640, c.Screen.Width)
	os.Unsetenv("SCREEN_WIDTH")
}

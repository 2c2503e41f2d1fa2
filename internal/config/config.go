// Package config reads game settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Data    DataConfig
	Save    SaveConfig
	Screen  ScreenConfig
	Game    GameConfig
	Logging LoggingConfig
}

type DataConfig struct {
	// Dir holds the catalog text files; empty uses the embedded copies.
	Dir string
}

type SaveConfig struct {
	Backend string // file or sqlite
	Dir     string
	DB      string
	Name    string
}

type ScreenConfig struct {
	Width  int
	Height int
}

type GameConfig struct {
	DaysPerSecond float64
	NPCSpawning   bool
}

type LoggingConfig struct {
	Level         string
	Format        string // text, json or auto
	TraceInterval time.Duration
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Load reads .env if present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	config := load()
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func load() *Config {
	return &Config{
		Data:    DataConfig{Dir: GetEnv("STARLANES_DATA_DIR", "")},
		Save:    loadSaveConfig(),
		Screen:  loadScreenConfig(),
		Game:    loadGameConfig(),
		Logging: loadLoggingConfig(),
	}
}

// GetEnv returns the variable key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadSaveConfig() SaveConfig {
	return SaveConfig{
		Backend: GetEnv("SAVE_BACKEND", BackendFile),
		Dir:     GetEnv("SAVE_DIR", "saves"),
		DB:      GetEnv("SAVE_DB", "saves/starlanes.db"),
		Name:    GetEnv("SAVE_NAME", "game"),
	}
}

func loadScreenConfig() ScreenConfig {
	width, _ := strconv.Atoi(GetEnv("SCREEN_WIDTH", "1280"))
	height, _ := strconv.Atoi(GetEnv("SCREEN_HEIGHT", "720"))

	return ScreenConfig{
		Width:  width,
		Height: height,
	}
}

func loadGameConfig() GameConfig {
	daysPerSecond, _ := strconv.ParseFloat(GetEnv("ORBIT_DAYS_PER_SECOND", "0.05"), 64)
	spawning := GetEnv("NPC_SPAWNING", "false") == "true"

	return GameConfig{
		DaysPerSecond: daysPerSecond,
		NPCSpawning:   spawning,
	}
}

func loadLoggingConfig() LoggingConfig {
	interval, err := time.ParseDuration(GetEnv("TRACE_INTERVAL", "1s"))
	if err != nil {
		interval = time.Second
	}

	return LoggingConfig{
		Level:         GetEnv("LOG_LEVEL", "info"),
		Format:        GetEnv("LOG_FORMAT", "auto"),
		TraceInterval: interval,
	}
}

func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("SCREEN_WIDTH and SCREEN_HEIGHT must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}

	if c.Game.DaysPerSecond < 0 {
		return fmt.Errorf("ORBIT_DAYS_PER_SECOND must not be negative, got %g", c.Game.DaysPerSecond)
	}

	switch c.Save.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("SAVE_BACKEND must be %s or %s, got %q", BackendFile, BackendSQLite, c.Save.Backend)
	}

	if c.Save.Name == "" {
		return fmt.Errorf("SAVE_NAME is required")
	}

	return nil
}

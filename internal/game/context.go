package game

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/world"
)

// Options tune a game session.
type Options struct {
	View          geom.Viewport
	DaysPerSecond float64 // game days per wall second, drives orbits
	NPCSpawning   bool
	TraceInterval time.Duration
	Seed          uint64
	Logger        *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Context is the state shared by every mode of one game session. Exactly
// one mode updates it per tick.
type Context struct {
	Catalog *world.Catalog
	View    geom.Viewport
	Player  *Player
	Comms   *MessageLog
	Surveys *DiscoveryLog
	Log     *slog.Logger

	Time          float64 // game days since the epoch
	DaysPerSecond float64
	Clock         float64 // wall seconds, drives pulsing highlights
	Spawning      bool

	rng   *rand.Rand
	trace rate.Sometimes
}

// NewContext creates a session for player.
func NewContext(cat *world.Catalog, player *Player, opts Options) *Context {
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Context{
		Catalog:       cat,
		View:          opts.View,
		Player:        player,
		Comms:         NewMessageLog(50),
		Surveys:       NewDiscoveryLog(),
		Log:           opts.logger().With("component", "game"),
		DaysPerSecond: opts.DaysPerSecond,
		Spawning:      opts.NPCSpawning,
		rng:           rand.New(rand.NewPCG(seed, seed>>16|1)),
		trace:         rate.Sometimes{Interval: opts.TraceInterval},
	}
}

// advance moves game and wall time forward by dt seconds.
func (c *Context) advance(dt float64) {
	c.Time += dt * c.DaysPerSecond
	c.Clock += dt
}

// tracePose logs the player's pose at most once per trace interval.
func (c *Context) tracePose(mode string) {
	if c.trace.Interval <= 0 {
		return
	}
	c.trace.Do(func() {
		p := c.Player.Pose
		c.Log.Debug("pose", "mode", mode,
			"x", p.Pos.X, "y", p.Pos.Y,
			"vx", p.Vel.X, "vy", p.Vel.Y,
			"angle", p.Angle, "time", c.Time)
	})
}

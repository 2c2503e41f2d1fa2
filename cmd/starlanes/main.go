package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehole-rogue/starlanes/assets"
	"github.com/spacehole-rogue/starlanes/internal/config"
	"github.com/spacehole-rogue/starlanes/internal/game"
	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/logger"
	"github.com/spacehole-rogue/starlanes/internal/render"
	"github.com/spacehole-rogue/starlanes/internal/save"
	"github.com/spacehole-rogue/starlanes/internal/world"
)

const title = "Starlanes"

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in session.
type Game struct {
	session *game.Session
	screen  *render.Screen
	store   save.Store
	slot    string
	log     *slog.Logger

	pressed []ebiten.Key
	chars   []rune
	last    time.Time
}

// minFrameDelta is the smallest tick length handed to the session.
const minFrameDelta = 0.001

// frameDelta is the wall time in seconds between two ticks, at least
// minFrameDelta. The first tick, with no previous time, lasts one TPS step.
func frameDelta(prev, now time.Time, tps int) float64 {
	if prev.IsZero() {
		return max(1/float64(tps), minFrameDelta)
	}
	return max(now.Sub(prev).Seconds(), minFrameDelta)
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, ev := range events(g.pressed, g.chars) {
		g.session.HandleEvent(ev)
	}

	g.pressed = inpututil.AppendPressedKeys(g.pressed[:0])
	now := time.Now()
	dt := frameDelta(g.last, now, ebiten.TPS())
	g.last = now
	g.session.Update(heldKeys(g.pressed), dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Begin(screen)
	g.session.Draw(g.screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	v := g.session.View()
	return int(v.Width), int(v.Height)
}

// save writes the session to its slot, logging rather than failing.
func (g *Game) save() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := g.session.Save(ctx, g.store, g.slot); err != nil {
		g.log.Error("save failed", "slot", g.slot, "error", err)
	}
}

func loadCatalog(dir string) (*world.Catalog, error) {
	var fsys fs.FS = assets.Data
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	return world.Load(fsys)
}

func openStore(ctx context.Context, cfg config.SaveConfig) (save.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return save.OpenSQLiteStore(ctx, cfg.DB)
	case config.BackendFile:
		return save.NewFileStore(cfg.Dir), nil
	default:
		return nil, fmt.Errorf("unknown save backend %q", cfg.Backend)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg := logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	cat, err := loadCatalog(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	lg.Info("catalog loaded", "systems", len(cat.Systems()), "races", len(cat.Races()))

	ctx := context.Background()
	store, err := openStore(ctx, cfg.Save)
	if err != nil {
		log.Fatalf("open save store: %v", err)
	}
	defer store.Close()

	opts := game.Options{
		View:          geom.Viewport{Width: float64(cfg.Screen.Width), Height: float64(cfg.Screen.Height)},
		DaysPerSecond: cfg.Game.DaysPerSecond,
		NPCSpawning:   cfg.Game.NPCSpawning,
		TraceInterval: cfg.Logging.TraceInterval,
		Seed:          uint64(time.Now().UnixNano()),
		Logger:        lg,
	}
	session, err := game.LoadOrNew(ctx, store, cfg.Save.Name, cat, opts)
	if err != nil {
		log.Fatalf("start game: %v", err)
	}

	g := &Game{
		session: session,
		screen:  render.NewScreen(),
		store:   store,
		slot:    cfg.Save.Name,
		log:     lg,
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	g.save()
}

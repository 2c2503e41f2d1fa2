package game

import (
	"image/color"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacehole-rogue/starlanes/assets"
	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/physics"
	"github.com/spacehole-rogue/starlanes/internal/world"
)

var testView = geom.Viewport{Width: 1280, Height: 720}

func testCatalog(t *testing.T) *world.Catalog {
	t.Helper()
	c, err := world.Load(assets.Data)
	require.NoError(t, err)
	return c
}

func testOptions() Options {
	return Options{
		View:          testView,
		DaysPerSecond: 0.05,
		Seed:          7,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func testContext(t *testing.T) *Context {
	t.Helper()
	cat := testCatalog(t)
	p, err := NewPlayer(cat, DefaultShip, DefaultLoadout, 0.05, 0.05)
	require.NoError(t, err)
	p.Visit(DefaultSystem)
	return NewContext(cat, p, testOptions())
}

func testSystem(t *testing.T, ctx *Context, name string) *world.System {
	t.Helper()
	sys, ok := ctx.Catalog.SystemByName(name)
	require.True(t, ok, name)
	return sys
}

// noKeys is an input with nothing held.
var noKeys = KeySet{}

// tick runs one 16ms update.
func tick(m Mode) Mode { return m.Update(noKeys, 0.016) }

// recorder is a Renderer that keeps what it was asked to draw.
type recorder struct {
	clears   []color.RGBA
	sprites  []Sprite
	ellipses []geom.Rect
	lines    int
	rects    []geom.Rect
	texts    []string
}

func (r *recorder) Clear(c color.RGBA)                           { r.clears = append(r.clears, c) }
func (r *recorder) Sprite(s Sprite)                              { r.sprites = append(r.sprites, s) }
func (r *recorder) Ellipse(b geom.Rect, _ color.RGBA, _ float64) { r.ellipses = append(r.ellipses, b) }
func (r *recorder) Line(_, _ geom.Vec2, _ color.RGBA, _ float64) { r.lines++ }
func (r *recorder) Rect(b geom.Rect, _ color.RGBA)               { r.rects = append(r.rects, b) }
func (r *recorder) Text(_ geom.Vec2, s string, _ color.RGBA)     { r.texts = append(r.texts, s) }

func (r *recorder) hasText(prefix string) bool {
	for _, s := range r.texts {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func (r *recorder) spritesOf(kind SpriteKind) []Sprite {
	var out []Sprite
	for _, s := range r.sprites {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// commsTexts lists the comms lines, oldest first.
func commsTexts(ctx *Context) []string {
	var out []string
	for _, msg := range ctx.Comms.Messages {
		out = append(out, msg.Text)
	}
	return out
}

// lastComms is the newest comms line.
func lastComms(ctx *Context) string {
	msgs := ctx.Comms.Recent(1)
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0].Text
}

// place puts the live ship of m at pos, at rest.
func place(m Mode, pos geom.Vec2) {
	s := m.base()
	s.ship.SetPose(physics.Pose{Pos: pos, Angle: s.ship.Angle})
	s.ctx.Player.RecordPose(s.ship.Pose)
}

// clearSpot finds a point inside half where the ship of m touches nothing.
func clearSpot(t *testing.T, m Mode, half geom.Vec2) geom.Vec2 {
	t.Helper()
	s := m.base()
	for _, f := range []float64{0.9, 0.7, 0.5, 0.3, -0.3, -0.5, -0.7, -0.9} {
		for _, g := range []float64{0.9, -0.9, 0.1, -0.1} {
			pos := geom.V(f*half.X, g*half.Y)
			if len(s.smap.Touching(pos, s.ship.Radius())) == 0 {
				return pos
			}
		}
	}
	require.FailNow(t, "no clear spot on map")
	return geom.Vec2{}
}

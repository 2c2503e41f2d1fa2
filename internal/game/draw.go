package game

import (
	"image/color"

	"github.com/spacehole-rogue/starlanes/internal/geom"
)

// SpriteKind selects the look of a sprite.
type SpriteKind uint8

const (
	SpriteStar SpriteKind = iota // a star; Name is its colour class
	SpriteBody                   // a planet or moon; Name is its body type
	SpriteShip                   // a ship; Name is its class
	SpriteDust                   // a background star
)

// Sprite is a positioned, rotated image in screen space.
type Sprite struct {
	Kind  SpriteKind
	Name  string
	Pos   geom.Vec2 // centre
	Size  geom.Vec2 // before rotation
	Angle float64
	Color color.RGBA
}

// Renderer draws in screen pixels. The modes decide what goes where;
// the renderer owns every pixel operation.
type Renderer interface {
	Clear(c color.RGBA)
	Sprite(s Sprite)
	// Ellipse strokes the ellipse inscribed in r, or fills it when width
	// is zero.
	Ellipse(r geom.Rect, c color.RGBA, width float64)
	Line(a, b geom.Vec2, c color.RGBA, width float64)
	Rect(r geom.Rect, c color.RGBA)
	// Text draws s centred on center.
	Text(center geom.Vec2, s string, c color.RGBA)
}

var (
	colorWhite = color.RGBA{255, 255, 255, 255}
	colorRed   = color.RGBA{255, 0, 0, 255}
	colorPanel = color.RGBA{32, 32, 48, 224}
)

// withAlpha returns c at opacity a, premultiplied.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(a) / 255) }
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), a}
}

// onScreen reports whether a sprite box centred at pos is visible.
func onScreen(view geom.Viewport, pos, size geom.Vec2) bool {
	return geom.RectAround(pos, size.X, size.Y).Intersects(view.Rect())
}

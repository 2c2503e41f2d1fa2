package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spacehole-rogue/starlanes/internal/game"
)

// Source resolution of the generated sprites. Sprites are scaled to the
// size the game asks for when drawn.
const (
	bodyRes = 64
	dustRes = 8
	hullW   = 40
	hullH   = 24
)

type spriteKey struct {
	kind game.SpriteKind
	name string
}

// SpriteSet generates sprite images on first use and keeps them.
type SpriteSet struct {
	images map[spriteKey]*ebiten.Image
}

// NewSpriteSet creates an empty set.
func NewSpriteSet() *SpriteSet {
	return &SpriteSet{images: make(map[spriteKey]*ebiten.Image)}
}

// Image returns the image for kind and name.
func (s *SpriteSet) Image(kind game.SpriteKind, name string) *ebiten.Image {
	k := spriteKey{kind, name}
	if img, ok := s.images[k]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(spriteImage(kind, name))
	s.images[k] = img
	return img
}

func spriteImage(kind game.SpriteKind, name string) *image.NRGBA {
	switch kind {
	case game.SpriteStar:
		return glowImage(bodyRes, StarColor(name))
	case game.SpriteBody:
		return discImage(bodyRes, BodyColor(name))
	case game.SpriteShip:
		return hullImage(hullW, hullH)
	default:
		return dustImage(dustRes)
	}
}

// discImage is a lit sphere: a disc darkening toward its limb.
func discImage(d int, c color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d, d))
	r := 0.5 * float64(d)
	for y := range d {
		for x := range d {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			f := (dx*dx + dy*dy) / (r * r)
			if f > 1 {
				continue
			}
			img.SetNRGBA(x, y, scaleRGB(c, 1-0.5*f))
		}
	}
	return img
}

// glowImage is a star: a bright core fading out to transparent.
func glowImage(d int, c color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d, d))
	r := 0.5 * float64(d)
	for y := range d {
		for x := range d {
			dist := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) / r
			if dist > 1 {
				continue
			}
			a := 1.0
			if dist > 0.6 {
				a = (1 - dist) / 0.4
			}
			out := c
			out.A = uint8(255 * a)
			img.SetNRGBA(x, y, color.NRGBA(out))
		}
	}
	return img
}

// hullImage is a white arrowhead pointing along +x.
func hullImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	white := color.NRGBA{255, 255, 255, 255}
	half := 0.5 * float64(h)
	for y := range h {
		for x := range w {
			// Width of the hull at x, narrowing to the nose, with a notch
			// cut into the stern.
			fx := float64(x) + 0.5
			span := half * (1 - fx/float64(w))
			dy := math.Abs(float64(y) + 0.5 - half)
			if dy > span || fx < 0.25*float64(w)*(1-dy/half) {
				continue
			}
			img.SetNRGBA(x, y, white)
		}
	}
	return img
}

// dustImage is a small white cross with a bright centre.
func dustImage(d int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d, d))
	c := d / 2
	for i := range d {
		fade := uint8(255 - 160*abs(i-c)/c)
		img.SetNRGBA(i, c, color.NRGBA{255, 255, 255, fade})
		img.SetNRGBA(c, i, color.NRGBA{255, 255, 255, fade})
	}
	return img
}

func scaleRGB(c color.RGBA, k float64) color.NRGBA {
	ch := func(v uint8) uint8 { return uint8(k * float64(v)) }
	return color.NRGBA{ch(c.R), ch(c.G), ch(c.B), 255}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

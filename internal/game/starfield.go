package game

import (
	"crypto/sha1"
	"encoding/binary"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/spacehole-rogue/starlanes/internal/geom"
)

// dustLook is one background star sprite: its name and pixel side.
type dustLook struct {
	Name string
	Size float64
}

var truespaceDust = []dustLook{
	{"010c", 10}, {"010d", 10}, {"010e", 10},
	{"012c", 12}, {"012d", 12}, {"012e", 12},
	{"019b", 19}, {"019c", 19},
	{"020a", 20}, {"020b", 20},
	{"021a", 21}, {"021b", 21},
}

var hyperspaceDust = []dustLook{
	{"010c", 10}, {"010d", 10}, {"010e", 10},
	{"019b", 19}, {"019c", 19}, {"019d", 19},
}

// Star is one background star. Pos is the top-left corner of its sprite
// in the star's own parallax layer; a zero Dist pins it to the screen.
type Star struct {
	Pos  geom.Vec2
	Size float64
	Dist float64
	Look string
	blit geom.Vec2
}

// Starfield is a parallax layer of background stars that wraps around the
// screen as the camera moves.
type Starfield struct {
	Stars  []Star
	Reroll bool // re-randomise the cross axis when a star wraps
	Color  color.RGBA
	rng    *rand.Rand
	view   geom.Viewport
}

// NameSeed is a stable seed derived from a name.
func NameSeed(name string) uint64 {
	sum := sha1.Sum([]byte(name))
	return binary.LittleEndian.Uint64(sum[:8])
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>16|1))
}

// SolarStarfield scatters the background of the system called name, and
// the fixed stars behind its minimap. Smaller map scales get more, larger,
// slower stars. The layout depends only on name and scale.
func SolarStarfield(name string, scale float64, view geom.Viewport) (field, minimap *Starfield) {
	rng := newRand(NameSeed(name))
	field = &Starfield{Color: colorWhite, rng: rng, view: view}
	minimap = &Starfield{Color: colorWhite, rng: rng, view: view}
	sqrtScale := math.Sqrt(scale)
	mm := view.MinimapRect()
	for range int(200 / sqrtScale) {
		bgScale := 0.2 * sqrtScale * (1 + rng.Float64())
		dist := math.Max(1, 2*(1+rng.Float64())) / scale
		look := truespaceDust[rng.IntN(len(truespaceDust))]
		field.Stars = append(field.Stars, Star{
			Pos:  geom.V(rng.Float64()*view.Width, rng.Float64()*view.Height),
			Size: bgScale * look.Size,
			Dist: dist,
			Look: look.Name,
		})
		look = truespaceDust[rng.IntN(len(truespaceDust))]
		minimap.Stars = append(minimap.Stars, Star{
			Pos:  geom.V(mm.X+rng.Float64()*mm.W, mm.Y+rng.Float64()*mm.H),
			Size: 0.5 * bgScale * look.Size,
			Look: look.Name,
		})
	}
	return field, minimap
}

// HyperStarfield scatters hyperspace's background. Stars re-randomise as
// they wrap, so the field never repeats.
func HyperStarfield(seed uint64, view geom.Viewport) *Starfield {
	rng := newRand(seed)
	f := &Starfield{Reroll: true, Color: color.RGBA{255, 160, 160, 255}, rng: rng, view: view}
	for range 200 {
		bgScale := 0.25 * (1 + rng.Float64())
		dist := 0.5 * (1 + rng.Float64())
		look := hyperspaceDust[rng.IntN(len(hyperspaceDust))]
		f.Stars = append(f.Stars, Star{
			Pos:  geom.V(rng.Float64()*view.Width, rng.Float64()*view.Height),
			Size: bgScale * look.Size,
			Dist: dist,
			Look: look.Name,
		})
	}
	return f
}

// Scroll moves the stars for camera, wrapping those that leave the screen
// by more than their own size.
func (f *Starfield) Scroll(camera geom.Vec2) {
	w, h := f.view.Width, f.view.Height
	for i := range f.Stars {
		s := &f.Stars[i]
		if s.Dist == 0 {
			s.blit = s.Pos
			continue
		}
		offset := camera.Scale(1 / s.Dist)
		blit := s.Pos.Sub(offset)
		pad := s.Size
		if !geom.ExtendBounded(blit.X, w, pad) {
			s.Pos.X = offset.X + geom.ExtendedMod(blit.X, w, pad)
			if f.Reroll {
				s.Pos.Y = offset.Y + f.rng.Float64()*h
			}
		}
		if !geom.ExtendBounded(blit.Y, h, pad) {
			if f.Reroll {
				s.Pos.X = offset.X + f.rng.Float64()*w
			}
			s.Pos.Y = offset.Y + geom.ExtendedMod(blit.Y, h, pad)
		}
		s.blit = geom.V(geom.ExtendedMod(blit.X, w, pad), geom.ExtendedMod(blit.Y, h, pad))
	}
}

// Draw renders the stars where the last Scroll left them.
func (f *Starfield) Draw(r Renderer) {
	for _, s := range f.Stars {
		r.Sprite(Sprite{
			Kind:  SpriteDust,
			Name:  s.Look,
			Pos:   s.blit.Add(geom.V(0.5*s.Size, 0.5*s.Size)),
			Size:  geom.V(s.Size, s.Size),
			Color: f.Color,
		})
	}
}

package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spacehole-rogue/starlanes/internal/game"
	"github.com/spacehole-rogue/starlanes/internal/geom"
)

// Screen draws a game frame onto an Ebitengine image.
type Screen struct {
	Atlas   *FontAtlas
	Sprites *SpriteSet
	dst     *ebiten.Image
	pixel   *ebiten.Image // 1x1 white, scaled for rectangles
	white   *ebiten.Image // white source for triangle fills
}

var _ game.Renderer = (*Screen)(nil)

// NewScreen creates a renderer with its glyphs and sprite cache.
func NewScreen() *Screen {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Screen{
		Atlas:   NewFontAtlas(),
		Sprites: NewSpriteSet(),
		pixel:   pixel,
		white:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Begin targets dst for the calls that follow.
func (s *Screen) Begin(dst *ebiten.Image) { s.dst = dst }

func (s *Screen) Clear(c color.RGBA) { s.dst.Fill(c) }

func (s *Screen) Sprite(sp game.Sprite) {
	img := s.Sprites.Image(sp.Kind, sp.Name)
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-0.5*w, -0.5*h)
	op.GeoM.Scale(sp.Size.X/w, sp.Size.Y/h)
	op.GeoM.Rotate(sp.Angle)
	op.GeoM.Translate(sp.Pos.X, sp.Pos.Y)
	op.ColorScale.ScaleWithColor(sp.Color)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, &op)
}

func (s *Screen) Rect(r geom.Rect, c color.RGBA) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.W, r.H)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(s.pixel, &op)
}

func (s *Screen) Line(a, b geom.Vec2, c color.RGBA, width float64) {
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
}

func (s *Screen) Ellipse(r geom.Rect, c color.RGBA, width float64) {
	pts := EllipsePoints(r, ellipseSegments(r))
	if width > 0 {
		for i, p := range pts {
			q := pts[(i+1)%len(pts)]
			s.Line(p, q, c, width)
		}
		return
	}
	s.fill(r.Center(), pts, c)
}

// fill draws a triangle fan from center over the polygon pts.
func (s *Screen) fill(center geom.Vec2, pts []geom.Vec2, c color.RGBA) {
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	vertex := func(p geom.Vec2) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, vertex(center))
	for _, p := range pts {
		vs = append(vs, vertex(p))
	}
	is := make([]uint16, 0, 3*len(pts))
	for i := range pts {
		is = append(is, 0, uint16(1+i), uint16(1+(i+1)%len(pts)))
	}
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	s.dst.DrawTriangles(vs, is, s.white, op)
}

func (s *Screen) Text(center geom.Vec2, text string, c color.RGBA) {
	x := math.Round(center.X - 0.5*TextWidth(text))
	y := math.Round(center.Y - 0.5*GlyphHeight)
	for _, r := range text {
		if g := s.Atlas.Glyph(r); g != nil {
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(x, y)
			op.ColorScale.ScaleWithColor(c)
			s.dst.DrawImage(g, &op)
		}
		x += GlyphWidth
	}
}

// EllipsePoints returns n points around the ellipse inscribed in r.
func EllipsePoints(r geom.Rect, n int) []geom.Vec2 {
	c := r.Center()
	rx, ry := 0.5*r.W, 0.5*r.H
	pts := make([]geom.Vec2, n)
	for i := range pts {
		a := geom.TwoPi * float64(i) / float64(n)
		pts[i] = geom.V(c.X+rx*math.Cos(a), c.Y+ry*math.Sin(a))
	}
	return pts
}

// ellipseSegments picks a segment count giving roughly 6px chords.
func ellipseSegments(r geom.Rect) int {
	// Ramanujan's approximation of the perimeter.
	a, b := 0.5*r.W, 0.5*r.H
	p := math.Pi * (3*(a+b) - math.Sqrt((3*a+b)*(a+3*b)))
	return max(16, min(512, int(p/6)))
}

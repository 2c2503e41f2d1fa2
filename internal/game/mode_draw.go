package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/starmap"
)

var (
	colorBanner = color.RGBA{255, 255, 0, 255}
	colorHUD    = color.RGBA{160, 200, 255, 255}
)

// commsLines is how many comms messages the HUD shows.
const commsLines = 4

func elementSprite(e *starmap.Element, camera geom.Vec2) Sprite {
	s := Sprite{
		Kind:  SpriteBody,
		Name:  e.BodyType,
		Pos:   e.Pos.Sub(camera),
		Size:  geom.V(e.Size, e.Size),
		Angle: e.Tilt,
		Color: colorWhite,
	}
	if !e.Natural() {
		s.Kind = SpriteStar
		s.Name = e.StarColor
		s.Angle = 0
	}
	return s
}

// drawElements draws the map bodies with their orbits and, while running,
// the highlights of bodies whose number key is held.
func (s *spaceMode) drawElements(r Renderer, camera geom.Vec2) {
	view := s.ctx.View
	for i := range s.smap.Elements {
		e := &s.smap.Elements[i]
		if e.Orbit != nil {
			r.Ellipse(e.Orbit.Ellipse().Move(camera.Neg()), e.Color, 1)
		}
		if e.Kind == starmap.ElemPrimary {
			r.Line(e.Axis.Sub(camera), e.Axis.Neg().Sub(camera), e.Color, 1)
		}
		if sp := elementSprite(e, camera); onScreen(view, sp.Pos, sp.Size) {
			r.Sprite(sp)
		}
		if s.paused || e.Number < 0 || e.Number >= len(s.digits) || !s.digits[e.Number] {
			continue
		}
		mark, ok := e.Highlight(camera, view, s.ctx.Clock)
		if !ok {
			continue
		}
		switch mark.Kind {
		case starmap.MarkRing:
			r.Ellipse(mark.Rect, e.Color, float64(mark.Thickness))
		case starmap.MarkPointer:
			r.Ellipse(mark.Rect, withAlpha(e.Color, mark.Alpha), 0)
		}
	}
}

func (s *spaceMode) drawShip(r Renderer, camera geom.Vec2) {
	r.Sprite(Sprite{
		Kind:  SpriteShip,
		Name:  s.ctx.Player.ShipName,
		Pos:   s.ship.Pos.Sub(camera),
		Size:  s.ship.Size,
		Angle: s.ship.Angle,
		Color: colorWhite,
	})
}

// drawMinimap draws the bevelled minimap frame, its own stars, the bodies
// and orbits at minimap scale, and a pulsing dot for the ship.
func (s *spaceMode) drawMinimap(r Renderer, stars *Starfield) {
	view := s.ctx.View
	mm := view.MinimapRect()
	border := view.MinimapBorder()
	bg := s.space.Color
	corner := color.RGBA{
		uint8(0.5 * (127 + float64(bg.R))),
		uint8(0.5 * (127 + float64(bg.G))),
		uint8(0.5 * (127 + float64(bg.B))),
		255,
	}
	r.Rect(mm.Move(geom.V(-border, border)), corner)
	r.Rect(mm.Move(geom.V(border, -border)), corner)
	r.Rect(mm.Move(geom.V(-border, -border)), shade(corner, 1.2))
	r.Rect(mm.Move(geom.V(border, border)), shade(corner, 0.8))
	r.Rect(mm, bg)

	stars.Draw(r)
	for i := range s.smap.Elements {
		e := &s.smap.Elements[i]
		if e.MinimapSize == 0 {
			continue
		}
		if e.Orbit != nil && !e.Orbit.MinimapSize.IsZero() {
			o := e.Orbit
			r.Ellipse(geom.RectAround(o.MinimapCenter, 2*o.MinimapSize.X, 2*o.MinimapSize.Y), e.Color, 1)
		}
		sp := elementSprite(e, geom.Vec2{})
		sp.Pos = e.MinimapPos
		sp.Size = geom.V(e.MinimapSize, e.MinimapSize)
		r.Sprite(sp)
	}

	pos := s.smap.MinimapPoint(view, s.ship.Pos)
	if mm.Contains(pos) {
		pulse := uint8(128 + 127.5*math.Sin(16*s.ctx.Clock))
		radius := math.Max(1, s.smap.MinimapScale*s.ship.Radius())
		r.Ellipse(geom.RectAround(pos, 2*radius, 2*radius), color.RGBA{255, 255, pulse, 255}, 0)
	}
}

// shade scales a colour's channels by k, saturating.
func shade(c color.RGBA, k float64) color.RGBA {
	ch := func(v uint8) uint8 { return uint8(math.Min(255, k*float64(v))) }
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

// drawOverlay draws the pause banner or the search box.
func (s *spaceMode) drawOverlay(r Renderer) {
	c := s.ctx.View.HalfSize()
	switch {
	case s.searching:
		box := geom.RectAround(c, 0.5*s.ctx.View.Width, 64)
		r.Rect(box, colorPanel)
		r.Text(c.Add(geom.V(0, -16)), "SEARCH", colorBanner)
		textColor := colorWhite
		if !s.searchValid {
			textColor = colorRed
		}
		r.Text(c.Add(geom.V(0, 4)), s.searchText+"_", textColor)
	case s.paused:
		r.Rect(geom.RectAround(c, 160, 32), colorPanel)
		r.Text(c, "PAUSED", colorBanner)
	}
}

// drawHUD prints the location, autopilot and the latest comms.
func (s *spaceMode) drawHUD(r Renderer, location string) {
	view := s.ctx.View
	top := fmt.Sprintf("%s  day %.1f", location, s.ctx.Time)
	if s.target != nil {
		top += "  autopilot: " + s.target.Name
	}
	r.Text(geom.V(0.5*view.Width, 12), top, colorHUD)

	msgs := s.ctx.Comms.Recent(commsLines)
	for i, m := range msgs {
		y := view.Height - 12 - 14*float64(len(msgs)-1-i)
		r.Text(geom.V(0.5*view.Width, y), m.Text, msgPriorityColor(m.Priority))
	}
}

func msgPriorityColor(p MsgPriority) color.RGBA {
	switch p {
	case MsgInfo:
		return color.RGBA{0, 255, 255, 255}
	case MsgWarning:
		return colorBanner
	case MsgContact:
		return colorRed
	case MsgLanding:
		return color.RGBA{0, 255, 0, 255}
	default:
		return colorWhite
	}
}

// drawFrame is the tail every mode draws over its scene.
func (s *spaceMode) drawFrame(r Renderer, location string) {
	s.fade.Draw(r, s.ctx.View)
	s.drawHUD(r, location)
	s.drawOverlay(r)
}

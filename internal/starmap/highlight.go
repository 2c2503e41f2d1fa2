package starmap

import (
	"math"

	"github.com/spacehole-rogue/starlanes/internal/geom"
)

// MarkKind selects how a highlighted element is drawn.
type MarkKind uint8

const (
	MarkRing    MarkKind = iota // pulsing ellipse around an on-screen body
	MarkPointer                 // filled ellipse at the screen edge toward it
)

// highlightPad is how far the ring sits outside the sprite.
const highlightPad = 8

// Mark is a highlight affordance in screen space.
type Mark struct {
	Kind      MarkKind
	Rect      geom.Rect
	Thickness int   // ring only
	Alpha     uint8 // pointer only
}

// Highlight computes the mark for e seen through camera at wall time now
// (seconds). Only orbiting elements can be highlighted.
func (e *Element) Highlight(camera geom.Vec2, view geom.Viewport, now float64) (Mark, bool) {
	if e.Orbit == nil {
		return Mark{}, false
	}
	sin := math.Sin(16 * e.PulseFreq * now)
	rect := e.Bounds().Move(camera.Neg())
	if rect.Intersects(view.Rect()) {
		return Mark{
			Kind:      MarkRing,
			Rect:      rect.Grow(highlightPad),
			Thickness: int(2.5 + 1.5*sin),
		}, true
	}

	// Pull the pointer toward the screen centre until it is on screen.
	c := rect.Center()
	h := view.HalfSize()
	ratio := math.Min(edgeRatio(c.X, h.X), edgeRatio(c.Y, h.Y))
	return Mark{
		Kind:  MarkPointer,
		Rect:  rect.WithCenter(h.Add(c.Sub(h).Scale(ratio))),
		Alpha: uint8(159.375 + 95.625*sin),
	}, true
}

func edgeRatio(c, half float64) float64 {
	if c == half {
		return 1
	}
	return math.Abs(half / (c - half))
}

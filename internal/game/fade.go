package game

import (
	"image/color"

	"github.com/spacehole-rogue/starlanes/internal/geom"
)

// Fade is a full-screen veil in the space colour that clears over Time
// seconds.
type Fade struct {
	Color   color.RGBA
	Time    float64
	Counter float64
	alpha   uint8
}

// NewFade starts a fade lasting t seconds.
func NewFade(c color.RGBA, t float64) *Fade {
	return &Fade{Color: c, Time: t, Counter: t}
}

// Update sets the veil opacity from the time left, then counts down.
func (f *Fade) Update(dt float64) {
	if f.Counter <= 0 {
		f.alpha = 0
		return
	}
	f.alpha = uint8(255 * f.Counter / f.Time)
	f.Counter -= dt
}

// Skip ends the fade at once.
func (f *Fade) Skip() {
	f.Counter = 0
	f.alpha = 0
}

// Alpha is the veil opacity for the current frame.
func (f *Fade) Alpha() uint8 { return f.alpha }

// Draw covers the screen with the veil.
func (f *Fade) Draw(r Renderer, view geom.Viewport) {
	if f.alpha == 0 {
		return
	}
	r.Rect(view.Rect(), withAlpha(f.Color, f.alpha))
}

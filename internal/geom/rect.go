package geom

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns the w x h rectangle centred on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - 0.5*w, Y: c.Y - 0.5*h, W: w, H: h}
}

func (r Rect) Center() Vec2 { return Vec2{r.X + 0.5*r.W, r.Y + 0.5*r.H} }
func (r Rect) Min() Vec2    { return Vec2{r.X, r.Y} }
func (r Rect) Size() Vec2   { return Vec2{r.W, r.H} }

// Move translates r by d.
func (r Rect) Move(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Grow expands r by n on every side.
func (r Rect) Grow(n float64) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// WithCenter returns r moved so its centre is c.
func (r Rect) WithCenter(c Vec2) Rect {
	return RectAround(c, r.W, r.H)
}

// Intersects reports whether r and o overlap with non-zero area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// RotatedExtent returns the side of the bounding square of a size x size
// square rotated by angle.
func RotatedExtent(size, angle float64) float64 {
	return size * (math.Abs(math.Cos(angle)) + math.Abs(math.Sin(angle)))
}

// RotatedSize returns the bounding box of a w x h rectangle rotated by angle.
func RotatedSize(w, h, angle float64) Vec2 {
	c, s := math.Abs(math.Cos(angle)), math.Abs(math.Sin(angle))
	return Vec2{w*c + h*s, w*s + h*c}
}

// MinimapSizeMult is the minimap half-size as a fraction of the display.
const MinimapSizeMult = 0.375

// Viewport describes the display the game is rendered into.
type Viewport struct {
	Width, Height float64
}

func (v Viewport) Size() Vec2      { return Vec2{v.Width, v.Height} }
func (v Viewport) HalfSize() Vec2  { return Vec2{0.5 * v.Width, 0.5 * v.Height} }
func (v Viewport) Rect() Rect      { return Rect{W: v.Width, H: v.Height} }
func (v Viewport) MinDim() float64 { return math.Min(v.Width, v.Height) }
func (v Viewport) MaxDim() float64 { return math.Max(v.Width, v.Height) }

// MinimapCenter is the screen position of the minimap origin.
func (v Viewport) MinimapCenter() Vec2 { return v.HalfSize() }

// MinimapRect is the screen area covered by the minimap.
func (v Viewport) MinimapRect() Rect {
	half := v.Size().Scale(MinimapSizeMult)
	return Rect{X: 0.5*v.Width - half.X, Y: 0.5*v.Height - half.Y, W: 2 * half.X, H: 2 * half.Y}
}

// MinimapBorder is the bevel width drawn around the minimap.
func (v Viewport) MinimapBorder() float64 { return 0.015625 * v.MinDim() }

package geom

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// InvSqrt2 is 1/sqrt(2).
const InvSqrt2 = 1 / math.Sqrt2

// Vec2 is a 2D vector in world or screen space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// FromAngle returns the unit vector pointing along angle (radians).
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Mul(o Vec2) Vec2      { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Neg() Vec2            { return Vec2{-v.X, -v.Y} }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }
func (v Vec2) Perp() Vec2           { return Vec2{-v.Y, v.X} }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }
func (v Vec2) Angle() float64       { return math.Atan2(v.Y, v.X) }
func (v Vec2) Equal(o Vec2) bool    { return v.X == o.X && v.Y == o.Y }

// Norm returns the unit vector along v and its length.
// The zero vector normalises to itself.
func (v Vec2) Norm() (Vec2, float64) {
	n := v.Len()
	if n == 0 {
		return v, 0
	}
	return Vec2{v.X / n, v.Y / n}, n
}

// Unit returns v normalised, or v unchanged when it has no length.
func (v Vec2) Unit() Vec2 {
	u, _ := v.Norm()
	return u
}

// Clamp limits each component of v to [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{
		X: math.Min(math.Max(v.X, lo.X), hi.X),
		Y: math.Min(math.Max(v.Y, lo.Y), hi.Y),
	}
}

// PositiveFmod returns x mod y in [0, y) for positive y.
func PositiveFmod(x, y float64) float64 {
	return math.Mod(math.Mod(x, y)+y, y)
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// ExtendedMod wraps x into [-ext, y+ext).
func ExtendedMod(x, y, ext float64) float64 {
	return PositiveFmod(x+ext, y+2*ext) - ext
}

// ExtendBounded reports whether x lies inside [-ext, y+ext].
func ExtendBounded(x, y, ext float64) bool {
	return !(x < -ext) && !(x > y+ext)
}

// ClampedLerp interpolates from a to b, holding the ends outside [0, 1].
func ClampedLerp(a, b, x float64) float64 {
	switch {
	case x <= 0:
		return a
	case x >= 1:
		return b
	default:
		return (1-x)*a + x*b
	}
}

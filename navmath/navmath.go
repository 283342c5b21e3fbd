// Package navmath collects the small float32 trig, vector, and clamp
// helpers the navigator engine needs. Go's math package is float64-only, so
// like the rest of this corpus we keep a thin float32 wrapper layer rather
// than sprinkling casts through the engine.
package navmath

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

const Epsilon = 0.001 // NAV_EPSILON_POSITION: "effectively zero" for position/radius comparisons

func Sin(x float32) float32   { return float32(gomath.Sin(float64(x))) }
func Cos(x float32) float32   { return float32(gomath.Cos(float64(x))) }
func Asin(x float32) float32  { return float32(gomath.Asin(float64(Clamp(x, -1, 1)))) }
func Atan2(y, x float32) float32 { return float32(gomath.Atan2(float64(y), float64(x))) }
func Sqrt(x float32) float32  { return float32(gomath.Sqrt(float64(x))) }
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Lerp(x, a, b float32) float32 { return (1-x)*a + x*b }

// WrapPi wraps an angle in radians to (-pi, pi].
func WrapPi(x float32) float32 {
	const twoPi = 2 * float32(gomath.Pi)
	for x > float32(gomath.Pi) {
		x -= twoPi
	}
	for x <= -float32(gomath.Pi) {
		x += twoPi
	}
	return x
}

// IsFinite reports whether x is neither NaN nor infinite, mirroring PX4's
// PX4_ISFINITE guard used to detect an unspecified (NaN) yaw.
func IsFinite(x float32) bool {
	return !gomath.IsNaN(float64(x)) && !gomath.IsInf(float64(x), 0)
}

// Vec2 is a 2D vector in the local NED x/y plane (meters).
type Vec2 struct {
	X, Y float32
}

func (a Vec2) Sub(b Vec2) Vec2    { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Add(b Vec2) Vec2    { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Scale(s float32) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Length() float32    { return Sqrt(a.X*a.X + a.Y*a.Y) }

func Distance2(a, b Vec2) float32 { return a.Sub(b).Length() }

// Bearing returns the heading (radians, atan2 convention: 0 = +X/"north",
// positive toward +Y/"east") from a to b.
func Bearing(a, b Vec2) float32 {
	d := b.Sub(a)
	return Atan2(d.Y, d.X)
}

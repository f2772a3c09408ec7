package gamemath

import "math"

// Vec2 is a direction or velocity in the play plane. +X is right, +Y is down.
type Vec2 struct {
	X, Y float64
}

var (
	Forward = Vec2{X: 1}
	Up      = Vec2{Y: -1}
)

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// SafeNormal returns the unit vector of v, or the zero vector when v is too
// short to normalize.
func (v Vec2) SafeNormal() Vec2 {
	lsq := v.LengthSq()
	if lsq < SmallNumber*SmallNumber {
		return Vec2{}
	}
	l := math.Sqrt(lsq)
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// SmallNumber is the default tolerance for near-zero comparisons.
const SmallNumber = 1e-8

// NearlyZero reports whether |x| <= tolerance.
func NearlyZero(x, tolerance float64) bool {
	return math.Abs(x) <= tolerance
}

// NearlyEqual reports whether a and b differ by at most tolerance.
func NearlyEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

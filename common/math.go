package common

import "math"

// Vector2 is a 2D vector in world pixels.
type Vector2 struct {
	X, Y float64
}

// Zero resets both axes to 0.
func (v *Vector2) Zero() {
	v.X = 0
	v.Y = 0
}

// Norm returns the euclidean length of the vector.
func (v Vector2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Add returns v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by s on both axes.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

package common

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Rect is an axis-aligned box used for every collision test.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rectangles share interior area. Rectangles that
// only touch along an edge do not overlap.
func (a Rect) Overlaps(b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Center returns the middle point of the rectangle.
func (a Rect) Center() (float64, float64) {
	return a.X + a.W/2, a.Y + a.H/2
}

// RandSource is the slice of the PRNG service entities need.
type RandSource interface {
	IntBetween(min, max int) int
}

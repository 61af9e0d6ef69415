package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Rect is an axis-aligned rectangle in display coordinates.
type Rect struct {
	Min, Max r2.Vec
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Contains reports whether v lies inside the rectangle, edges included.
func (r Rect) Contains(v r2.Vec) bool {
	return v.X >= r.Min.X && v.X <= r.Max.X &&
		v.Y >= r.Min.Y && v.Y <= r.Max.Y
}

// Adjusted returns the rectangle grown by pad on every side. A negative pad
// shrinks it.
func (r Rect) Adjusted(pad float64) Rect {
	return Rect{
		Min: r2.Vec{X: r.Min.X - pad, Y: r.Min.Y - pad},
		Max: r2.Vec{X: r.Max.X + pad, Y: r.Max.Y + pad},
	}
}

// Package core contains the fundamental types used throughout the gridwire engine.
package core

// Point represents a coordinate on the schematic grid lattice.
type Point struct {
	X, Y int
}

// Add returns the point translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the point translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// WirePoint is a single point in a wire's path. Junction marks the point as
// a connection dot where another wire taps in.
//
// Identity is position only: two WirePoints with equal positions are the same
// point regardless of their junction flags.
type WirePoint struct {
	Point
	Junction bool
}

// Line is the segment between two consecutive wire points. Segments are
// derived from the point list on demand and never stored.
type Line struct {
	A, B Point
}

// IsHorizontal reports whether both endpoints share a Y coordinate.
func (l Line) IsHorizontal() bool {
	return l.A.Y == l.B.Y
}

// IsVertical reports whether both endpoints share an X coordinate.
func (l Line) IsVertical() bool {
	return l.A.X == l.B.X
}

// ContainsPoint reports whether p lies within tolerance grid units of the
// segment. With tolerance 0 only points exactly on the segment qualify.
func (l Line) ContainsPoint(p Point, tolerance int) bool {
	if tolerance == 0 {
		// Exact test: collinear and inside the segment's span. A
		// degenerate segment contains only its own position.
		if l.A == l.B {
			return p == l.A
		}
		d := l.B.Sub(l.A)
		v := p.Sub(l.A)
		if d.X*v.Y-d.Y*v.X != 0 {
			return false
		}
		dot := v.X*d.X + v.Y*d.Y
		return dot >= 0 && dot <= d.X*d.X+d.Y*d.Y
	}
	return l.DistanceSq(p) <= float64(tolerance*tolerance)
}

// DistanceSq returns the squared distance from p to the nearest point on the
// segment.
func (l Line) DistanceSq(p Point) float64 {
	d := l.B.Sub(l.A)
	v := p.Sub(l.A)
	lenSq := float64(d.X*d.X + d.Y*d.Y)
	if lenSq == 0 {
		return float64(v.X*v.X + v.Y*v.Y)
	}
	t := float64(v.X*d.X+v.Y*d.Y) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	dx := float64(p.X) - (float64(l.A.X) + t*float64(d.X))
	dy := float64(p.Y) - (float64(l.A.Y) + t*float64(d.Y))
	return dx*dx + dy*dy
}

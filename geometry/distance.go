package geometry

import "gonum.org/v1/gonum/spatial/r2"

// DistSqToSegment returns the squared distance from p to the nearest point
// on the display-space segment a-b.
func DistSqToSegment(a, b, p r2.Vec) float64 {
	d := r2.Sub(b, a)
	v := r2.Sub(p, a)
	lenSq := r2.Norm2(d)
	if lenSq == 0 {
		return r2.Norm2(v)
	}
	t := r2.Dot(v, d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	nearest := r2.Add(a, r2.Scale(t, d))
	return r2.Norm2(r2.Sub(p, nearest))
}

package geometry

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"gridwire/core"
)

// directionEpsilon is the fixed tolerance for the dot-product comparison in
// SameDirection. Absolute, so very long segment pairs can in principle be
// misclassified; acceptable at schematic scale where segments span tens of
// grid units.
const directionEpsilon = 1e-5

// SameDirection reports whether v1 and v2 point in exactly the same
// direction: dot(v1, v2) equals |v1|*|v2| within a fixed epsilon. Opposite
// but collinear vectors do not qualify, so a wire that doubles back on
// itself keeps its turning point.
func SameDirection(v1, v2 r2.Vec) bool {
	dot := r2.Dot(v1, v2)
	abs := r2.Norm(v1) * r2.Norm(v2)
	return scalar.EqualWithinAbs(dot, abs, directionEpsilon)
}

// Vec converts a grid translation to a display-space direction vector.
func Vec(p core.Point) r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

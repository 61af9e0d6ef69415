package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"gridwire/core"
)

// Transform converts between lattice coordinates and continuous display
// coordinates. The grid is authoritative storage; display coordinates only
// appear at the interaction and rendering boundary.
type Transform struct {
	CellSize float64
}

// ToDisplay maps a grid point to the display position of its lattice cell.
func (t Transform) ToDisplay(p core.Point) r2.Vec {
	return r2.Vec{X: float64(p.X) * t.CellSize, Y: float64(p.Y) * t.CellSize}
}

// ToGrid snaps a display position to the nearest lattice point.
func (t Transform) ToGrid(v r2.Vec) core.Point {
	return core.Point{
		X: int(math.Round(v.X / t.CellSize)),
		Y: int(math.Round(v.Y / t.CellSize)),
	}
}

// Package diagram defines the capability interfaces shared by schematic
// elements. Concrete element kinds (wires, labels, ...) implement the facets
// they support; the scene host only ever works against these interfaces.
package diagram

import (
	"gonum.org/v1/gonum/spatial/r2"

	"gridwire/geometry"
)

// Item is the geometry facet every schematic element carries.
type Item interface {
	// ID returns the element's identity within its sheet.
	ID() int

	// BoundingRect returns the element's padded display-space bounds.
	// The second return value is false when the element has no geometry
	// yet and its bounds are undefined.
	BoundingRect() (geometry.Rect, bool)
}

// HitTester is the broad-phase selection facet. Elements that can be picked
// with the pointer implement it in addition to Item.
type HitTester interface {
	// HitTest reports whether the display position should select the
	// element.
	HitTest(pos r2.Vec) bool
}

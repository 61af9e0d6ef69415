package wire

import (
	"gonum.org/v1/gonum/spatial/r2"

	"gridwire/geometry"
)

// calculateBounds recomputes the wire's display-space rectangle from the
// current point list. Every mutation calls this before notifying observers;
// the host sizes input hit-regions from the rect, so it must never be stale.
func (w *Wire) calculateBounds() {
	if len(w.points) == 0 {
		w.rect = geometry.Rect{}
		w.hasBounds = false
		return
	}

	minP := w.points[0].Point
	maxP := w.points[0].Point
	for _, wp := range w.points[1:] {
		minP.X = geometry.Min(minP.X, wp.X)
		minP.Y = geometry.Min(minP.Y, wp.Y)
		maxP.X = geometry.Max(maxP.X, wp.X)
		maxP.Y = geometry.Max(maxP.Y, wp.Y)
	}

	w.rect = geometry.Rect{
		Min: w.transform.ToDisplay(w.anchor.Add(minP)),
		Max: w.transform.ToDisplay(w.anchor.Add(maxP)),
	}
	w.hasBounds = true
}

// BoundingRect returns the wire's display-space bounding rectangle, grown by
// BoundsPadding on every side. The second return value is false for an empty
// wire, whose bounds are undefined.
func (w *Wire) BoundingRect() (geometry.Rect, bool) {
	if !w.hasBounds {
		return geometry.Rect{}, false
	}
	return w.rect.Adjusted(BoundsPadding), true
}

// Bounds returns the unpadded display-space rectangle spanned by the wire's
// points. The second return value is false for an empty wire.
func (w *Wire) Bounds() (geometry.Rect, bool) {
	if !w.hasBounds {
		return geometry.Rect{}, false
	}
	return w.rect, true
}

// HitTest reports whether the display position v should select this wire.
// Implements the hit-test facet of diagram.Item using the padded shape.
func (w *Wire) HitTest(v r2.Vec) bool {
	return w.ShapeContains(v)
}

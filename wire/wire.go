// Package wire implements the polyline model for a routed schematic
// connector: an ordered list of grid points with junction flags, a structural
// mutation API, and on-demand geometry simplification.
package wire

import (
	"gonum.org/v1/gonum/spatial/r2"

	"gridwire/core"
	"gridwire/geometry"
)

const (
	// BoundsPadding grows the bounding rectangle beyond the outermost
	// points so handles drawn on them stay inside the invalidated region.
	BoundsPadding = 6.0
	// ShapePadding is the stroke width of the broad-phase hit shape; the
	// hit region extends half of it to each side of the polyline.
	ShapePadding = 10.0
)

// PointChanged describes a completed mutation to a wire's point list. Point
// carries the affected point in absolute grid coordinates.
type PointChanged struct {
	WireID int
	Point  core.WirePoint
}

// Observer receives change notifications from a wire. Observers are invoked
// synchronously after the full mutation has been applied and bounds have
// been recomputed; they never see a partially applied edit.
type Observer func(PointChanged)

// Wire owns the ordered point list of one connector. Points are stored
// relative to the wire's anchor; the public API speaks absolute grid
// coordinates. A Wire is not safe for concurrent use.
type Wire struct {
	id        int
	anchor    core.Point
	points    []core.WirePoint
	transform geometry.Transform

	rect      geometry.Rect
	hasBounds bool

	observers []Observer
}

// New creates an empty wire with the given identity, anchor position and
// grid transform.
func New(id int, anchor core.Point, t geometry.Transform) *Wire {
	return &Wire{id: id, anchor: anchor, transform: t}
}

// ID returns the wire's identity as carried in change notifications.
func (w *Wire) ID() int {
	return w.id
}

// Anchor returns the wire's placement position on the grid.
func (w *Wire) Anchor() core.Point {
	return w.anchor
}

// SetAnchor moves the wire's placement position. Point storage is
// anchor-relative, so every absolute point shifts with it. Placement is
// owned by the host item; no point-changed notification fires.
func (w *Wire) SetAnchor(p core.Point) {
	w.anchor = p
}

// Transform returns the grid transform the wire derives display bounds with.
func (w *Wire) Transform() geometry.Transform {
	return w.transform
}

// Subscribe registers an observer for point-changed notifications.
func (w *Wire) Subscribe(o Observer) {
	w.observers = append(w.observers, o)
}

// Len returns the number of points in the wire.
func (w *Wire) Len() int {
	return len(w.points)
}

// Prepend inserts a point, given in absolute coordinates, at the start of
// the wire.
func (w *Wire) Prepend(p core.Point) {
	w.points = append([]core.WirePoint{{Point: p.Sub(w.anchor)}}, w.points...)
	w.calculateBounds()
	w.notify(w.points[0])
}

// Append inserts a point, given in absolute coordinates, at the end of the
// wire.
func (w *Wire) Append(p core.Point) {
	w.points = append(w.points, core.WirePoint{Point: p.Sub(w.anchor)})
	w.calculateBounds()
	w.notify(w.points[len(w.points)-1])
}

// Insert places a point, given in absolute coordinates, before the point
// currently at index. Only insertion strictly between existing points is
// supported: an index at or past the end is rejected as a no-op rather than
// treated as an append.
func (w *Wire) Insert(index int, p core.Point) {
	if index < 0 || index >= len(w.points) {
		return
	}
	w.points = append(w.points, core.WirePoint{})
	copy(w.points[index+1:], w.points[index:])
	w.points[index] = core.WirePoint{Point: p.Sub(w.anchor)}
	w.calculateBounds()
	w.notify(w.points[index])
}

// RemoveFirst drops the first point. No-op on an empty wire.
func (w *Wire) RemoveFirst() {
	if len(w.points) == 0 {
		return
	}
	removed := w.points[0]
	w.points = w.points[1:]
	w.calculateBounds()
	w.notify(removed)
}

// RemoveLast drops the last point. No-op on an empty wire.
func (w *Wire) RemoveLast() {
	if len(w.points) == 0 {
		return
	}
	removed := w.points[len(w.points)-1]
	w.points = w.points[:len(w.points)-1]
	w.calculateBounds()
	w.notify(removed)
}

// RemoveAll removes every point whose position equals p (absolute),
// regardless of how many occurrences exist.
func (w *Wire) RemoveAll(p core.Point) {
	rel := p.Sub(w.anchor)
	kept := w.points[:0]
	removed := false
	for _, wp := range w.points {
		if wp.Point == rel {
			removed = true
			continue
		}
		kept = append(kept, wp)
	}
	w.points = kept
	if removed {
		w.calculateBounds()
		w.notify(core.WirePoint{Point: rel})
	}
}

// MovePointBy translates the point at index by delta. No-op when index is
// out of range.
func (w *Wire) MovePointBy(index int, delta core.Point) {
	if index < 0 || index > len(w.points)-1 {
		return
	}
	w.points[index].Point = w.points[index].Add(delta)
	w.calculateBounds()
	w.notify(w.points[index])
}

// MovePointTo moves the point at index to the given absolute position.
// No-op when index is out of range.
func (w *Wire) MovePointTo(index int, abs core.Point) {
	if index < 0 || index > len(w.points)-1 {
		return
	}
	w.points[index].Point = abs.Sub(w.anchor)
	w.calculateBounds()
	w.notify(w.points[index])
}

// MoveLineSegmentBy translates both endpoints of the segment at segIndex by
// delta. The move is atomic: bounds are recomputed and observers run only
// after both endpoints have been updated. No-op when segIndex is out of
// range.
func (w *Wire) MoveLineSegmentBy(segIndex int, delta core.Point) {
	if segIndex < 0 || segIndex >= len(w.points)-1 {
		return
	}
	w.points[segIndex].Point = w.points[segIndex].Add(delta)
	w.points[segIndex+1].Point = w.points[segIndex+1].Add(delta)
	w.calculateBounds()
	w.notify(w.points[segIndex])
	w.notify(w.points[segIndex+1])
}

// SetJunction sets the junction flag of the point at index. No-op when index
// is out of range.
func (w *Wire) SetJunction(index int, junction bool) {
	if index < 0 || index > len(w.points)-1 {
		return
	}
	w.points[index].Junction = junction
	w.notify(w.points[index])
}

// Points returns the wire's point positions in absolute coordinates, in path
// order. The slice is a snapshot; it does not alias internal storage.
func (w *Wire) Points() []core.Point {
	pts := make([]core.Point, len(w.points))
	for i, wp := range w.points {
		pts[i] = w.anchor.Add(wp.Point)
	}
	return pts
}

// WirePoints returns the wire's points with junction flags, in absolute
// coordinates. The slice is a snapshot.
func (w *Wire) WirePoints() []core.WirePoint {
	pts := make([]core.WirePoint, len(w.points))
	for i, wp := range w.points {
		pts[i] = core.WirePoint{Point: w.anchor.Add(wp.Point), Junction: wp.Junction}
	}
	return pts
}

// Segments derives the wire's line segments in absolute coordinates. A wire
// with fewer than two points has no segments.
func (w *Wire) Segments() []core.Line {
	if len(w.points) < 2 {
		return nil
	}
	segs := make([]core.Line, 0, len(w.points)-1)
	for i := 0; i < len(w.points)-1; i++ {
		segs = append(segs, core.Line{
			A: w.anchor.Add(w.points[i].Point),
			B: w.anchor.Add(w.points[i+1].Point),
		})
	}
	return segs
}

// ContainsPoint reports whether the absolute grid point p lies exactly on
// any of the wire's segments.
func (w *Wire) ContainsPoint(p core.Point) bool {
	for _, seg := range w.Segments() {
		if seg.ContainsPoint(p, 0) {
			return true
		}
	}
	return false
}

// ShapeContains reports whether the display position v falls within the
// wire's broad-phase hit shape: the polyline stroked ShapePadding wide.
func (w *Wire) ShapeContains(v r2.Vec) bool {
	half := ShapePadding / 2
	pts := w.Points()
	if len(pts) == 1 {
		d := w.transform.ToDisplay(pts[0])
		return r2.Norm(r2.Vec{X: v.X - d.X, Y: v.Y - d.Y}) <= half
	}
	for _, seg := range w.Segments() {
		a := w.transform.ToDisplay(seg.A)
		b := w.transform.ToDisplay(seg.B)
		if geometry.DistSqToSegment(a, b, v) <= half*half {
			return true
		}
	}
	return false
}

func (w *Wire) notify(p core.WirePoint) {
	abs := core.WirePoint{Point: w.anchor.Add(p.Point), Junction: p.Junction}
	for _, o := range w.observers {
		o(PointChanged{WireID: w.id, Point: abs})
	}
}

// Package interact turns pointer events into wire mutations. It implements
// the drag state machine for wire editing: picking up point handles and line
// segments, axis-constrained segment movement, and hover cursor hints.
package interact

import (
	"gonum.org/v1/gonum/spatial/r2"

	"gridwire/core"
	"gridwire/geometry"
	"gridwire/wire"
)

// HandleSize is the half-extent, in display units, of the square hit region
// around each point handle.
const HandleSize = 3.0

// segmentTolerance is the grid-space padding around a segment for drag
// hit-testing.
const segmentTolerance = 1

// State identifies what the controller is currently dragging.
type State int

const (
	Idle State = iota
	DraggingPoint
	DraggingSegment
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case DraggingPoint:
		return "DraggingPoint"
	case DraggingSegment:
		return "DraggingSegment"
	default:
		return "Unknown"
	}
}

// Cursor is the affordance hint the host should present for the current
// pointer position. The controller never changes cursors itself.
type Cursor int

const (
	CursorNone Cursor = iota
	CursorMove
	CursorResizeVertical
	CursorResizeHorizontal
)

// Controller drives interactive editing of a single wire. It holds only
// transient drag state; all persistent geometry lives in the wire.
type Controller struct {
	wire      *wire.Wire
	transform geometry.Transform

	state    State
	index    int
	lastGrid core.Point
}

// NewController creates an idle controller for w.
func NewController(w *wire.Wire, t geometry.Transform) *Controller {
	return &Controller{wire: w, transform: t, index: -1}
}

// State returns the current drag state and, for the dragging states, the
// point or segment index being dragged.
func (c *Controller) State() (State, int) {
	return c.state, c.index
}

// PointerDown processes a button press at display position pos. selected is
// the wire's current selection state, an external precondition: hit-testing
// only happens on a selected wire. The return value reports whether the
// event was consumed; false means the host should apply its generic item
// handling (e.g. selecting or moving the whole wire).
func (c *Controller) PointerDown(pos r2.Vec, selected bool) bool {
	c.lastGrid = c.transform.ToGrid(pos)

	if !selected {
		return false
	}

	// Point handles win over segments; first match wins.
	for i, p := range c.wire.Points() {
		if handleContains(c.transform.ToDisplay(p), pos) {
			c.state = DraggingPoint
			c.index = i
			return true
		}
	}

	gridPos := c.transform.ToGrid(pos)
	for i, seg := range c.wire.Segments() {
		if seg.ContainsPoint(gridPos, segmentTolerance) {
			c.state = DraggingSegment
			c.index = i
			return true
		}
	}

	c.state = Idle
	c.index = -1
	return false
}

// PointerMove processes pointer motion at display position pos while a
// button is held. constraintOverride, supplied by the host per event
// (typically from a modifier key), permits free movement of diagonal
// segments. Returns whether the event was consumed.
func (c *Controller) PointerMove(pos r2.Vec, constraintOverride bool) bool {
	cur := c.transform.ToGrid(pos)
	consumed := false

	switch c.state {
	case DraggingPoint:
		c.wire.MovePointTo(c.index, cur)
		consumed = true

	case DraggingSegment:
		segs := c.wire.Segments()
		if c.index >= 0 && c.index < len(segs) {
			line := segs[c.index]
			delta := core.Point{}
			switch {
			case line.IsHorizontal():
				delta = core.Point{Y: cur.Y - c.lastGrid.Y}
			case line.IsVertical():
				delta = core.Point{X: cur.X - c.lastGrid.X}
			case constraintOverride:
				delta = cur.Sub(c.lastGrid)
			}
			c.wire.MoveLineSegmentBy(c.index, delta)
		}
		consumed = true
	}

	c.lastGrid = cur
	return consumed
}

// PointerUp ends any drag in progress and records the snapped release
// position. Each move step already committed, so there is nothing to roll
// back; the wire stays wherever the last delta put it.
func (c *Controller) PointerUp(pos r2.Vec) {
	c.state = Idle
	c.index = -1
	c.lastGrid = c.transform.ToGrid(pos)
}

// Cancel abandons a drag without a release position, returning to Idle.
func (c *Controller) Cancel() {
	c.state = Idle
	c.index = -1
}

// Hover performs the same hit-testing as PointerDown with no button held and
// returns the cursor hint for pos. Never mutates the wire. Always
// CursorNone while the wire is not selected.
func (c *Controller) Hover(pos r2.Vec, selected, constraintOverride bool) Cursor {
	if !selected {
		return CursorNone
	}

	for _, p := range c.wire.Points() {
		if handleContains(c.transform.ToDisplay(p), pos) {
			return CursorMove
		}
	}

	gridPos := c.transform.ToGrid(pos)
	for _, seg := range c.wire.Segments() {
		if !seg.ContainsPoint(gridPos, segmentTolerance) {
			continue
		}
		switch {
		case seg.IsHorizontal():
			return CursorResizeVertical
		case seg.IsVertical():
			return CursorResizeHorizontal
		case constraintOverride:
			return CursorMove
		}
		return CursorNone
	}

	return CursorNone
}

// handleContains reports whether pos falls inside the square handle region
// centered on the display position of a point. Edges count as inside, so a
// press exactly HandleSize away still picks the handle up.
func handleContains(center, pos r2.Vec) bool {
	dx := pos.X - center.X
	dy := pos.Y - center.Y
	return dx >= -HandleSize && dx <= HandleSize &&
		dy >= -HandleSize && dy <= HandleSize
}

package wire

import (
	"reflect"
	"testing"

	"gridwire/core"
	"gridwire/geometry"
)

var testTransform = geometry.Transform{CellSize: 20}

func newTestWire(points ...core.Point) *Wire {
	w := New(1, core.Point{}, testTransform)
	for _, p := range points {
		w.Append(p)
	}
	return w
}

func TestSegmentCountInvariant(t *testing.T) {
	w := New(1, core.Point{}, testTransform)

	for i := 0; i < 5; i++ {
		wantSegs := geometry.Max(w.Len()-1, 0)
		if got := len(w.Segments()); got != wantSegs {
			t.Errorf("with %d points: %d segments, want %d", w.Len(), got, wantSegs)
		}
		w.Append(core.Point{X: i, Y: 0})
	}
}

func TestAppendRemoveLastRoundTrip(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0})
	before := w.WirePoints()

	w.Append(core.Point{X: 5, Y: 5})
	w.RemoveLast()

	if !reflect.DeepEqual(w.WirePoints(), before) {
		t.Errorf("append+removeLast changed the wire: %v, want %v", w.WirePoints(), before)
	}
}

func TestPrependOrder(t *testing.T) {
	w := newTestWire(core.Point{X: 5, Y: 0})
	w.Prepend(core.Point{X: 0, Y: 0})

	want := []core.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}
	if !reflect.DeepEqual(w.Points(), want) {
		t.Errorf("points = %v, want %v", w.Points(), want)
	}
}

func TestInsertBetweenPoints(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0})
	w.Insert(1, core.Point{X: 5, Y: 0})

	want := []core.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}
	if !reflect.DeepEqual(w.Points(), want) {
		t.Errorf("points = %v, want %v", w.Points(), want)
	}
}

func TestInsertOutOfRangeIsNoOp(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0})
	before := w.WirePoints()

	// Inserting at the current end is rejected, not treated as append.
	for _, index := range []int{-1, 2, 99} {
		w.Insert(index, core.Point{X: 5, Y: 5})
		if !reflect.DeepEqual(w.WirePoints(), before) {
			t.Fatalf("Insert(%d) modified the wire: %v", index, w.WirePoints())
		}
	}
}

func TestRemoveOnEmptyWireIsNoOp(t *testing.T) {
	w := New(1, core.Point{}, testTransform)

	w.RemoveFirst()
	w.RemoveLast()

	if w.Len() != 0 {
		t.Errorf("empty wire has %d points", w.Len())
	}
}

func TestRemoveAll(t *testing.T) {
	p := core.Point{X: 5, Y: 5}
	w := newTestWire(core.Point{X: 0, Y: 0}, p, core.Point{X: 10, Y: 0}, p, p)

	w.RemoveAll(p)

	want := []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	if !reflect.DeepEqual(w.Points(), want) {
		t.Errorf("points = %v, want %v", w.Points(), want)
	}
}

func TestMovePointByInverse(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0})
	before := w.Points()

	d := core.Point{X: 3, Y: -4}
	w.MovePointBy(1, d)
	w.MovePointBy(1, core.Point{X: -d.X, Y: -d.Y})

	if !reflect.DeepEqual(w.Points(), before) {
		t.Errorf("move+inverse changed the wire: %v, want %v", w.Points(), before)
	}
}

func TestMovePointTo(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0})
	w.MovePointTo(1, core.Point{X: 7, Y: 2})

	if got := w.Points()[1]; got != (core.Point{X: 7, Y: 2}) {
		t.Errorf("point 1 = %v, want (7,2)", got)
	}
}

func TestMovePointOutOfRangeIsNoOp(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0})
	before := w.WirePoints()

	w.MovePointBy(-1, core.Point{X: 1, Y: 1})
	w.MovePointBy(2, core.Point{X: 1, Y: 1})
	w.MovePointTo(-1, core.Point{X: 9, Y: 9})
	w.MovePointTo(2, core.Point{X: 9, Y: 9})

	if !reflect.DeepEqual(w.WirePoints(), before) {
		t.Errorf("out-of-range move changed the wire: %v", w.WirePoints())
	}
}

func TestMoveLineSegmentByMatchesTwoPointMoves(t *testing.T) {
	a := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0}, core.Point{X: 5, Y: 5})
	b := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0}, core.Point{X: 5, Y: 5})

	d := core.Point{X: 0, Y: 2}
	a.MoveLineSegmentBy(0, d)
	b.MovePointBy(0, d)
	b.MovePointBy(1, d)

	if !reflect.DeepEqual(a.Points(), b.Points()) {
		t.Errorf("segment move %v differs from two point moves %v", a.Points(), b.Points())
	}
}

func TestMoveLineSegmentByIsAtomic(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0})

	// The first notification must already observe both endpoints moved.
	var snapshots [][]core.Point
	w.Subscribe(func(PointChanged) {
		snapshots = append(snapshots, w.Points())
	})

	w.MoveLineSegmentBy(0, core.Point{Y: 2})

	if len(snapshots) == 0 {
		t.Fatal("no notifications fired")
	}
	want := []core.Point{{X: 0, Y: 2}, {X: 5, Y: 2}}
	for i, snap := range snapshots {
		if !reflect.DeepEqual(snap, want) {
			t.Errorf("notification %d observed partial state %v", i, snap)
		}
	}
}

func TestMoveLineSegmentOutOfRangeIsNoOp(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0})
	before := w.WirePoints()

	w.MoveLineSegmentBy(-1, core.Point{Y: 2})
	w.MoveLineSegmentBy(1, core.Point{Y: 2}) // only segment 0 exists

	if !reflect.DeepEqual(w.WirePoints(), before) {
		t.Errorf("out-of-range segment move changed the wire: %v", w.WirePoints())
	}
}

func TestSetJunction(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0})

	w.SetJunction(1, true)
	if !w.WirePoints()[1].Junction {
		t.Error("junction flag not set")
	}

	w.SetJunction(5, true) // out of range, no-op
	w.SetJunction(-1, true)
	if w.WirePoints()[0].Junction {
		t.Error("junction flag set on wrong point")
	}
}

func TestAnchorRelativeStorage(t *testing.T) {
	anchor := core.Point{X: 10, Y: 20}
	w := New(7, anchor, testTransform)
	w.Append(core.Point{X: 12, Y: 21})

	// Points are reported absolute regardless of the anchor.
	if got := w.Points()[0]; got != (core.Point{X: 12, Y: 21}) {
		t.Errorf("absolute point = %v, want (12,21)", got)
	}

	// Moving the anchor shifts every absolute point.
	w.SetAnchor(core.Point{X: 0, Y: 0})
	if got := w.Points()[0]; got != (core.Point{X: 2, Y: 1}) {
		t.Errorf("after anchor move: %v, want (2,1)", got)
	}
}

func TestContainsPoint(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0}, core.Point{X: 10, Y: 10})

	if !w.ContainsPoint(core.Point{X: 5, Y: 0}) {
		t.Error("point on first segment not detected")
	}
	if !w.ContainsPoint(core.Point{X: 10, Y: 7}) {
		t.Error("point on second segment not detected")
	}
	if w.ContainsPoint(core.Point{X: 5, Y: 1}) {
		t.Error("point off the wire detected")
	}
}

func TestNotificationCarriesIdentityAndPoint(t *testing.T) {
	w := New(42, core.Point{X: 1, Y: 1}, testTransform)

	var events []PointChanged
	w.Subscribe(func(ev PointChanged) {
		events = append(events, ev)
	})

	w.Append(core.Point{X: 3, Y: 1})

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].WireID != 42 {
		t.Errorf("WireID = %d, want 42", events[0].WireID)
	}
	if events[0].Point.Point != (core.Point{X: 3, Y: 1}) {
		t.Errorf("event point = %v, want absolute (3,1)", events[0].Point.Point)
	}
}

func TestRemovalNotifies(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0})

	var events []PointChanged
	w.Subscribe(func(ev PointChanged) {
		events = append(events, ev)
	})

	w.RemoveLast()

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Point.Point != (core.Point{X: 5, Y: 0}) {
		t.Errorf("removed point = %v, want (5,0)", events[0].Point.Point)
	}
}

func TestPointsSnapshotDoesNotAliasStorage(t *testing.T) {
	w := newTestWire(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0})

	pts := w.Points()
	pts[0] = core.Point{X: 99, Y: 99}

	if w.Points()[0] != (core.Point{X: 0, Y: 0}) {
		t.Error("mutating the snapshot changed the wire")
	}
}

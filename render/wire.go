package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"gridwire/core"
	"gridwire/geometry"
	"gridwire/wire"
)

// Marker runes. These are not line art and never merge into intersections.
const (
	JunctionRune = '●'
	HandleRune   = '■'
)

type direction int

const (
	dirNone direction = iota
	dirEast
	dirWest
	dirNorth
	dirSouth
)

// WireRenderer draws wires onto a Grid using box-drawing characters.
type WireRenderer struct {
	transform geometry.Transform
}

// NewWireRenderer creates a renderer that maps grid points to cells through t.
func NewWireRenderer(t geometry.Transform) *WireRenderer {
	return &WireRenderer{transform: t}
}

// Draw renders the wire's polyline, junction dots and, when selected, its
// point handles.
func (r *WireRenderer) Draw(g *Grid, w *wire.Wire, selected bool) {
	points := w.Points()
	if len(points) == 0 {
		return
	}

	for _, seg := range w.Segments() {
		r.drawSegment(g, seg)
	}

	// Corner glyphs at interior turning points. Computed directly from the
	// in/out directions; merging two straight runs would give a cross.
	for i := 1; i < len(points)-1; i++ {
		in := directionOf(points[i-1], points[i])
		out := directionOf(points[i], points[i+1])
		if c := cornerRune(in, out); c != 0 {
			x, y := r.cell(points[i])
			g.Put(x, y, c)
		}
	}

	for _, wp := range w.WirePoints() {
		if wp.Junction {
			x, y := r.cell(wp.Point)
			g.Set(x, y, JunctionRune)
		}
	}

	if selected {
		for _, p := range points {
			x, y := r.cell(p)
			g.Put(x, y, HandleRune)
		}
	}
}

// DrawDebug overlays the wire's hit shape and padded bounding rect.
func (r *WireRenderer) DrawDebug(g *Grid, w *wire.Wire) {
	rect, ok := w.BoundingRect()
	if !ok {
		return
	}

	minX := int(math.Floor(rect.Min.X))
	minY := int(math.Floor(rect.Min.Y))
	maxX := int(math.Ceil(rect.Max.X))
	maxY := int(math.Ceil(rect.Max.Y))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if g.Get(x, y) != ' ' {
				continue
			}
			if w.ShapeContains(r2.Vec{X: float64(x), Y: float64(y)}) {
				g.Put(x, y, '░')
			}
		}
	}

	for x := minX; x <= maxX; x++ {
		g.Set(x, minY, '·')
		g.Set(x, maxY, '·')
	}
	for y := minY; y <= maxY; y++ {
		g.Set(minX, y, '·')
		g.Set(maxX, y, '·')
	}
}

func (r *WireRenderer) cell(p core.Point) (int, int) {
	d := r.transform.ToDisplay(p)
	return int(math.Round(d.X)), int(math.Round(d.Y))
}

func (r *WireRenderer) drawSegment(g *Grid, seg core.Line) {
	ax, ay := r.cell(seg.A)
	bx, by := r.cell(seg.B)

	switch {
	case ay == by:
		x0, x1 := geometry.Min(ax, bx), geometry.Max(ax, bx)
		for x := x0; x <= x1; x++ {
			g.Set(x, ay, '─')
		}
	case ax == bx:
		y0, y1 := geometry.Min(ay, by), geometry.Max(ay, by)
		for y := y0; y <= y1; y++ {
			g.Set(ax, y, '│')
		}
	default:
		r.drawDiagonal(g, ax, ay, bx, by)
	}
}

// drawDiagonal rasterizes a non-axis-aligned segment with Bresenham's
// algorithm, using slash characters slanted to the segment's direction.
func (r *WireRenderer) drawDiagonal(g *Grid, x0, y0, x1, y1 int) {
	slant := '╲'
	if (x1-x0 > 0) != (y1-y0 > 0) {
		slant = '╱'
	}

	dx := geometry.Abs(x1 - x0)
	dy := -geometry.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		g.Set(x, y, slant)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func directionOf(from, to core.Point) direction {
	switch {
	case to.Y == from.Y && to.X > from.X:
		return dirEast
	case to.Y == from.Y && to.X < from.X:
		return dirWest
	case to.X == from.X && to.Y < from.Y:
		return dirNorth
	case to.X == from.X && to.Y > from.Y:
		return dirSouth
	default:
		return dirNone
	}
}

// cornerRune returns the box-drawing corner for a turn from direction in to
// direction out, or 0 when the point is not an axis-aligned turn.
func cornerRune(in, out direction) rune {
	switch {
	case (in == dirEast && out == dirSouth) || (in == dirNorth && out == dirWest):
		return '┐'
	case (in == dirEast && out == dirNorth) || (in == dirSouth && out == dirWest):
		return '┘'
	case (in == dirWest && out == dirSouth) || (in == dirNorth && out == dirEast):
		return '┌'
	case (in == dirWest && out == dirNorth) || (in == dirSouth && out == dirEast):
		return '└'
	default:
		return 0
	}
}

package wire

import (
	"gridwire/core"
	"gridwire/geometry"
)

// RemoveDuplicatePoints collapses points that share a position until every
// position in the wire is unique, and returns how many points were removed.
//
// The first occurrence of a duplicated position survives, junction flag
// included; flags on later occurrences are lost. Callers that need merged
// junction state must OR the flags before normalizing.
//
// Intermediate edits are allowed to create duplicates freely; this is the
// explicit normalization step, not something mutations run implicitly.
func (w *Wire) RemoveDuplicatePoints() int {
	removed := 0
	for {
		allUnique := true
		for i := 0; i < len(w.points); i++ {
			pos := w.points[i].Point
			for j := len(w.points) - 1; j > i; j-- {
				if w.points[j].Point == pos {
					w.points = append(w.points[:j], w.points[j+1:]...)
					removed++
					allUnique = false
				}
			}
		}
		if allUnique {
			break
		}
	}
	if removed > 0 {
		w.calculateBounds()
	}
	return removed
}

// RemoveObsoletePoints drops interior points that continue their
// predecessor's direction exactly, and returns how many were marked.
//
// For every consecutive triple (p1, p2, p3) in the original sequence the
// translation vectors v1 = p2-p1 and v2 = p3-p2 are compared: when
// dot(v1, v2) equals |v1|*|v2| the middle point adds no geometry. Only
// same-direction collinearity qualifies; a wire that doubles back keeps its
// turning point. Obsolete points are collected in a single pass over the
// unmodified sequence, then removed together.
//
// No-op returning 0 when the wire has fewer than three points.
func (w *Wire) RemoveObsoletePoints() int {
	if len(w.points) < 3 {
		return 0
	}

	var obsolete []core.Point
	for i := 2; i < len(w.points); i++ {
		p1 := w.points[i-2].Point
		p2 := w.points[i-1].Point
		p3 := w.points[i].Point

		v1 := geometry.Vec(p2.Sub(p1))
		v2 := geometry.Vec(p3.Sub(p2))

		if geometry.SameDirection(v1, v2) {
			obsolete = append(obsolete, p2)
		}
	}

	for _, p := range obsolete {
		w.RemoveAll(w.anchor.Add(p))
	}

	return len(obsolete)
}

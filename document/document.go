// Package document reads and writes sheet files: the ordered point lists,
// junction flags and anchors of every wire on a schematic sheet. Files are
// JSON and are validated against a schema before unmarshalling, so a
// malformed file is rejected as a whole instead of producing a half-loaded
// sheet.
package document

import (
	"encoding/json"
	"fmt"
	"os"

	"gridwire/core"
	"gridwire/geometry"
	"gridwire/wire"
)

// Coord is a grid coordinate as stored on disk.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Point is one stored wire point. Coordinates are anchor-relative, matching
// the in-memory storage model.
type Point struct {
	X        int  `json:"x"`
	Y        int  `json:"y"`
	Junction bool `json:"junction,omitempty"`
}

// Wire is the stored form of a single wire.
type Wire struct {
	ID     int     `json:"id"`
	Anchor Coord   `json:"anchor"`
	Points []Point `json:"points"`
}

// Metadata contains optional sheet metadata.
type Metadata struct {
	Name    string `json:"name,omitempty"`
	Created string `json:"created,omitempty"`
	Version string `json:"version,omitempty"`
}

// Sheet is the top-level structure of a sheet file.
type Sheet struct {
	Wires    []Wire   `json:"wires"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// FromWires snapshots live wires into their stored form, preserving point
// order and junction flags.
func FromWires(ws []*wire.Wire) *Sheet {
	s := &Sheet{Wires: make([]Wire, 0, len(ws))}
	for _, w := range ws {
		anchor := w.Anchor()
		sw := Wire{
			ID:     w.ID(),
			Anchor: Coord{X: anchor.X, Y: anchor.Y},
			Points: make([]Point, 0, w.Len()),
		}
		for _, wp := range w.WirePoints() {
			rel := wp.Sub(anchor)
			sw.Points = append(sw.Points, Point{X: rel.X, Y: rel.Y, Junction: wp.Junction})
		}
		s.Wires = append(s.Wires, sw)
	}
	return s
}

// Build reconstructs live wires from the sheet, in stored order.
func (s *Sheet) Build(t geometry.Transform) []*wire.Wire {
	ws := make([]*wire.Wire, 0, len(s.Wires))
	for _, sw := range s.Wires {
		anchor := core.Point{X: sw.Anchor.X, Y: sw.Anchor.Y}
		w := wire.New(sw.ID, anchor, t)
		for i, p := range sw.Points {
			w.Append(anchor.Add(core.Point{X: p.X, Y: p.Y}))
			if p.Junction {
				w.SetJunction(i, true)
			}
		}
		ws = append(ws, w)
	}
	return ws
}

// Marshal encodes the sheet as indented JSON.
func Marshal(s *Sheet) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Unmarshal validates data against the sheet schema and decodes it.
func Unmarshal(data []byte) (*Sheet, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	var s Sheet
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode sheet: %w", err)
	}
	return &s, nil
}

// Save writes the sheet to path.
func Save(path string, s *Sheet) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal sheet: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write sheet %s: %w", path, err)
	}
	return nil
}

// Load reads and validates the sheet file at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", path, err)
	}
	s, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("invalid sheet file %s: %w", path, err)
	}
	return s, nil
}

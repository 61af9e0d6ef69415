// Package render draws wires onto a rune grid for the terminal host.
// Character merging follows box-drawing rules so crossing and touching wires
// produce the right intersection glyphs.
package render

// Grid is a fixed-size rune matrix the host flushes to the screen.
type Grid struct {
	width, height int
	cells         []rune
	merger        *Merger
}

// NewGrid creates a cleared grid of the given size.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
		merger: NewMerger(),
	}
	g.Clear()
	return g
}

// Size returns the width and height of the grid.
func (g *Grid) Size() (int, int) {
	return g.width, g.height
}

// Get returns the rune at (x, y), or space when out of bounds.
func (g *Grid) Get(x, y int) rune {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return ' '
	}
	return g.cells[y*g.width+x]
}

// Set places a rune at (x, y), merging with whatever is already there.
// Out-of-bounds positions are ignored.
func (g *Grid) Set(x, y int, r rune) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	idx := y*g.width + x
	g.cells[idx] = g.merger.Merge(g.cells[idx], r)
}

// Put places a rune at (x, y) unconditionally, without merging.
func (g *Grid) Put(x, y int, r rune) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = r
}

// Clear resets the grid to all spaces.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
}

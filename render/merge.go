package render

// Merger decides which rune survives when two drawing characters land on the
// same cell.
type Merger struct {
	mergeMap map[mergePair]rune
}

type mergePair struct {
	existing rune
	new      rune
}

// NewMerger creates a merger with standard box-drawing merge rules.
func NewMerger() *Merger {
	m := &Merger{mergeMap: make(map[mergePair]rune)}
	m.initializeMergeRules()
	return m
}

// Merge combines two characters according to box-drawing rules.
func (m *Merger) Merge(existing, new rune) rune {
	if existing == ' ' || existing == '\x00' {
		return new
	}
	if existing == new {
		return existing
	}

	// Junction dots and handles are markers, not line art; they always
	// win over line characters and each other in that order.
	if existing == HandleRune || new == HandleRune {
		return HandleRune
	}
	if existing == JunctionRune || new == JunctionRune {
		return JunctionRune
	}

	if merged, ok := m.mergeMap[mergePair{existing, new}]; ok {
		return merged
	}
	// Merging is commutative; check the reverse order too.
	if merged, ok := m.mergeMap[mergePair{new, existing}]; ok {
		return merged
	}

	return existing
}

// initializeMergeRules sets up the character merge mappings.
func (m *Merger) initializeMergeRules() {
	// Basic line intersections
	m.mergeMap[mergePair{'─', '│'}] = '┼'

	// Corner + line = T-junction
	m.mergeMap[mergePair{'┌', '─'}] = '┬'
	m.mergeMap[mergePair{'┌', '│'}] = '├'
	m.mergeMap[mergePair{'┐', '─'}] = '┬'
	m.mergeMap[mergePair{'┐', '│'}] = '┤'
	m.mergeMap[mergePair{'└', '─'}] = '┴'
	m.mergeMap[mergePair{'└', '│'}] = '├'
	m.mergeMap[mergePair{'┘', '─'}] = '┴'
	m.mergeMap[mergePair{'┘', '│'}] = '┤'

	// T-junction + crossing line
	m.mergeMap[mergePair{'┬', '│'}] = '┼'
	m.mergeMap[mergePair{'┴', '│'}] = '┼'
	m.mergeMap[mergePair{'├', '─'}] = '┼'
	m.mergeMap[mergePair{'┤', '─'}] = '┼'

	// Corner + corner combinations
	m.mergeMap[mergePair{'┌', '┘'}] = '┼'
	m.mergeMap[mergePair{'┐', '└'}] = '┼'
	m.mergeMap[mergePair{'┌', '┐'}] = '┬'
	m.mergeMap[mergePair{'└', '┘'}] = '┴'
	m.mergeMap[mergePair{'┌', '└'}] = '├'
	m.mergeMap[mergePair{'┐', '┘'}] = '┤'

	// Diagonal crossings
	m.mergeMap[mergePair{'╱', '╲'}] = '╳'
}

package kiri

// Marker is a generational visited-set used by the string flood (string.go).
// clear() is O(1): it bumps a generation counter rather than zeroing the
// marks array, which matters because the flood runs twice per capturing
// move and thousands of times per rollout.
//
// Embedded one per Position rather than shared as a package-level
// singleton — the simpler choice given Position already documents a
// single-owner-thread contract.
type Marker struct {
	generation int32
	marks      []int32
}

// resize (re)allocates the marks array for n padded cells and resets the
// generation so a fresh board never reads a stale mark.
func (m *Marker) resize(n int) {
	m.generation = 1
	m.marks = make([]int32, n)
}

// clear makes every index report unmarked, in O(1).
//
// generation is a signed 32-bit counter; at one bump per flood call it
// overflows into negative values after roughly two billion floods, and
// those values were never stored in marks. When it comes back round to 0
// (about four billion floods), marks is zeroed and generation reset to 1
// so a stale mark can never read as current.
func (m *Marker) clear() {
	m.generation++
	if m.generation == 0 {
		for i := range m.marks {
			m.marks[i] = 0
		}
		m.generation = 1
	}
}

// mark records i as visited in the current generation.
func (m *Marker) mark(i int) {
	m.marks[i] = m.generation
}

// isMarked reports whether i was marked since the last clear.
func (m *Marker) isMarked(i int) bool {
	return m.marks[i] == m.generation
}

package domain

import "math/bits"

// ConflictSet is a fixed-size bit set over the 81 board positions.
// The zero value is the empty set.
type ConflictSet [2]uint64

// Add marks the cell at flat index idx (0..80).
func (s *ConflictSet) Add(idx int) { s[idx>>6] |= 1 << uint(idx&63) }

// AddCoord marks the cell at c.
func (s *ConflictSet) AddCoord(c CellCoord) { s.Add(c.Index()) }

// Has reports whether the cell at flat index idx is marked.
func (s ConflictSet) Has(idx int) bool { return s[idx>>6]&(1<<uint(idx&63)) != 0 }

// HasCoord reports whether the cell at c is marked.
func (s ConflictSet) HasCoord(c CellCoord) bool { return s.Has(c.Index()) }

// Count returns the number of marked cells.
func (s ConflictSet) Count() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1])
}

// Empty reports whether no cell is marked.
func (s ConflictSet) Empty() bool { return s[0] == 0 && s[1] == 0 }

// Cells returns the marked positions in row-major order.
func (s ConflictSet) Cells() []CellCoord {
	if s.Empty() {
		return nil
	}
	out := make([]CellCoord, 0, s.Count())
	for idx := 0; idx < Cells; idx++ {
		if s.Has(idx) {
			out = append(out, CoordOf(idx))
		}
	}
	return out
}

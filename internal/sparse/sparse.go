// Package sparse provides a sparse set data structure for efficient
// membership testing over small dense integer universes.
//
// A sparse set supports O(1) insertion, removal, and membership testing
// while also offering O(1) iteration over its elements in insertion order.
// This module uses it as the visited set of the Thompson NFA's
// epsilon-closure (nfa.NFA.Closure), which walks a cyclic graph (Kleene
// loops) with an explicit stack instead of recursion.
package sparse

// SparseSet is a set of uint32 values with a known, bounded universe.
// It maintains a sparse array (value -> dense index) and a dense array
// (the values themselves, in insertion order).
type SparseSet struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// NewSparseSet creates a set over the universe [0, capacity).
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Capacity returns the size of the universe this set was built for.
func (s *SparseSet) Capacity() int {
	return len(s.sparse)
}

// Len returns the number of elements currently in the set.
func (s *SparseSet) Len() int {
	return int(s.size)
}

// IsEmpty returns true if the set contains no elements.
func (s *SparseSet) IsEmpty() bool {
	return s.size == 0
}

// Contains returns true if value is a member of the set.
func (s *SparseSet) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Insert adds value to the set, returning true if it was newly added.
// Panics if value is outside the set's capacity.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
	return true
}

// Remove deletes value from the set, if present.
func (s *SparseSet) Remove(value uint32) {
	if !s.Contains(value) {
		return
	}
	idx := s.sparse[value]
	last := s.dense[s.size-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.size--
	s.dense = s.dense[:s.size]
}

// Clear empties the set in O(1) time; stale sparse entries are never
// read because Contains always checks size before indexing dense.
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Resize changes the universe size. Growing preserves existing elements;
// shrinking clears the set, since old sparse entries may now be out of
// range for values that remain valid.
func (s *SparseSet) Resize(capacity uint32) {
	if int(capacity) >= len(s.sparse) {
		grown := make([]uint32, capacity)
		copy(grown, s.sparse)
		s.sparse = grown
		return
	}
	s.sparse = make([]uint32, capacity)
	s.Clear()
}

// Values returns the set's elements in insertion order. The slice is
// valid until the next mutating call.
func (s *SparseSet) Values() []uint32 {
	return s.dense[:s.size]
}

// Iter calls f once for each element, in insertion order.
func (s *SparseSet) Iter(f func(uint32)) {
	for _, v := range s.dense[:s.size] {
		f(v)
	}
}

// Clone returns an independent copy of the set.
func (s *SparseSet) Clone() *SparseSet {
	clone := &SparseSet{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, len(s.dense)),
		size:   s.size,
	}
	copy(clone.sparse, s.sparse)
	copy(clone.dense, s.dense)
	return clone
}

// SparseSets bundles two sparse sets that are repeatedly swapped, the way
// a closure computation alternates between a "current" and "next" frontier
// without reallocating either one.
type SparseSets struct {
	Set1 *SparseSet
	Set2 *SparseSet
}

// NewSparseSets creates a pair of empty sets over the same universe.
func NewSparseSets(capacity uint32) *SparseSets {
	return &SparseSets{
		Set1: NewSparseSet(capacity),
		Set2: NewSparseSet(capacity),
	}
}

// Swap exchanges Set1 and Set2.
func (ss *SparseSets) Swap() {
	ss.Set1, ss.Set2 = ss.Set2, ss.Set1
}

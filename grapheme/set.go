package grapheme

import "slices"

// Set is an ordered collection of distinct graphemes, sorted by Compare.
// The DFA uses it as its alphabet: it only ever grows while the automaton is
// under construction and is read in order during minimization.
type Set struct {
	graphemes []Grapheme
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Insert adds g to the set, keeping the order, and reports whether the set
// changed.
func (s *Set) Insert(g Grapheme) bool {
	i, found := slices.BinarySearchFunc(s.graphemes, g, Grapheme.Compare)
	if found {
		return false
	}
	s.graphemes = slices.Insert(s.graphemes, i, g)
	return true
}

// Contains reports whether g is in the set.
func (s *Set) Contains(g Grapheme) bool {
	_, found := slices.BinarySearchFunc(s.graphemes, g, Grapheme.Compare)
	return found
}

// Len returns the number of distinct graphemes inserted so far.
func (s *Set) Len() int {
	return len(s.graphemes)
}

// Values returns the graphemes in sorted order. The snapshot is independent
// of later inserts.
func (s *Set) Values() []Grapheme {
	return slices.Clone(s.graphemes)
}

// Package grapheme defines the symbols a DFA alphabet is made of: display
// values with inclusive code-point bounds, ordered sequences of them, and an
// ordered symbol set.
package grapheme

import (
	"cmp"
	"fmt"
	"strings"
)

// Grapheme is one symbol of a DFA alphabet: a single character, or a
// contiguous range of code points sharing a display value. A Grapheme is
// immutable; widening a range means constructing a new value with New.
type Grapheme struct {
	value string
	min   int
	max   int
}

// New returns a Grapheme with the given display value and inclusive
// code-point bounds.
func New(value string, min, max int) Grapheme {
	return Grapheme{value: value, min: min, max: max}
}

// FromRune returns the single-character Grapheme for r. Both bounds are the
// code point of r.
func FromRune(r rune) Grapheme {
	return Grapheme{value: string(r), min: int(r), max: int(r)}
}

// Value returns the display value.
func (g Grapheme) Value() string { return g.value }

// Minimum returns the inclusive lower bound.
func (g Grapheme) Minimum() int { return g.min }

// Maximum returns the inclusive upper bound.
func (g Grapheme) Maximum() int { return g.max }

// Equal reports whether g and other agree on display value and both bounds.
func (g Grapheme) Equal(other Grapheme) bool {
	return g.value == other.value && g.min == other.min && g.max == other.max
}

// Compare orders graphemes by display value, then lower bound, then upper
// bound. The order is total and gives the DFA a deterministic alphabet;
// Compare returns 0 exactly when Equal reports true.
func (g Grapheme) Compare(other Grapheme) int {
	if c := strings.Compare(g.value, other.value); c != 0 {
		return c
	}
	if c := cmp.Compare(g.min, other.min); c != 0 {
		return c
	}
	return cmp.Compare(g.max, other.max)
}

// String renders the display value, with the bounds appended for range
// symbols. Debug output only; the regex synthesis stage renders symbols
// itself.
func (g Grapheme) String() string {
	if g.min == g.max {
		return g.value
	}
	return fmt.Sprintf("%s[%d-%d]", g.value, g.min, g.max)
}

// Cluster is an ordered sequence of graphemes standing for one input string
// after segmentation. The DFA builder expects non-empty clusters; that is
// the caller's contract and is not checked here.
type Cluster struct {
	graphemes []Grapheme
}

// NewCluster returns a Cluster over the given graphemes, in order.
func NewCluster(graphemes ...Grapheme) Cluster {
	return Cluster{graphemes: graphemes}
}

// ClusterFromString splits s into one single-character grapheme per rune.
// This is a plain-text seam; Unicode-aware segmentation stays with the
// caller.
func ClusterFromString(s string) Cluster {
	graphemes := make([]Grapheme, 0, len(s))
	for _, r := range s {
		graphemes = append(graphemes, FromRune(r))
	}
	return Cluster{graphemes: graphemes}
}

// Graphemes returns the symbols in order. The slice is the cluster's backing
// storage and must not be modified.
func (c Cluster) Graphemes() []Grapheme { return c.graphemes }

// Len returns the number of symbols in the cluster.
func (c Cluster) Len() int { return len(c.graphemes) }

// String concatenates the display values of the cluster's symbols.
func (c Cluster) String() string {
	var sb strings.Builder
	for _, g := range c.graphemes {
		sb.WriteString(g.value)
	}
	return sb.String()
}

package dfa

import "github.com/todaypp/grex/grapheme"

// Transition holds one edge of the automaton: the labeled step from Source
// to Dest. One Transition is typically reused across many
// InitTransition/NextTransition calls to iterate without allocating.
type Transition struct {
	Source State
	Dest   State
	Label  grapheme.Grapheme

	upto int
}

// InitTransition sets t up to iterate the edges leaving state, oldest
// first, and returns how many there are. Call NextTransition that many
// times to read them.
func (d *DFA) InitTransition(state State, t *Transition) int {
	t.Source = state
	t.upto = 0
	return len(d.graph.out[state])
}

// NextTransition advances t to the next edge leaving t.Source, filling in
// Dest and Label.
func (d *DFA) NextTransition(t *Transition) {
	e := d.graph.edges[d.graph.out[t.Source][t.upto]]
	t.upto++
	t.Dest = e.to
	t.Label = e.label
}

// OutgoingEdges returns the edges leaving state in insertion order. It
// allocates per call; prefer InitTransition and NextTransition when
// sweeping many states.
func (d *DFA) OutgoingEdges(state State) []Transition {
	out := d.graph.out[state]
	edges := make([]Transition, 0, len(out))
	for _, ei := range out {
		e := d.graph.edges[ei]
		edges = append(edges, Transition{Source: state, Dest: e.to, Label: e.label})
	}
	return edges
}

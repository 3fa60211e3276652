// Package dfa builds the minimal deterministic finite automaton accepting
// exactly a given finite set of grapheme sequences. Sequences are inserted
// one at a time along existing transitions, widening adjacent code-point
// ranges instead of sprouting duplicate edges; Minimize then collapses
// equivalent states by partition refinement. The result is read through the
// traversal API, typically by a stage that turns the automaton into a
// regular expression.
package dfa

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/todaypp/grex/grapheme"
)

// DFA is a deterministic finite automaton over grapheme symbols, with a
// single initial state. The intended lifecycle is build, minimize once,
// then read; it is not safe for concurrent use.
type DFA struct {
	alphabet *grapheme.Set
	graph    *graph
	initial  State
	finals   *bitset.BitSet
}

// New returns an empty automaton: one initial state, no edges, no final
// states. It accepts nothing until clusters are inserted.
func New() *DFA {
	g := newGraph()
	return &DFA{
		alphabet: grapheme.NewSet(),
		graph:    g,
		initial:  g.addState(),
		finals:   bitset.New(1),
	}
}

// From builds the minimal DFA accepting exactly the given clusters.
func From(clusters []grapheme.Cluster) *DFA {
	d := New()
	for _, c := range clusters {
		d.Insert(c)
	}
	d.Minimize()
	return d
}

// FromStrings builds the minimal DFA accepting exactly the given strings,
// read as one single-character grapheme per rune.
func FromStrings(inputs ...string) *DFA {
	clusters := make([]grapheme.Cluster, 0, len(inputs))
	for _, s := range inputs {
		clusters = append(clusters, grapheme.ClusterFromString(s))
	}
	return From(clusters)
}

// Insert adds one cluster to the automaton, following existing transitions
// where possible and creating states for the rest. The state reached after
// the last symbol becomes final. Determinism of the result rests on the
// insertion contract described at findNextState.
func (d *DFA) Insert(c grapheme.Cluster) {
	current := d.initial
	for _, g := range c.Graphemes() {
		d.alphabet.Insert(g)
		current = d.getNextState(current, g)
	}
	d.finals.Set(uint(current))
}

func (d *DFA) getNextState(current State, label grapheme.Grapheme) State {
	if next := d.findNextState(current, label); next != noState {
		return next
	}
	return d.addNewState(current, label)
}

// findNextState looks for an outgoing edge of current that can carry label.
// An edge with the same display value is reused in two cases: its maximum is
// one below the label's, in which case the edge label widens to the union of
// the two ranges, or equal to it, in which case the range is already
// covered. Widening only ever looks one step back, so callers must insert
// the symbols of a given state in non-decreasing maximum order with no gaps
// between coalescible ranges.
func (d *DFA) findNextState(current State, label grapheme.Grapheme) State {
	for _, ei := range d.graph.out[current] {
		e := &d.graph.edges[ei]
		if e.label.Value() != label.Value() {
			continue
		}
		if e.label.Maximum() == label.Maximum()-1 {
			e.label = grapheme.New(
				label.Value(),
				min(e.label.Minimum(), label.Minimum()),
				max(e.label.Maximum(), label.Maximum()),
			)
			return e.to
		} else if e.label.Maximum() == label.Maximum() {
			return e.to
		}
	}
	return noState
}

func (d *DFA) addNewState(current State, label grapheme.Grapheme) State {
	next := d.graph.addState()
	d.graph.addEdge(current, next, label)
	return next
}

// StateCount returns the number of states in the current graph.
func (d *DFA) StateCount() int { return d.graph.stateCount() }

// EdgeCount returns the number of edges in the current graph.
func (d *DFA) EdgeCount() int { return d.graph.edgeCount() }

// InitialState returns the single initial state.
func (d *DFA) InitialState() State { return d.initial }

// IsFinalState reports whether state is accepting. State identifiers from
// before the last Minimize are meaningless here.
func (d *DFA) IsFinalState(state State) bool {
	return d.finals.Test(uint(state))
}

// StatesInDepthFirstOrder returns every state reachable from the initial
// state, each exactly once, in depth-first preorder. A state's first-added
// edge is explored first, so the order is fixed by construction order. Each
// call walks the graph afresh.
func (d *DFA) StatesInDepthFirstOrder() []State {
	visited := bitset.New(uint(d.graph.stateCount()))
	visited.Set(uint(d.initial))
	states := make([]State, 0, d.graph.stateCount())
	stack := []State{d.initial}
	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		states = append(states, state)

		// Push in reverse so the first-added edge ends up on top.
		out := d.graph.out[state]
		for i := len(out) - 1; i >= 0; i-- {
			next := d.graph.edges[out[i]].to
			if !visited.Test(uint(next)) {
				visited.Set(uint(next))
				stack = append(stack, next)
			}
		}
	}
	return states
}

// Accepts reports whether the automaton accepts the cluster. A symbol moves
// along an edge when the edge label has the same display value and its
// range covers the symbol's range, so widened edges still match every
// symbol that built them.
func (d *DFA) Accepts(c grapheme.Cluster) bool {
	state := d.initial
	for _, g := range c.Graphemes() {
		if state = d.step(state, g); state == noState {
			return false
		}
	}
	return d.IsFinalState(state)
}

// AcceptsString reports whether the automaton accepts s read as one
// single-character grapheme per rune.
func (d *DFA) AcceptsString(s string) bool {
	return d.Accepts(grapheme.ClusterFromString(s))
}

// step performs lookup on the transitions leaving state. Returns the
// destination, or noState if no outgoing edge matches label.
func (d *DFA) step(state State, label grapheme.Grapheme) State {
	for _, ei := range d.graph.out[state] {
		e := &d.graph.edges[ei]
		if e.label.Value() == label.Value() &&
			e.label.Minimum() <= label.Minimum() &&
			label.Maximum() <= e.label.Maximum() {
			return e.to
		}
	}
	return noState
}

// IsDeterministic reports whether no state has two outgoing edges whose
// labels share a display value and overlap in range. The builder keeps this
// true as long as callers respect the insertion contract; inputs that break
// the contract surface here rather than as an error during Insert.
func (d *DFA) IsDeterministic() bool {
	for state := range d.graph.out {
		out := d.graph.out[state]
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				a := d.graph.edges[out[i]].label
				b := d.graph.edges[out[j]].label
				if a.Value() != b.Value() {
					continue
				}
				if a.Minimum() <= b.Maximum() && b.Minimum() <= a.Maximum() {
					return false
				}
			}
		}
	}
	return true
}

package dfa

import (
	"container/list"

	"github.com/bits-and-blooms/bitset"

	"github.com/todaypp/grex/grapheme"
)

// Minimize collapses the automaton to the unique minimal DFA accepting the
// same clusters, assuming the builder's determinism invariant held on
// input. The graph, initial state, and final-state set are replaced
// together at the end; state identifiers from before the call are invalid
// afterwards.
//
// The partition starts from the final/non-final divide and is refined
// Hopcroft-style: any class cut in two by the preimage of a worklist class
// under some alphabet symbol is split in place, and the worklist is charged
// with at most the smaller half, until no class splits. Every partition set
// is sized to the full state count so set algebra lines up.
func (d *DFA) Minimize() {
	p := d.initialPartition()

	w := make([]*bitset.BitSet, 0, p.Len())
	for e := p.Front(); e != nil; e = e.Next() {
		w = append(w, e.Value.(*bitset.BitSet).Clone())
	}

	alphabet := d.alphabet.Values()

	for len(w) > 0 {
		a := w[0]
		w = w[1:]

		for _, label := range alphabet {
			x := d.parentStates(a, label)
			var splits []split

			e := p.Front()
			for e != nil {
				y := e.Value.(*bitset.BitSet)
				i := x.Intersection(y)
				if i.None() {
					e = e.Next()
					continue
				}
				diff := y.Difference(x)
				if diff.None() {
					e = e.Next()
					continue
				}
				splits = append(splits, split{y: y, i: i, d: diff})

				// Replace y with i followed by diff, in place. The two
				// halves were already checked against x, so skipping
				// past them loses nothing.
				ie := p.InsertBefore(i, e)
				p.InsertAfter(diff, ie)
				next := e.Next()
				p.Remove(e)
				e = next
			}

			for _, s := range splits {
				if k := indexOfSet(w, s.y); k >= 0 {
					w = append(w[:k], w[k+1:]...)
					w = append(w, s.i, s.d)
				} else if s.i.Count() <= s.d.Count() {
					w = append(w, s.i)
				} else {
					w = append(w, s.d)
				}
			}
		}
	}

	classes := make([]*bitset.BitSet, 0, p.Len())
	for e := p.Front(); e != nil; e = e.Next() {
		if class := e.Value.(*bitset.BitSet); class.Any() {
			classes = append(classes, class)
		}
	}
	d.recreateGraph(classes)
}

type split struct {
	y, i, d *bitset.BitSet
}

func indexOfSet(sets []*bitset.BitSet, target *bitset.BitSet) int {
	for i, s := range sets {
		if s.Equal(target) {
			return i
		}
	}
	return -1
}

// initialPartition seeds the refinement with two classes, non-final states
// then final states. Either may be empty; empty classes ride along unsplit
// and are dropped before the rebuild.
func (d *DFA) initialPartition() *list.List {
	n := uint(d.graph.stateCount())
	nonFinals := bitset.New(n)
	finals := bitset.New(n)
	for s := uint(0); s < n; s++ {
		if d.finals.Test(s) {
			finals.Set(s)
		} else {
			nonFinals.Set(s)
		}
	}
	p := list.New()
	p.PushBack(nonFinals)
	p.PushBack(finals)
	return p
}

// parentStates returns the states with an edge on label into some member of
// a. An edge carries label when the display values match and the ranges
// share a maximum or a minimum: edge labels may have been widened past the
// alphabet symbol that created them, and a shared boundary is what survives
// widening. Sibling edges never hold partially overlapping ranges, so the
// shared boundary cannot pick the wrong edge.
func (d *DFA) parentStates(a *bitset.BitSet, label grapheme.Grapheme) *bitset.BitSet {
	x := bitset.New(uint(d.graph.stateCount()))
	for s, ok := a.NextSet(0); ok; s, ok = a.NextSet(s + 1) {
		for _, ei := range d.graph.in[s] {
			e := &d.graph.edges[ei]
			if e.label.Value() != label.Value() {
				continue
			}
			if e.label.Maximum() == label.Maximum() || e.label.Minimum() == label.Minimum() {
				x.Set(uint(e.from))
			}
		}
	}
	return x
}

// recreateGraph rebuilds the automaton over the given equivalence classes.
// Each class becomes one state; a class is final if any member was, and the
// class holding the old initial state is the new initial. Edges are copied
// from each class's lowest-numbered member in their insertion order:
// members are equivalent, so one representative's edges stand for the whole
// class.
func (d *DFA) recreateGraph(classes []*bitset.BitSet) {
	ng := newGraph()
	finals := bitset.New(uint(len(classes)))
	mapping := make([]State, d.graph.stateCount())
	newInitial := noState

	for _, class := range classes {
		ns := ng.addState()
		for s, ok := class.NextSet(0); ok; s, ok = class.NextSet(s + 1) {
			mapping[s] = ns
			if State(s) == d.initial {
				newInitial = ns
			}
			if d.finals.Test(s) {
				finals.Set(uint(ns))
			}
		}
	}

	for _, class := range classes {
		rep, _ := class.NextSet(0)
		for _, ei := range d.graph.out[rep] {
			e := d.graph.edges[ei]
			ng.addEdge(mapping[rep], mapping[e.to], e.label)
		}
	}

	d.graph = ng
	d.initial = newInitial
	d.finals = finals
}

package dfa

import "github.com/todaypp/grex/grapheme"

// State identifies a node of the automaton graph. States are dense indices
// into the current graph; Minimize rebuilds the graph from scratch, so
// identifiers must not be cached across it.
type State int

// noState marks the absence of a matching transition.
const noState State = -1

type edge struct {
	from  State
	to    State
	label grapheme.Grapheme
}

// graph is an arena of states and labeled directed edges. Per-state edge
// lists keep insertion order; that order is part of the traversal contract
// and must survive the minimization rebuild.
type graph struct {
	edges []edge
	out   [][]int // state -> indices into edges, oldest first
	in    [][]int // state -> indices of incoming edges
}

func newGraph() *graph {
	return &graph{}
}

func (g *graph) addState() State {
	s := State(len(g.out))
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return s
}

func (g *graph) addEdge(from, to State, label grapheme.Grapheme) {
	i := len(g.edges)
	g.edges = append(g.edges, edge{from: from, to: to, label: label})
	g.out[from] = append(g.out[from], i)
	g.in[to] = append(g.in[to], i)
}

func (g *graph) stateCount() int { return len(g.out) }

func (g *graph) edgeCount() int { return len(g.edges) }

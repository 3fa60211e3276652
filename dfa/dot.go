package dfa

import (
	"bytes"
	"fmt"
)

// Dot renders the automaton in Graphviz DOT format, a debugging aid rather
// than a persistence format. Final states are drawn as double circles and
// an arrow from an unlabeled point marks the initial state.
func (d *DFA) Dot() string {
	var buf bytes.Buffer
	buf.WriteString("digraph dfa {\n")
	buf.WriteString("\trankdir=LR;\n")
	buf.WriteString("\tinit [shape=point];\n")
	for s := 0; s < d.graph.stateCount(); s++ {
		shape := "circle"
		if d.finals.Test(uint(s)) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&buf, "\t%d [shape=%s];\n", s, shape)
	}
	fmt.Fprintf(&buf, "\tinit -> %d;\n", d.initial)
	for _, e := range d.graph.edges {
		fmt.Fprintf(&buf, "\t%d -> %d [label=%q];\n", e.from, e.to, e.label.String())
	}
	buf.WriteString("}\n")
	return buf.String()
}

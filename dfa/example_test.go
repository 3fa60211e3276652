package dfa_test

import (
	"fmt"

	"github.com/todaypp/grex/dfa"
)

// Build the minimal automaton for two similar words and walk it the way a
// regex synthesis stage would.
func ExampleFromStrings() {
	d := dfa.FromStrings("abcd", "abxd")

	fmt.Println("states:", d.StateCount())
	fmt.Println("edges:", d.EdgeCount())
	for _, state := range d.StatesInDepthFirstOrder() {
		for _, e := range d.OutgoingEdges(state) {
			fmt.Printf("%d -%s-> %d\n", state, e.Label, e.Dest)
		}
	}
	// Output:
	// states: 5
	// edges: 5
	// 0 -a-> 1
	// 1 -b-> 2
	// 2 -c-> 3
	// 2 -x-> 3
	// 3 -d-> 4
}

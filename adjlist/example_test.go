package adjlist_test

import (
	"fmt"

	"github.com/jjac/pathfind/adjlist"
)

// ExampleAdjList demonstrates building a small store and scanning it.
func ExampleAdjList() {
	l := adjlist.New()
	l.AddArc("A", "B", 1)
	l.AddArc("A", "C", 4)
	l.AddNode("D")

	fmt.Println("size:", l.Size())
	for id := range l.Keys() {
		arcs, _ := l.Neighbors(id)
		fmt.Printf("%s: %d outgoing\n", id, len(arcs))
	}
	// Output:
	// size: 4
	// A: 2 outgoing
	// B: 0 outgoing
	// C: 0 outgoing
	// D: 0 outgoing
}

// Package adjlist defines the Arc type and sentinel errors for the
// adjacency-list graph store.
package adjlist

import "errors"

// Sentinel errors for adjacency-list operations.
var (
	// ErrEmptyNodeID indicates a node identifier was the empty string.
	ErrEmptyNodeID = errors.New("adjlist: node ID is empty")

	// ErrUnknownNode indicates an operation referenced a node that was
	// never registered in the store.
	ErrUnknownNode = errors.New("adjlist: unknown node")
)

// Arc is one outgoing weighted edge of a node: it reaches To at cost Weight.
// Arcs are directed; an undirected connection is stored as two arcs.
type Arc struct {
	// To is the identifier of the arc's head node.
	To string

	// Weight is the non-negative traversal cost. Negative weights may be
	// recorded (the store does not reject them) but flip the store's
	// negative-edge flag, which causes every engine run to reject it.
	Weight int64
}

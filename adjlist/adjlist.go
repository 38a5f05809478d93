package adjlist

import "iter"

// AdjList is the in-memory adjacency-list graph store.
//
// arcs maps a node ID to its outgoing arcs in insertion order.
// order records node registration order so Keys iterates deterministically.
// negative is latched the first time a negative weight is recorded.
//
// The zero value is not usable; construct with New.
type AdjList struct {
	order    []string
	arcs     map[string][]Arc
	negative bool
}

// New creates an empty adjacency list.
// Complexity: O(1).
func New() *AdjList {
	return &AdjList{
		order: make([]string, 0),
		arcs:  make(map[string][]Arc),
	}
}

// AddNode registers id with no outgoing arcs.
// Registering an existing node is a no-op.
// Returns ErrEmptyNodeID for the empty string.
// Complexity: O(1) amortized.
func (l *AdjList) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	l.register(id)

	return nil
}

// AddArc registers a directed arc from→to with the given weight,
// auto-registering both endpoints. A negative weight is stored as-is but
// latches the negative-edge flag so the store fails validation later.
// Returns ErrEmptyNodeID if either endpoint is the empty string.
// Complexity: O(1) amortized.
func (l *AdjList) AddArc(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	l.register(from)
	l.register(to)
	l.arcs[from] = append(l.arcs[from], Arc{To: to, Weight: weight})
	if weight < 0 {
		l.negative = true
	}

	return nil
}

// register inserts id into the key order exactly once.
func (l *AdjList) register(id string) {
	if _, ok := l.arcs[id]; ok {
		return
	}
	l.arcs[id] = nil
	l.order = append(l.order, id)
}

// Size returns the number of registered nodes.
// Complexity: O(1).
func (l *AdjList) Size() int {
	return len(l.order)
}

// Has reports whether id was registered.
// Complexity: O(1).
func (l *AdjList) Has(id string) bool {
	_, ok := l.arcs[id]

	return ok
}

// Keys returns a lazy, finite, restartable sequence of all node identifiers
// in registration order. Ranging over it twice yields the same order, so
// repeated full scans of one store instance are deterministic.
// Complexity: O(1) to obtain, O(V) to drain.
func (l *AdjList) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range l.order {
			if !yield(id) {
				return
			}
		}
	}
}

// Neighbors returns a copy of the outgoing arcs of id, in insertion order.
// A registered node with no outgoing arcs yields an empty slice.
// Returns ErrUnknownNode if id was never registered.
// Complexity: O(d), where d is the out-degree of id.
func (l *AdjList) Neighbors(id string) ([]Arc, error) {
	arcs, ok := l.arcs[id]
	if !ok {
		return nil, ErrUnknownNode
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out, nil
}

// HasNegativeEdge reports whether any recorded arc carries a negative weight.
// Complexity: O(1) — the flag is latched at AddArc time.
func (l *AdjList) HasNegativeEdge() bool {
	return l.negative
}

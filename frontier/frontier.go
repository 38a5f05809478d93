package frontier

import (
	"container/heap"
	"errors"
)

// ErrEmptyFrontier is returned by PopMin on an empty frontier.
// The engine checks emptiness itself, so callers of the engine should
// never observe this error.
var ErrEmptyFrontier = errors.New("frontier: pop from empty frontier")

// Entry pairs a node identifier with its priority (the node's best currently
// known distance). Multiple entries for one node may coexist transiently;
// only the freshest is authoritative once popped.
type Entry struct {
	// Priority is the distance used for min-ordering.
	Priority int64

	// Node is the opaque node identifier.
	Node string
}

// Frontier is a min-priority container of Entry values.
// The zero value is not usable; construct with New.
type Frontier struct {
	h entryHeap
}

// New creates an empty Frontier with capacity pre-sized for n entries.
// Complexity: O(1).
func New(n int) *Frontier {
	f := &Frontier{h: make(entryHeap, 0, n)}
	heap.Init(&f.h)

	return f
}

// Insert adds (priority, node) to the frontier.
// Complexity: O(log n).
func (f *Frontier) Insert(priority int64, node string) {
	heap.Push(&f.h, Entry{Priority: priority, Node: node})
}

// RemoveExact removes one entry matching both priority and node exactly,
// reporting whether a match was found. A miss is a legitimate no-op, not an
// error: this is how decrease-key is simulated via remove-then-reinsert.
// Complexity: O(n) scan + O(log n) heap fix.
func (f *Frontier) RemoveExact(priority int64, node string) bool {
	for i, e := range f.h {
		if e.Priority == priority && e.Node == node {
			heap.Remove(&f.h, i)

			return true
		}
	}

	return false
}

// PopMin removes and returns the entry with the smallest priority.
// Returns ErrEmptyFrontier if the frontier is empty.
// Complexity: O(log n).
func (f *Frontier) PopMin() (Entry, error) {
	if f.h.Len() == 0 {
		return Entry{}, ErrEmptyFrontier
	}

	return heap.Pop(&f.h).(Entry), nil
}

// IsEmpty reports whether the frontier holds no entries.
// Complexity: O(1).
func (f *Frontier) IsEmpty() bool {
	return f.h.Len() == 0
}

// Len returns the number of entries currently held.
// Complexity: O(1).
func (f *Frontier) Len() int {
	return f.h.Len()
}

// entryHeap is a min-heap of Entry ordered by Priority ascending.
type entryHeap []Entry

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less defines the comparison: smaller priority → higher rank.
func (h entryHeap) Less(i, j int) bool { return h[i].Priority < h[j].Priority }

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type Entry.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }

// Pop removes and returns the last element from the heap.
// Called by heap.Pop after the minimum has been swapped to the end.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

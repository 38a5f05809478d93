// Package adjlist provides the adjacency-list graph store consumed by the
// shortest-path engine.
//
// An AdjList maps a node identifier to the ordered sequence of its outgoing
// weighted arcs. Identifiers are opaque strings chosen by the caller — plain
// labels, "x-y" coordinate keys, packed-integer keys — the store never
// interprets them.
//
// Construction is additive only: AddNode registers an isolated node, AddArc
// registers an arc and auto-registers both endpoints. Once handed to an
// engine run the store is treated as read-only, so a single store may be
// shared by any number of concurrent runs without locking.
//
// Validity checks used by the engine before traversal:
//
//   - Size() == 0           → the store is empty and must be rejected.
//   - HasNegativeEdge()     → a negative weight was recorded at build time;
//     the store must be rejected before any traversal starts, never mid-run.
//
// Complexity:
//
//   - AddNode / AddArc / Has / Size: O(1) amortized.
//   - Neighbors: O(d) to copy the arc slice, d = out-degree.
//   - Keys: O(1) to obtain the sequence, O(V) to drain it.
//
// Iteration order of Keys is the node registration order, so repeated full
// scans over one store instance are deterministic.
package adjlist

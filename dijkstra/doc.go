// Package dijkstra implements the label-setting shortest-path engine over an
// adjacency-list graph store with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath computes the minimum-cost path from a source node to a
//     target node, settling exactly one node per outer iteration in order of
//     increasing distance from the source.
//   - The engine drives a frontier.Frontier and simulates decrease-key with
//     remove-then-reinsert: when a node's distance improves, its stale
//     (oldDistance, node) entry is removed and the fresh one inserted, so the
//     frontier holds at most one entry per unsettled node.
//   - The run owns its distance and predecessor tables exclusively; the graph
//     store is read-only and may be shared across simultaneous runs.
//
// Termination is a three-way Outcome rather than an error:
//
//   - Found     — the target was settled; Distance and Path are populated.
//   - Exhausted — the target is unreachable (or lies beyond MaxDistance);
//     Distance is the Infinity sentinel and Path is empty.
//   - Cancelled — the supplied context was cancelled between iterations;
//     neither success nor exhaustion, and not an error.
//
// Complexity:
//
//   - Time:  O(V log V + V·E) worst case — each of the V settles costs one
//     O(log V) pop, and each relaxation pays the frontier's O(V) exact-match
//     remove. On the sparse grids this engine is built for, E is O(V) and
//     removals scan a shrinking frontier, so practical cost stays close to
//     O((V + E) log V).
//   - Space: O(V) for the distance and predecessor tables plus the frontier.
//
// Validation happens entirely before the first frontier operation:
//
//   - ErrNilAdjList     if the store pointer is nil.
//   - ErrEmptyGraph     if the store holds no nodes.
//   - ErrNegativeWeight if the store recorded any negative edge weight.
//   - ErrUnknownNode    if source or target was never registered.
//
// A store that validates clean cannot fail mid-run; negative weights are
// rejected eagerly, never detected during relaxation.
//
// Options customization:
//
//   - WithContext(ctx):         cooperative cancellation, checked once per
//     outer iteration before the pop.
//   - WithMaxDistance(x):       stop exploring once the next settle would
//     exceed x; the run terminates Exhausted.
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are impassable walls.
//   - WithOnFinalize(fn):       observe every settle, in pop order.
//   - WithOnRelax(fn):          observe every successful relaxation.
//
// The two observation hooks are the seam the trace package builds on: they
// expose the engine's chronology without coupling it to any event format.
package dijkstra

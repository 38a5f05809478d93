// Package grid compiles a 2-D grid of integer cell values into an
// adjacency-list graph store for the shortest-path engine. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Wall cells: values below WalkThreshold are impassable and excluded
//   - Two node identifier encodings, matching the schemes common in grid
//     UIs: "x-y" string keys, and a single integer packing two 16-bit
//     coordinates (rendered in decimal, since store identifiers are strings)
//
// The engine itself is identifier-scheme-agnostic; this package owns the
// encoding. Pick one per grid via Options.Encoding and keep using the same
// scheme's NodeID / parse helpers on both sides of the boundary.
//
// Construction deep-copies the input values, so a built Grid is immutable.
// Complexity: NewGrid and ToAdjList are O(W×H×d) time, d = connectivity.
package grid

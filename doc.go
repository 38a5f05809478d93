// Package pathfind computes single-source shortest paths over weighted
// graphs with non-negative edges, and can additionally produce an ordered,
// replayable trace of algorithm events for consumption by an external
// renderer or any other observer.
//
// 🚀 What is pathfind?
//
//	A small, pure-Go library that brings together:
//		• adjlist  — the adjacency-list graph store with validity checks
//		• frontier — a min-priority frontier with an exact-match remove
//		             (decrease-key via remove-then-reinsert)
//		• dijkstra — the label-setting shortest-path engine
//		• trace    — an engine variant emitting NodeFinalized / EdgeRelaxed /
//		             PathUpdated events, materialized or streamed
//		• grid     — a 2-D grid → adjacency-list compiler with two node
//		             identifier encodings ("x-y" keys and packed coordinates)
//
// ✨ Why this shape?
//
//   - The engine is a pure producer: it drives the frontier, maintains
//     per-run distance and predecessor tables, and either returns the final
//     answer or interleaves typed events with the computation.
//   - Rendering, pacing and every other presentation concern live entirely
//     outside this module; consumers drain the event sequence (or channel)
//     at whatever speed they like.
//   - Graph stores are read-only once built and safe to share across
//     simultaneous engine runs.
//
// Quick ASCII example:
//
//	A──1──B──2──C
//	│     │     │
//	4     5     1
//	│     │     │
//	└─────D─────┘
//
//	Shortest A→D costs 4, along A→B→C→D.
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
package pathfind

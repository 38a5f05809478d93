// Package trace wraps the shortest-path engine with an event-emitting
// variant: the identical control flow, plus a typed, ordered, replayable
// record of every algorithmic step.
//
// Three event kinds interleave with the computation:
//
//   - NodeFinalized(node)              — a node was settled (popped), emitted
//     before the target check.
//   - EdgeRelaxed(from, to, newDist)   — a relaxation strictly improved a
//     node's label.
//   - PathUpdated(target, path)        — emitted once, after the target is
//     confirmed, carrying the reconstructed path at that moment.
//
// Events carry a logical step index and no timing information; pacing is the
// consumer's business. The sequence is finite, append-only, produced in the
// exact chronological order the engine discovers the steps, and restartable
// only by re-running.
//
// Two consumption shapes:
//
//   - Run materializes the whole sequence into Result.Events before
//     returning — the simplest hand-off for replay.
//   - Stream produces events into a bounded channel from a dedicated
//     goroutine while a consumer drains them, decoupling algorithm speed
//     from presentation pacing. The channel bound applies backpressure; the
//     producer blocks rather than buffer unboundedly. One Final value
//     follows on a second channel after the event channel closes.
//
// Cancellation is cooperative and checked once per outer engine iteration:
// a cancelled run stops emitting, and its Outcome is Cancelled — neither
// success nor exhaustion, and not an error.
package trace

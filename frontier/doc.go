// Package frontier provides the min-priority container that orders the
// shortest-path engine's not-yet-settled nodes by best current distance.
//
// The container is a binary min-heap over (priority, node) entries built on
// container/heap. Ties between equal priorities are broken arbitrarily; the
// engine only ever compares strict inequality, so tie stability is not part
// of the contract.
//
// Decrease-key is simulated with remove-then-reinsert: the engine calls
// RemoveExact with a node's stale (oldDistance, node) entry and then Insert
// with the improved one. RemoveExact is a silent no-op when no exact match
// exists — implementations that discard duplicates eagerly are legitimate,
// so a miss must never be an error. This trades extra log-n work for a
// container contract with no handle bookkeeping; a handle-indexed heap would
// be a valid drop-in as long as observable pop order is unchanged.
//
// Complexity:
//
//   - Insert:      O(log n)
//   - PopMin:      O(log n)
//   - RemoveExact: O(n) scan + O(log n) fix
//   - IsEmpty/Len: O(1)
package frontier

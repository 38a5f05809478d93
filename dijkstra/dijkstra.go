package dijkstra

import (
	"fmt"

	"github.com/jjac/pathfind/adjlist"
	"github.com/jjac/pathfind/frontier"
)

// ShortestPath computes the minimum-cost path from source to target over the
// given adjacency-list store. It accepts functional options to customize
// behavior (WithContext, WithMaxDistance, WithInfEdgeThreshold, hooks).
//
// Returns:
//
//   - Result with Outcome Found, Exhausted or Cancelled (see types.go).
//   - err if inputs fail validation; all validation happens before the first
//     frontier operation, so a run that starts always reaches an Outcome.
//
// Preconditions and validation (in order):
//  1. Any invalid option recorded during parsing is surfaced first.
//  2. list must be non-nil (ErrNilAdjList).
//  3. list must contain at least one node (ErrEmptyGraph).
//  4. list must hold no negative weight (ErrNegativeWeight).
//  5. source and target must be registered (ErrUnknownNode).
//
// Complexity: see the package documentation.
func ShortestPath(list *adjlist.AdjList, source, target string, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate the store before touching any run state.
	if list == nil {
		return Result{}, ErrNilAdjList
	}
	if list.Size() == 0 {
		return Result{}, ErrEmptyGraph
	}
	if list.HasNegativeEdge() {
		return Result{}, ErrNegativeWeight
	}
	if !list.Has(source) {
		return Result{}, fmt.Errorf("%w: source %q", ErrUnknownNode, source)
	}
	if !list.Has(target) {
		return Result{}, fmt.Errorf("%w: target %q", ErrUnknownNode, target)
	}

	// 3) Prepare per-run tables. They are owned exclusively by this run and
	//    discarded when it returns.
	n := list.Size()
	r := &runner{
		list: list,
		cfg:  cfg,
		dist: make(map[string]int64, n),
		prev: make(map[string]string, n),
		fr:   frontier.New(n),
	}

	// 4) Seed state and run the label-setting loop.
	r.init(source)

	return r.run(target)
}

// runner holds the mutable state of a single engine run.
type runner struct {
	list *adjlist.AdjList  // read-only graph store
	cfg  Options           // run configuration
	dist map[string]int64  // node ID → best known distance from source
	prev map[string]string // node ID → predecessor on best known path
	fr   *frontier.Frontier
}

// init sets dist[source]=0 and dist[v]=Infinity for every other node, clears
// all predecessors, and seeds the frontier with one entry per node at its
// initial distance. From here on the frontier holds exactly one entry per
// unsettled node, so every pop is fresh and settles its node.
func (r *runner) init(source string) {
	for id := range r.list.Keys() {
		r.dist[id] = Infinity
		r.prev[id] = ""
	}
	r.dist[source] = 0

	for id := range r.list.Keys() {
		r.fr.Insert(r.dist[id], id)
	}
}

// run is the core loop. Each iteration checks cancellation, settles the
// minimum-distance node, resolves the target check, and relaxes outgoing
// arcs. The frontier shrinks by one entry per iteration (relaxation swaps
// entries one-for-one), so termination is bounded by the node count.
func (r *runner) run(target string) (Result, error) {
	for !r.fr.IsEmpty() {
		// 1) Cooperative cancellation, once per iteration, before the pop —
		//    no partial relaxation batch is ever left half-applied.
		select {
		case <-r.cfg.Ctx.Done():
			return Result{Distance: Infinity, Outcome: Cancelled}, nil
		default:
		}

		// 2) Settle the closest unsettled node.
		e, err := r.fr.PopMin()
		if err != nil {
			// Emptiness is checked by the loop condition; reaching this is
			// an internal invariant violation.
			return Result{}, err
		}
		u := e.Node
		r.cfg.OnFinalize(u, r.dist[u])

		// 3) Target check happens right after the pop. A target settled at
		//    Infinity was never reached by any relaxation: exhausted.
		if u == target {
			if r.dist[u] == Infinity {
				return Result{Distance: Infinity, Outcome: Exhausted}, nil
			}

			return Result{Distance: r.dist[u], Path: r.pathTo(target), Outcome: Found}, nil
		}

		// 4) A node settled at Infinity has no finite path from the source;
		//    relaxing through it would overflow the sentinel. Keep draining
		//    so the target pop above decides the outcome.
		if r.dist[u] == Infinity {
			continue
		}

		// 5) Past the distance cap nothing closer remains: pop order is
		//    non-decreasing, so stop exploring entirely.
		if r.dist[u] > r.cfg.MaxDistance {
			break
		}

		// 6) Relax all outgoing arcs of u.
		if err = r.relax(u); err != nil {
			return Result{}, err
		}
	}

	return Result{Distance: Infinity, Outcome: Exhausted}, nil
}

// relax examines each arc u→v and improves v's label when the path through u
// is strictly shorter. Improvements are reflected in the frontier via
// RemoveExact(old) + Insert(new), the remove-then-reinsert decrease-key.
//
// Assumes dist[u] is finite and final before the call.
func (r *runner) relax(u string) error {
	arcs, err := r.list.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	var newDist int64
	for _, a := range arcs {
		// Impassable wall: skip entirely.
		if a.Weight >= r.cfg.InfEdgeThreshold {
			continue
		}

		dv, ok := r.dist[a.To]
		if !ok {
			return fmt.Errorf("%w: neighbor %q of %q", ErrUnknownNode, a.To, u)
		}

		newDist = du + a.Weight
		if newDist > r.cfg.MaxDistance {
			continue
		}
		// Strict inequality only: equal-cost paths never churn the frontier.
		if newDist >= dv {
			continue
		}

		// Decrease-key: swap the stale entry for the improved one. The
		// remove may legitimately miss if v carries no entry anymore; the
		// insert below restores the one-entry-per-unsettled-node invariant.
		r.fr.RemoveExact(dv, a.To)
		r.fr.Insert(newDist, a.To)

		r.dist[a.To] = newDist
		r.prev[a.To] = u
		r.cfg.OnRelax(u, a.To, newDist)
	}

	return nil
}

// pathTo reconstructs the source→target path by walking predecessor links
// backward from target (the chain terminates at the source, whose
// predecessor is empty) and reversing in place.
func (r *runner) pathTo(target string) []string {
	path := []string{target}
	for cur := r.prev[target]; cur != ""; cur = r.prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

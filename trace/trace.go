package trace

import (
	"github.com/jjac/pathfind/adjlist"
	"github.com/jjac/pathfind/dijkstra"
)

// Run executes a traced shortest-path computation and materializes the full
// event sequence before returning.
//
// Control flow is the engine's own: events are recorded through the engine's
// observation hooks, so NodeFinalized precedes the target check, EdgeRelaxed
// fires per strict improvement, and the single PathUpdated follows a Found
// termination. A cancelled run stops recording and carries Outcome Cancelled.
//
// Returns an error only for construction-time validation failures (the
// engine's sentinel errors), in which case no events were recorded.
func Run(list *adjlist.AdjList, source, target string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	var events []Event
	step := 0
	record := func(e Event) {
		e.Step = step
		step++
		events = append(events, e)
	}

	res, err := dijkstra.ShortestPath(list, source, target,
		dijkstra.WithContext(cfg.Ctx),
		dijkstra.WithMaxDistance(cfg.MaxDistance),
		dijkstra.WithInfEdgeThreshold(cfg.InfEdgeThreshold),
		dijkstra.WithOnFinalize(func(node string, _ int64) {
			record(Event{Kind: NodeFinalized, Node: node})
		}),
		dijkstra.WithOnRelax(func(from, to string, newDist int64) {
			record(Event{Kind: EdgeRelaxed, From: from, To: to, NewDistance: newDist})
		}),
	)
	if err != nil {
		return nil, err
	}

	// The path event fires once, after the terminal node is confirmed, to
	// match the cost of one full backward reconstruction.
	if res.Outcome == dijkstra.Found {
		path := make([]string, len(res.Path))
		copy(path, res.Path)
		record(Event{Kind: PathUpdated, Node: target, Path: path})
	}

	return &Result{
		Distance: res.Distance,
		Path:     res.Path,
		Outcome:  res.Outcome,
		Events:   events,
	}, nil
}

// Stream executes a traced run in its own goroutine, delivering events in
// emission order into a bounded channel while the caller drains them. After
// the event channel closes, exactly one Final arrives on the second channel.
//
// The channel bound (Options.Buffer) applies backpressure: a slow consumer
// throttles the computation instead of growing an unbounded buffer. On
// cancellation the producer stops emitting; events still in flight for the
// current iteration may be dropped rather than block a departed consumer.
func Stream(list *adjlist.AdjList, source, target string, opts ...Option) (<-chan Event, <-chan Final) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	events := make(chan Event, cfg.Buffer)
	final := make(chan Final, 1)

	if cfg.err != nil {
		close(events)
		final <- Final{Distance: dijkstra.Infinity, Err: cfg.err}
		close(final)

		return events, final
	}

	go func() {
		defer close(final)

		step := 0
		send := func(e Event) {
			e.Step = step
			step++
			select {
			case events <- e:
			case <-cfg.Ctx.Done():
				// Consumer gone or run cancelled: drop instead of blocking.
			}
		}

		res, err := dijkstra.ShortestPath(list, source, target,
			dijkstra.WithContext(cfg.Ctx),
			dijkstra.WithMaxDistance(cfg.MaxDistance),
			dijkstra.WithInfEdgeThreshold(cfg.InfEdgeThreshold),
			dijkstra.WithOnFinalize(func(node string, _ int64) {
				send(Event{Kind: NodeFinalized, Node: node})
			}),
			dijkstra.WithOnRelax(func(from, to string, newDist int64) {
				send(Event{Kind: EdgeRelaxed, From: from, To: to, NewDistance: newDist})
			}),
		)
		if err == nil && res.Outcome == dijkstra.Found {
			path := make([]string, len(res.Path))
			copy(path, res.Path)
			send(Event{Kind: PathUpdated, Node: target, Path: path})
		}
		close(events)

		if err != nil {
			final <- Final{Distance: dijkstra.Infinity, Err: err}

			return
		}
		final <- Final{Distance: res.Distance, Path: res.Path, Outcome: res.Outcome}
	}()

	return events, final
}

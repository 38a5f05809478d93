// Package dijkstra defines the result types, sentinel errors and functional
// options for the shortest-path engine.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Infinity is the sentinel distance for unreachable nodes. It is guaranteed
// larger than any real accumulated distance; relaxation out of a node whose
// distance is still Infinity is skipped to avoid sentinel-arithmetic overflow.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the engine. All are detected before the first
// frontier operation; a run that starts cannot fail on its inputs.
var (
	// ErrNilAdjList indicates a nil *adjlist.AdjList was passed.
	ErrNilAdjList = errors.New("dijkstra: adjacency list is nil")

	// ErrEmptyGraph indicates the store holds no nodes.
	ErrEmptyGraph = errors.New("dijkstra: graph is empty")

	// ErrNegativeWeight indicates the store recorded a negative edge weight.
	// The label-setting method is correct only under non-negative weights,
	// so such a store is rejected at initialization.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight in graph")

	// ErrUnknownNode indicates the source, target, or a neighbor reference
	// was never registered in the store.
	ErrUnknownNode = errors.New("dijkstra: unknown node")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates WithInfEdgeThreshold was given a
	// non-positive threshold, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	// Found means the target was settled and Path holds a shortest walk.
	Found Outcome = iota

	// Exhausted means the target is unreachable from the source (or lies
	// beyond the configured MaxDistance). Not an error.
	Exhausted

	// Cancelled means the run's context was cancelled between iterations.
	// Distinct from both Found and Exhausted; not an error.
	Cancelled
)

// String returns the outcome name for logs and test failure messages.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "Found"
	case Exhausted:
		return "Exhausted"
	case Cancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the terminal answer of one engine run.
//
// Distance is the shortest source→target cost for Found, and the Infinity
// sentinel otherwise. Path lists node identifiers from source to target
// inclusive for Found, and is nil otherwise.
type Result struct {
	Distance int64
	Path     []string
	Outcome  Outcome
}

// Options configures one engine run.
//
// Ctx              – cooperative cancellation, checked once per iteration.
// MaxDistance      – cap on explored distance; must be ≥ 0. Default: Infinity.
// InfEdgeThreshold – edges with weight ≥ this are impassable; must be > 0.
// OnFinalize       – called for every settled node, in pop order.
// OnRelax          – called for every successful relaxation.
type Options struct {
	Ctx              context.Context
	MaxDistance      int64
	InfEdgeThreshold int64
	OnFinalize       func(node string, dist int64)
	OnRelax          func(from, to string, newDist int64)

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for configuring a run.
// Invalid values are recorded internally and surfaced as a sentinel error
// when ShortestPath is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults: background context,
// no distance cap, no impassable edges, no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		OnFinalize:       func(string, int64) {},
		OnRelax:          func(string, string, int64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps exploration: once the next node to settle would lie
// farther than max, the run terminates Exhausted.
// Negative values surface as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)

			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable
// walls; they are skipped entirely during relaxation.
// Non-positive values surface as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)

			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnFinalize registers a hook observing every settled node in pop order.
func WithOnFinalize(fn func(node string, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithOnRelax registers a hook observing every successful relaxation.
func WithOnRelax(fn func(from, to string, newDist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

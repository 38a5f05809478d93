// Package trace defines the event model, sentinel errors and functional
// options for traced shortest-path runs.
package trace

import (
	"context"
	"errors"
	"fmt"

	"github.com/jjac/pathfind/dijkstra"
)

// ErrBadBuffer indicates WithBuffer was given a negative channel bound.
var ErrBadBuffer = errors.New("trace: buffer size must be non-negative")

// EventKind discriminates the three trace event variants.
type EventKind int

const (
	// NodeFinalized records a settled node; Node is populated.
	NodeFinalized EventKind = iota

	// EdgeRelaxed records a strict label improvement; From, To and
	// NewDistance are populated.
	EdgeRelaxed

	// PathUpdated records the reconstructed path once the target is
	// confirmed; Node holds the target and Path the full chain.
	PathUpdated
)

// String returns the kind name for logs and test failure messages.
func (k EventKind) String() string {
	switch k {
	case NodeFinalized:
		return "NodeFinalized"
	case EdgeRelaxed:
		return "EdgeRelaxed"
	case PathUpdated:
		return "PathUpdated"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one step of a traced run. Step is the zero-based logical index
// within the run; the remaining fields are populated per Kind.
type Event struct {
	Step int
	Kind EventKind

	// Node is the settled node (NodeFinalized) or the target (PathUpdated).
	Node string

	// From, To and NewDistance describe an EdgeRelaxed improvement.
	From        string
	To          string
	NewDistance int64

	// Path is the source→target chain carried by PathUpdated.
	Path []string
}

// Result is the materialized outcome of Run: the engine's terminal answer
// plus the full chronological event sequence.
type Result struct {
	Distance int64
	Path     []string
	Outcome  dijkstra.Outcome
	Events   []Event
}

// Final is the terminal value delivered by Stream after its event channel
// closes. Err is non-nil only for construction-time validation failures, in
// which case no events were emitted.
type Final struct {
	Distance int64
	Path     []string
	Outcome  dijkstra.Outcome
	Err      error
}

// Options configures a traced run.
//
// Ctx              – cooperative cancellation, checked once per iteration.
// MaxDistance      – engine passthrough (see dijkstra.WithMaxDistance).
// InfEdgeThreshold – engine passthrough (see dijkstra.WithInfEdgeThreshold).
// Buffer           – Stream's channel bound; 0 means unbuffered (fully
//
//	lock-step with the consumer).
type Options struct {
	Ctx              context.Context
	MaxDistance      int64
	InfEdgeThreshold int64
	Buffer           int

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for configuring a traced run.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults: background context, no
// distance cap, no impassable edges, a 64-event channel bound.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      dijkstra.Infinity,
		InfEdgeThreshold: dijkstra.Infinity,
		Buffer:           64,
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

// WithMaxDistance caps exploration, exactly as dijkstra.WithMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold walls off heavy edges, exactly as
// dijkstra.WithInfEdgeThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// WithBuffer bounds Stream's event channel. Zero is valid (unbuffered);
// negative values surface as ErrBadBuffer.
func WithBuffer(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadBuffer, n)

			return
		}
		o.Buffer = n
	}
}

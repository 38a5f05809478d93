// Package trace_test contains unit tests for traced runs: exact event
// chronology on the reference graph, ordering properties, cancellation
// semantics, and the streamed producer/consumer hand-off.
package trace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjac/pathfind/adjlist"
	"github.com/jjac/pathfind/dijkstra"
	"github.com/jjac/pathfind/trace"
)

// buildDiamond builds the reference graph:
// A→B(1), A→C(4), B→C(2), B→D(5), C→D(1).
func buildDiamond(t *testing.T) *adjlist.AdjList {
	t.Helper()
	l := adjlist.New()
	for _, a := range []struct {
		u, v string
		w    int64
	}{
		{"A", "B", 1},
		{"A", "C", 4},
		{"B", "C", 2},
		{"B", "D", 5},
		{"C", "D", 1},
	} {
		require.NoError(t, l.AddArc(a.u, a.v, a.w))
	}

	return l
}

func finalizedNodes(events []trace.Event) []string {
	var out []string
	for _, e := range events {
		if e.Kind == trace.NodeFinalized {
			out = append(out, e.Node)
		}
	}

	return out
}

func TestRun_Diamond_ExactChronology(t *testing.T) {
	l := buildDiamond(t)

	res, err := trace.Run(l, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Found, res.Outcome)
	assert.Equal(t, int64(4), res.Distance)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)

	want := []trace.Event{
		{Step: 0, Kind: trace.NodeFinalized, Node: "A"},
		{Step: 1, Kind: trace.EdgeRelaxed, From: "A", To: "B", NewDistance: 1},
		{Step: 2, Kind: trace.EdgeRelaxed, From: "A", To: "C", NewDistance: 4},
		{Step: 3, Kind: trace.NodeFinalized, Node: "B"},
		{Step: 4, Kind: trace.EdgeRelaxed, From: "B", To: "C", NewDistance: 3},
		{Step: 5, Kind: trace.EdgeRelaxed, From: "B", To: "D", NewDistance: 6},
		{Step: 6, Kind: trace.NodeFinalized, Node: "C"},
		{Step: 7, Kind: trace.EdgeRelaxed, From: "C", To: "D", NewDistance: 4},
		{Step: 8, Kind: trace.NodeFinalized, Node: "D"},
		{Step: 9, Kind: trace.PathUpdated, Node: "D", Path: []string{"A", "B", "C", "D"}},
	}
	assert.Equal(t, want, res.Events)
}

func TestRun_StepIndicesSequential(t *testing.T) {
	l := buildDiamond(t)

	res, err := trace.Run(l, "A", "D")
	require.NoError(t, err)
	for i, e := range res.Events {
		assert.Equal(t, i, e.Step)
	}
}

func TestRun_PathUpdatedStrictlyAfterTargetFinalized(t *testing.T) {
	l := buildDiamond(t)

	res, err := trace.Run(l, "A", "D")
	require.NoError(t, err)

	targetFinalized, pathUpdated := -1, -1
	for i, e := range res.Events {
		if e.Kind == trace.NodeFinalized && e.Node == "D" {
			targetFinalized = i
		}
		if e.Kind == trace.PathUpdated {
			pathUpdated = i
		}
	}
	require.NotEqual(t, -1, targetFinalized)
	require.NotEqual(t, -1, pathUpdated)
	assert.Greater(t, pathUpdated, targetFinalized)

	// The path event is terminal and unique.
	assert.Equal(t, len(res.Events)-1, pathUpdated)
}

func TestRun_FinalizedDistancesNonDecreasing(t *testing.T) {
	l := buildDiamond(t)

	res, err := trace.Run(l, "A", "D")
	require.NoError(t, err)

	// True distances from A in the reference graph.
	dist := map[string]int64{"A": 0, "B": 1, "C": 3, "D": 4}
	var last int64
	for _, node := range finalizedNodes(res.Events) {
		d, ok := dist[node]
		require.True(t, ok)
		assert.GreaterOrEqual(t, d, last)
		last = d
	}
}

func TestRun_Exhausted_NoPathUpdated(t *testing.T) {
	l := buildDiamond(t)
	require.NoError(t, l.AddNode("E")) // isolated target

	res, err := trace.Run(l, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Exhausted, res.Outcome)
	assert.Equal(t, dijkstra.Infinity, res.Distance)
	assert.Empty(t, res.Path)

	for _, e := range res.Events {
		assert.NotEqual(t, trace.PathUpdated, e.Kind)
	}
	// Every node settles before exhaustion is declared on the target pop.
	assert.Len(t, finalizedNodes(res.Events), 5)
}

func TestRun_ValidationErrorEmitsNothing(t *testing.T) {
	l := adjlist.New()
	require.NoError(t, l.AddArc("A", "B", -1))

	res, err := trace.Run(l, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Nil(t, res)
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	l := buildDiamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := trace.Run(l, "A", "D", trace.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Cancelled, res.Outcome)
	assert.Empty(t, res.Events, "a run cancelled before its first iteration emits nothing")
}

// ------------------------------------------------------------------------
// Stream: producer/consumer hand-off.
// ------------------------------------------------------------------------

func TestStream_MatchesMaterializedRun(t *testing.T) {
	l := buildDiamond(t)

	want, err := trace.Run(l, "A", "D")
	require.NoError(t, err)

	events, final := trace.Stream(l, "A", "D")
	var got []trace.Event
	for e := range events {
		got = append(got, e)
	}
	fin := <-final

	require.NoError(t, fin.Err)
	assert.Equal(t, want.Events, got)
	assert.Equal(t, want.Distance, fin.Distance)
	assert.Equal(t, want.Path, fin.Path)
	assert.Equal(t, want.Outcome, fin.Outcome)
}

func TestStream_UnbufferedLockStep(t *testing.T) {
	l := buildDiamond(t)

	events, final := trace.Stream(l, "A", "D", trace.WithBuffer(0))
	count := 0
	for range events {
		count++
	}
	fin := <-final

	require.NoError(t, fin.Err)
	assert.Equal(t, dijkstra.Found, fin.Outcome)
	assert.Equal(t, 10, count)
}

func TestStream_CancelAfterNFinalizations(t *testing.T) {
	l := buildDiamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Unbuffered: the producer cannot run ahead of the consumer, so
	// cancelling after the Nth settle bounds the trace at N settles.
	events, final := trace.Stream(l, "A", "D",
		trace.WithContext(ctx), trace.WithBuffer(0))

	const n = 2
	finalized := 0
	for e := range events {
		if e.Kind == trace.NodeFinalized {
			finalized++
			if finalized == n {
				cancel()
			}
		}
	}
	fin := <-final

	require.NoError(t, fin.Err)
	assert.Equal(t, dijkstra.Cancelled, fin.Outcome)
	assert.Equal(t, n, finalized)
}

func TestStream_ValidationErrorInFinal(t *testing.T) {
	events, final := trace.Stream(adjlist.New(), "A", "B")
	for range events {
		t.Fatal("no events expected for an invalid store")
	}
	fin := <-final
	assert.ErrorIs(t, fin.Err, dijkstra.ErrEmptyGraph)
}

func TestStream_BadBuffer(t *testing.T) {
	l := buildDiamond(t)

	events, final := trace.Stream(l, "A", "D", trace.WithBuffer(-1))
	for range events {
		t.Fatal("no events expected for an invalid option")
	}
	fin := <-final
	assert.ErrorIs(t, fin.Err, trace.ErrBadBuffer)
}

package frontier_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjac/pathfind/frontier"
)

func TestFrontier_PopMin_Empty(t *testing.T) {
	f := frontier.New(0)
	_, err := f.PopMin()
	assert.ErrorIs(t, err, frontier.ErrEmptyFrontier)
}

func TestFrontier_PopOrder(t *testing.T) {
	f := frontier.New(4)
	f.Insert(7, "C")
	f.Insert(2, "A")
	f.Insert(5, "B")
	f.Insert(11, "D")

	var order []string
	for !f.IsEmpty() {
		e, err := f.PopMin()
		require.NoError(t, err)
		order = append(order, e.Node)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)
}

func TestFrontier_PopPriorities_NonDecreasing(t *testing.T) {
	f := frontier.New(8)
	for _, p := range []int64{9, 1, 4, 4, 0, 12, 3, 7} {
		f.Insert(p, "n")
	}

	last := int64(math.MinInt64)
	for !f.IsEmpty() {
		e, err := f.PopMin()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, e.Priority, last)
		last = e.Priority
	}
}

func TestFrontier_RemoveExact_DecreaseKey(t *testing.T) {
	f := frontier.New(3)
	f.Insert(10, "A")
	f.Insert(20, "B")
	f.Insert(30, "C")

	// Simulate decrease-key for B: remove stale entry, insert improved one.
	assert.True(t, f.RemoveExact(20, "B"))
	f.Insert(5, "B")

	e, err := f.PopMin()
	require.NoError(t, err)
	assert.Equal(t, frontier.Entry{Priority: 5, Node: "B"}, e)
}

func TestFrontier_RemoveExact_MissIsNoOp(t *testing.T) {
	f := frontier.New(2)
	f.Insert(10, "A")

	// Wrong priority, wrong node, and empty-frontier misses are all silent.
	assert.False(t, f.RemoveExact(11, "A"))
	assert.False(t, f.RemoveExact(10, "B"))
	assert.Equal(t, 1, f.Len())

	e, err := f.PopMin()
	require.NoError(t, err)
	assert.Equal(t, "A", e.Node)
	assert.False(t, f.RemoveExact(10, "A"))
}

func TestFrontier_RemoveExact_OneOfDuplicates(t *testing.T) {
	f := frontier.New(3)
	f.Insert(10, "A")
	f.Insert(10, "A")

	// Exactly one of the two identical entries is removed.
	assert.True(t, f.RemoveExact(10, "A"))
	assert.Equal(t, 1, f.Len())
	assert.True(t, f.RemoveExact(10, "A"))
	assert.True(t, f.IsEmpty())
}

func TestFrontier_StaleDuplicatesCoexist(t *testing.T) {
	// A node may transiently hold several entries at different priorities;
	// the freshest (smallest) one surfaces first.
	f := frontier.New(3)
	f.Insert(50, "A")
	f.Insert(30, "A")
	f.Insert(40, "B")

	e, err := f.PopMin()
	require.NoError(t, err)
	assert.Equal(t, frontier.Entry{Priority: 30, Node: "A"}, e)
	assert.Equal(t, 2, f.Len())
}

package deque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasgdosr/deque/v2"
	"github.com/lucasgdosr/deque/v2/allocator"
)

func TestRingQueueDefaults(t *testing.T) {
	r, err := deque.NewRingQueue[int]()
	require.NoError(t, err)
	assert.Equal(t, 8, r.Cap())
	assert.True(t, r.Empty())

	for i := range 9 {
		require.NoError(t, r.PushBack(i))
	}
	assert.Equal(t, 16, r.Cap())

	for i := range 9 {
		v, err := r.PopFront()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	require.NoError(t, r.ShrinkToFit())
	assert.Equal(t, 8, r.Cap())

	_, err = r.PopFront()
	assert.ErrorIs(t, err, deque.ErrEmptyQueue)
	_, err = r.Front()
	assert.ErrorIs(t, err, deque.ErrEmptyQueue)
}

func TestRingQueueNeverShrinksBelowMinimum(t *testing.T) {
	r, err := deque.NewRingQueue[string](deque.WithMinCapacity[string](32))
	require.NoError(t, err)
	assert.Equal(t, 32, r.Cap())

	for range 100 {
		require.NoError(t, r.PushBack("x"))
	}
	for range 100 {
		_, err := r.PopBack()
		require.NoError(t, err)
	}
	assert.Equal(t, 32, r.Cap())
	require.NoError(t, r.ShrinkToFit())
	assert.Equal(t, 32, r.Cap())
}

func TestRingQueueReset(t *testing.T) {
	tracker, err := allocator.NewTracker[int](nil)
	require.NoError(t, err)
	r, err := deque.NewRingQueue[int](deque.WithAllocator[int](tracker))
	require.NoError(t, err)
	require.NoError(t, r.EmplaceBack(func(p *int) { *p = 7 }))

	r.Reset()
	assert.Equal(t, 0, r.Cap())
	assert.Equal(t, int64(0), tracker.Stats().SlotsInUse)

	require.NoError(t, r.PushBack(1))
	assert.Equal(t, 8, r.Cap())
	r.Reset()
	assert.Equal(t, int64(0), tracker.Stats().Live())
}

func TestRingQueueCopyAndMove(t *testing.T) {
	r, err := deque.NewRingQueue[int]()
	require.NoError(t, err)
	for i := range 5 {
		require.NoError(t, r.PushBack(i))
	}

	c, err := r.Clone()
	require.NoError(t, err)
	v, err := c.Back()
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	m := r.Move()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 5, m.Len())

	var vals []int
	for v := range m.Values() {
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, vals)

	// A moved-from queue picks its minimum capacity back up on the next push.
	require.NoError(t, r.PushBack(9))
	assert.Equal(t, 8, r.Cap())

	require.NoError(t, r.CopyFrom(c))
	assert.Equal(t, 5, r.Len())
	r.MoveFrom(m)
	assert.Equal(t, 5, r.Len())
	assert.Equal(t, 0, m.Len())

	for i, v := range r.All() {
		assert.Equal(t, i, v)
		got, err := r.At(i)
		require.NoError(t, err)
		assert.Equal(t, r.AtUnsafe(i), got)
	}
	r.Clear()
	assert.True(t, r.Empty())
}

func TestRingQueueNil(t *testing.T) {
	var r *deque.RingQueue[int]
	assert.Equal(t, 0, r.Len())
}

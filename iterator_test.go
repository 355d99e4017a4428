package deque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasgdosr/deque/v2"
)

func TestIteratorWalk(t *testing.T) {
	q := testQueue(t)
	var got []int
	for it := q.Begin(); !it.Equal(q.End()); it = it.Next() {
		require.True(t, it.Valid())
		got = append(got, it.Get())
	}
	assert.Equal(t, []int{4, 5, 6, 7}, got)
	assert.False(t, q.End().Valid())
	assert.Equal(t, 4, q.End().Distance(q.Begin()))

	it := q.End().Prev()
	assert.Equal(t, 7, it.Get())
	it.Set(70)
	*it.Sub(1).Ptr() = 60
	assert.Equal(t, "4 5 60 70 ", str(q))
	assert.Equal(t, 2, q.Begin().Add(2).Index())
}

func TestIteratorOrdering(t *testing.T) {
	q := testQueue(t)
	other := testQueue(t)

	b, e := q.Begin(), q.End()
	assert.True(t, b.Less(e))
	assert.False(t, e.Less(b))
	c, ok := b.Compare(e)
	assert.True(t, ok)
	assert.Equal(t, -1, c)
	c, ok = e.Compare(e)
	assert.True(t, ok)
	assert.Equal(t, 0, c)

	// Same position, different Deques.
	assert.False(t, b.Equal(other.Begin()))
	assert.False(t, b.Less(other.End()))
	_, ok = b.Compare(other.Begin())
	assert.False(t, ok)
}

func TestConstIterator(t *testing.T) {
	q := testQueue(t)
	var got []int
	for it := q.CBegin(); it.Less(q.CEnd()); it = it.Next() {
		got = append(got, it.Get())
	}
	assert.Equal(t, []int{4, 5, 6, 7}, got)

	it := q.Begin().Add(3).Const()
	assert.True(t, it.Equal(q.CEnd().Prev()))
	assert.Equal(t, 7, it.Get())
	assert.Equal(t, 1, it.Sub(2).Index())
	assert.Equal(t, 3, it.Distance(q.CBegin()))
	assert.True(t, it.Valid())
	assert.False(t, it.Add(1).Valid())

	var zero deque.ConstIterator[int, [8]int]
	assert.False(t, zero.Valid())
}

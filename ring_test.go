package chanbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRingCursorsWrap(t *testing.T) {
	r := newRing[int](3)

	for i := range 3 {
		r.enqueue(i)
	}
	require.True(t, r.full())

	require.Equal(t, 0, r.dequeue())
	require.Equal(t, 1, r.dequeue())

	// Cursors wrap past the end of the slice.
	r.enqueue(3)
	r.enqueue(4)
	require.True(t, r.full())

	require.Equal(t, 2, r.dequeue())
	require.Equal(t, 3, r.dequeue())
	require.Equal(t, 4, r.dequeue())
	require.True(t, r.empty())
}

func TestRingGrowContiguous(t *testing.T) {
	r := newRing[int](4)
	for i := range 4 {
		r.enqueue(i)
	}

	r.grow(8)

	require.Equal(t, 8, r.cap())
	require.Equal(t, 0, r.read)
	require.Equal(t, 4, r.write)
	for i := range 4 {
		require.Equal(t, i, r.dequeue())
	}
}

func TestRingGrowWrapped(t *testing.T) {
	r := newRing[int](4)

	// Advance the read cursor, then refill so the live window wraps:
	// slots hold [4 5 2 3] with read=2, write=2.
	for i := range 4 {
		r.enqueue(i)
	}
	r.dequeue()
	r.dequeue()
	r.enqueue(4)
	r.enqueue(5)
	require.True(t, r.full())

	r.grow(8)

	require.Equal(t, 0, r.read)
	require.Equal(t, 4, r.write)
	for _, want := range []int{2, 3, 4, 5} {
		require.Equal(t, want, r.dequeue())
	}
	require.True(t, r.empty())
}

func TestRingGrowEmpty(t *testing.T) {
	r := newRing[int](2)
	r.enqueue(1)
	require.Equal(t, 1, r.dequeue())

	r.grow(4)

	require.True(t, r.empty())
	r.enqueue(7)
	require.Equal(t, 7, r.dequeue())
}

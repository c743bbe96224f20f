package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](4)

	assert.True(t, rq.IsEmpty())
	assert.Equal(t, 0, rq.Len())

	for i := 1; i <= 3; i++ {
		require.NoError(t, rq.Enqueue(i))
	}
	assert.Equal(t, 3, rq.Len())

	v, err := rq.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, rq.Len())

	for i := 1; i <= 3; i++ {
		v, err := rq.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.True(t, rq.IsEmpty())
}

func TestRingQueueFull(t *testing.T) {
	rq := NewRingQueue[string](2)

	require.NoError(t, rq.Enqueue("a"))
	require.NoError(t, rq.Enqueue("b"))
	assert.True(t, rq.IsFull())

	err := rq.Enqueue("c")
	assert.ErrorIs(t, err, ErrQueueFull)

	// History-buffer usage: drop the oldest to make room.
	v, err := rq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	require.NoError(t, rq.Enqueue("c"))

	v, err = rq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	v, err = rq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestRingQueueEmpty(t *testing.T) {
	rq := NewRingQueue[int](1)

	_, err := rq.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)
	_, err = rq.Peek()
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestRingQueueWrapAround(t *testing.T) {
	rq := NewRingQueue[int](3)

	for i := 0; i < 10; i++ {
		require.NoError(t, rq.Enqueue(i))
		v, err := rq.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.True(t, rq.IsEmpty())
}

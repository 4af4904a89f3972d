package queue

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestQueue_FIFO(t *testing.T) {
	q := New[uint16](8)
	assert.True(t, q.Empty())

	for _, v := range []uint16{0x4400, 0x4402, 0x4404} {
		assert.True(t, q.Push(v))
	}
	assert.Equal(t, 3, q.Len())

	for _, want := range []uint16{0x4400, 0x4402, 0x4404} {
		got, ok := q.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.Pop()
	assert.False(t, ok)
	assert.True(t, q.Empty())
}

func TestQueue_Capacity(t *testing.T) {
	const capacity = 4
	q := New[int](capacity)

	for i := range capacity - 1 {
		assert.True(t, q.Push(i), "push %d should be accepted", i)
	}
	assert.True(t, q.Full())
	assert.False(t, q.Push(capacity-1), "push beyond the bound must be dropped")
	assert.Equal(t, capacity-1, q.Len())

	// the dropped value must not show up
	for i := range capacity - 1 {
		got, ok := q.Pop()
		assert.True(t, ok)
		assert.Equal(t, i, got)
	}
	assert.True(t, q.Empty())
}

func TestQueue_WrapAround(t *testing.T) {
	q := New[int](3)

	for i := range 10 {
		assert.True(t, q.Push(i))
		assert.True(t, q.Push(i+100))
		assert.False(t, q.Push(i+200))

		v, ok := q.Pop()
		assert.True(t, ok)
		assert.Equal(t, i, v)
		v, ok = q.Pop()
		assert.True(t, ok)
		assert.Equal(t, i+100, v)
	}
	assert.Equal(t, 0, q.Len())
}

func TestNew_MinimumCapacity(t *testing.T) {
	q := New[int](0)
	assert.Equal(t, 2, q.Cap())
	assert.True(t, q.Push(1))
	assert.False(t, q.Push(2))
}

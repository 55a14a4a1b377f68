package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewRingBuffer verifies construction and the positive-size guard.
func TestNewRingBuffer(t *testing.T) {
	rb := NewRingBuffer[int](3)
	assert.Equal(t, 0, rb.Len())
	assert.Equal(t, 3, rb.Cap())

	assert.Panics(t, func() { NewRingBuffer[int](0) })
	assert.Panics(t, func() { NewRingBuffer[int](-1) })
}

// TestRingBuffer_PushAndSnapshot verifies arrival order and eviction of
// the oldest element when the buffer is full.
func TestRingBuffer_PushAndSnapshot(t *testing.T) {
	rb := NewRingBuffer[int](3)

	rb.Push(1)
	rb.Push(2)
	assert.Equal(t, []int{1, 2}, rb.Snapshot())

	rb.Push(3)
	rb.Push(4) // evicts 1
	assert.Equal(t, []int{2, 3, 4}, rb.Snapshot())
	assert.Equal(t, 3, rb.Len())
}

// TestRingBuffer_Empty verifies that an empty buffer yields an empty
// slice, not nil surprises downstream in JSON encoding.
func TestRingBuffer_Empty(t *testing.T) {
	rb := NewRingBuffer[string](2)
	assert.NotNil(t, rb.Snapshot())
	assert.Empty(t, rb.Snapshot())
}

// TestRingBuffer_ConcurrentPush verifies thread safety of Push.
func TestRingBuffer_ConcurrentPush(t *testing.T) {
	rb := NewRingBuffer[int](100)
	const writers = 10
	const iterations = 1000

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				rb.Push(i)
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 100, rb.Len())
}

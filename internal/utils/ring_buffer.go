package utils

import "sync"

// RingBuffer is a fixed-size circular buffer holding elements of type T.
// Pushing into a full buffer evicts the oldest element. Elements are kept
// in arrival order, oldest first. All methods are safe for concurrent use.
//
// Example:
//
//	rb := NewRingBuffer[int](3)
//	rb.Push(1)
//	rb.Push(2)
//	rb.Push(3)
//	rb.Push(4) // evicts 1
//	fmt.Println(rb.Snapshot()) // [2 3 4]
type RingBuffer[T any] struct {
	data  []T
	size  int // capacity
	count int // current number of elements
	head  int // index of the oldest element
	tail  int // index of the next write position
	mu    sync.RWMutex
}

// NewRingBuffer creates a ring buffer of the given capacity.
// The size must be positive, otherwise the call panics.
func NewRingBuffer[T any](size int) *RingBuffer[T] {
	if size <= 0 {
		panic("ring buffer size must be positive")
	}
	return &RingBuffer[T]{
		data: make([]T, size),
		size: size,
	}
}

// Push appends an element to the buffer, evicting the oldest element
// when the buffer is full.
func (rb *RingBuffer[T]) Push(item T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.data[rb.tail] = item
	rb.tail = (rb.tail + 1) % rb.size

	if rb.count < rb.size {
		rb.count++
	} else {
		rb.head = (rb.head + 1) % rb.size
	}
}

// Len returns the current number of elements, always within [0, Cap()].
func (rb *RingBuffer[T]) Len() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.count
}

// Cap returns the buffer capacity.
func (rb *RingBuffer[T]) Cap() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.size
}

// Snapshot returns a copy of the buffer contents in order from oldest
// to newest. An empty buffer yields an empty slice.
func (rb *RingBuffer[T]) Snapshot() []T {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	result := make([]T, rb.count)
	for i := 0; i < rb.count; i++ {
		result[i] = rb.data[(rb.head+i)%rb.size]
	}
	return result
}

package orderedbuffer

import (
	"errors"
	"sort"
	"sync/atomic"
)

var ErrClosedBuffer = errors.New("buffer is closed")

type CompareFunc[T any] func(a, b T) int

// OrderedBuffer keeps its items sorted by compare.
// Items that compare equal keep their insertion order.
// It is not safe for concurrent use; callers guard it themselves.
type OrderedBuffer[T any] struct {
	data    []T
	compare CompareFunc[T]

	closed atomic.Bool
}

func NewOrderedBuffer[T any](capacity int, cmp CompareFunc[T]) *OrderedBuffer[T] {
	if cmp == nil {
		panic("orderedbuffer: nil compare func")
	}
	if capacity < 0 {
		capacity = 0
	}
	return &OrderedBuffer[T]{
		data:    make([]T, 0, capacity),
		compare: cmp,
	}
}

func (b *OrderedBuffer[T]) Insert(val T) error {
	if b.closed.Load() {
		return ErrClosedBuffer
	}

	// first position strictly greater than val, so equal items stay FIFO
	idx := sort.Search(len(b.data), func(i int) bool {
		return b.compare(val, b.data[i]) < 0
	})

	var zero T
	b.data = append(b.data, zero)
	copy(b.data[idx+1:], b.data[idx:])
	b.data[idx] = val
	return nil
}

func (b *OrderedBuffer[T]) Len() int {
	return len(b.data)
}

// Peek returns the smallest item without removing it.
func (b *OrderedBuffer[T]) Peek() (T, bool) {
	if len(b.data) == 0 {
		var zero T
		return zero, false
	}
	return b.data[0], true
}

// Pop removes and returns the smallest item.
func (b *OrderedBuffer[T]) Pop() (T, bool) {
	head, ok := b.Peek()
	if !ok {
		return head, false
	}
	var zero T
	b.data[0] = zero
	b.data = b.data[1:]
	return head, true
}

// PopWhile removes and returns the leading items for which keep holds,
// stopping at the first item that fails it.
func (b *OrderedBuffer[T]) PopWhile(keep func(T) bool) []T {
	n := 0
	for n < len(b.data) && keep(b.data[n]) {
		n++
	}
	if n == 0 {
		return nil
	}
	popped := make([]T, n)
	copy(popped, b.data[:n])

	var zero T
	for i := range n {
		b.data[i] = zero
	}
	b.data = b.data[n:]
	return popped
}

// Remove deletes the first item matching match and reports whether one was found.
func (b *OrderedBuffer[T]) Remove(match func(T) bool) bool {
	for i, v := range b.data {
		if match(v) {
			last := len(b.data) - 1
			copy(b.data[i:], b.data[i+1:])
			var zero T
			b.data[last] = zero
			b.data = b.data[:last]
			return true
		}
	}
	return false
}

// Close marks the buffer closed and hands back whatever was still queued, in order.
// Subsequent calls return nil.
func (b *OrderedBuffer[T]) Close() []T {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	rest := b.data
	b.data = nil
	return rest
}

func (b *OrderedBuffer[T]) Closed() bool {
	return b.closed.Load()
}

package ecs

// Buffer is a bounded append-only staging buffer. Producers Add during a
// tick; the consumer reads the items and Clears it after draining.
type Buffer[T any] struct {
	items   []T
	dropped int
}

func NewBuffer[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{items: make([]T, 0, capacity)}
}

// Add appends v. When the buffer is full v is dropped, counted, and false is
// returned.
func (b *Buffer[T]) Add(v T) bool {
	if b == nil {
		return false
	}
	if len(b.items) == cap(b.items) {
		b.dropped++
		return false
	}
	b.items = append(b.items, v)
	return true
}

func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

func (b *Buffer[T]) At(i int) T {
	return b.items[i]
}

// Items returns the staged values. The slice is reused after Clear.
func (b *Buffer[T]) Items() []T {
	if b == nil {
		return nil
	}
	return b.items
}

// Clear empties the buffer without releasing its storage.
func (b *Buffer[T]) Clear() {
	if b == nil {
		return
	}
	var zero T
	for i := range b.items {
		b.items[i] = zero
	}
	b.items = b.items[:0]
}

// Dropped returns how many values were rejected because the buffer was full.
func (b *Buffer[T]) Dropped() int {
	if b == nil {
		return 0
	}
	return b.dropped
}

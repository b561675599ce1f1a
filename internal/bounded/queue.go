// Package bounded provides fixed-capacity containers that never grow after
// construction. They back every piece of per-tick state in the runtime core
// so a frame never allocates.
package bounded

// Queue is a ring buffer with a fixed capacity.
// When full, pushing evicts the oldest element.
type Queue[T any] struct {
	items []T
	start int // index of the oldest element
	count int
}

// NewQueue creates a queue holding at most capacity elements.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		panic("bounded: queue capacity must be positive")
	}
	return &Queue[T]{items: make([]T, capacity)}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.count
}

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int {
	return len(q.items)
}

// Full reports whether the next push will evict.
func (q *Queue[T]) Full() bool {
	return q.count == len(q.items)
}

// PushPop appends item at the back. If the queue was full the oldest
// element is evicted and returned with ok set to true.
func (q *Queue[T]) PushPop(item T) (evicted T, ok bool) {
	if q.Full() {
		evicted, ok = q.Pop()
	}
	q.items[q.wrap(q.start+q.count)] = item
	q.count++
	return evicted, ok
}

// Pop removes and returns the oldest element.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	item := q.items[q.start]
	q.items[q.start] = zero
	q.start = q.wrap(q.start + 1)
	q.count--
	return item, true
}

// Get returns the element at logical index idx, counted from the oldest.
// Indexes at or past the writer position return false rather than stale data.
func (q *Queue[T]) Get(idx int) (T, bool) {
	var zero T
	if idx < 0 || idx >= q.count {
		return zero, false
	}
	return q.items[q.wrap(q.start+idx)], true
}

// Clear empties the queue, keeping its storage.
func (q *Queue[T]) Clear() {
	var zero T
	for i := range q.items {
		q.items[i] = zero
	}
	q.start = 0
	q.count = 0
}

func (q *Queue[T]) wrap(i int) int {
	if i >= len(q.items) {
		return i - len(q.items)
	}
	return i
}

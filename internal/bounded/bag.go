package bounded

import (
	"errors"
	"iter"
)

// ErrFull is returned when a Bag has no free slot.
var ErrFull = errors.New("bounded: bag is full")

// Bag is an arena of optional slots addressed by integer handle.
// Push fills the lowest free slot; iteration is in slot order.
type Bag[T any] struct {
	items []T
	used  []bool
	count int
}

// NewBag creates a bag with the given number of slots.
func NewBag[T any](capacity int) *Bag[T] {
	if capacity <= 0 {
		panic("bounded: bag capacity must be positive")
	}
	return &Bag[T]{
		items: make([]T, capacity),
		used:  make([]bool, capacity),
	}
}

// Push stores item in the first free slot and returns its handle.
func (b *Bag[T]) Push(item T) (int, error) {
	for i, used := range b.used {
		if !used {
			b.items[i] = item
			b.used[i] = true
			b.count++
			return i, nil
		}
	}
	return -1, ErrFull
}

// Get returns a pointer to the item at handle idx, or nil if the slot is empty.
func (b *Bag[T]) Get(idx int) *T {
	if idx < 0 || idx >= len(b.items) || !b.used[idx] {
		return nil
	}
	return &b.items[idx]
}

// Take removes and returns the item at idx.
func (b *Bag[T]) Take(idx int) (T, bool) {
	var zero T
	if idx < 0 || idx >= len(b.items) || !b.used[idx] {
		return zero, false
	}
	item := b.items[idx]
	b.Remove(idx)
	return item, true
}

// Remove frees the slot at idx. Removing an empty slot is a no-op.
func (b *Bag[T]) Remove(idx int) {
	if idx < 0 || idx >= len(b.items) || !b.used[idx] {
		return
	}
	var zero T
	b.items[idx] = zero
	b.used[idx] = false
	b.count--
}

// Len returns the number of occupied slots.
func (b *Bag[T]) Len() int {
	return b.count
}

// Cap returns the number of slots.
func (b *Bag[T]) Cap() int {
	return len(b.items)
}

// Full reports whether every slot is occupied.
func (b *Bag[T]) Full() bool {
	return b.count == len(b.items)
}

// Clear frees every slot.
func (b *Bag[T]) Clear() {
	for i := range b.items {
		b.Remove(i)
	}
}

// All iterates occupied slots in handle order. Removing the current slot
// during iteration is allowed.
func (b *Bag[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range b.items {
			if !b.used[i] {
				continue
			}
			if !yield(i, &b.items[i]) {
				return
			}
		}
	}
}

// Retain calls keep for every occupied slot and frees the ones it rejects.
func (b *Bag[T]) Retain(keep func(idx int, item *T) bool) {
	for i := range b.items {
		if b.used[i] && !keep(i, &b.items[i]) {
			b.Remove(i)
		}
	}
}

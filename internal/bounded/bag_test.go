package bounded

import (
	"errors"
	"testing"
)

func TestBagPushFillsLowestSlot(t *testing.T) {
	b := NewBag[string](3)

	a, _ := b.Push("a")
	c, _ := b.Push("b")
	if a != 0 || c != 1 {
		t.Fatalf("handles = %d, %d, expected 0, 1", a, c)
	}

	b.Remove(0)
	idx, err := b.Push("c")
	if err != nil {
		t.Fatalf("Push() failed: %v", err)
	}
	if idx != 0 {
		t.Errorf("Push() reused handle %d, expected 0", idx)
	}
}

func TestBagFull(t *testing.T) {
	b := NewBag[int](2)
	b.Push(1)
	b.Push(2)

	if !b.Full() {
		t.Error("Full() should be true")
	}
	if _, err := b.Push(3); !errors.Is(err, ErrFull) {
		t.Errorf("Push() on full bag error = %v, expected ErrFull", err)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", b.Len())
	}
}

func TestBagGetTake(t *testing.T) {
	b := NewBag[int](4)
	idx, _ := b.Push(42)

	if p := b.Get(idx); p == nil || *p != 42 {
		t.Fatalf("Get(%d) = %v, expected 42", idx, p)
	}
	if b.Get(3) != nil {
		t.Error("Get() on empty slot should return nil")
	}
	if b.Get(99) != nil {
		t.Error("Get() out of range should return nil")
	}

	v, ok := b.Take(idx)
	if !ok || v != 42 {
		t.Errorf("Take() = (%d, %v), expected (42, true)", v, ok)
	}
	if b.Len() != 0 {
		t.Errorf("Len() after Take = %d, expected 0", b.Len())
	}
}

func TestBagAllInSlotOrder(t *testing.T) {
	b := NewBag[int](4)
	b.Push(10)
	b.Push(20)
	b.Push(30)
	b.Remove(1)

	var got []int
	for _, v := range b.All() {
		got = append(got, *v)
	}

	if len(got) != 2 || got[0] != 10 || got[1] != 30 {
		t.Errorf("All() = %v, expected [10 30]", got)
	}
}

func TestBagRetain(t *testing.T) {
	b := NewBag[int](5)
	for i := 1; i <= 5; i++ {
		b.Push(i)
	}

	b.Retain(func(_ int, v *int) bool {
		return *v%2 == 1
	})

	if b.Len() != 3 {
		t.Errorf("Len() after Retain = %d, expected 3", b.Len())
	}
	if b.Get(1) != nil || b.Get(3) != nil {
		t.Error("Retain() should free rejected slots")
	}
}

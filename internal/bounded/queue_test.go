package bounded

import "testing"

func TestQueuePushPopOrder(t *testing.T) {
	q := NewQueue[int](4)

	for i := 1; i <= 3; i++ {
		if _, evicted := q.PushPop(i); evicted {
			t.Fatalf("PushPop(%d) evicted on a non-full queue", i)
		}
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", q.Len())
	}

	for want := 1; want <= 3; want++ {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Errorf("Pop() = (%d, %v), expected (%d, true)", got, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue should return false")
	}
}

func TestQueueEvictsOldestWhenFull(t *testing.T) {
	q := NewQueue[int](3)
	q.PushPop(1)
	q.PushPop(2)
	q.PushPop(3)

	evicted, ok := q.PushPop(4)
	if !ok || evicted != 1 {
		t.Errorf("PushPop(4) = (%d, %v), expected (1, true)", evicted, ok)
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", q.Len())
	}

	for idx, want := range []int{2, 3, 4} {
		got, ok := q.Get(idx)
		if !ok || got != want {
			t.Errorf("Get(%d) = (%d, %v), expected (%d, true)", idx, got, ok, want)
		}
	}
}

func TestQueueGetPastWriter(t *testing.T) {
	q := NewQueue[uint32](8)
	q.PushPop(7)

	tests := []struct {
		name string
		idx  int
		ok   bool
	}{
		{"first", 0, true},
		{"past writer", 1, false},
		{"negative", -1, false},
		{"past capacity", 8, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := q.Get(tc.idx)
			if ok != tc.ok {
				t.Errorf("Get(%d) ok = %v, expected %v", tc.idx, ok, tc.ok)
			}
		})
	}
}

func TestQueueWrapAround(t *testing.T) {
	q := NewQueue[int](4)
	for i := 0; i < 10; i++ {
		q.PushPop(i)
	}

	for idx := 0; idx < 4; idx++ {
		got, _ := q.Get(idx)
		if got != 6+idx {
			t.Errorf("Get(%d) = %d, expected %d", idx, got, 6+idx)
		}
	}
}

func TestQueueClear(t *testing.T) {
	q := NewQueue[int](2)
	q.PushPop(1)
	q.PushPop(2)
	q.Clear()

	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", q.Len())
	}
	if _, ok := q.Get(0); ok {
		t.Error("Get(0) after Clear should return false")
	}
}

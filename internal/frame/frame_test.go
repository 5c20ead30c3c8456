package frame

import "testing"

func TestStartRunsOncePerFlush(t *testing.T) {
	var q Queue
	calls := 0
	cancel := Start(&q, func() { calls++ })
	defer cancel()

	if calls != 0 {
		t.Fatalf("fn ran before the first frame: %d calls", calls)
	}

	for i := 1; i <= 5; i++ {
		if ran := q.Flush(); ran != 1 {
			t.Fatalf("frame %d: Flush ran %d callbacks, want 1", i, ran)
		}
		if calls != i {
			t.Fatalf("frame %d: calls = %d, want %d", i, calls, i)
		}
	}
}

func TestCancelStopsFurtherTicks(t *testing.T) {
	var q Queue
	calls := 0
	cancel := Start(&q, func() { calls++ })

	q.Flush()
	q.Flush()
	cancel()

	// The tick already in flight is delivered but must not call fn.
	if q.Len() != 1 {
		t.Fatalf("pending = %d, want 1 in-flight tick", q.Len())
	}
	q.Flush()
	q.Flush()

	if calls != 2 {
		t.Errorf("calls = %d after cancel, want 2", calls)
	}
	if q.Len() != 0 {
		t.Errorf("pending = %d after cancel, want 0", q.Len())
	}
}

func TestCancelFromInsideCallback(t *testing.T) {
	var q Queue
	calls := 0
	var cancel func()
	cancel = Start(&q, func() {
		calls++
		if calls == 3 {
			cancel()
		}
	})

	for i := 0; i < 10; i++ {
		q.Flush()
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	var q Queue
	cancel := Start(&q, func() {})
	cancel()
	cancel()
	q.Flush()
	if q.Len() != 0 {
		t.Errorf("pending = %d, want 0", q.Len())
	}
}

func TestIndependentLoopsShareQueue(t *testing.T) {
	var q Queue
	a, b := 0, 0
	cancelA := Start(&q, func() { a++ })
	cancelB := Start(&q, func() { b++ })
	defer cancelB()

	q.Flush()
	cancelA()
	q.Flush()
	q.Flush()

	if a != 1 {
		t.Errorf("a = %d, want 1", a)
	}
	if b != 3 {
		t.Errorf("b = %d, want 3", b)
	}
}

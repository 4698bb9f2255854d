package delay

import "testing"

func TestPushPopFIFO(t *testing.T) {
	const capacity = 4
	line := NewStereo(capacity, Frame{})

	// Push enough frames that every pushed frame comes back out.
	const total = 32
	pushed := make([]Frame, total)
	popped := make([]Frame, total)

	for i := 0; i < total; i++ {
		pushed[i] = Frame{Left: float32(i), Right: float32(-i)}
		popped[i] = line.PushPop(pushed[i])
	}

	// The k-th pop equals the (k-capacity)-th push once the pre-fill
	// has drained.
	for k := capacity; k < total; k++ {
		if popped[k] != pushed[k-capacity] {
			t.Errorf("pop %d = %v, want push %d = %v", k, popped[k], k-capacity, pushed[k-capacity])
		}
	}
}

func TestPreFill(t *testing.T) {
	fill := Frame{Left: 0.25, Right: -0.25}
	line := NewStereo(3, fill)

	// The first Capacity pops return the fill value regardless of
	// what was pushed.
	for i := 0; i < 3; i++ {
		got := line.PushPop(Frame{Left: 1, Right: 1})
		if got != fill {
			t.Errorf("pop %d = %v, want fill %v", i, got, fill)
		}
	}
}

func TestOccupancyInvariant(t *testing.T) {
	line := NewStereo(8, Frame{})

	for i := 0; i < 100; i++ {
		line.PushPop(Frame{Left: float32(i)})
		if line.Capacity() != 8 {
			t.Fatalf("capacity changed to %d after %d calls", line.Capacity(), i+1)
		}
	}
}

func TestZeroCapacityClamps(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		line := NewStereo(capacity, Frame{})
		if line.Capacity() != 1 {
			t.Errorf("NewStereo(%d): capacity = %d, want 1", capacity, line.Capacity())
		}
	}
}

func TestReset(t *testing.T) {
	line := NewStereo(2, Frame{})
	line.PushPop(Frame{Left: 1, Right: 1})

	fill := Frame{Left: 0.5, Right: 0.5}
	line.Reset(fill)

	for i := 0; i < 2; i++ {
		if got := line.PushPop(Frame{}); got != fill {
			t.Errorf("pop %d after Reset = %v, want %v", i, got, fill)
		}
	}
}

func BenchmarkPushPop(b *testing.B) {
	line := NewStereo(88200, Frame{}) // 2 seconds at 44.1kHz

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		line.PushPop(Frame{Left: 0.5, Right: -0.5})
	}
}

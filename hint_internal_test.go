package siltin

import (
	"sync/atomic"
	"testing"
)

func TestLineHintFirstObservation(t *testing.T) {
	var hint atomic.Int64
	updateLineHint(&hint, 80)
	if hint.Load() != 80 {
		t.Fatalf("first observation should seed the hint, got %d", hint.Load())
	}
}

func TestLineHintGrowsImmediately(t *testing.T) {
	var hint atomic.Int64
	hint.Store(100)
	updateLineHint(&hint, 900)
	if hint.Load() != 900 {
		t.Fatalf("longer lines should raise the hint at once, got %d", hint.Load())
	}
}

func TestLineHintIgnoresJitter(t *testing.T) {
	var hint atomic.Int64
	hint.Store(200)
	updateLineHint(&hint, 150)
	if hint.Load() != 200 {
		t.Fatalf("moderate drops are jitter and must not decay, got %d", hint.Load())
	}
}

func TestLineHintDecaysAfterBigDrop(t *testing.T) {
	var hint atomic.Int64
	hint.Store(4096)
	updateLineHint(&hint, 100)
	got := hint.Load()
	if got >= 4096 || got < 100 {
		t.Fatalf("expected partial decay toward 100, got %d", got)
	}
	// Repeated short lines keep decaying until the gap is back to jitter range.
	for i := 0; i < 200; i++ {
		updateLineHint(&hint, 100)
	}
	if final := hint.Load(); final >= 200 || final < 100 {
		t.Fatalf("hint should settle near the steady line length, got %d", final)
	}
}

func TestLineHintCapped(t *testing.T) {
	var hint atomic.Int64
	updateLineHint(&hint, 10*lineHintMaxPrealloc)
	if hint.Load() != lineHintMaxPrealloc {
		t.Fatalf("hint must not exceed the preallocation cap, got %d", hint.Load())
	}
}

func TestLineHintIgnoresNonPositive(t *testing.T) {
	var hint atomic.Int64
	hint.Store(64)
	updateLineHint(&hint, 0)
	updateLineHint(&hint, -5)
	updateLineHint(nil, 10)
	if hint.Load() != 64 {
		t.Fatalf("non-positive lengths must be ignored, got %d", hint.Load())
	}
}

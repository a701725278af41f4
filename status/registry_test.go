package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()

	first := r.Ints.Get("engine.ticks")
	second := r.Ints.Get("engine.ticks")
	if first != second {
		t.Error("Expected Get to return the same pointer for the same key")
	}

	first.Add(3)
	if second.Load() != 3 {
		t.Errorf("Expected 3 through cached pointer, got %d", second.Load())
	}
	if !r.Ints.Has("engine.ticks") || r.Ints.Has("engine.missing") {
		t.Error("Has reported wrong membership")
	}
}

func TestRegistryConcurrentIncrements(t *testing.T) {
	r := NewRegistry()

	const workers = 50
	const perWorker = 200

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				r.Ints.Get("engine.fruit_eaten").Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Ints.Get("engine.fruit_eaten").Load(); got != workers*perWorker {
		t.Errorf("Expected %d, got %d", workers*perWorker, got)
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("engine.score").Store(7)
	r.Bools.Get("engine.running").Store(true)
	r.Strings.Get("engine.cause").Store("wall")

	snap := r.Snapshot()
	if len(snap) != 3 || r.TotalCount() != 3 {
		t.Fatalf("Expected 3 metrics, got snapshot=%d total=%d", len(snap), r.TotalCount())
	}
	if snap["engine.score"] != int64(7) {
		t.Errorf("Expected score 7, got %v", snap["engine.score"])
	}
	if snap["engine.running"] != true {
		t.Errorf("Expected running true, got %v", snap["engine.running"])
	}
	if snap["engine.cause"] != "wall" {
		t.Errorf("Expected cause wall, got %v", snap["engine.cause"])
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected zero value to load as empty string")
	}

	s.Store(strings.Repeat("x", MaxStringLen+10))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}
}

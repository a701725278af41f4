package engine

import (
	"sync"
	"time"
)

// Clock schedules tick wake-ups
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// ManualClock is a controllable clock for testing
// After channels fire only when Advance moves time past their deadline
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	waiters []manualWaiter
}

type manualWaiter struct {
	deadline time.Time
	ch       chan time.Time
}

// NewManualClock creates a manual clock starting at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *ManualClock) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan time.Time, 1)
	deadline := m.now.Add(d)
	if d <= 0 {
		ch <- m.now
		return ch
	}
	m.waiters = append(m.waiters, manualWaiter{deadline: deadline, ch: ch})
	return ch
}

// Advance moves time forward and fires every waiter whose deadline has passed
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)
	pending := m.waiters[:0]
	for _, w := range m.waiters {
		if !w.deadline.After(m.now) {
			w.ch <- m.now
			continue
		}
		pending = append(pending, w)
	}
	m.waiters = pending
}

// Waiters returns the number of outstanding After calls
func (m *ManualClock) Waiters() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.waiters)
}

// BlockUntil waits until at least n After calls are outstanding or timeout elapses
func (m *ManualClock) BlockUntil(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if m.Waiters() >= n {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return m.Waiters() >= n
}

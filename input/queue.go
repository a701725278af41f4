package input

import (
	"context"

	"github.com/lixenwraith/term-snake/constant"
)

// Queue is the single-producer single-consumer FIFO between the poller and the simulation loop
type Queue struct {
	ch chan Intent
}

// NewQueue creates a queue; size <= 0 selects constant.IntentQueueSize
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = constant.IntentQueueSize
	}
	return &Queue{ch: make(chan Intent, size)}
}

// Send enqueues in order, blocking the producer while the queue is full
// Returns false if ctx ends first
func (q *Queue) Send(ctx context.Context, it Intent) bool {
	select {
	case q.ch <- it:
		return true
	case <-ctx.Done():
		return false
	}
}

// TryRecv dequeues the oldest intent without blocking
func (q *Queue) TryRecv() (Intent, bool) {
	select {
	case it := <-q.ch:
		return it, true
	default:
		return Intent{}, false
	}
}

// Len returns the number of pending intents
func (q *Queue) Len() int {
	return len(q.ch)
}

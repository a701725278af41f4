package input

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
)

// ErrSourceClosed is returned by a KeySource that will never produce keys again
var ErrSourceClosed = errors.New("key source closed")

// KeySource yields key presses with a bounded wait
// ok is false when the wait elapsed without a key
type KeySource interface {
	PollKey(timeout time.Duration) (key Key, ok bool, err error)
}

// Poller forwards translated key presses from a KeySource into a Queue
// Runs on its own goroutine and never touches simulation state
type Poller struct {
	source   KeySource
	queue    *Queue
	keyTable *KeyTable
	wait     time.Duration
	log      logrus.FieldLogger

	done chan struct{}
}

// NewPoller creates a poller; wait <= 0 selects constant.InputPollWait
func NewPoller(source KeySource, queue *Queue, wait time.Duration, log logrus.FieldLogger) *Poller {
	if wait <= 0 {
		wait = constant.InputPollWait
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Poller{
		source:   source,
		queue:    queue,
		keyTable: DefaultKeyTable(),
		wait:     wait,
		log:      log.WithField("component", "poller"),
		done:     make(chan struct{}),
	}
}

// SetKeyTable replaces the bindings; call before Start
func (p *Poller) SetKeyTable(kt *KeyTable) {
	p.keyTable = kt
}

// Start launches the polling goroutine; it stops when ctx ends or the source fails
func (p *Poller) Start(ctx context.Context) {
	core.Go(func() { p.loop(ctx) })
}

// Done is closed once the polling goroutine has returned
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)

	for {
		// Cancellation is checked between polls only; a poll in progress finishes its wait
		select {
		case <-ctx.Done():
			return
		default:
		}

		key, ok, err := p.source.PollKey(p.wait)
		if err != nil {
			if errors.Is(err, ErrSourceClosed) && ctx.Err() != nil {
				return
			}
			p.log.WithError(err).Warn("key source failed")
			p.queue.Send(ctx, Fail(err))
			return
		}
		if !ok {
			continue
		}

		intent, ok := p.keyTable.Translate(key)
		if !ok {
			continue
		}
		if !p.queue.Send(ctx, intent) {
			return
		}
	}
}

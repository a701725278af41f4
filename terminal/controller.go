package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
)

// eventQueueSize buffers key events between tcell and the poller
const eventQueueSize = 256

// Controller manages the tcell screen lifecycle and key polling
type Controller struct {
	screen  tcell.Screen
	eventCh chan *tcell.EventKey
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu        sync.Mutex
	running   bool
	finalized bool
}

// NewController wraps screen; nil creates the default tcell screen on Init
func NewController(screen tcell.Screen) *Controller {
	return &Controller{
		screen:  screen,
		eventCh: make(chan *tcell.EventKey, eventQueueSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Init enters raw mode, hides the cursor and starts reading events
func (c *Controller) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return nil
	}

	if c.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal screen: %w", err)
		}
		c.screen = s
	}
	if err := c.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	c.screen.HideCursor()
	c.screen.Clear()

	c.running = true
	core.Go(c.pollLoop)
	return nil
}

// pollLoop forwards key events until the screen is finalized
func (c *Controller) pollLoop() {
	defer close(c.doneCh)
	defer close(c.eventCh)

	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			select {
			case c.eventCh <- ev:
			case <-c.stopCh:
				return
			}
		case *tcell.EventResize:
			c.screen.Sync()
		}
	}
}

// PollKey waits up to timeout for a key press
// Returns input.ErrSourceClosed once the screen has been finalized
func (c *Controller) PollKey(timeout time.Duration) (input.Key, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-c.eventCh:
		if !ok {
			return input.Key{}, false, input.ErrSourceClosed
		}
		key, ok := KeyFromEvent(ev)
		return key, ok, nil
	case <-timer.C:
		return input.Key{}, false, nil
	}
}

// KeyFromEvent reduces a tcell key event to a game key; keys without a rune are reported as not ok
func KeyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		return input.Key{Rune: ev.Rune(), Ctrl: ev.Modifiers()&tcell.ModCtrl != 0}, true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return input.Key{Rune: rune('a' + k - tcell.KeyCtrlA), Ctrl: true}, true
	}
	return input.Key{}, false
}

// Screen returns the tcell screen; valid after Init
func (c *Controller) Screen() tcell.Screen {
	return c.screen
}

// Fini restores the terminal. Safe to call multiple times
func (c *Controller) Fini() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.finalized {
		return
	}
	c.finalized = true

	if !c.running {
		return
	}
	close(c.stopCh)
	c.screen.Clear()
	c.screen.ShowCursor(0, 0)
	c.screen.Fini()
	<-c.doneCh
	c.running = false
}

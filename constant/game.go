package constant

import "time"

// Board Dimensions
const (
	// BoardWidth is the default play field width including both wall columns
	BoardWidth = 40

	// BoardHeight is the default play field height including both wall rows
	BoardHeight = BoardWidth
)

// Game Loop Timing
const (
	// TickInterval is the fixed sleep between simulation ticks
	TickInterval = 100 * time.Millisecond

	// InputPollWait bounds a single key poll; liveness only, ticks do not depend on it
	InputPollWait = 1 * time.Second
)

// Input
const (
	// IntentQueueSize is the buffered capacity of the poller to simulation hand-off
	IntentQueueSize = 64
)

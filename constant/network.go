package constant

import "time"

// Spectator Feed
const (
	// SpectatorWriteWait is the time allowed to write a message to a peer
	SpectatorWriteWait = 10 * time.Second

	// SpectatorPongWait is the time allowed to read the next pong from a peer
	SpectatorPongWait = 60 * time.Second

	// SpectatorPingPeriod must stay below SpectatorPongWait
	SpectatorPingPeriod = (SpectatorPongWait * 9) / 10

	// SpectatorMaxMessageSize caps inbound peer messages; peers only send control frames
	SpectatorMaxMessageSize = 512

	// SpectatorSendQueueSize is per-peer buffered frames before the peer is dropped
	SpectatorSendQueueSize = 64

	// SpectatorBroadcastQueueSize is the hub inbox; frames beyond it are skipped
	SpectatorBroadcastQueueSize = 16

	// SpectatorShutdownTimeout bounds the HTTP server graceful stop
	SpectatorShutdownTimeout = 2 * time.Second
)

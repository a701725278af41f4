package network

import "github.com/lixenwraith/term-snake/engine"

// Spectator message events
const (
	EventFrame = "frame"
)

// Message is one websocket text message sent to spectators
type Message struct {
	Event string        `json:"event"`
	Frame *engine.Frame `json:"frame,omitempty"`
}

package engine

import "github.com/lixenwraith/term-snake/core"

// State is the game lifecycle state
type State uint8

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Cause records why a game reached StateTerminated
type Cause uint8

const (
	CauseNone Cause = iota
	CauseQuit
	CauseWall
	CauseSelf
	CauseBoardFull
	CauseInputError
	CauseRenderError
	CauseCanceled
)

var causeNames = [...]string{
	CauseNone:        "none",
	CauseQuit:        "quit",
	CauseWall:        "wall",
	CauseSelf:        "self",
	CauseBoardFull:   "board_full",
	CauseInputError:  "input_error",
	CauseRenderError: "render_error",
	CauseCanceled:    "canceled",
}

func (c Cause) String() string {
	if int(c) < len(causeNames) {
		return causeNames[c]
	}
	return "unknown"
}

func (c Cause) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// IsCollision reports whether the game ended by hitting a wall or the body
func (c Cause) IsCollision() bool {
	return c == CauseWall || c == CauseSelf
}

// Frame is an immutable snapshot handed to renderers once per tick
type Frame struct {
	GameID    string         `json:"game_id"`
	Tick      uint64         `json:"tick"`
	Board     core.Board     `json:"board"`
	Body      []core.Point   `json:"body"`
	Direction core.Direction `json:"direction"`
	Fruit     core.Point     `json:"fruit"`
	Score     int            `json:"score"`
	State     State          `json:"state"`
	Cause     Cause          `json:"cause"`

	// Grew is set on the tick the head reached the fruit
	Grew bool `json:"grew"`
}

// Renderer consumes frames; terminal, spectator and audio outputs all implement it
type Renderer interface {
	Render(f Frame) error
}

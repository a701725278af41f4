package input

import "github.com/lixenwraith/term-snake/core"

// IntentType discriminates normalized input messages
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentTurn            // w, a, s, d
	IntentQuit            // q, Ctrl+C, Ctrl+Q
	IntentFail            // key source failed; carries Err
)

func (t IntentType) String() string {
	switch t {
	case IntentTurn:
		return "turn"
	case IntentQuit:
		return "quit"
	case IntentFail:
		return "fail"
	}
	return "none"
}

// Intent is one message from the poller to the simulation loop
type Intent struct {
	Type      IntentType
	Direction core.Direction // IntentTurn only
	Err       error          // IntentFail only
}

// TurnTo builds a directional intent
func TurnTo(d core.Direction) Intent {
	return Intent{Type: IntentTurn, Direction: d}
}

// Quit builds a quit intent
func Quit() Intent {
	return Intent{Type: IntentQuit}
}

// Fail builds an intent reporting a key source failure
func Fail(err error) Intent {
	return Intent{Type: IntentFail, Err: err}
}

package audio

// Cue identifies a sound played in response to a game event
type Cue int

const (
	CueChime Cue = iota // fruit eaten
	CueCrash            // wall or body collision
)

func (c Cue) String() string {
	switch c {
	case CueChime:
		return "chime"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

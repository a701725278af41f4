package audio

import "github.com/lixenwraith/term-snake/engine"

// CuePlayer is a frame sink that plays a chime on growth and a crash on collision
// Audio never fails the game, so Render always returns nil
type CuePlayer struct {
	sink    Sink
	crashed bool
}

// NewCuePlayer plays cues through sink
func NewCuePlayer(sink Sink) *CuePlayer {
	return &CuePlayer{sink: sink}
}

func (p *CuePlayer) Render(f engine.Frame) error {
	if f.Grew {
		p.sink.Play(CueChime)
	}
	if f.State == engine.StateTerminated && f.Cause.IsCollision() && !p.crashed {
		p.crashed = true
		p.sink.Play(CueCrash)
	}
	return nil
}

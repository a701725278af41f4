package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/term-snake/constant"
)

// Sink turns cues into sound; Play must not block the caller
type Sink interface {
	Play(c Cue)
	Close()
}

// SpeakerSink plays cues on the system audio device
type SpeakerSink struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewSpeakerSink creates an uninitialized speaker sink
func NewSpeakerSink() *SpeakerSink {
	return &SpeakerSink{
		rate:   beep.SampleRate(constant.AudioSampleRate),
		volume: constant.CueVolume,
	}
}

// Initialize opens the audio device
func (s *SpeakerSink) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	s.initialized = true
	return nil
}

func (s *SpeakerSink) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	if st := GetCueSound(c, s.rate, s.volume); st != nil {
		speaker.Play(st)
	}
}

// Close stops playback and releases the device
func (s *SpeakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

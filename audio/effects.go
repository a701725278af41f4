package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/term-snake/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates raw audio waves for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		// Keep phase in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping and ends the stream at the total duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if remaining := e.totalSamples - e.position; remaining <= 0 {
		return 0, false
	} else if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0

		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateChimeSound generates a short two-partial bell for a fruit
func CreateChimeSound(rate beep.SampleRate, volume float64) beep.Streamer {
	fund := NewOscillator(constant.ChimeFundamentalHz, constant.ChimeSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constant.ChimeSoundDuration, constant.ChimeSoundAttack, constant.ChimeSoundRelease, rate)

	parts := []beep.Streamer{newVolume(fundShaped, 1-constant.ChimeOvertoneVolume)}

	// Overtone (fifth above); SineTone only fails on frequencies above Nyquist
	if over, err := generators.SineTone(rate, constant.ChimeOvertoneHz); err == nil {
		overShaped := NewEnvelope(over, constant.ChimeSoundDuration, constant.ChimeSoundAttack, constant.ChimeSoundRelease/2, rate)
		parts = append(parts, newVolume(overShaped, constant.ChimeOvertoneVolume))
	}

	return newVolume(beep.Mix(parts...), volume)
}

// CreateCrashSound generates a low saw buzz for a collision
func CreateCrashSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(constant.CrashFrequencyHz, constant.CrashSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constant.CrashSoundDuration, constant.CrashSoundAttack, constant.CrashSoundRelease, rate)
	return newVolume(shaped, volume)
}

// GetCueSound returns the streamer for a cue, nil for unknown cues
func GetCueSound(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch c {
	case CueChime:
		return CreateChimeSound(rate, volume)
	case CueCrash:
		return CreateCrashSound(rate, volume)
	default:
		return nil
	}
}

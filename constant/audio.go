package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration sets speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Chime Sound (fruit eaten)
const (
	ChimeSoundDuration  = 180 * time.Millisecond
	ChimeSoundAttack    = 5 * time.Millisecond
	ChimeSoundRelease   = 120 * time.Millisecond
	ChimeFundamentalHz  = 880.0
	ChimeOvertoneHz     = 1320.0
	ChimeOvertoneVolume = 0.35
)

// Crash Sound (collision)
const (
	CrashSoundDuration = 400 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
	CrashFrequencyHz   = 110.0
)

// CueVolume scales every cue before it reaches the speaker
const CueVolume = 0.4

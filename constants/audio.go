package constants

import "time"

// Audio engine
const (
	DefaultSampleRate = 44100
	DefaultVolume     = 0.5

	// SpeakerBuffer is the speaker.Init buffer length
	SpeakerBuffer = 100 * time.Millisecond

	// MinBumpGap rate-limits push ticks while dragging against a wall
	MinBumpGap = 60 * time.Millisecond
)

// Bump sound timing
const (
	BumpSoundDuration = 40 * time.Millisecond
	BumpSoundAttack   = 2 * time.Millisecond
	BumpSoundRelease  = 30 * time.Millisecond
	BumpBaseFreq      = 220.0
)

// Whoosh sound timing (drag release)
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Rest chime timing
const (
	ChimeSoundDuration = 400 * time.Millisecond
	ChimeSoundAttack   = 5 * time.Millisecond
	ChimeSoundRelease  = 350 * time.Millisecond
)

package constants

import "time"

// Audio Configuration
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two plays of the same cue
	MinSoundGap = 50 * time.Millisecond
)

// Eat Sound Timing
const (
	EatSoundDuration           = 400 * time.Millisecond
	EatSoundAttack             = 5 * time.Millisecond
	EatSoundFundamentalRelease = 350 * time.Millisecond
	EatSoundOvertoneRelease    = 150 * time.Millisecond
)

// Start Sound Timing
const (
	StartSoundNote1Duration = 80 * time.Millisecond
	StartSoundNote2Duration = 240 * time.Millisecond
	StartSoundAttack        = 5 * time.Millisecond
	StartSoundNote1Release  = 40 * time.Millisecond
	StartSoundNote2Release  = 180 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundNoteDuration = 160 * time.Millisecond
	GameOverSoundAttack       = 5 * time.Millisecond
	GameOverSoundRelease      = 90 * time.Millisecond
)

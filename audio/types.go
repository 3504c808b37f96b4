package audio

import (
	"errors"
	"time"

	"github.com/fooddonglanh/snake-game/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food eaten chime
	SoundStart                     // Session start coin
	SoundGameOver                  // Descending buzz on collision
	soundTypeCount
)

// String returns the sound name, also used as the SFX volume key
func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundStart:
		return "start"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// AudioConfig holds output and volume settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
	MinSoundGap   time.Duration // Repeats of one cue closer than this are dropped
}

// DefaultAudioConfig returns audible defaults
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundEat:      1.0,
			SoundStart:    0.6,
			SoundGameOver: 0.8,
		},
		SampleRate:  constants.AudioSampleRate,
		MinSoundGap: constants.MinSoundGap,
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)

package audio

import (
	"log"
	"sync/atomic"

	"github.com/fooddonglanh/snake-game/service"
)

var _ service.Service = (*AudioService)(nil)

// AudioService wraps SoundManager as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	config   *AudioConfig
	manager  *SoundManager
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - initial mute state, overrides the environment when present
func (s *AudioService) Init(args ...any) error {
	s.config = LoadAudioConfig()
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok && muted {
			s.config.Enabled = false
		}
	}
	s.manager = NewSoundManager(s.config)
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.manager == nil {
		s.disabled.Store(true)
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Manager returns the sound manager, nil when disabled
func (s *AudioService) Manager() *SoundManager {
	if s.disabled.Load() {
		return nil
	}
	return s.manager
}

// Cues returns an event handler bound to the manager, inert when disabled
func (s *AudioService) Cues() *Cues {
	if m := s.Manager(); m != nil {
		return NewCues(m)
	}
	return NewCues(nil)
}

// ToggleMute flips mute when audio is available
func (s *AudioService) ToggleMute() {
	if m := s.Manager(); m != nil {
		log.Printf("audio muted=%v", m.ToggleMute())
	}
}

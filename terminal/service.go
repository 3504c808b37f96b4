package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/fooddonglanh/snake-game/core"
	"github.com/fooddonglanh/snake-game/service"
)

var _ service.Service = (*ScreenService)(nil)

// ScreenService manages the tcell screen lifecycle and input polling
type ScreenService struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
	stopped bool
}

// NewService creates a new screen service
func NewService() *ScreenService {
	return &ScreenService{
		eventCh: make(chan tcell.Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Name implements Service
func (s *ScreenService) Name() string {
	return "terminal"
}

// Dependencies implements Service
func (s *ScreenService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: tcell.Screen (optional, a real terminal screen is created otherwise)
func (s *ScreenService) Init(args ...any) error {
	if len(args) > 0 {
		if sc, ok := args[0].(tcell.Screen); ok {
			s.screen = sc
		}
	}
	if s.screen == nil {
		sc, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal create: %w", err)
		}
		s.screen = sc
	}

	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen.HideCursor()
	core.RegisterCrashScreen(s.screen)
	return nil
}

// Start implements Service - launches input polling goroutine
func (s *ScreenService) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	core.Go(s.pollLoop)
	return nil
}

// pollLoop forwards screen events until the screen is finalized
func (s *ScreenService) pollLoop() {
	defer close(s.doneCh)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			return
		}
		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop implements Service - unblocks polling and restores the terminal
func (s *ScreenService) Stop() error {
	s.mu.Lock()
	if s.stopped || s.screen == nil {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	running := s.running
	s.mu.Unlock()

	close(s.stopCh)
	if running {
		// Synthetic interrupt unblocks PollEvent
		s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-s.doneCh
	}

	s.screen.Fini()
	core.RegisterCrashScreen(nil)
	return nil
}

// Screen returns the wrapped screen
func (s *ScreenService) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event channel
func (s *ScreenService) Events() <-chan tcell.Event {
	return s.eventCh
}

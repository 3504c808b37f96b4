package engine

import (
	"testing"
	"time"
)

func TestSessionClockNotStarted(t *testing.T) {
	clock := NewSessionClock(NewMockTimeProvider(TestEpoch))
	if got := clock.Elapsed(); got != 0 {
		t.Errorf("Expected 0 before Start, got %v", got)
	}
	clock.Pause()
	if clock.IsPaused() {
		t.Error("Expected Pause before Start to be ignored")
	}
}

func TestSessionClockExcludesPause(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	clock := NewSessionClock(mock)

	clock.Start()
	mock.Advance(3 * time.Second)
	clock.Pause()
	mock.Advance(10 * time.Second)

	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected elapsed frozen at 3s while paused, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 10*time.Second {
		t.Errorf("Expected 10s ongoing pause, got %v", got)
	}

	clock.Resume()
	mock.Advance(1500 * time.Millisecond)

	if got := clock.Elapsed(); got != 4500*time.Millisecond {
		t.Errorf("Expected 4.5s after resume, got %v", got)
	}
	if got := clock.ElapsedSeconds(); got != 4 {
		t.Errorf("Expected 4 whole seconds, got %d", got)
	}
}

func TestSessionClockStopFreezes(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	clock := NewSessionClock(mock)

	clock.Start()
	mock.Advance(2 * time.Second)
	clock.Stop()
	mock.Advance(time.Minute)

	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected 2s after Stop, got %v", got)
	}

	clock.Start()
	if got := clock.Elapsed(); got != 0 {
		t.Errorf("Expected restart at 0, got %v", got)
	}
}

func TestSessionClockRepeatedPauses(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	clock := NewSessionClock(mock)
	clock.Start()

	for i := 0; i < 5; i++ {
		mock.Advance(time.Second)
		clock.Pause()
		clock.Pause() // Second call is a no-op
		mock.Advance(7 * time.Second)
		clock.Resume()
		clock.Resume()
	}

	if got := clock.Elapsed(); got != 5*time.Second {
		t.Errorf("Expected 5s of play, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 35*time.Second {
		t.Errorf("Expected 35s paused, got %v", got)
	}
}

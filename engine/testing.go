package engine

import (
	"math/rand/v2"
	"time"
)

// TestEpoch is the mock clock origin used by NewTestEngine
var TestEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestEngine creates an engine on mock time with a seeded RNG and an in-memory store
// The engine is not initialized, call Init to bind a renderer and observers
func NewTestEngine(seed uint64, highScore int) (*Engine, *MockTimeProvider, *MemoryScoreStore) {
	mock := NewMockTimeProvider(TestEpoch)
	store := NewMemoryScoreStore(highScore)
	e := New(Options{
		Config: DefaultConfig(),
		Loop:   NewLoop(mock),
		Rand:   rand.New(rand.NewPCG(seed, seed+1)),
		Store:  store,
	})
	return e, mock, store
}

// StepLoop advances mock time by total in increments of step, running due callbacks after each
func StepLoop(l *Loop, mock *MockTimeProvider, total, step time.Duration) {
	if step <= 0 {
		step = time.Millisecond
	}
	for elapsed := time.Duration(0); elapsed < total; {
		d := min(step, total-elapsed)
		mock.Advance(d)
		elapsed += d
		l.RunDue()
	}
}

// RecordingHandler captures every event it is registered for
type RecordingHandler struct {
	Types  []EventType
	Events []GameEvent
}

// NewRecordingHandler records all public and internal event types
func NewRecordingHandler() *RecordingHandler {
	return &RecordingHandler{Types: []EventType{
		EventScoreChanged, EventTimeChanged, EventGameEnded,
		EventFoodEaten, EventGameStarted, EventPauseToggled,
	}}
}

// HandleEvent appends event
func (h *RecordingHandler) HandleEvent(event GameEvent) {
	h.Events = append(h.Events, event)
}

// EventTypes returns Types
func (h *RecordingHandler) EventTypes() []EventType {
	return h.Types
}

// OfType returns recorded events of type t in order
func (h *RecordingHandler) OfType(t EventType) []GameEvent {
	var out []GameEvent
	for _, ev := range h.Events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// FrameCounter is a FrameRenderer that counts calls and keeps the last phase
type FrameCounter struct {
	Frames    int
	LastPhase Phase
	LastSnake []Point
}

// RenderFrame records f
func (c *FrameCounter) RenderFrame(f *Frame) {
	c.Frames++
	c.LastPhase = f.Phase
	c.LastSnake = append(c.LastSnake[:0], f.Snake...)
}

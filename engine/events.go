// Package engine provides the snake simulation: grid and entities, the
// cooperative loop that drives them, and the event infrastructure that
// reports session changes to the presentation layer.
//
// Event System Architecture
//
// The engine never calls into the presentation layer directly. State changes
// push events to an EventQueue owned by the Engine; after each public call or
// scheduled callback completes, the queue is drained through an EventRouter
// to every registered EventHandler.
//
// Event Flow Pattern:
//  1. Engine mutates session state inside a loop callback
//  2. Engine pushes event: e.push(EventScoreChanged, ScorePayload{...})
//  3. Callback finishes, router dispatches queued events in FIFO order
//  4. Handlers (HUD, audio, history) read the payload, never the engine internals
//
// Threading:
//   - Push, dispatch and handlers all run on the loop goroutine
//   - Handlers may call back into the Engine, resulting events are dispatched
//     after the current batch
package engine

// EventType represents the type of game event.
type EventType int

const (
	// EventScoreChanged signals a new score or high score.
	//
	// Triggered When:
	//   - Session start resets score to 0
	//   - Food eaten increments score
	//   - Engine initialization loads the persisted high score
	//
	// Payload: ScorePayload
	EventScoreChanged EventType = iota

	// EventTimeChanged signals a new elapsed-seconds value.
	//
	// Triggered When:
	//   - Session start resets elapsed time to 0
	//   - The 1 Hz elapsed clock fires while Running
	//
	// Payload: TimePayload
	EventTimeChanged

	// EventGameEnded signals the Running -> Ended transition.
	//
	// Triggered When:
	//   - The candidate head leaves the grid
	//   - The candidate head lands on a snake segment
	//   - No free cell remains for food
	//
	// Payload: GameOverPayload, score and seconds frozen at their last values
	EventGameEnded

	// EventFoodEaten signals a food cell was consumed, after score and speed update.
	//
	// Consumed By:
	//   - audio.Cues for the eat chime
	//
	// Payload: FoodPayload
	EventFoodEaten

	// EventGameStarted signals the transition into Running from Idle or Ended.
	// Not emitted on resume from pause.
	//
	// Payload: nil
	EventGameStarted

	// EventPauseToggled signals Running <-> Paused.
	//
	// Payload: PausePayload
	EventPauseToggled
)

// String returns the event type name for logging
func (t EventType) String() string {
	switch t {
	case EventScoreChanged:
		return "ScoreChanged"
	case EventTimeChanged:
		return "TimeChanged"
	case EventGameEnded:
		return "GameEnded"
	case EventFoodEaten:
		return "FoodEaten"
	case EventGameStarted:
		return "GameStarted"
	case EventPauseToggled:
		return "PauseToggled"
	default:
		return "Unknown"
	}
}

// ScorePayload carries the current score and high score
type ScorePayload struct {
	Score     int
	HighScore int
}

// TimePayload carries whole elapsed seconds
type TimePayload struct {
	ElapsedSeconds int
}

// GameOverPayload carries the final session values
type GameOverPayload struct {
	Score          int
	ElapsedSeconds int
}

// FoodPayload carries the eaten cell and the tick interval now in effect
type FoodPayload struct {
	Cell     Point
	Interval int64 // milliseconds
}

// PausePayload carries the pause state after the toggle
type PausePayload struct {
	Paused bool
}

// GameEvent represents a single game event with its payload
type GameEvent struct {
	Type    EventType
	Payload any
}

// EventQueue is a FIFO of pending events, owned by the loop goroutine
type EventQueue struct {
	events []GameEvent
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 8)}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.events = append(eq.events, event)
}

// Consume returns pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

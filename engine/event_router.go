package engine

// EventHandler processes specific event types
// Presentation, audio and archival layers implement this to observe a session
type EventHandler interface {
	// HandleEvent processes a single event
	// Called on the loop goroutine after the state change is complete
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function to EventHandler for a fixed set of types
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

// HandleEvent calls Fn
func (h HandlerFunc) HandleEvent(event GameEvent) {
	h.Fn(event)
}

// EventTypes returns Types
func (h HandlerFunc) EventTypes() []EventType {
	return h.Types
}

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the loop goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events pushed by a handler are dispatched in the same DispatchAll call
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes to handlers
// Events are processed in FIFO order
// All handlers for an event are called before moving to the next event
func (r *EventRouter) DispatchAll() {
	for r.queue.Len() > 0 {
		for _, ev := range r.queue.Consume() {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *EventRouter) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}

package engine

import "testing"

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventScoreChanged})
	q.Push(GameEvent{Type: EventTimeChanged})
	q.Push(GameEvent{Type: EventGameEnded})

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending, got %d", q.Len())
	}
	events := q.Consume()
	for i, want := range []EventType{EventScoreChanged, EventTimeChanged, EventGameEnded} {
		if events[i].Type != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, events[i].Type)
		}
	}
	if q.Len() != 0 || q.Consume() != nil {
		t.Error("Expected queue empty after Consume")
	}
}

func TestEventRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewEventRouter(q)

	var order []string
	r.Register(HandlerFunc{Types: []EventType{EventScoreChanged}, Fn: func(GameEvent) { order = append(order, "a") }})
	r.Register(HandlerFunc{Types: []EventType{EventScoreChanged, EventGameEnded}, Fn: func(ev GameEvent) {
		order = append(order, "b:"+ev.Type.String())
	}})

	if r.HandlerCount(EventScoreChanged) != 2 || !r.HasHandlers(EventGameEnded) || r.HasHandlers(EventTimeChanged) {
		t.Fatal("Unexpected registration counts")
	}

	q.Push(GameEvent{Type: EventScoreChanged})
	q.Push(GameEvent{Type: EventTimeChanged})
	q.Push(GameEvent{Type: EventGameEnded})
	r.DispatchAll()

	expected := []string{"a", "b:ScoreChanged", "b:GameEnded"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], order[i])
		}
	}
}

func TestEventRouterHandlerPushes(t *testing.T) {
	q := NewEventQueue()
	r := NewEventRouter(q)

	got := 0
	r.Register(HandlerFunc{Types: []EventType{EventGameEnded}, Fn: func(GameEvent) {
		q.Push(GameEvent{Type: EventGameStarted})
	}})
	r.Register(HandlerFunc{Types: []EventType{EventGameStarted}, Fn: func(GameEvent) { got++ }})

	q.Push(GameEvent{Type: EventGameEnded})
	r.DispatchAll()

	if got != 1 {
		t.Errorf("Expected follow-up event dispatched in the same call, got %d", got)
	}
}

func TestHandlerCanRestartFromGameOver(t *testing.T) {
	e, mock, _ := NewTestEngine(5, 0)
	restarts := 0
	e.Init(nil, HandlerFunc{Types: []EventType{EventGameEnded}, Fn: func(GameEvent) {
		if restarts == 0 {
			restarts++
			e.Start()
		}
	}})
	e.Start()
	e.food = Point{0, 0}

	StepLoop(e.Loop(), mock, 10*tick, tick)

	if restarts != 1 || e.Phase() != PhaseRunning {
		t.Errorf("Expected auto-restart from observer, restarts=%d phase=%s", restarts, e.Phase())
	}
}

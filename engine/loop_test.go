package engine

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestLoopEveryFiresAtInterval(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	loop := NewLoop(mock)

	count := 0
	loop.Every(100*time.Millisecond, func() { count++ })

	mock.Advance(99 * time.Millisecond)
	loop.RunDue()
	if count != 0 {
		t.Fatalf("Expected no fire before deadline, got %d", count)
	}

	StepLoop(loop, mock, 901*time.Millisecond, 10*time.Millisecond)
	if count != 10 {
		t.Errorf("Expected 10 fires in 1s, got %d", count)
	}
}

func TestLoopStopAndReset(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	loop := NewLoop(mock)

	count := 0
	task := loop.Every(50*time.Millisecond, func() { count++ })

	StepLoop(loop, mock, 100*time.Millisecond, 10*time.Millisecond)
	if count != 2 {
		t.Fatalf("Expected 2 fires, got %d", count)
	}

	task.Stop()
	if task.Active() {
		t.Error("Expected task inactive after Stop")
	}
	StepLoop(loop, mock, time.Second, 10*time.Millisecond)
	if count != 2 {
		t.Errorf("Expected no fires while stopped, got %d", count)
	}

	task.Reset(200 * time.Millisecond)
	if task.Interval() != 200*time.Millisecond {
		t.Errorf("Expected interval 200ms, got %v", task.Interval())
	}
	StepLoop(loop, mock, 199*time.Millisecond, 10*time.Millisecond)
	if count != 2 {
		t.Errorf("Expected first fire one full interval after Reset, got %d", count)
	}
	StepLoop(loop, mock, time.Millisecond, time.Millisecond)
	if count != 3 {
		t.Errorf("Expected fire at new interval, got %d", count)
	}
}

func TestLoopResetFromInsideCallback(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	loop := NewLoop(mock)

	var fires []time.Duration
	var task *Task
	interval := 100 * time.Millisecond
	task = loop.Every(interval, func() {
		fires = append(fires, mock.Now().Sub(TestEpoch))
		interval -= 20 * time.Millisecond
		task.Reset(interval)
	})

	StepLoop(loop, mock, 400*time.Millisecond, time.Millisecond)

	expected := []time.Duration{100, 180, 240, 280, 300}
	if len(fires) < len(expected) {
		t.Fatalf("Expected at least %d fires, got %v", len(expected), fires)
	}
	for i, want := range expected {
		if fires[i] != want*time.Millisecond {
			t.Errorf("Fire %d: expected %v, got %v", i, want*time.Millisecond, fires[i])
		}
	}
}

func TestLoopOrdersByDeadline(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	loop := NewLoop(mock)

	var order []string
	loop.Every(30*time.Millisecond, func() { order = append(order, "slow") })
	loop.Every(10*time.Millisecond, func() { order = append(order, "fast") })

	mock.Advance(30 * time.Millisecond)
	loop.RunDue()

	// fast@10, fast@20, then slow@30 and fast@30 tie, broken by arm order
	expected := []string{"fast", "fast", "slow", "fast"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], order[i])
		}
	}
}

func TestLoopResyncsWhenFarBehind(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	loop := NewLoop(mock)

	count := 0
	task := loop.Every(10*time.Millisecond, func() { count++ })

	mock.Advance(time.Second)
	loop.RunDue()

	if count != 1 {
		t.Errorf("Expected a single catch-up fire after a long stall, got %d", count)
	}
	if want := mock.Now().Add(10 * time.Millisecond); !task.Deadline().Equal(want) {
		t.Errorf("Expected deadline resynced to %v, got %v", want, task.Deadline())
	}
}

func TestLoopPostRunsOnLoop(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	loop := NewLoop(mock)

	var wg sync.WaitGroup
	ran := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loop.Post(func() { ran++ })
		}()
	}
	wg.Wait()

	if n := loop.RunDue(); n != 10 {
		t.Errorf("Expected 10 callbacks, got %d", n)
	}
	if ran != 10 {
		t.Errorf("Expected 10 posted functions to run, got %d", ran)
	}
}

func TestLoopRunRealTime(t *testing.T) {
	loop := NewLoop(NewMonotonicTimeProvider())

	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	loop.Every(5*time.Millisecond, func() {
		ticks++
		if ticks == 3 {
			cancel()
		}
	})

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Loop did not stop after cancel")
	}
	if ticks < 3 {
		t.Errorf("Expected at least 3 ticks, got %d", ticks)
	}
}

func TestLoopNextDeadline(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	loop := NewLoop(mock)

	if _, ok := loop.NextDeadline(); ok {
		t.Error("Expected no deadline on empty loop")
	}

	a := loop.Every(time.Second, func() {})
	loop.Every(250*time.Millisecond, func() {})
	a.Stop()

	d, ok := loop.NextDeadline()
	if !ok || !d.Equal(TestEpoch.Add(250*time.Millisecond)) {
		t.Errorf("Expected 250ms deadline, got %v (%v)", d, ok)
	}
}

package engine

import (
	"context"
	"time"

	"github.com/fooddonglanh/snake-game/constants"
)

// Task is a cancelable, re-schedulable periodic callback owned by a Loop
type Task struct {
	loop     *Loop
	fn       func()
	interval time.Duration
	deadline time.Time
	seq      uint64
	active   bool
}

// Stop cancels the task, it stays stopped until Reset
func (t *Task) Stop() {
	t.active = false
}

// Reset re-arms the task with a new interval, first fire one interval from now
func (t *Task) Reset(interval time.Duration) {
	if interval <= 0 {
		interval = t.interval
	}
	if interval <= 0 {
		interval = time.Millisecond
	}
	t.interval = interval
	t.deadline = t.loop.time.Now().Add(interval)
	t.loop.seq++
	t.seq = t.loop.seq
	t.active = true
}

// Active reports whether the task is armed
func (t *Task) Active() bool {
	return t.active
}

// Interval returns the current period
func (t *Task) Interval() time.Duration {
	return t.interval
}

// Deadline returns the next fire time, meaningful only while active
func (t *Task) Deadline() time.Time {
	return t.deadline
}

// Loop is a single-goroutine cooperative scheduler
//
// Architecture:
//   - All task callbacks and posted functions run on the goroutine calling Run or RunDue
//   - Callbacks never overlap, each runs to completion before the next begins
//   - Deadlines advance by interval from the previous deadline (drift correction)
//   - A task lagging more than LoopMaxBehindTicks intervals is resynced to now
//
// Other goroutines reach loop-owned state only through Post
type Loop struct {
	time   TimeProvider
	tasks  []*Task
	seq    uint64
	posted chan func()
}

// NewLoop creates a loop scheduling against tp
func NewLoop(tp TimeProvider) *Loop {
	return &Loop{
		time:   tp,
		posted: make(chan func(), constants.LoopPostQueueSize),
	}
}

// TimeProvider returns the loop's clock
func (l *Loop) TimeProvider() TimeProvider {
	return l.time
}

// NewTask registers an unarmed task, Reset arms it
func (l *Loop) NewTask(fn func()) *Task {
	t := &Task{loop: l, fn: fn}
	l.tasks = append(l.tasks, t)
	return t
}

// Every creates and arms a periodic task, first fire one interval from now
func (l *Loop) Every(interval time.Duration, fn func()) *Task {
	t := l.NewTask(fn)
	t.Reset(interval)
	return t
}

// Post queues fn to run on the loop goroutine, safe from any goroutine
// Blocks when the queue is full
func (l *Loop) Post(fn func()) {
	l.posted <- fn
}

// RunDue runs queued posts then every task whose deadline has passed, returns callbacks run
func (l *Loop) RunDue() int {
	n := l.drainPosted()
	now := l.time.Now()

	for {
		t := l.nextDue(now)
		if t == nil {
			break
		}

		t.deadline = t.deadline.Add(t.interval)
		if now.Sub(t.deadline) > t.interval*constants.LoopMaxBehindTicks {
			t.deadline = now.Add(t.interval)
		}
		t.fn()
		n++
	}

	return n
}

// NextDeadline returns the earliest armed deadline
func (l *Loop) NextDeadline() (time.Time, bool) {
	var next time.Time
	found := false
	for _, t := range l.tasks {
		if !t.active {
			continue
		}
		if !found || t.deadline.Before(next) {
			next = t.deadline
			found = true
		}
	}
	return next, found
}

// Run drives the loop in real time until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		l.RunDue()

		wait := time.Hour
		if deadline, ok := l.NextDeadline(); ok {
			wait = max(deadline.Sub(l.time.Now()), 0)
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posted:
			fn()
		case <-timer.C:
			continue
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}
}

// nextDue picks the earliest due task, ties broken by arm order
func (l *Loop) nextDue(now time.Time) *Task {
	var best *Task
	for _, t := range l.tasks {
		if !t.active || t.deadline.After(now) {
			continue
		}
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (l *Loop) drainPosted() int {
	n := 0
	for {
		select {
		case fn := <-l.posted:
			fn()
			n++
		default:
			return n
		}
	}
}

package engine

import "time"

// SessionClock measures play time for one session, excluding paused intervals
// Owned by the loop goroutine, no locking
type SessionClock struct {
	time TimeProvider

	startTime       time.Time     // Logical session start
	pauseStartTime  time.Time     // When current pause started
	totalPausedTime time.Duration // Cumulative pause duration

	started bool
	paused  bool
	stopped bool
	final   time.Duration // Elapsed at Stop
}

// NewSessionClock creates a clock that reads from tp
func NewSessionClock(tp TimeProvider) *SessionClock {
	return &SessionClock{time: tp}
}

// Start resets the clock and begins measuring from now
func (c *SessionClock) Start() {
	c.startTime = c.time.Now()
	c.pauseStartTime = time.Time{}
	c.totalPausedTime = 0
	c.started = true
	c.paused = false
	c.stopped = false
	c.final = 0
}

// Pause freezes elapsed time
func (c *SessionClock) Pause() {
	if !c.started || c.stopped || c.paused {
		return
	}
	c.paused = true
	c.pauseStartTime = c.time.Now()
}

// Resume continues measuring, the paused interval is not counted
func (c *SessionClock) Resume() {
	if !c.paused {
		return
	}
	c.totalPausedTime += c.time.Now().Sub(c.pauseStartTime)
	c.pauseStartTime = time.Time{}
	c.paused = false
}

// Stop freezes elapsed time permanently until the next Start
func (c *SessionClock) Stop() {
	if !c.started || c.stopped {
		return
	}
	c.final = c.Elapsed()
	c.stopped = true
}

// Elapsed returns play time since Start minus paused time
func (c *SessionClock) Elapsed() time.Duration {
	switch {
	case !c.started:
		return 0
	case c.stopped:
		return c.final
	}
	end := c.time.Now()
	if c.paused {
		end = c.pauseStartTime
	}
	d := end.Sub(c.startTime) - c.totalPausedTime
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedSeconds returns Elapsed truncated to whole seconds
func (c *SessionClock) ElapsedSeconds() int {
	return int(c.Elapsed() / time.Second)
}

// IsPaused returns current pause state
func (c *SessionClock) IsPaused() bool {
	return c.paused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (c *SessionClock) TotalPauseDuration() time.Duration {
	total := c.totalPausedTime
	if c.paused {
		total += c.time.Now().Sub(c.pauseStartTime)
	}
	return total
}

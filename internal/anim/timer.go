package anim

import "time"

// Timer invokes a tick callback at a fixed period while active. It has no
// goroutine of its own: the host feeds elapsed time through Advance from the
// same goroutine that calls Start and Stop, so a Stop is always synchronous.
type Timer struct {
	period  time.Duration
	tick    func()
	elapsed time.Duration
	handle  uint64
	next    uint64
}

// NewTimer returns an inactive timer with the given period.
func NewTimer(period time.Duration) *Timer {
	if period <= 0 {
		panic("anim: timer period must be positive")
	}
	return &Timer{period: period}
}

// Start begins invoking tick every period. It is a no-op returning false if
// the timer is already active.
func (t *Timer) Start(tick func()) bool {
	if t.handle != 0 {
		return false
	}
	t.next++
	t.handle = t.next
	t.tick = tick
	t.elapsed = 0
	return true
}

// Stop cancels the repeating tick. It is a no-op returning false if the timer
// is not active. No tick fires after Stop returns, even when Stop is called
// from inside a tick.
func (t *Timer) Stop() bool {
	if t.handle == 0 {
		return false
	}
	t.handle = 0
	t.tick = nil
	t.elapsed = 0
	return true
}

// Active reports whether a repeating tick is scheduled.
func (t *Timer) Active() bool { return t.handle != 0 }

// Period returns the tick period.
func (t *Timer) Period() time.Duration { return t.period }

// Advance moves the timer's clock forward by dt and fires one tick per
// elapsed period. It returns the number of ticks fired.
func (t *Timer) Advance(dt time.Duration) int {
	if dt < 0 {
		Logger().Warn("timer advanced by negative delta", "dt", dt)
		return 0
	}
	if t.handle == 0 {
		return 0
	}
	h := t.handle
	t.elapsed += dt
	fired := 0
	for t.handle == h && t.elapsed >= t.period {
		t.elapsed -= t.period
		fired++
		t.tick()
	}
	return fired
}

package anim

import (
	"testing"
	"time"
)

const period = 50 * time.Millisecond

func TestTimerStartTwiceKeepsOneTick(t *testing.T) {
	tm := NewTimer(period)
	first, second := 0, 0

	if !tm.Start(func() { first++ }) {
		t.Fatal("first Start returned false")
	}
	if tm.Start(func() { second++ }) {
		t.Error("second Start returned true")
	}

	tm.Advance(3 * period)
	if first != 3 || second != 0 {
		t.Errorf("ticks first=%d second=%d, want 3 and 0", first, second)
	}
}

func TestTimerStopIdempotent(t *testing.T) {
	tm := NewTimer(period)
	if tm.Stop() {
		t.Error("Stop on inactive timer returned true")
	}

	n := 0
	tm.Start(func() { n++ })
	if !tm.Stop() {
		t.Error("Stop on active timer returned false")
	}
	if tm.Stop() {
		t.Error("second Stop returned true")
	}
	tm.Advance(10 * period)
	if n != 0 {
		t.Errorf("ticks after Stop = %d, want 0", n)
	}
	if tm.Active() {
		t.Error("timer still active after Stop")
	}
}

func TestTimerAccumulatesPartialPeriods(t *testing.T) {
	tm := NewTimer(period)
	n := 0
	tm.Start(func() { n++ })

	for i := 0; i < 9; i++ {
		tm.Advance(10 * time.Millisecond)
	}
	if n != 1 {
		t.Errorf("ticks after 90ms = %d, want 1", n)
	}
	tm.Advance(10 * time.Millisecond)
	if n != 2 {
		t.Errorf("ticks after 100ms = %d, want 2", n)
	}
}

func TestTimerStopInsideTick(t *testing.T) {
	tm := NewTimer(period)
	n := 0
	tm.Start(func() {
		n++
		if n == 2 {
			tm.Stop()
		}
	})
	fired := tm.Advance(10 * period)
	if n != 2 || fired != 2 {
		t.Errorf("ticks = %d (fired %d), want 2", n, fired)
	}
}

func TestTimerRestartResetsClock(t *testing.T) {
	tm := NewTimer(period)
	n := 0
	tm.Start(func() { n++ })
	tm.Advance(period - time.Millisecond)
	tm.Stop()

	tm.Start(func() { n++ })
	tm.Advance(time.Millisecond)
	if n != 0 {
		t.Errorf("restart carried over elapsed time: %d ticks", n)
	}
}

func TestTimerNegativeDelta(t *testing.T) {
	tm := NewTimer(period)
	n := 0
	tm.Start(func() { n++ })
	if got := tm.Advance(-period); got != 0 || n != 0 {
		t.Errorf("negative Advance fired %d ticks", n)
	}
}

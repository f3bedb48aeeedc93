package core

import "time"

// DefaultInterval is the delay between generations while a session runs.
const DefaultInterval = 200 * time.Millisecond

// Interval reports when a fixed delay has elapsed between simulation steps.
// It is polled from a frame loop and never fires more than once per poll.
type Interval struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewInterval constructs an Interval that fires every d. The first poll fires
// immediately.
func NewInterval(d time.Duration) *Interval {
	iv := &Interval{}
	iv.SetInterval(d)
	iv.Reset()
	return iv
}

// SetInterval changes the delay. Non-positive values select DefaultInterval.
func (iv *Interval) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	iv.step = d
}

// Interval returns the configured delay.
func (iv *Interval) Interval() time.Duration { return iv.step }

// Reset forgets accumulated time so the next poll fires immediately.
func (iv *Interval) Reset() {
	iv.last = time.Time{}
	iv.accumulator = iv.step
}

// ShouldStep reports whether the simulation should advance by one step.
func (iv *Interval) ShouldStep() bool {
	return iv.advance(time.Now())
}

func (iv *Interval) advance(now time.Time) bool {
	if iv.last.IsZero() {
		iv.last = now
	}
	iv.accumulator += now.Sub(iv.last)
	iv.last = now
	if iv.accumulator >= iv.step {
		iv.accumulator -= iv.step
		// A stalled frame loop must not replay a backlog of steps.
		if iv.accumulator > iv.step {
			iv.accumulator = iv.step
		}
		return true
	}
	return false
}

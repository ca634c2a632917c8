package core

import "time"

// DefaultTickInterval is how often a completed generation is applied to the
// board unless configured otherwise.
const DefaultTickInterval = 100 * time.Millisecond

// TickTimer accumulates wall-clock time and fires once per elapsed interval.
// It fires at most once per Tick call and discards any backlog beyond one
// interval, so a stalled caller does not queue up extra generations.
type TickTimer struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewTickTimer constructs a repeating timer with the given interval.
func NewTickTimer(interval time.Duration) *TickTimer {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &TickTimer{interval: interval}
}

// Interval returns the configured tick interval.
func (t *TickTimer) Interval() time.Duration { return t.interval }

// Tick advances the timer to now and reports whether the interval elapsed.
// On firing the accumulator resets to zero.
func (t *TickTimer) Tick(now time.Time) bool {
	if t.last.IsZero() {
		t.last = now
	}
	t.accumulator += now.Sub(t.last)
	t.last = now
	if t.accumulator < t.interval {
		return false
	}
	t.accumulator = 0
	return true
}

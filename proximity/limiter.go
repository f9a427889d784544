package proximity

import "time"

// Limiter throttles alert playback to the current tier's interval.
// State is a single time-of-last-alert value, read and conditionally
// overwritten once per Fire call. Callers supply the clock so tests
// can drive time directly.
type Limiter struct {
	intervals Intervals
	last      time.Time
}

// NewLimiter creates a limiter with the given per-tier cadence
func NewLimiter(iv Intervals) *Limiter {
	return &Limiter{intervals: iv}
}

// Fire reports whether an alert should sound at now for the given
// tier. An alert fires iff the elapsed time since the last alert is at
// least the tier's interval; firing resets the clock. TierNone never
// fires and leaves the clock untouched.
func (l *Limiter) Fire(tier Tier, now time.Time) bool {
	interval, ok := l.intervals.For(tier)
	if !ok {
		return false
	}
	if !l.last.IsZero() && now.Sub(l.last) < interval {
		return false
	}
	l.last = now
	return true
}

// Reset clears the last-alert clock, so the next in-range evaluation
// fires immediately
func (l *Limiter) Reset() {
	l.last = time.Time{}
}

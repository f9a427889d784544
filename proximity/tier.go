package proximity

import "time"

// Tier classifies a continuous distance into discrete feedback levels
type Tier uint8

const (
	TierNone    Tier = iota // Out of range, no feedback
	TierCaution             // Outer band
	TierWarning             // Middle band
	TierDanger              // Inner band, fastest beeps
)

func (t Tier) String() string {
	switch t {
	case TierDanger:
		return "danger"
	case TierWarning:
		return "warning"
	case TierCaution:
		return "caution"
	default:
		return "none"
	}
}

// Thresholds is the ordered tier table. Values are distances in screen
// units and must satisfy Danger < Warning < Caution. The struct is
// immutable configuration passed into evaluation, never module state.
type Thresholds struct {
	Danger  float64
	Warning float64
	Caution float64
}

// DefaultThresholds returns the stock tier table
func DefaultThresholds() Thresholds {
	return Thresholds{Danger: 80, Warning: 180, Caution: 300}
}

// TierFor maps a distance to its tier, checked nearest-first.
// Pure function of the distance: identical input always yields the
// identical tier regardless of call history. There is no hysteresis;
// a distance oscillating around a threshold flickers tier every frame.
func (t Thresholds) TierFor(distance float64) Tier {
	switch {
	case distance <= t.Danger:
		return TierDanger
	case distance <= t.Warning:
		return TierWarning
	case distance <= t.Caution:
		return TierCaution
	default:
		return TierNone
	}
}

// Intervals holds the minimum time between beeps per tier
type Intervals struct {
	Danger  time.Duration
	Warning time.Duration
	Caution time.Duration
}

// DefaultIntervals returns the stock beep cadence
func DefaultIntervals() Intervals {
	return Intervals{
		Danger:  100 * time.Millisecond,
		Warning: 350 * time.Millisecond,
		Caution: 700 * time.Millisecond,
	}
}

// For returns the beep interval for a tier; ok is false for TierNone,
// which never beeps
func (iv Intervals) For(t Tier) (time.Duration, bool) {
	switch t {
	case TierDanger:
		return iv.Danger, true
	case TierWarning:
		return iv.Warning, true
	case TierCaution:
		return iv.Caution, true
	default:
		return 0, false
	}
}

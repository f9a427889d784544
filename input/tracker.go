package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow covers the gap between terminal key-repeat events
// so a held key reads as continuously down
const DefaultHoldWindow = 150 * time.Millisecond

// Tracker turns tcell key events into per-frame movement snapshots.
// Terminals deliver repeats rather than key-up events, so a key counts
// as held until the hold window elapses after its last event.
type Tracker struct {
	hold time.Duration
	last map[Intent]time.Time
}

// NewTracker creates a tracker with the given hold window
func NewTracker(hold time.Duration) *Tracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Tracker{
		hold: hold,
		last: make(map[Intent]time.Time, 4),
	}
}

// HandleKey records a key event and returns its intent
func (t *Tracker) HandleKey(ev *tcell.EventKey, now time.Time) Intent {
	intent := classify(ev)
	switch intent {
	case IntentForward, IntentReverse, IntentLeft, IntentRight:
		t.last[intent] = now
	}
	return intent
}

// Snapshot returns the set of movement keys held at now
func (t *Tracker) Snapshot(now time.Time) Intents {
	held := func(i Intent) bool {
		last, ok := t.last[i]
		return ok && now.Sub(last) <= t.hold
	}
	return Intents{
		Forward: held(IntentForward),
		Reverse: held(IntentReverse),
		Left:    held(IntentLeft),
		Right:   held(IntentRight),
	}
}

func classify(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyUp:
		return IntentForward
	case tcell.KeyDown:
		return IntentReverse
	case tcell.KeyLeft:
		return IntentLeft
	case tcell.KeyRight:
		return IntentRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return IntentForward
		case 's', 'S':
			return IntentReverse
		case 'a', 'A':
			return IntentLeft
		case 'd', 'D':
			return IntentRight
		case 'q', 'Q':
			return IntentQuit
		}
	}
	return IntentNone
}

package input

// Intent discriminates semantic actions derived from key events
type Intent uint8

const (
	IntentNone    Intent = iota
	IntentForward        // W / Up
	IntentReverse        // S / Down
	IntentLeft           // A / Left
	IntentRight          // D / Right
	IntentQuit           // ESC, Ctrl+C, q
)

// Intents is the per-frame snapshot of held movement keys, the
// simulation's "is key X down" view of the keyboard
type Intents struct {
	Forward bool
	Reverse bool
	Left    bool
	Right   bool
}

// Any reports whether any movement key is held
func (in Intents) Any() bool {
	return in.Forward || in.Reverse || in.Left || in.Right
}

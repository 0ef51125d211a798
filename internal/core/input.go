package core

import "strings"

// Action is a semantic input, decoupled from the key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionJump           // Jump, a second press in the air double jumps
	ActionDash           // Forward dash
	ActionLeft           // Steer left while held
	ActionRight          // Steer right while held
	ActionConfirm        // Confirm, also restarts a finished run
	ActionBack           // Leave a paused or finished run
	ActionRestart        // New run after game over
	ActionQuit           // Leave the program or SSH session
	ActionPause          // Toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Jump", "Dash", "Left", "Right", "Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions pressed during one host tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as pressed. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Any reports whether any of the actions was pressed.
func (f InputFrame) Any(actions ...Action) bool {
	for _, a := range actions {
		if f.Has(a) {
			return true
		}
	}
	return false
}

// Len returns the number of pressed actions.
func (f InputFrame) Len() int {
	n := 0
	for b := f.bits; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// String lists the pressed actions, e.g. "Jump+Right".
func (f InputFrame) String() string {
	var names []string
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "+")
}

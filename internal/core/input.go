package core

// Action is a player intent decoded from a key press.
type Action uint8

const (
	ActionNone  Action = iota
	ActionJump         // flap; also starts and restarts a round
	ActionBack         // leave to the menu between rounds
	ActionQuit         // end the program or session
	ActionPause        // toggle pause
	actionCount
)

var actionNames = [actionCount]string{"None", "Jump", "Back", "Quit", "Pause"}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions seen since the previous tick. The
// platform clears it after every Step, so a press is visible for exactly
// one tick. The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was recorded this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was recorded.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear forgets every recorded action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

package core

// Action is something the player asked for during a tick, independent of
// which key produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionJump
	ActionRestart
	ActionPause
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionJump:    "Jump",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame collects the actions triggered during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	set uint32
}

// NewInputFrame returns an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.set |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.set&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.set == 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.set = 0
}

package core

// Action represents a semantic game action, abstracted from physical key
// presses. Keyboard, touch-drag or tap are all normalized to this same
// vocabulary before reaching the simulation.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // move left (hold)
	ActionRight        // move right (hold)
	ActionJump         // edge-triggered jump / double jump
	ActionStart        // start a run from the title state
	ActionPause        // pause/unpause during play
	ActionMute         // toggle audio mute
	ActionQuit         // exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Hold-style actions (left/right) are re-asserted by the platform layer every
// tick they remain held; edge-style actions (jump, start) appear exactly once
// per press.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

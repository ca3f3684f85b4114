package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space, W, Up arrow
	ActionDrop           // S, Down arrow - drop through a platform
	ActionFire           // F, mouse button
	ActionChoose1        // 1 - first offered upgrade
	ActionChoose2        // 2
	ActionChoose3        // 3
	ActionRestart        // R key - restart after defeat
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Escape
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
	case ActionDrop:
		return "Drop"
	case ActionFire:
		return "Fire"
	case ActionChoose1:
		return "Choose1"
	case ActionChoose2:
		return "Choose2"
	case ActionChoose3:
		return "Choose3"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
//
// Actions holds edge-triggered presses (this tick only); Held holds actions
// that are considered down for the whole tick. Terminals report key repeats
// rather than key state, so the platform derives Held from recent presses.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool

	// Pointer is the last known pointer cell on the screen.
	PointerX, PointerY int
	HasPointer         bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// IsHeld returns true if the action is held or was triggered this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Actions[a]
}

// SetPointer records the pointer cell.
func (f *InputFrame) SetPointer(x, y int) {
	f.PointerX, f.PointerY = x, y
	f.HasPointer = true
}

// Clear resets triggered and held actions. The pointer position persists.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.PointerX, clone.PointerY, clone.HasPointer = f.PointerX, f.PointerY, f.HasPointer
	return clone
}

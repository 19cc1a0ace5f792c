package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionSelect         // 1-4, a-d, mouse click - pick an answer option (see InputFrame.Choice)
	ActionConfirm        // Space, Enter - confirm prompt / start a new game
	ActionBack           // Escape - open or dismiss the exit prompt
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Ctrl+C - exit immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSelect:
		return "Select"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// NoChoice marks an InputFrame without a selected option.
const NoChoice = -1

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Choice is the option index for ActionSelect, or NoChoice.
	Choice int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Choice:  NoChoice,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Select marks an option as chosen for this frame.
// Only the first selection within a frame is kept.
func (f *InputFrame) Select(index int) {
	if f.Has(ActionSelect) {
		return
	}
	f.Set(ActionSelect)
	f.Choice = index
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
	f.Choice = NoChoice
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Choice = f.Choice
	return clone
}

package core

// Action represents a semantic simulation control, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionPause           // Space, P - pause/resume stepping
	ActionStep            // N - advance one generation while paused
	ActionRestart         // R - reseed with a fresh seed
	ActionFaster          // +, = - shorten the generation interval
	ActionSlower          // - - lengthen the generation interval
	ActionSnapshot        // Ctrl+S - persist the current grid
	ActionQuit            // Q, Ctrl+C - exit
	ActionPanUp           // Up, K - pan the view
	ActionPanDown         // Down, J
	ActionPanLeft         // Left, H
	ActionPanRight        // Right, L
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionRestart:
		return "Restart"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionSnapshot:
		return "Snapshot"
	case ActionQuit:
		return "Quit"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one platform tick.
// It contains all actions that were triggered since the previous tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

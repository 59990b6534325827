package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveUp            // W
	ActionMoveDown          // S
	ActionMoveLeft          // A
	ActionMoveRight         // D
	ActionShootUp           // Up arrow
	ActionShootDown         // Down arrow
	ActionShootLeft         // Left arrow
	ActionShootRight        // Right arrow
	ActionPause             // P, Escape - pause/unpause game
	ActionRestart           // R key - restart game after the run is over
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns the semantic tag for the action.
// Movement and shooting tags double as simulation event names.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveUp:
		return "move-up"
	case ActionMoveDown:
		return "move-down"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionShootUp:
		return "shoot-up"
	case ActionShootDown:
		return "shoot-down"
	case ActionShootLeft:
		return "shoot-left"
	case ActionShootRight:
		return "shoot-right"
	case ActionPause:
		return "pause"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IsGameplay reports whether the action is a movement or shooting intent
// that the simulation consumes as an event tag.
func (a Action) IsGameplay() bool {
	return a >= ActionMoveUp && a <= ActionShootRight
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

package core

// Action is a semantic game action, abstracted from physical keys.
// Frontends map their native key events onto actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionPause          // P
	ActionDebug          // O - hit-box overlay
	ActionQuit           // Escape, Q, Ctrl+C
	ActionConfirm        // Enter - menus
	ActionBack           // B - menus
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action steers the player.
func (a Action) IsMovement() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// MovementActions lists the steering actions in a stable order.
var MovementActions = [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// KeyEvent is a single press or release of an action.
type KeyEvent struct {
	Action   Action
	Released bool
}

// InputFrame collects the key events received between two simulation ticks.
// Events keep their arrival order: when two events touch the same velocity
// component, the later one wins.
type InputFrame struct {
	Events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]KeyEvent, 0, 4)}
}

// Press records a key-down for the action.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a})
}

// Release records a key-up for the action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Released: true})
}

// Has returns true if the action was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a && !e.Released {
			return true
		}
	}
	return false
}

// Empty reports whether no events were recorded.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets the frame for the next tick, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform translates raw key events into actions and the
// game consumes them one at a time, in arrival order.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move one tile left
	ActionUp             // W, Up arrow - move one tile up
	ActionRight          // D, Right arrow - move one tile right
	ActionDown           // S, Down arrow - move one tile down
	ActionHelp           // H - spend a life for an assist item
	ActionConfirm        // Enter, Space - confirm selection
	ActionPause          // P, Escape - pause/unpause game
	ActionQuit           // Q - abandon the run, back to character select
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionHelp:
		return "Help"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

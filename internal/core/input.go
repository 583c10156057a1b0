package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp          // W, Up arrow - nudge the paddle up
	ActionDown        // S, Down arrow - nudge the paddle down
	ActionHelp        // ? - toggle the full help footer
	ActionQuit        // Q, Ctrl+C - exit
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
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

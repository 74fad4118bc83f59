package core

import "github.com/vovakirdan/term2048/internal/engine"

// Action represents a semantic game command, abstracted from physical key presses.
// Frontends decode keys into actions; the game only ever sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionRetry        // R - start a new game
	ActionQuit         // Q, Ctrl+C
	ActionHelp         // H, I - toggle the controls panel
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
	case ActionRetry:
		return "Retry"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Direction returns the board direction for a move action.
// The second result is false for every non-move action.
func (a Action) Direction() (engine.Direction, bool) {
	switch a {
	case ActionUp:
		return engine.Up, true
	case ActionDown:
		return engine.Down, true
	case ActionLeft:
		return engine.Left, true
	case ActionRight:
		return engine.Right, true
	default:
		return 0, false
	}
}

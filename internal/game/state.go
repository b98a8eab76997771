// Package game provides the exploration loop and its controller.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: the party walks between rooms.
	StateExplore State = iota
	// StateCode reads digits for the locked door the party stands at.
	StateCode
	// StateQuit ends the loop.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateCode:
		return "code"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

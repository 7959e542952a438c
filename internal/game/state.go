// Package game provides the main game loop and state management.
package game

// State represents whether the main loop is still going.
type State int

const (
	// StateRunning is the normal state; every key but quit stays here.
	StateRunning State = iota
	// StateTerminated ends the main loop.
	StateTerminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

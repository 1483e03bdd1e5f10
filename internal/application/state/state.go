package state

// GameState represents the lifecycle state of a Stage
type GameState int

const (
	StateActive GameState = iota
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Ticking reports whether a Stage in this state advances on Tick
func (s GameState) Ticking() bool {
	return s == StateActive
}

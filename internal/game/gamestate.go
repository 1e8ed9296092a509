package game

type GameState int

const (
	StateIdle     GameState = iota // waiting for an arrow key, or paused
	StateRunning                   // ticking
	StateGameOver                  // transient: score shown, board about to reset
	StateShutdown                  // quit ordered
)

func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	case StateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

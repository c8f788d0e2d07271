package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal frontends)
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status the game reports to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Session has ended; platform should close it
	Crashing bool // Collision happened, game-over delay is running
	Paused   bool
	Debug    bool
	Quit     bool // Player asked to leave
}

// Event is something the platform may react to (sound, persistence).
type Event int

const (
	EventMoveUp Event = iota + 1
	EventMoveDown
	EventCollision
	EventGameOver
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventMoveUp:
		return "MoveUp"
	case EventMoveDown:
		return "MoveDown"
	case EventCollision:
		return "Collision"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the step produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}

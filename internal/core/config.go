package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (1-based), 0 if the game has no levels
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// CompletionReason describes why a play session reported its final score.
type CompletionReason string

const (
	CompletionGameOver CompletionReason = "gameover" // Lives exhausted
	CompletionExit     CompletionReason = "exit"     // Player closed the session
)

// Completion is the final result of one play session.
type Completion struct {
	GameID string
	Score  int
	Level  int
	Reason CompletionReason
}

// CompletionReporter receives the final score of a play session.
// Games call it at most once per session.
type CompletionReporter interface {
	ReportCompletion(c Completion)
}

package core

// RuntimeConfig contains configuration passed to the simulation at reset.
// It covers the parameters that depend on the hosting environment; gameplay
// tuning lives in the config package.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
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

// Phase is the top-level simulation state.
//
// A run moves NotStarted -> IntroFalling -> Playing; game over performs the
// full reset synchronously and lands back in NotStarted, so there is no
// observable GameOver phase between ticks.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseIntroFalling
	PhasePlaying
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseIntroFalling:
		return "IntroFalling"
	case PhasePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// GameState is the platform-facing summary of the simulation, refreshed
// every tick.
type GameState struct {
	Phase     Phase
	Score     int
	HighScore int
	Paused    bool
}

package sim

import "github.com/vovakirdan/cubefall/internal/core"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	// EventRunStarted fires on the NotStarted -> IntroFalling transition.
	EventRunStarted EventKind = iota
	// EventLanded fires on every first landing on a segment; Score carries
	// the new total and Pitch the score-scaled multiplier for the land cue.
	EventLanded
	// EventDoubleJumped fires when the airborne double jump is consumed.
	EventDoubleJumped
	// EventPlatformRemoved fires when a platform falls far enough behind the
	// player and is recycled. The presentation adapter owns releasing any
	// per-entity render state keyed by PlatformIndex.
	EventPlatformRemoved
	// EventGameOver fires once when the player drops out of the world.
	// Score is the final score of the run, HighScore the (possibly updated)
	// best. The simulation has already reset to NotStarted when this event
	// is observed.
	EventGameOver
)

// Event is a single simulation occurrence. Fields are populated per kind.
type Event struct {
	Kind          EventKind
	Score         int
	HighScore     int
	Pitch         float64
	PlatformIndex uint64
}

// StepResult is returned by Game.Step after each simulation tick.
// The Events slice is reused between ticks; consumers must not retain it.
type StepResult struct {
	State  core.GameState
	Events []Event
}
